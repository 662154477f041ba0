package routes

import (
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/posts"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/posts/comments"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/posts/likes"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	postsRoutes := r.Group("/api/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.GET("/feed", posts.GetFeed)
		postsRoutes.GET("/explore", posts.GetExplore)
		postsRoutes.GET("/:id", posts.GetPostByID)
		postsRoutes.POST("", posts.CreatePost)
		postsRoutes.PUT("/:id", posts.UpdatePost)
		postsRoutes.DELETE("/:id", posts.DeletePost)

		postsRoutes.POST("/:id/like", likes.ToggleLike)
		postsRoutes.GET("/:id/comments", comments.GetComments)
		postsRoutes.POST("/:id/comments", comments.CreateComment)
	}
}
