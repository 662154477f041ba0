package routes

import (
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/posts/comments"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/middleware"

	"github.com/gin-gonic/gin"
)

func CommentsRoutes(r *gin.Engine) {
	commentsRoutes := r.Group("/api/comments")
	commentsRoutes.Use(middleware.JWTAuth())
	{
		commentsRoutes.PUT("/:id", comments.UpdateComment)
		commentsRoutes.DELETE("/:id", comments.DeleteComment)
	}
}
