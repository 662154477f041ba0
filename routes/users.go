package routes

import (
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/users"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	r.PUT("/api/profile", middleware.JWTAuth(), users.UpdateProfile)

	usersRoutes := r.Group("/api/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/:id", users.GetUserByID)
		usersRoutes.GET("/:id/posts", users.GetUserPosts)
		usersRoutes.POST("/:id/follow", users.ToggleFollow)
	}
}
