package routes

import (
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/signup", auth.Signup)
		authRoutes.POST("/login", auth.Login)
	}
}
