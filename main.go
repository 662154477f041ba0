package main

import (
	"log"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/config"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/db"
	_ "github.com/anand7600/CodeAlpha-Social-Media-Platform/docs"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/routes"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-gonic/gin"
)

// @title CodeAlpha Social Media API
// @version 1.0
// @description REST API for the CodeAlpha social media platform
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db.InitDB(cfg.DBUrl)

	r := routes.SetupRouter()

	utils.LogInfo("Server listening on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
