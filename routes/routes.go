package routes

import (
	"time"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/ping"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/api/ping", ping.HandlePing)

	AuthRoutes(r)
	UsersRoutes(r)
	PostsRoutes(r)
	CommentsRoutes(r)

	return r
}
