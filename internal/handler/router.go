package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gqlhandler "github.com/graphql-go/handler"

	"reservation-service/internal/handler/middleware"
	"reservation-service/internal/pkg/config"
)

func NewRouter(engine *gin.Engine, cfg config.Config, graphqlHandler *gqlhandler.Handler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, graphqlHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
}

func setupRoutes(engine *gin.Engine, graphqlHandler *gqlhandler.Handler) {
	engine.GET("/health", healthCheck)

	// POST carries queries and mutations; GET serves GraphiQL.
	engine.POST("/graphql", gin.WrapH(graphqlHandler))
	engine.GET("/graphql", gin.WrapH(graphqlHandler))
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "reservation_service",
	})
}
