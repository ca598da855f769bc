package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UpServices02/service-booking/internal/config"
	dbpkg "github.com/UpServices02/service-booking/internal/db"
	"github.com/UpServices02/service-booking/internal/logger"
	"github.com/UpServices02/service-booking/internal/middleware"
	"github.com/UpServices02/service-booking/internal/routes"
)

func main() {

	logger.Init()
	defer logger.L().Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
