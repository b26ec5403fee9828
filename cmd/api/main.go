package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"citytwin/internal/api/handlers"
	"citytwin/internal/api/middleware"
	"citytwin/internal/config"
	"citytwin/internal/data"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfgPath := os.Getenv("SIM_CONFIG")
	if cfgPath == "" {
		cfgPath = "./data/simulation_config.yaml"
	}
	cfg := config.Load(cfgPath)
	if cfg.HasCurve() {
		logrus.WithField("path", cfgPath).Info("loaded calibrated demand curve")
	} else {
		logrus.Info("no demand curve configured, using built-in bimodal profile")
	}

	cache := data.NewRunCache(time.Hour)
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cache.Sweep()
		}
	}()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	simHandler := handlers.NewSimulationHandler(cfg, cache)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulations", simHandler.RunSimulation)
		api.GET("/simulations/:id", simHandler.GetSimulation)
		api.POST("/simulations/compare", simHandler.CompareScenarios)
		api.POST("/simulations/bottlenecks", simHandler.Bottlenecks)
	}

	addr := fmt.Sprintf(":%s", port)
	logrus.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
