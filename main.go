package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"workshoppro-backend/config"
	"workshoppro-backend/models"
	"workshoppro-backend/routes"
	"workshoppro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger := config.InitLogger()

	db, err := config.Connect()
	if err != nil {
		logger.WithError(err).Fatal("failed to connect database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Vehicle{},
	); err != nil {
		logger.WithError(err).Fatal("failed to migrate schema")
	}

	if os.Getenv("REMINDERS_ENABLED") == "true" {
		services.NewReminderService(db, logger).StartScheduler()
	}

	r := routes.SetupRouter(db, logger)
	printRoutes(r, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.WithField("port", port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	// Graceful shutdown: drain requests, then release the pool.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}
	if err := config.Close(db); err != nil {
		logger.WithError(err).Error("failed to close connection pool")
	}
}

func printRoutes(r *gin.Engine, logger *logrus.Logger) {
	for _, route := range r.Routes() {
		logger.Infof("%-6s %s", route.Method, route.Path)
	}
}
