package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cardops/config"
	"cardops/database"
	"cardops/jobs"
	"cardops/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	database.Connect(cfg)

	app := fiber.New()
	routes.Setup(app, cfg)

	scheduler := jobs.StartScheduler()

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Info("Server running at ", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Gracefully shutting down...")
	scheduler.Stop()
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited cleanly")
}
