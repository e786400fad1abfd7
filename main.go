package main

import (
	"log"
	"net/http"
	"os"

	"clinic/config"
	"clinic/models"

	"clinic/jobs"
	middlewares "clinic/middleware"
	"clinic/routes"
	"clinic/services"
	"clinic/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Bed{},
		&models.Schedule{},
		&models.Shift{},
		&models.Settings{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	sweeper := services.NewBedSweeper(services.BedSweeperOptions{
		DB:     config.DB,
		Logger: logger.NewComponentLogger(logger.InfoLevel, "sweeper"),
	})
	jobs.SetBedReclaimer(sweeper)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
