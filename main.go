package main

import (
	"fmt"
	"log"

	"fitclub-backend/config"
	"fitclub-backend/models"
	"fitclub-backend/routes"
	"fitclub-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := models.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.RemindersEnabled {
		reminders := services.NewReminderService(db, cfg)
		c := reminders.StartScheduler()
		defer c.Stop()
	}

	r := routes.SetupRouter(db)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
