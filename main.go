package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Saaquib01/TheTasteQuest/config"
	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/Saaquib01/TheTasteQuest/routes"
	"github.com/Saaquib01/TheTasteQuest/services"
	"github.com/Saaquib01/TheTasteQuest/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
	)
}

func main() {
	ledger := store.NewLedgerStore(config.LedgerFile())
	if err := ledger.Initialize(); err != nil {
		log.Fatalf("Failed to initialize billing ledger: %v", err)
	}

	notifier := services.NewNotifyService(ledger)
	notifier.StartScheduler()

	billing := services.NewBillingService(ledger, notifier)
	sessions := services.NewSessionManager()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(ledger, billing, sessions)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
