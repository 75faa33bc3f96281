package routes

import (
	"github.com/Saaquib01/TheTasteQuest/config"
	"github.com/Saaquib01/TheTasteQuest/controllers"
	"github.com/Saaquib01/TheTasteQuest/services"
	"github.com/Saaquib01/TheTasteQuest/store"
	"github.com/Saaquib01/TheTasteQuest/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(ledger *store.LedgerStore, billing *services.BillingService, sessions *services.SessionManager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	billingController := controllers.NewBillingController(billing, sessions)
	dashboardController := &controllers.DashboardController{Store: ledger}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Menu routes
		menu := api.Group("/menu")
		{
			menu.GET("", controllers.GetMenu)
			menu.GET("/:code", controllers.GetMenuItem)
		}

		// Bill session routes
		api.POST("/sessions", billingController.StartSession)

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", billingController.AddLineItem)
			orders.GET("/history", billingController.GetHistory)
			orders.GET("/pending", billingController.GetPending)
			orders.PUT("/:index/complete", billingController.CompleteOrder)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
