package main

import (
	"fmt"
	"log"
	"os"

	"barberpos-backend/config"
	"barberpos-backend/controllers"
	"barberpos-backend/models"
	"barberpos-backend/routes"
	"barberpos-backend/services"

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
		&models.Barber{},
		&models.ServiceCatalog{},
		&models.Product{},
		&models.Transaction{},
		&models.TransactionItem{},
		&models.Withdrawal{},
		&models.Expense{},
		&models.InitialDeposit{},
		&models.ShopStatus{},
		&models.NotificationLog{},
	)
}

func main() {
	notifier := services.NewNotificationService(config.DB)
	controllers.SetNotifier(notifier)
	notifier.StartScheduler(services.NewReportService(config.DB))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
