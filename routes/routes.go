package routes

import (
	"os"
	"strings"

	"barberpos-backend/config"
	"barberpos-backend/controllers"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
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

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	ownerOnly := utils.RequireRole(models.RoleOwner)
	{
		// Staff accounts (owner only)
		users := api.Group("/users", ownerOnly)
		{
			users.POST("", controllers.CreateUser)
			users.GET("", controllers.GetUsers)
			users.PUT("/:id", controllers.UpdateUser)
			users.DELETE("/:id", controllers.DeleteUser)
		}

		// Barber roster
		barbers := api.Group("/barbers")
		{
			barbers.POST("", ownerOnly, controllers.CreateBarber)
			barbers.GET("", controllers.GetBarbers)
			barbers.GET("/:id", controllers.GetBarber)
			barbers.PUT("/:id", ownerOnly, controllers.UpdateBarber)
			barbers.DELETE("/:id", ownerOnly, controllers.DeleteBarber)
			barbers.GET("/:id/slip", controllers.GetSalarySlip)
		}

		// Service menu
		services := api.Group("/services")
		{
			services.POST("", ownerOnly, controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", ownerOnly, controllers.UpdateService)
			services.DELETE("/:id", ownerOnly, controllers.DeleteService)
		}

		// Retail products
		products := api.Group("/products")
		{
			products.POST("", ownerOnly, controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", ownerOnly, controllers.UpdateProduct)
			products.DELETE("/:id", ownerOnly, controllers.DeleteProduct)
		}

		// Sales: create and read only, no edit or delete
		transactions := api.Group("/transactions")
		{
			transactions.POST("", controllers.CreateTransaction)
			transactions.GET("", controllers.GetTransactions)
			transactions.GET("/:id", controllers.GetTransaction)
		}

		// Commission payouts
		withdrawals := api.Group("/withdrawals")
		{
			withdrawals.POST("", controllers.CreateWithdrawal)
			withdrawals.GET("", controllers.GetWithdrawals)
			withdrawals.DELETE("/:id", ownerOnly, controllers.DeleteWithdrawal)
		}

		// Operating expenses
		expenses := api.Group("/expenses")
		{
			expenses.POST("", controllers.CreateExpense)
			expenses.GET("", controllers.GetExpenses)
			expenses.DELETE("/:id", ownerOnly, controllers.DeleteExpense)
		}

		// Opening cash floats
		deposits := api.Group("/deposits")
		{
			deposits.PUT("", controllers.UpsertDeposit)
			deposits.GET("", controllers.GetDeposits)
			deposits.DELETE("/:date", ownerOnly, controllers.DeleteDeposit)
		}

		// Reports
		api.GET("/reports", controllers.GetPeriodReport)
		api.GET("/reports/trend", controllers.GetTrend)
		api.GET("/reports/commissions/:barberId", controllers.GetBarberCommission)

		// Dashboard
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Exports (owner only)
		api.GET("/export/:kind", ownerOnly, controllers.ExportWorkbook)

		// Register gate
		api.GET("/shop", controllers.GetShopStatus)
		api.POST("/shop/open", controllers.OpenShop)
		api.POST("/shop/close", controllers.CloseShop)

		// Notification log (owner only)
		api.GET("/notifications", ownerOnly, controllers.GetNotifications)
	}

	return r
}
