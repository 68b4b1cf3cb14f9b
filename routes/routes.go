package routes

import (
	"net/http"
	"strings"
	"workshoppro-backend/config"
	"workshoppro-backend/controllers"
	"workshoppro-backend/repositories"
	"workshoppro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter wires middleware, controllers and routes around the injected
// database handle.
func SetupRouter(db *gorm.DB, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5500",
			"http://127.0.0.1:5500",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(log))

	customerController := &controllers.CustomerController{Repo: repositories.NewCustomerRepository(db)}
	vehicleController := &controllers.VehicleController{Repo: repositories.NewVehicleRepository(db)}
	userRepo := repositories.NewUserRepository(db)
	userController := &controllers.UserController{Repo: userRepo}
	authController := &controllers.AuthController{Repo: userRepo, Log: log}

	auth := r.Group("/auth")
	auth.Use(RequireJSONBody())
	{
		auth.POST("/login", authController.Login)
		auth.POST("/reset-password", authController.ResetPassword)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(), RequireJSONBody())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.Create)
			customers.GET("", customerController.List)
			customers.GET("/search", customerController.Search)
			customers.GET("/:id", customerController.Get)
			customers.PUT("/:id", customerController.Update)
			customers.DELETE("/:id", customerController.Delete)
		}

		// Vehicle routes
		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", vehicleController.Create)
			vehicles.GET("", vehicleController.List)
			vehicles.GET("/search", vehicleController.Search)
			vehicles.GET("/owner", vehicleController.FindOwner)
			vehicles.GET("/:id", vehicleController.Get)
			vehicles.PUT("/:id", vehicleController.Update)
			vehicles.DELETE("/:id", vehicleController.Deactivate)
			vehicles.PATCH("/:id/reactivate", vehicleController.Reactivate)
		}

		// User routes
		users := api.Group("/users")
		{
			users.POST("", userController.Create)
			users.GET("", userController.List)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}
	}

	return r
}

// RequireJSONBody rejects write requests without a parseable, non-empty JSON
// body before any core logic runs.
func RequireJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if !strings.HasPrefix(contentType, "application/json") {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType,
				gin.H{"erro": "Content-Type deve ser application/json"})
			return
		}
		if c.Request.ContentLength == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"erro": "Corpo da requisição é obrigatório"})
			return
		}

		c.Next()
	}
}
