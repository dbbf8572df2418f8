package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/controllers"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/middleware"
	"github.com/qmexai/ramadandata/internal/web"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	userController *controllers.UserController,
	pageController *controllers.PageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.Use(authMiddleware.PageGate())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})
	router.StaticFS("/static", web.Static())

	// --- Pages ---
	router.GET("/", pageController.Dashboard)
	router.GET("/login", pageController.Login)
	router.GET("/admin/users", pageController.Users)

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authMiddleware.RequireSession(), authController.Me)
	}

	// --- Record routes ---
	records := api.Group("")
	records.Use(authMiddleware.RequireSession())
	{
		records.GET("", studentController.ListStudents)
		records.POST("", studentController.CreateStudent)
		records.PUT("", studentController.UpdateStudent)
		records.DELETE("", studentController.DeleteStudent)
		records.GET("/stats", studentController.GetStats)
	}

	// --- Superuser routes ---
	users := api.Group("/users")
	users.Use(authMiddleware.RequireSuperuser())
	{
		users.GET("", userController.ListUsers)
		users.POST("", userController.CreateUser)
	}
}
