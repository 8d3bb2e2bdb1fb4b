package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/2403A51L17/SESD-Project/internal/app/controllers"
	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	materialController *controllers.MaterialController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET("/", profileController.Home)

	router.GET("/register", authController.ShowRegister)
	router.POST("/register", authController.Register)

	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)

	router.GET("/logout", authController.Logout)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.SessionRequired())
	{
		authenticated.GET("/profile", profileController.ProfileRouter)
		authenticated.GET("/download/:filename", materialController.Download)

		studentOnly := authenticated.Group("")
		studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentOnly.GET("/student/profile", profileController.StudentProfile)
		}

		mentorOnly := authenticated.Group("")
		mentorOnly.Use(authMiddleware.RoleRequired(models.RoleMentor))
		{
			mentorOnly.GET("/mentor/profile", profileController.MentorProfile)
			mentorOnly.POST("/upload_material", materialController.Upload)
		}
	}

	// Health check endpoint (public)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
