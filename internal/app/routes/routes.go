package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusworks/placementcell/internal/app/controllers"
	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pagesController *controllers.PagesController,
	authController *controllers.AuthController,
	contactController *controllers.ContactController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET("/", pagesController.Home)
	router.GET("/about", pagesController.About)
	router.GET("/terms", pagesController.Terms)

	router.GET("/contact", contactController.Form)
	router.POST("/contact", contactController.Submit)

	router.GET("/student_register", authController.RegisterStudentForm)
	router.POST("/student_register", authController.RegisterStudent)
	router.GET("/admin_register", authController.RegisterAdminForm)
	router.POST("/admin_register", authController.RegisterAdmin)
	router.GET("/login", authController.LoginForm)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.POST("/delete_account", authController.DeleteAccount)
		authenticated.GET("/view_resume/:filename", studentController.ViewResume)

		// Student-only routes
		studentProtected := authenticated.Group("")
		studentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			studentProtected.GET("/student_dashboard", studentController.Dashboard)
			studentProtected.GET("/apply_job/:jobId", applicationController.Apply)
		}

		// Admin-only routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminProtected.GET("/admin_dashboard", studentController.AdminDashboard)
			adminProtected.GET("/post_job", jobController.ListJobs)
			adminProtected.POST("/post_job", jobController.PostJob)
			adminProtected.GET("/view_students", studentController.ViewStudents)
			adminProtected.GET("/track_applications", applicationController.TrackApplications)
			adminProtected.POST("/track_applications", applicationController.UpdateStatus)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
