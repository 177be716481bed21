package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joinwork/joinwork/internal/app/controllers"
	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	graduateController *controllers.GraduateController,
	companyController *controllers.CompanyController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	workshopController *controllers.WorkshopController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	api.GET("/jobs", jobController.ListJobs)
	api.GET("/jobs/:id", jobController.GetJob)
	api.GET("/workshops", workshopController.ListWorkshops)
	api.GET("/health", adminController.Health)
	api.GET("/admin/database", adminController.DumpDatabase)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		graduates := authenticated.Group("/graduates")
		{
			graduates.GET("/:id", graduateController.GetGraduate)

			graduatesOnly := graduates.Group("")
			graduatesOnly.Use(authMiddleware.RoleRequired(string(models.RoleGraduate)))
			{
				graduatesOnly.GET("/user/:userId", graduateController.GetByUser)
				graduatesOnly.POST("", graduateController.CreateProfile)
				graduatesOnly.PUT("/:id", graduateController.UpdateProfile)
			}
		}

		companies := authenticated.Group("/companies")
		{
			companies.GET("/:id", companyController.GetCompany)

			companiesOnly := companies.Group("")
			companiesOnly.Use(authMiddleware.RoleRequired(string(models.RoleCompany)))
			{
				companiesOnly.GET("/user/:userId", companyController.GetByUser)
			}
		}

		jobs := authenticated.Group("/jobs")
		{
			companyJobs := jobs.Group("")
			companyJobs.Use(authMiddleware.RoleRequired(string(models.RoleCompany)))
			{
				companyJobs.POST("", jobController.CreateJob)
				companyJobs.PUT("/:id", jobController.UpdateJob)
				companyJobs.DELETE("/:id", jobController.DeleteJob)
				companyJobs.GET("/:id/applications", jobController.ListApplications)
			}

			graduateJobs := jobs.Group("")
			graduateJobs.Use(authMiddleware.RoleRequired(string(models.RoleGraduate)))
			{
				graduateJobs.POST("/:id/apply", jobController.Apply)
			}
		}

		applications := authenticated.Group("/applications")
		applications.Use(authMiddleware.RoleRequired(string(models.RoleCompany)))
		{
			applications.PUT("/:id", applicationController.UpdateStatus)
		}
	}
}
