package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pmhours/pmhours-go/handlers"
	"github.com/pmhours/pmhours-go/middleware"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/pmhours/pmhours-go/services"
)

func RegisterRoutes(r *gin.Engine, repos_instance *repositories.Repos, services_instance *services.Services) {

	handlers_instance := handlers.New(services_instance)
	authMiddleware := middleware.NewAuth(repos_instance)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("", authMiddleware.Admin(), handlers_instance.User.GetUsers)
		}
		projects := auth.Group("/projects")
		{
			projects.GET("", authMiddleware.AllocationEditor(), handlers_instance.Allocation.GetProjects)
		}
		allocations := auth.Group("/allocations")
		{
			allocations.GET("/project/:id", authMiddleware.AllocationEditor(), handlers_instance.Allocation.ListByProject)
			allocations.POST("/validate", authMiddleware.AllocationEditor(), handlers_instance.Allocation.Validate)
			allocations.PUT("/bulk", authMiddleware.AllocationEditor(), handlers_instance.Allocation.BulkUpdate)
		}
		timelogs := auth.Group("/timelogs")
		{
			timelogs.POST("", handlers_instance.TimeLog.Create)
			timelogs.GET("", handlers_instance.TimeLog.ListMine)
		}
		compliance := auth.Group("/compliance")
		{
			compliance.GET("/report", authMiddleware.AllocationEditor(), handlers_instance.Compliance.GetReport)
			compliance.GET("/settings", authMiddleware.Admin(), handlers_instance.Compliance.GetSettings)
			compliance.PUT("/settings", authMiddleware.Admin(), handlers_instance.Compliance.UpdateSettings)
		}
		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), handlers_instance.Audit.GetAuditLogs)
		}
	}
}
