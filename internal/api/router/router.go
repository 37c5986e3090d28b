package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handymgr/jobtrack/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if err := deps.DBClient.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "jobtrack-api",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "jobtrack-api",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	adminHandler := handler.NewAdminHandler(deps)

	// API v1 routes. All data endpoints are POST with a JSON body carrying
	// the token, matching the mobile client contract.
	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			// POST /api/v1/jobs - Open a new job
			jobs.POST("", jobHandler.CreateJob)

			// POST /api/v1/jobs/in-progress - A tech's open jobs
			jobs.POST("/in-progress", jobHandler.GetInProgressJobs)

			// POST /api/v1/jobs/latest - A tech's recent jobs
			jobs.POST("/latest", jobHandler.GetLatestJobs)

			// POST /api/v1/jobs/get - Full job lookup
			jobs.POST("/get", jobHandler.GetJob)

			// POST /api/v1/jobs/complete - Close a job
			jobs.POST("/complete", jobHandler.CompleteJob)

			// POST /api/v1/jobs/locations - Location autocompletion
			jobs.POST("/locations", jobHandler.GetLocations)
		}

		admin := v1.Group("/admin")
		{
			// POST /api/v1/admin/jobs - All jobs with filters
			admin.POST("/jobs", adminHandler.ListJobs)

			// POST /api/v1/admin/jobs/update - Partial update
			admin.POST("/jobs/update", adminHandler.UpdateJob)

			// POST /api/v1/admin/jobs/delete - Delete a job
			admin.POST("/jobs/delete", adminHandler.DeleteJob)

			// POST /api/v1/admin/filter-options - Dropdown values
			admin.POST("/filter-options", adminHandler.GetFilterOptions)
		}
	}

	return r
}
