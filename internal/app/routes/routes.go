package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/controllers"
	"github.com/ets-hub/etshub-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	volunteerController *controllers.VolunteerController,
	registrationController *controllers.RegistrationController,
	mediaController *controllers.MediaController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authMiddleware.RequireAdmin(), authController.Me)
	}

	// --- Event routes ---
	events := v1.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.GET("/:id", eventController.GetEvent)

		events.POST("", authMiddleware.RequireAdmin(), eventController.CreateEvent)
		events.PUT("/:id", authMiddleware.RequireAdmin(), eventController.UpdateEvent)
		events.PATCH("/:id", authMiddleware.RequireAdmin(), eventController.UpdateEvent)
		events.DELETE("/:id", authMiddleware.RequireAdmin(), eventController.DeleteEvent)
	}

	// --- Job routes ---
	// Listing and detail are public but honor a valid session, which
	// unlocks inactive postings for the dashboard.
	jobs := v1.Group("/jobs")
	{
		jobs.GET("", authMiddleware.OptionalAdmin(), jobController.ListJobs)
		jobs.GET("/:slug", authMiddleware.OptionalAdmin(), jobController.GetJob)

		jobs.POST("", authMiddleware.RequireAdmin(), jobController.CreateJob)
		jobs.PUT("/:slug", authMiddleware.RequireAdmin(), jobController.UpdateJob)
		jobs.PATCH("/:slug", authMiddleware.RequireAdmin(), jobController.UpdateJob)
		jobs.DELETE("/:slug", authMiddleware.RequireAdmin(), jobController.DeleteJob)

		// Applications live under their posting.
		jobs.POST("/:slug/apply", applicationController.Apply)
		jobs.GET("/:slug/apply", authMiddleware.RequireAdmin(), applicationController.ListApplications)
		jobs.PATCH("/:slug/apply", authMiddleware.RequireAdmin(), applicationController.UpdateStatus)
		jobs.DELETE("/:slug/apply", authMiddleware.RequireAdmin(), applicationController.DeleteApplication)
	}

	// --- Volunteer routes ---
	volunteers := v1.Group("/volunteers")
	{
		volunteers.GET("", volunteerController.ListVolunteers)
		volunteers.GET("/:id", volunteerController.GetVolunteer)
		volunteers.POST("/:id/appreciate", volunteerController.Appreciate)

		volunteers.POST("", authMiddleware.RequireAdmin(), volunteerController.CreateVolunteer)
		volunteers.PUT("/:id", authMiddleware.RequireAdmin(), volunteerController.UpdateVolunteer)
		volunteers.PATCH("/:id", authMiddleware.RequireAdmin(), volunteerController.UpdateVolunteer)
		volunteers.DELETE("/:id", authMiddleware.RequireAdmin(), volunteerController.DeleteVolunteer)
	}

	// --- Registration routes ---
	register := v1.Group("/register")
	{
		register.POST("/community", registrationController.RegisterCommunityMember)
		register.POST("/volunteer", registrationController.RegisterVolunteer)

		register.GET("/community", authMiddleware.RequireAdmin(), registrationController.ListCommunityMembers)
		register.GET("/volunteer", authMiddleware.RequireAdmin(), registrationController.ListVolunteerApplications)
	}

	// --- Media routes ---
	v1.POST("/uploads", authMiddleware.RequireAdmin(), mediaController.PresignUpload)
	v1.GET("/videos", mediaController.ListVideos)
}
