package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/api/handlers"
	"github.com/jobport/jobport/internal/api/middleware"
)

type Deps struct {
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Company      *handlers.CompanyHandler
	Job          *handlers.JobHandler
	Application  *handlers.ApplicationHandler
	Alert        *handlers.AlertHandler
	Notification *handlers.NotificationHandler
	WS           *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public
	r.POST("/auth/register", d.Auth.Register)
	r.POST("/auth/login", d.Auth.Login)
	r.GET("/jobs", d.Job.List)
	r.GET("/jobs/:job_id", d.Job.Get)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile/update", d.Profile.Update)

	auth.GET("/companies/:company_id", d.Company.Get)
	auth.GET("/applications/:application_id", d.Application.Get)
	auth.DELETE("/applications/:application_id", d.Application.Delete) // superuser only, object gate decides

	// Employer capability class
	employer := auth.Group("/")
	employer.Use(middleware.RequireEmployer())

	employer.GET("/companies/me", d.Company.Mine)
	employer.PUT("/companies/me", d.Company.Upsert)
	employer.DELETE("/companies/me", d.Company.Delete)

	employer.POST("/jobs", d.Job.Create)
	employer.PUT("/jobs/:job_id", d.Job.Update)
	employer.DELETE("/jobs/:job_id", d.Job.Delete)
	employer.GET("/employer/jobs", d.Job.Mine)

	employer.GET("/employer/applications", d.Application.ForEmployer)
	employer.PUT("/applications/:application_id/status", d.Application.UpdateStatus)

	// Jobseeker capability class
	jobseeker := auth.Group("/")
	jobseeker.Use(middleware.RequireJobseeker())

	jobseeker.POST("/jobs/:job_id/apply", d.Application.Apply)
	jobseeker.GET("/applications", d.Application.Mine)

	jobseeker.POST("/alerts", d.Alert.Create)
	jobseeker.GET("/alerts", d.Alert.Mine)
	jobseeker.DELETE("/alerts/:alert_id", d.Alert.Delete)

	jobseeker.GET("/notifications", d.Notification.List)
	jobseeker.POST("/notifications/:notification_id/read", d.Notification.MarkRead)
	jobseeker.GET("/notifications/unread-count", d.Notification.UnreadCount)

	// WebSocket
	jobseeker.GET("/ws/notifications", d.WS.NotificationsWS)
}
