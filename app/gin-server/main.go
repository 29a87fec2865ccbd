package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobport/jobport/config"
	"github.com/jobport/jobport/internal/api/handlers"
	"github.com/jobport/jobport/internal/api/middleware"
	"github.com/jobport/jobport/internal/api/routes"
	"github.com/jobport/jobport/internal/cache"
	"github.com/jobport/jobport/internal/logger"
	"github.com/jobport/jobport/internal/mailer"
	"github.com/jobport/jobport/internal/notify"
	mongorepo "github.com/jobport/jobport/internal/repositories/mongo"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/workers"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Init MongoDB (notification store)
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Init Redis
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	// Repositories
	users := pgrepo.NewUserRepo(config.PostgresDB)
	companies := pgrepo.NewCompanyRepo(config.PostgresDB)
	jobs := pgrepo.NewJobRepo(config.PostgresDB)
	applications := pgrepo.NewApplicationRepo(config.PostgresDB)
	alerts := pgrepo.NewAlertRepo(config.PostgresDB)
	notifications := mongorepo.NewNotificationRepo(config.MongoDatabase())

	// Services
	rcache := cache.NewRedisCache(config.RedisClient)
	notificationSvc := services.NewNotificationService(notifications, rcache)
	mailQueue := &workers.RedisMailQueue{Redis: config.RedisClient}
	publisher := notify.NewRedisPublisher(config.RedisClient)
	engine := services.NewAlertEngine(alerts, users, notifications, mailQueue, publisher, notificationSvc, l)

	authSvc := services.NewAuthService(users)
	profileSvc := services.NewProfileService(users)
	companySvc := services.NewCompanyService(companies)
	jobSvc := services.NewJobService(jobs, companies, engine)
	applicationSvc := services.NewApplicationService(applications, jobs, companies)
	alertSvc := services.NewAlertService(alerts)

	// Mail worker pool (best-effort alert emails)
	ctx := context.Background()
	mailPool := &workers.MailWorkerPool{
		Redis:    config.RedisClient,
		Provider: &mailer.LogMailer{Logger: l},
		Logger:   l,
	}
	if err := mailPool.Start(ctx); err != nil {
		log.Fatalf("mail worker error: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:         handlers.NewAuthHandler(authSvc),
		Profile:      handlers.NewProfileHandler(profileSvc),
		Company:      handlers.NewCompanyHandler(companySvc),
		Job:          handlers.NewJobHandler(jobSvc),
		Application:  handlers.NewApplicationHandler(applicationSvc),
		Alert:        handlers.NewAlertHandler(alertSvc),
		Notification: handlers.NewNotificationHandler(notificationSvc),
		WS:           handlers.NewWSHandler(config.RedisClient),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
