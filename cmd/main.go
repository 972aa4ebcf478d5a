package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/kirankuma274/feedback-collection-system/internal/config"
	"github.com/kirankuma274/feedback-collection-system/internal/db"
	"github.com/kirankuma274/feedback-collection-system/internal/handlers"
	"github.com/kirankuma274/feedback-collection-system/internal/middleware"
	"github.com/kirankuma274/feedback-collection-system/internal/notifier"
	"github.com/kirankuma274/feedback-collection-system/internal/services"
	"github.com/kirankuma274/feedback-collection-system/internal/storage"
	"github.com/kirankuma274/feedback-collection-system/internal/store"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize Fiber
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	// Connect to MongoDB and MinIO
	mongoDB := db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	blobs := storage.NewMinioBlobStore(storage.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})

	users := store.NewMongoUserStore(mongoDB)
	feedbacks := store.NewMongoFeedbackStore(mongoDB)

	mailer := notifier.NewSendGridNotifier(cfg.SendGridAPIKey, "Feedback Team", cfg.EmailSender)
	dispatcher := notifier.NewDispatcher(2)
	defer dispatcher.Close()

	authService := services.NewAuthService(users, cfg.JWTSecret)
	feedbackService := services.NewFeedbackService(feedbacks, blobs, mailer, dispatcher)
	reportService := services.NewReportService(feedbacks)

	authHandler := handlers.NewAuthHandler(authService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	adminHandler := handlers.NewAdminHandler(reportService, users)
	fileHandler := handlers.NewFileHandler(blobs)

	requireAuth := middleware.AuthMiddleware(users, cfg.JWTSecret)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})

	// Auth Routes
	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Feedback Routes
	feedback := app.Group("/feedback")
	feedback.Post("/submit", middleware.SubmissionRateLimit(nil), requireAuth, feedbackHandler.Submit)
	feedback.Get("/all", requireAuth, middleware.AdminMiddleware, adminHandler.ListFeedback)
	feedback.Get("/summary", requireAuth, middleware.AdminMiddleware, adminHandler.Summary)
	feedback.Get("/export/csv", requireAuth, middleware.AdminMiddleware, adminHandler.ExportCSV)
	feedback.Delete("/:id", requireAuth, middleware.AdminMiddleware, adminHandler.DeleteFeedback)

	// Admin Routes
	admin := app.Group("/admin", requireAuth, middleware.AdminMiddleware)
	admin.Get("/users", adminHandler.ListUsers)

	// Stored uploads are served back by object name
	app.Get("/uploads/:filename", fileHandler.Serve)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
