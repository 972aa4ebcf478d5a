package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every environment-backed setting the server needs.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	SendGridAPIKey string
	EmailSender    string
}

// Load reads configuration from the environment, loading a .env file
// first if one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	return Config{
		Port:      envOr("PORT", "5000"),
		MongoURI:  envOr("MONGO_URI", "mongodb://localhost:27017/feedback_system"),
		MongoDB:   envOr("MONGO_DB", "feedback_system"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		MinioEndpoint:  envOr("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: envOr("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: envOr("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    envOr("MINIO_BUCKET", "feedback-uploads"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    envOr("EMAIL_SENDER", "no-reply@feedback.local"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
