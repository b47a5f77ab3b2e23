package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	FrontendURL string

	// DefaultRegion is the ISO 3166-1 alpha-2 region used when a submitted
	// phone number carries no country code.
	DefaultRegion string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	OCRServiceURL string
	OCRTimeout    time.Duration

	AdminJWTSecret  string
	AdminTokenHours int

	ReportRateLimit  int
	ReportRateWindow time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "scamlens"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		DefaultRegion: getEnv("PHONE_DEFAULT_REGION", "NP"),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_UPLOAD_FOLDER", "scamlens"),

		OCRServiceURL: getEnv("OCR_SERVICE_URL", "http://localhost:8884/ocr"),
		OCRTimeout:    getEnvDuration("OCR_TIMEOUT", 15*time.Second),

		AdminJWTSecret:  getEnv("ADMIN_JWT_SECRET", "secret"),
		AdminTokenHours: getEnvInt("ADMIN_TOKEN_HOURS", 24),

		ReportRateLimit:  getEnvInt("REPORT_RATE_LIMIT", 10),
		ReportRateWindow: getEnvDuration("REPORT_RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default", key)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid value for %s, using default", key)
	}
	return defaultValue
}
