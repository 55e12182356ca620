package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	LogLevel         string
	CORSOrigin       string
	MongoDBConfig    MongoDBConfig
	CloudinaryConfig CloudinaryConfig
	UploadConfig     UploadConfig
	KafkaConfig      KafkaConfig
	TracingConfig    TracingConfig
	AdminConfig      AdminConfig
	ReconcileConfig  ReconcileConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8000"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:3000"),
		MongoDBConfig: MongoDBConfig{
			URI:    getEnv("MONGODB_URI", "mongodb://database:27017/mydatabase"),
			DBName: os.Getenv("DB_NAME"),
		},
		CloudinaryConfig: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		UploadConfig: UploadConfig{
			InMemory: strings.EqualFold(os.Getenv("MEMORY"), "true"),
			TempDir:  getEnv("UPLOAD_TEMP_DIR", filepath.Join("public", "temp")),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "content-events"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		AdminConfig: AdminConfig{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		ReconcileConfig: ReconcileConfig{
			Interval: 10 * time.Minute,
		},
	}

	if interval, err := time.ParseDuration(os.Getenv("RECONCILE_INTERVAL")); err == nil && interval > 0 {
		conf.ReconcileConfig.Interval = interval
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
