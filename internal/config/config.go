package config

import (
	"log"
	"os"
)

// AppConfig holds every process-level setting, read from the environment
// once at startup and handed to components through fx.
type AppConfig struct {
	Port          string
	MongoURI      string
	DatabaseName  string
	JWTSecret     string
	UploadDir     string
	AllowOrigin   string
	AdminEmail    string
	AdminPassword string
	Environment   string
}

func NewAppConfig() *AppConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}
	return &AppConfig{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      uri,
		DatabaseName:  getEnv("MONGO_DB", "campus_portal"),
		JWTSecret:     secret,
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		AllowOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5173"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@gmail.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		Environment:   getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
