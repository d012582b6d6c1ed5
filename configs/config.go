package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBSource      string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	BaseURL       string
	UploadDir     string
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment and defaults")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("warning: JWT_SECRET not set, using an insecure placeholder")
		secret = "insecure-placeholder-secret"
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "coffee.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     secret,
		JWTTTL:        time.Duration(24) * time.Hour,
		BaseURL:       getEnv("BASE_URL", "http://localhost:8000"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@woinucoffee.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
