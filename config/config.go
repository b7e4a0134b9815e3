package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	UsersFile  string
	AlertsFile string

	AWSRegion   string
	SESEmail    string
	MailEnabled bool
}

// Load reads .env (optional) and the environment. JWT_SECRET stays in the
// environment itself; the token helpers and middleware read it directly.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := Config{
		Port:        getenv("PORT", "5000"),
		UsersFile:   getenv("USERS_FILE", "users.json"),
		AlertsFile:  getenv("ALERTS_FILE", "alerts.json"),
		AWSRegion:   getenv("AWS_REGION", "us-east-1"),
		SESEmail:    os.Getenv("SES_EMAIL"),
		MailEnabled: os.Getenv("MAIL_ENABLED") == "true",
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Printf("WARNING: JWT_SECRET not set, sessions will not validate")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
