package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress  = ":3000"
	defaultFrontendURL = "http://localhost:5173"
	defaultMigrations  = "migrations"
	defaultLogLevel    = "info"
	defaultEnv         = EnvLocal
	defaultSessionTTL  = 168 // hours
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Logger  Logger
	Session Session
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
	// FrontendURL is the single origin allowed by CORS and the trusted
	// Origin for auth mutations.
	FrontendURL string
}

type Logger struct {
	LogLevel string
}

type Session struct {
	TTL time.Duration
}

// MustLoad reads configuration from the environment, with an optional .env
// file for local runs. DATABASE_URI is the only setting without a default.
func MustLoad() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("FRONTEND_URL", defaultFrontendURL)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SESSION_TTL_HOURS", defaultSessionTTL)

	return &Config{
		Env: viper.GetString("APP_ENV"),
		DB: DB{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: Server{
			RunAddress:  viper.GetString("RUN_ADDRESS"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		Logger: Logger{LogLevel: viper.GetString("LOG_LEVEL")},
		Session: Session{
			TTL: time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
	}
}
