package config

import (
	"os"
)

type Config struct {
	DBDriver string

	// MySQL settings, used when DBDriver is "mysql"
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	// SQLite settings, used when DBDriver is "sqlite"
	DatabasePath string

	JWTSecret string
	Port      string
}

func LoadConfig() *Config {
	// Database configuration
	dbDriver := os.Getenv("DB_DRIVER")
	if dbDriver == "" {
		dbDriver = "sqlite"
	}
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "notes.db"
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		DBDriver:     dbDriver,
		DBUser:       dbUser,
		DBPassword:   dbPassword,
		DBHost:       dbHost,
		DBName:       dbName,
		DatabasePath: dbPath,
		JWTSecret:    jwtSecret,
		Port:         port,
	}
}
