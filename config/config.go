package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	JWTSecret  string
	Port       string
	Env        string
	LogDir     string
	LogDebug   bool
	CORSOrigin string

	RazorpayKeyID     string
	RazorpayKeySecret string
}

// LoadConfig loads configuration from a .env file, if present, and the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		LogDir:     getEnv("LOG_DIR", "logs"),
		LogDebug:   os.Getenv("LOG_DEBUG") == "true",
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}

	return config, nil
}

// Validate reports missing settings the server cannot start without
func (c *Config) Validate() error {
	var missing []error
	if c.JWTSecret == "" {
		missing = append(missing, errors.New("JWT_SECRET is required"))
	}
	if c.RazorpayKeySecret == "" {
		missing = append(missing, errors.New("RAZORPAY_KEY_SECRET is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		missing = append(missing, errors.New("DB_HOST and DB_NAME are required"))
	}
	return errors.Join(missing...)
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the Postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
