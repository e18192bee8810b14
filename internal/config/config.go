package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	App    AppConfig
	Redis  RedisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Host            string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level     string
	Format    string
	LogToFile bool
	Dir       string
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Environment string
	Name        string
	Version     string
}

// RedisConfig holds the change-event feed configuration. An empty Addr
// disables the feed.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
	Timeout  time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file based on environment
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	envFile := fmt.Sprintf("%s.env", env)
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envFile, err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 5000),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Logger: LoggerConfig{
			Level:     getEnv("LOG_LEVEL", "info"),
			Format:    getEnv("LOG_FORMAT", "json"),
			LogToFile: getEnvAsBool("LOG_TO_FILE", false),
			Dir:       getEnv("LOG_DIR", ".logs/"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "dev"),
			Name:        getEnv("APP_NAME", "hbnb-api"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Channel:  getEnv("REDIS_CHANNEL", "hbnb:events"),
			Timeout:  getEnvAsDuration("REDIS_TIMEOUT", 500*time.Millisecond),
		},
	}

	// Validate required configuration
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port number")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative")
	}
	if c.Redis.Timeout <= 0 {
		return fmt.Errorf("REDIS_TIMEOUT must be positive")
	}
	if c.Redis.Addr != "" && c.Redis.Channel == "" {
		return fmt.Errorf("REDIS_CHANNEL is required when REDIS_ADDR is set")
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	if !contains(validLogLevels, c.Logger.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: %v", validLogLevels)
	}

	validLogFormats := []string{"json", "console"}
	if !contains(validLogFormats, c.Logger.Format) {
		return fmt.Errorf("LOG_FORMAT must be one of: %v", validLogFormats)
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "dev" || c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "prod" || c.App.Environment == "production"
}

// EventsEnabled reports whether change events go to Redis
func (c *Config) EventsEnabled() bool {
	return c.Redis.Addr != ""
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Helper functions

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// MustLoad loads configuration and panics on error
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

// Print prints the configuration (without sensitive data)
func (c *Config) Print() {
	fmt.Printf("Application Configuration:\n")
	fmt.Printf("  Environment: %s\n", c.App.Environment)
	fmt.Printf("  Name: %s\n", c.App.Name)
	fmt.Printf("  Version: %s\n", c.App.Version)
	fmt.Printf("Server Configuration:\n")
	fmt.Printf("  Address: %s\n", c.GetServerAddress())
	fmt.Printf("  Read Timeout: %s\n", c.Server.ReadTimeout)
	fmt.Printf("  Write Timeout: %s\n", c.Server.WriteTimeout)
	fmt.Printf("Logger Configuration:\n")
	fmt.Printf("  Level: %s\n", c.Logger.Level)
	fmt.Printf("  Format: %s\n", c.Logger.Format)
	fmt.Printf("Events Configuration:\n")
	if c.EventsEnabled() {
		fmt.Printf("  Redis: %s (db %d)\n", c.Redis.Addr, c.Redis.DB)
		fmt.Printf("  Channel: %s\n", c.Redis.Channel)
	} else {
		fmt.Printf("  Disabled\n")
	}
}
