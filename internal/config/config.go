package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store drivers.
const (
	StoreDriverMemory = "memory"
	StoreDriverMongo  = "mongo"
)

// Email providers.
const (
	EmailProviderLog = "log"
	EmailProviderSES = "ses"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `json:"server"`
	Store   StoreConfig   `json:"store"`
	Email   EmailConfig   `json:"email"`
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

// StoreConfig selects and parameterizes the entity store backend.
type StoreConfig struct {
	Driver   string `json:"driver"` // "memory" or "mongo"
	URI      string `json:"uri"`
	Database string `json:"database"`
	Seed     bool   `json:"seed"` // load the demo dataset on startup (memory driver)
}

// EmailConfig selects the notification transport.
type EmailConfig struct {
	Provider        string `json:"provider"` // "log" or "ses"
	From            string `json:"from"`
	Region          string `json:"region"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Store: StoreConfig{
			Driver:   StoreDriverMemory,
			URI:      "mongodb://localhost:27017",
			Database: "bluecarbon_marketplace",
			Seed:     true,
		},
		Email: EmailConfig{
			Provider: EmailProviderLog,
			From:     "certificates@bluecarbon.example",
			Region:   "ap-south-1",
		},
		Logging: LoggingConfig{
			Level: "debug",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	if config.Store.Driver != StoreDriverMemory && config.Store.Driver != StoreDriverMongo {
		return nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}
	if config.Email.Provider != EmailProviderLog && config.Email.Provider != EmailProviderSES {
		return nil, fmt.Errorf("unknown email provider %q", config.Email.Provider)
	}

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if driver := os.Getenv("STORE_DRIVER"); driver != "" {
		config.Store.Driver = driver
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		config.Store.URI = uri
	}
	if db := os.Getenv("MONGO_DATABASE"); db != "" {
		config.Store.Database = db
	}
	if seed := os.Getenv("SEED_DEMO_DATA"); seed != "" {
		config.Store.Seed = seed == "true" || seed == "1"
	}
	if provider := os.Getenv("EMAIL_PROVIDER"); provider != "" {
		config.Email.Provider = provider
	}
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		config.Email.From = from
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		config.Email.Region = region
	}
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		config.Email.AccessKeyID = key
	}
	if secret := os.Getenv("AWS_SECRET_ACCESS_KEY"); secret != "" {
		config.Email.SecretAccessKey = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
