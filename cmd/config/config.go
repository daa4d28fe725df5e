package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Directory   DirectoryConfig
	Auth        AuthConfig
	Chatbot     ChatbotConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// DirectoryConfig points at the external administrative-address directory.
// Timeout bounds every outbound lookup; a timed-out lookup is treated as
// "not found" by the resolver, never as a fatal error.
type DirectoryConfig struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
}

type AuthConfig struct {
	JWTSecret      string
	SessionExpTime time.Duration
}

// ChatbotConfig holds the shared secret the chatbot channel presents in a
// header or query parameter.
type ChatbotConfig struct {
	SecretKey string
}

// InternalConfig authenticates service-to-service callbacks. BaseURL is where
// the order_created consumer posts kitchen notifications.
type InternalConfig struct {
	APIKey  string
	BaseURL string
}

// Load reads configuration from environment variables, with a .env file as
// fallback for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "restaurant"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Directory: DirectoryConfig{
			BaseURL:  getEnv("DIRECTORY_BASE_URL", "https://provinces.example.vn/api"),
			Timeout:  getEnvDuration("DIRECTORY_TIMEOUT", 5*time.Second),
			PageSize: getEnvInt("DIRECTORY_PAGE_SIZE", 100),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			SessionExpTime: getEnvDuration("SESSION_EXP_TIME", 24*time.Hour),
		},
		Chatbot: ChatbotConfig{
			SecretKey: getEnv("CHATBOT_SECRET_KEY", ""),
		},
		Internal: InternalConfig{
			APIKey:  getEnv("INTERNAL_API_KEY", ""),
			BaseURL: getEnv("INTERNAL_BASE_URL", "http://localhost:8080"),
		},
	}
}

// GetDSN builds the MySQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
