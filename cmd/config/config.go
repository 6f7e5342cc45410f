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
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Payment     PaymentConfig
	Storage     StorageConfig
	Voting      VotingConfig
	Audit       AuditConfig
}

type ServerConfig struct {
	Port         string
	BaseURL      string
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
	AutoMigrate     bool
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

type AuthConfig struct {
	JWTSecret         string
	JWTExpiration     time.Duration
	SessionExpTime    time.Duration
	InternalAPIKey    string
	AdminUser         string
	AdminPasswordHash string
}

type PaymentConfig struct {
	PaystackSecretKey string
	PaystackBaseURL   string
	EmailDomain       string
	AttemptExpiration time.Duration
	HTTPTimeout       time.Duration
}

type StorageConfig struct {
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	URLExpiration  time.Duration
}

type VotingConfig struct {
	ConfigCacheTTL time.Duration
	SelectionTTL   time.Duration
	IPLookupURL    string
	// TrustProxyHeaders honours X-Forwarded-For and X-Real-IP; enable only
	// behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

type AuditConfig struct {
	Enabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			BaseURL:      getEnv("SERVER_BASE_URL", "http://localhost:8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "e_voting"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:     getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime:    getDuration("SESSION_EXPIRATION", 24*time.Hour),
			InternalAPIKey:    getEnv("INTERNAL_API_KEY", ""),
			AdminUser:         getEnv("ADMIN_USER", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Payment: PaymentConfig{
			PaystackSecretKey: getEnv("PAYSTACK_SECRET_KEY", ""),
			PaystackBaseURL:   getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			EmailDomain:       getEnv("PAYMENT_EMAIL_DOMAIN", "votingapp.com"),
			AttemptExpiration: getDuration("PAYMENT_ATTEMPT_EXPIRATION", 15*time.Minute),
			HTTPTimeout:       getDuration("PAYMENT_HTTP_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			S3Region:       getEnv("S3_REGION", "us-east-1"),
			S3BaseEndpoint: getEnv("S3_BASE_ENDPOINT", ""),
			S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
			S3Bucket:       getEnv("S3_BUCKET", ""),
			URLExpiration:  getDuration("S3_URL_EXPIRATION", time.Hour),
		},
		Voting: VotingConfig{
			ConfigCacheTTL:    getDuration("CONFIG_CACHE_TTL", 5*time.Minute),
			SelectionTTL:      getDuration("SELECTION_TTL", 24*time.Hour),
			IPLookupURL:       getEnv("IP_LOOKUP_URL", ""),
			TrustProxyHeaders: getBool("TRUST_PROXY_HEADERS", false),
		},
		Audit: AuditConfig{
			Enabled: getBool("AUDIT_ENABLED", false),
		},
	}
}

// GetDSN returns the MySQL data source name. Affected row counts report
// matched rows so an UPDATE writing an unchanged value still counts.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&multiStatements=true&clientFoundRows=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
