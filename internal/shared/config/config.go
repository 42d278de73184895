package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig

	// Editor geometry and numbering defaults
	Layout LayoutConfig

	// Layout event publishing
	Kafka KafkaConfig

	// Draft autosave
	Draft DraftConfig

	// Logging
	LogLevel string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string

	// Connection pool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	// Without Redis there is no layout cache, no draft autosave and no rate limiting
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	PoolSize     int
	MinIdleConns int

	// How long a loaded layout stays cached
	LayoutCacheTTL time.Duration
}

// JWTConfig holds JWT configuration. Tokens are issued by the auth service;
// this service only verifies them.
type JWTConfig struct {
	Secret       string
	EditorRoles  []string
	RequireToken bool
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled          bool          `json:"enabled"`
	WindowDuration   time.Duration `json:"window_duration"`
	DefaultRequests  int           `json:"default_requests"`
	PublicRequests   int           `json:"public_requests"`
	EditorRequests   int           `json:"editor_requests"`
	SaveRequests     int           `json:"save_requests"`
	TemplateRequests int           `json:"template_requests"`
	HealthRequests   int           `json:"health_requests"`
	WhitelistedIPs   []string      `json:"whitelisted_ips"`
}

// LayoutConfig holds the editor constants, in layout pixels
type LayoutConfig struct {
	SeatSize        float64
	Padding         float64
	DefaultGap      float64
	ResizeStep      float64
	MinZoneSize     float64
	DuplicateOffset float64
	BucketTolerance float64
	GuideThreshold  float64
	DefaultRows     int
	DefaultCols     int
}

// KafkaConfig holds the layout event producer configuration.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers       []string
	LayoutTopic   string
	TemplateTopic string
	RetryMax      int
	Timeout       time.Duration
}

// DraftConfig holds draft autosave configuration
type DraftConfig struct {
	Enabled bool
	TTL     time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "venueplan_db"),
			User:     getEnv("DB_USER", "venueplan_user"),
			Password: getEnv("DB_PASSWORD", "venueplan_password"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},

		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),

			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 5),

			LayoutCacheTTL: getDurationEnv("REDIS_LAYOUT_CACHE_TTL", 4*time.Hour),
		},

		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", "your-super-secret-jwt-key"),
			EditorRoles:  getStringSliceEnv("JWT_EDITOR_ROLES", []string{"ADMIN", "ORGANIZER"}),
			RequireToken: getBoolEnv("JWT_REQUIRED", true),
		},

		RateLimit: RateLimitConfig{
			Enabled:          getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:   getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests:  getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			PublicRequests:   getIntEnv("RATE_LIMIT_PUBLIC_REQUESTS", 100),
			EditorRequests:   getIntEnv("RATE_LIMIT_EDITOR_REQUESTS", 600),
			SaveRequests:     getIntEnv("RATE_LIMIT_SAVE_REQUESTS", 30),
			TemplateRequests: getIntEnv("RATE_LIMIT_TEMPLATE_REQUESTS", 20),
			HealthRequests:   getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			WhitelistedIPs:   getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		Layout: LayoutConfig{
			SeatSize:        getFloatEnv("LAYOUT_SEAT_SIZE", 24),
			Padding:         getFloatEnv("LAYOUT_PADDING", 12),
			DefaultGap:      getFloatEnv("LAYOUT_DEFAULT_GAP", 4),
			ResizeStep:      getFloatEnv("LAYOUT_RESIZE_STEP", 20),
			MinZoneSize:     getFloatEnv("LAYOUT_MIN_ZONE_SIZE", 40),
			DuplicateOffset: getFloatEnv("LAYOUT_DUPLICATE_OFFSET", 20),
			BucketTolerance: getFloatEnv("LAYOUT_BUCKET_TOLERANCE", 10),
			GuideThreshold:  getFloatEnv("LAYOUT_GUIDE_THRESHOLD", 5),
			DefaultRows:     getIntEnv("LAYOUT_DEFAULT_ROWS", 5),
			DefaultCols:     getIntEnv("LAYOUT_DEFAULT_COLS", 10),
		},

		Kafka: KafkaConfig{
			Brokers:       getStringSliceEnv("KAFKA_BROKERS", []string{}),
			LayoutTopic:   getEnv("KAFKA_LAYOUT_TOPIC", "layout-events"),
			TemplateTopic: getEnv("KAFKA_TEMPLATE_TOPIC", "layout-template-events"),
			RetryMax:      getIntEnv("KAFKA_RETRY_MAX", 3),
			Timeout:       getDurationEnv("KAFKA_TIMEOUT", 10*time.Second),
		},

		Draft: DraftConfig{
			Enabled: getBoolEnv("DRAFT_AUTOSAVE_ENABLED", true),
			TTL:     getDurationEnv("DRAFT_TTL", 7*24*time.Hour),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getFloatEnv gets a float environment variable with a fallback value
func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// KafkaEnabled reports whether layout events are published
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
