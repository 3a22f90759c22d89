package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	SlugIndexName string // GSI1 - slug lookups
	EventBusName  string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// WebSocket configuration
	WebSocketEndpoint string
	ConnectionsTable  string

	// Supabase (identity + asset storage)
	SupabaseURL    string
	SupabaseAPIKey string
	StorageBucket  string

	// Logging
	LogLevel string

	// Authentication
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// Feature flags
	EnableCORS         bool
	EnableConfigHot    bool // reload overrides from ConfigOverridePath on change
	ConfigOverridePath string

	// Rate limiting
	RateLimitPerMinute int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "marketing-pages")),
		SlugIndexName: getEnv("SLUG_INDEX_NAME", "SlugIndex"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "marketing-pages-events"),

		// Lambda configuration
		IsLambda:           getEnvBool("IS_LAMBDA", false),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		// WebSocket configuration
		WebSocketEndpoint: getEnv("WEBSOCKET_ENDPOINT", ""),
		ConnectionsTable:  getEnv("CONNECTIONS_TABLE", "marketing-pages-connections"),

		// Supabase
		SupabaseURL:    getEnv("SUPABASE_URL", ""),
		SupabaseAPIKey: getEnv("SUPABASE_ANON_KEY", ""),
		StorageBucket:  getEnv("STORAGE_BUCKET", "page-assets"),

		// Authentication
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", "marketing-pages"),
		JWTAudience: getEnv("JWT_AUDIENCE", "authenticated"),

		// Logging and features
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		EnableCORS:         getEnvBool("ENABLE_CORS", true),
		EnableConfigHot:    getEnvBool("ENABLE_CONFIG_HOT_RELOAD", false),
		ConfigOverridePath: getEnv("CONFIG_OVERRIDE_PATH", ""),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required")
		}
		if c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required")
		}
	}
	if c.EnableConfigHot && c.ConfigOverridePath == "" {
		return fmt.Errorf("CONFIG_OVERRIDE_PATH is required when hot reload is enabled")
	}

	return nil
}

// ApplyOverrides merges runtime overrides into the config. Zero values
// in the override mean "leave as is".
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.RateLimitPerMinute > 0 {
		c.RateLimitPerMinute = o.RateLimitPerMinute
	}
	if o.EnableCORS != nil {
		c.EnableCORS = *o.EnableCORS
	}
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
