package config

import (
	"os"
	"strconv"

	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// Storage backend selectors. Dual tries MongoDB first and falls back to the
// flat-file store per call.
const (
	BackendMongo = "mongo"
	BackendFile  = "file"
	BackendDual  = "dual"
)

// Config holds application configuration values.
type Config struct {
	Environment             string
	Port                    string
	MongoURI                string
	MongoDBName             string
	StorageBackend          string
	DataDir                 string
	UploadsDir              string
	JWTSecret               string
	AIServiceAPIKey         string
	AIModel                 string
	AITemperature           float64
	PhotoServiceAccessKey   string
	FirebaseCredentialsPath string
	SeedKey                 string
	RedisURL                string
	DevAuthBypass           bool
}

// NewConfig creates a new Config instance, loading values from environment variables.
// Secrets (JWT secret, seed key) have no compiled-in defaults.
func NewConfig() *Config {
	return &Config{
		Environment:             getEnv("APP_ENV", "development"),
		Port:                    getEnv("PORT", "8080"),
		MongoURI:                getEnv("MONGODB_URI", ""),
		MongoDBName:             getEnv("MONGODB_DB_NAME", "brandkit"),
		StorageBackend:          getEnv("STORAGE_BACKEND", BackendDual),
		DataDir:                 getEnv("DATA_DIR", "data"),
		UploadsDir:              getEnv("UPLOADS_DIR", "uploads"),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		AIServiceAPIKey:         getEnv("OPENAI_API_KEY", ""),
		AIModel:                 getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		AITemperature:           getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
		PhotoServiceAccessKey:   getEnv("UNSPLASH_ACCESS_KEY", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		SeedKey:                 getEnv("SEED_KEY", ""),
		RedisURL:                getEnv("REDIS_URL", ""),
		DevAuthBypass:           getEnvAsBool("DEV_AUTH_BYPASS", false),
	}
}

// check if Config implements the IConfigProvider
var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetEnvironment returns the runtime environment flag.
func (c *Config) GetEnvironment() string {
	return c.Environment
}

// IsProduction reports whether the runtime is flagged production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetDataDir returns the flat-file store root directory.
func (c *Config) GetDataDir() string {
	return c.DataDir
}

// GetUploadsDir returns the logo upload directory.
func (c *Config) GetUploadsDir() string {
	return c.UploadsDir
}

// GetSeedKey returns the seed endpoint secret. Empty means seeding is disabled.
func (c *Config) GetSeedKey() string {
	return c.SeedKey
}

// GetAIServiceAPIKey returns the chat-completion provider key.
func (c *Config) GetAIServiceAPIKey() string {
	return c.AIServiceAPIKey
}

// GetAIModel returns the chat-completion model name.
func (c *Config) GetAIModel() string {
	return c.AIModel
}

// GetAITemperature returns the chat-completion sampling temperature.
func (c *Config) GetAITemperature() float64 {
	return c.AITemperature
}

// GetPhotoServiceAccessKey returns the stock-photo provider key.
func (c *Config) GetPhotoServiceAccessKey() string {
	return c.PhotoServiceAccessKey
}

// GetDevAuthBypass reports whether the development auth stub is enabled.
func (c *Config) GetDevAuthBypass() bool {
	return c.DevAuthBypass
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}
	return fallback
}
