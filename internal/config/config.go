package config

import (
	"crypto/rand"  // Random session secret when none is configured
	"encoding/hex" // Hex encoding for the generated secret
	"os"           // For environment variables
	"strconv"      // For string to int conversion
	"strings"      // Case-insensitive comparisons
	"time"         // Durations

	"github.com/joho/godotenv"   // For loading .env files
	"golang.org/x/crypto/bcrypt" // Default bcrypt cost
)

// Config holds the application configuration
type Config struct {
	DBDriver   string        // Database driver: sqlite or mysql
	DBPath     string        // SQLite database file
	DBUser     string        // Database user (mysql)
	DBPassword string        // Database password (mysql)
	DBHost     string        // Database host (mysql)
	DBPort     string        // Database port (mysql)
	DBName     string        // Database name (mysql)
	DBDebug    bool          // Log every SQL statement
	JWTSecret  string        // Session token signing key
	SessionTTL time.Duration // Session token lifetime
	BcryptCost int           // Cost factor for secret hashing
	RedisAddr  string        // Redis server address, empty disables cache and distributed lock
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	CacheTTL   time.Duration // Room listing cache lifetime
	LockTTL    time.Duration // Expiry of a redis room lock
	AMQPURL    string        // RabbitMQ URL, empty disables events
	EventQueue string        // Queue receiving reservation events
	ReportDir  string        // Directory for spreadsheet exports
	LogLevel   string        // logrus level name
	LogFile    string        // Log destination, empty means stderr

	SuperManager SuperManager // Non-interactive bootstrap manager
}

// SuperManager carries the optional SUPER_MANAGER_* variables
type SuperManager struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Secret    string
}

// Complete reports whether every bootstrap field was provided
func (s SuperManager) Complete() bool {
	return s.FirstName != "" && s.LastName != "" && s.Phone != "" && s.Email != "" && s.Secret != ""
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),      // Database driver
		DBPath:     getEnv("DB_PATH", "hotel_reservation.db"),           // SQLite file
		DBUser:     os.Getenv("DB_USER"),                                // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),                            // Database password
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),                      // Database host
		DBPort:     getEnv("DB_PORT", "3306"),                           // Database port
		DBName:     getEnv("DB_NAME", "hotel_reservation"),              // Database name
		DBDebug:    os.Getenv("DB_DEBUG") == "true",                     // SQL logging
		JWTSecret:  getEnv("JWT_SECRET", randomSecret()),                // Session signing key
		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_MIN", 480)) * time.Minute,
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost), // Hash cost
		RedisAddr:  os.Getenv("REDIS_ADDR"),                      // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),                      // Redis password
		RedisDB:    redisDB,                                      // Redis database number
		CacheTTL:   getEnvDuration("CACHE_TTL", 60*time.Second),  // Listing cache TTL
		LockTTL:    getEnvDuration("LOCK_TTL", 30*time.Second),   // Room lock expiry
		AMQPURL:    os.Getenv("AMQP_URL"),                        // Broker URL
		EventQueue: getEnv("EVENTS_QUEUE", "hotel.reservations"), // Event queue name
		ReportDir:  getEnv("REPORT_DIR", "."),                    // Export directory
		LogLevel:   getEnv("LOG_LEVEL", "warn"),                  // Log level
		LogFile:    os.Getenv("LOG_FILE"),                        // Log file
		SuperManager: SuperManager{
			FirstName: os.Getenv("SUPER_MANAGER_FIRST_NAME"),
			LastName:  os.Getenv("SUPER_MANAGER_LAST_NAME"),
			Phone:     os.Getenv("SUPER_MANAGER_PHONE"),
			Email:     os.Getenv("SUPER_MANAGER_EMAIL"),
			Secret:    os.Getenv("SUPER_MANAGER_SECRET"),
		},
	}
}

// DSN builds the MySQL Data Source Name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&charset=utf8mb4&loc=UTC"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "hotel-reservation-session"
	}
	return hex.EncodeToString(b)
}
