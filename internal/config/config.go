package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort  string
	UploadDir string

	ListingTTL         time.Duration
	FallbackDelay      time.Duration
	FallbackRadiusM    float64
	SweepInterval      time.Duration
	ModerationInterval time.Duration

	AutoBanMinRatings      int
	AutoBanRatingThreshold float64

	KafkaBrokers        []string
	NotificationsTopic  string
	OutboxPollInterval  time.Duration
	OutboxBatchSize     int
	OutboxMaxAttempts   int
	NotificationTimeout time.Duration
}

// Load reads the environment (after a best-effort .env load) and applies
// defaults for anything unset.
func Load() Config {
	loadEnv()

	return Config{
		HTTPPort:  getString("HTTP_PORT", "9000"),
		UploadDir: getString("UPLOAD_DIR", "uploads"),

		ListingTTL:         time.Duration(getInt("LISTING_TTL_MINUTES", 120)) * time.Minute,
		FallbackDelay:      time.Duration(getInt("FALLBACK_DELAY_MINUTES", 30)) * time.Minute,
		FallbackRadiusM:    getFloat("FALLBACK_RADIUS_METERS", 50000),
		SweepInterval:      time.Duration(getInt("SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
		ModerationInterval: time.Duration(getInt("MODERATION_INTERVAL_MINUTES", 1440)) * time.Minute,

		AutoBanMinRatings:      getInt("AUTOBAN_MIN_RATINGS", 5),
		AutoBanRatingThreshold: getFloat("AUTOBAN_RATING_THRESHOLD", 2.0),

		KafkaBrokers:        []string{getString("KAFKA_BROKERS", "localhost:9092")},
		NotificationsTopic:  getString("KAFKA_NOTIFICATIONS_TOPIC", "notifications"),
		OutboxPollInterval:  time.Duration(getInt("OUTBOX_POLL_INTERVAL_SECONDS", 2)) * time.Second,
		OutboxBatchSize:     getInt("OUTBOX_BATCH_SIZE", 50),
		OutboxMaxAttempts:   getInt("OUTBOX_MAX_ATTEMPTS", 5),
		NotificationTimeout: time.Duration(getInt("NOTIFICATION_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

// DatabaseDSN builds the postgres connection string from the environment.
func DatabaseDSN() string {
	host := getString("DB_HOST", "localhost")
	port := getInt("DB_PORT", 5432)
	user := getString("POSTGRES_USER", "postgres")
	password := getString("POSTGRES_PASSWORD", "postgres")
	dbname := getString("POSTGRES_DB", "mealbridge")

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbname)
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("config: cannot resolve working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid integer for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid float for %s: %q, using default %v", key, v, def)
		return def
	}
	return f
}
