package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Currency     string
}

type ObservabilityConfig struct {
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

type Config struct {
	AppEnv          string
	AppPort         string
	Redis           RedisConfig
	Amadeus         AmadeusConfig
	Observability   ObservabilityConfig
	CacheTTLMinutes int
	BookingTTLHours int
	SnowflakeNodeID int64
}

func Load() (*Config, error) {
	var errs []error

	// Missing .env is fine in environments configured externally.
	_ = godotenv.Load()

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := envOrDefault("APP_PORT", "8080")

	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	amadeusBaseURL := mustEnv("AMADEUS_BASE_URL", &errs)
	amadeusClientID := mustEnv("AMADEUS_CLIENT_ID", &errs)
	amadeusClientSecret := mustEnv("AMADEUS_CLIENT_SECRET", &errs)
	amadeusCurrency := envOrDefault("AMADEUS_CURRENCY", "BRL")

	cacheTTLMinutes := intEnv("CACHE_TTL_MINUTES", 5, &errs)
	bookingTTLHours := intEnv("BOOKING_TTL_HOURS", 24, &errs)
	nodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)

	serviceName := envOrDefault("OTEL_SERVICE_NAME", "flightdeck")
	otlpEndpoint := envOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		Redis: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		Amadeus: AmadeusConfig{
			BaseURL:      amadeusBaseURL,
			ClientID:     amadeusClientID,
			ClientSecret: amadeusClientSecret,
			Currency:     amadeusCurrency,
		},
		Observability: ObservabilityConfig{
			ServiceName:  serviceName,
			Environment:  appEnv,
			OTLPEndpoint: otlpEndpoint,
		},
		CacheTTLMinutes: cacheTTLMinutes,
		BookingTTLHours: bookingTTLHours,
		SnowflakeNodeID: int64(nodeID),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return parsed
}
