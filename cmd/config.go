package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort string
	Storage  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	FeeSchedule    services.FeeSchedule
	DelayThreshold time.Duration

	KafkaBrokers     string
	KafkaTopic       string
	RabbitMQURL      string
	RabbitMQExchange string
	OutboxBatchSize  int

	LogLevel slog.Level
}

// LoadConfig reads the configuration from the environment. Values from a
// .env file in the working directory are used for variables that are not
// already set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds and validates a Config from getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	defaults := services.DefaultFeeSchedule()
	config := Config{
		HTTPPort:         get("HTTP_PORT", "8080"),
		Storage:          strings.ToLower(get("STORAGE", StoragePostgres)),
		DBHost:           get("DB_HOST", ""),
		DBPort:           get("DB_PORT", "5432"),
		DBUser:           get("DB_USER", ""),
		DBPassword:       getenv("DB_PASSWORD"),
		DBName:           get("DB_NAME", ""),
		DBSslMode:        get("DB_SSLMODE", "disable"),
		JWTSecret:        getenv("JWT_SECRET"),
		KafkaBrokers:     get("KAFKA_BROKERS", ""),
		KafkaTopic:       get("KAFKA_TOPIC", "shipment-events"),
		RabbitMQURL:      get("RABBITMQ_URL", ""),
		RabbitMQExchange: get("RABBITMQ_EXCHANGE", "shipments"),
	}

	var errList []error
	collect := func(err error) {
		if err != nil {
			errList = append(errList, err)
		}
	}

	var err error
	config.FeeSchedule.BaseFee, err = parseDecimal("FEE_BASE", get("FEE_BASE", defaults.BaseFee.String()))
	collect(err)
	config.FeeSchedule.PerKgRate, err = parseDecimal("FEE_PER_KG_RATE", get("FEE_PER_KG_RATE", defaults.PerKgRate.String()))
	collect(err)
	config.FeeSchedule.VolumetricDivisor, err = parseInt("FEE_VOLUMETRIC_DIVISOR",
		get("FEE_VOLUMETRIC_DIVISOR", strconv.Itoa(defaults.VolumetricDivisor)))
	collect(err)
	collect(config.FeeSchedule.Validate())

	config.DelayThreshold, err = time.ParseDuration(get("DELAY_THRESHOLD", services.DefaultDelayThreshold.String()))
	if err != nil {
		collect(errs.NewValueIsInvalidErrorWithCause("DELAY_THRESHOLD", err))
	} else if config.DelayThreshold <= 0 {
		collect(errs.NewValueIsOutOfRangeError("DELAY_THRESHOLD", config.DelayThreshold, "1ns", "unbounded"))
	}

	config.OutboxBatchSize, err = parseInt("OUTBOX_BATCH_SIZE", get("OUTBOX_BATCH_SIZE", "100"))
	collect(err)
	if err == nil && config.OutboxBatchSize <= 0 {
		collect(errs.NewValueIsOutOfRangeError("OUTBOX_BATCH_SIZE", config.OutboxBatchSize, 1, "unbounded"))
	}

	if err = config.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		collect(errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	if config.JWTSecret == "" {
		collect(errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if _, err = strconv.ParseUint(config.HTTPPort, 10, 16); err != nil {
		collect(errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", err))
	}

	switch config.Storage {
	case StorageMemory:
	case StoragePostgres:
		for key, value := range map[string]string{
			"DB_HOST": config.DBHost,
			"DB_USER": config.DBUser,
			"DB_NAME": config.DBName,
		} {
			if value == "" {
				collect(errs.NewValueIsRequiredError(key))
			}
		}
	default:
		collect(errs.NewValueIsInvalidErrorWithCause("STORAGE",
			fmt.Errorf("%q is not one of %q, %q", config.Storage, StoragePostgres, StorageMemory)))
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func parseDecimal(key, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return d, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return n, nil
}
