package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// config holds every setting read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	PublicDir string
	MaxBodyMB int64
	TimeZone  string

	DBDriver       string
	DBDSN          string
	DBMaxOpenConns int
	DBMaxIdleConns int

	PhotoRoot string

	KafkaBrokers []string
	KafkaTopic   string
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, photo storage and Kafka configuration.
// A missing file is not an error; defaults apply.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "0.0.0.0")
	cfg.AppPort = getEnv("APP_PORT", "3000")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.PublicDir = getEnv("APP_PUBLIC_DIR", "public")
	cfg.TimeZone = getEnv("APP_TIMEZONE", "America/Sao_Paulo")
	if cfg.MaxBodyMB, err = strconv.ParseInt(getEnv("APP_MAX_BODY_MB", "500"), 10, 64); err != nil {
		return cfg, fmt.Errorf("APP_MAX_BODY_MB: %w", err)
	}

	// Database config
	cfg.DBDriver = getEnv("DB_DRIVER", "sqlite")
	cfg.DBDSN = getEnv("DB_DSN", "database.db")
	if cfg.DBMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.DBMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, fmt.Errorf("DB_MAX_IDLE_CONNS: %w", err)
	}

	// Photo storage config
	cfg.PhotoRoot = getEnv("PHOTO_ROOT", ".")

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "survey-submissions")

	return cfg, nil
}

// splitList splits a comma separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
