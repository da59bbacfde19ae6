package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

type Config struct {
	Rows           int
	Columns        int
	Mode           string
	Difficulty     string
	SearchDepth    int // 0 means derive from Difficulty
	SearchWorkers  int
	AIFirst        bool
	UI             string
	Port           string
	AllowedOrigins []string
	LogVerbose     bool
}

// LoadEnvFiles loads .env from the working directory or its parent, if present.
func LoadEnvFiles() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found")
		}
	}
}

// LoadConfig reads the configuration from the environment. Board dimensions
// must be positive whole numbers or ErrInvalidDimensions is returned.
func LoadConfig() (*Config, error) {
	rows, cols, err := domain.ParseDimensions(
		GetEnv("BOARD_ROWS", strconv.Itoa(domain.DefaultRows)),
		GetEnv("BOARD_COLUMNS", strconv.Itoa(domain.DefaultColumns)),
	)
	if err != nil {
		return nil, err
	}

	var allowedOrigins []string
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	return &Config{
		Rows:           rows,
		Columns:        cols,
		Mode:           GetEnv("GAME_MODE", "pve"),
		Difficulty:     GetEnv("AI_DIFFICULTY", "medium"),
		SearchDepth:    GetEnvAsInt("SEARCH_DEPTH", 0),
		SearchWorkers:  GetEnvAsInt("SEARCH_WORKERS", 1),
		AIFirst:        GetEnvAsBool("AI_FIRST", false),
		UI:             GetEnv("UI", "console"),
		Port:           GetEnv("PORT", "8080"),
		AllowedOrigins: allowedOrigins,
		LogVerbose:     GetEnvAsBool("LOG_VERBOSE", false),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
