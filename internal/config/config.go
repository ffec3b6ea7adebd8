package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppID        string
	WindowWidth  int
	WindowHeight int
	LogDirectory string // empty disables log files
	Debug        bool
	ExportName   string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppID:        getEnv("MEME_APP_ID", "io.memeboard.app"),
		WindowWidth:  getEnvAsInt("MEME_WINDOW_WIDTH", 1024),
		WindowHeight: getEnvAsInt("MEME_WINDOW_HEIGHT", 768),
		LogDirectory: getEnv("MEME_LOG_DIR", ""),
		Debug:        getEnvAsBool("MEME_DEBUG", false),
		ExportName:   getEnv("MEME_EXPORT_NAME", "meme.png"),
	}
}

// PDFName derives the PDF export name from the PNG one.
func (c *Config) PDFName() string {
	name := strings.TrimSuffix(c.ExportName, ".png")
	return name + ".pdf"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
