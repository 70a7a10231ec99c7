// Package config loads the fetch pipeline settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when GO_UPC_API_KEY is not set
var ErrMissingAPIKey = errors.New("GO_UPC_API_KEY is not set; add it to your .env file")

// Fetch holds everything cmd/fetch-images needs
type Fetch struct {
	APIKey      string        `validate:"required"`
	BaseURL     string        `validate:"required,url"`
	InputPath   string        `validate:"required"`
	ImageDir    string        `validate:"required"`
	ReportDir   string        `validate:"required"`
	Delay       time.Duration `validate:"gte=0"`
	HTTPTimeout time.Duration `validate:"gt=0"`
}

// LoadEnvFiles reads .env and .env.local into the process environment.
// Variables that are already set win over the files.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// LoadFetch reads the fetch settings, applying defaults for everything but the API key
func LoadFetch() (Fetch, error) {
	cfg := Fetch{
		APIKey:    strings.TrimSpace(os.Getenv("GO_UPC_API_KEY")),
		BaseURL:   getEnv("GO_UPC_BASE_URL", "https://go-upc.com"),
		InputPath: getEnv("PHOTOS_LIST", "PhotosList.xlsx"),
		ImageDir:  getEnv("IMAGE_DIR", "product_images"),
		ReportDir: getEnv("REPORT_DIR", "."),
	}
	if cfg.APIKey == "" {
		return Fetch{}, ErrMissingAPIKey
	}

	var err error
	if cfg.Delay, err = getDuration("REQUEST_DELAY", time.Second); err != nil {
		return Fetch{}, err
	}
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 15*time.Second); err != nil {
		return Fetch{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Fetch{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q (e.g. 500ms, 1s)", key, s)
	}
	return d, nil
}
