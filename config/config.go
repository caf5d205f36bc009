package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultFormat matches the historical xrectsel output: WxH+X+Y.
	DefaultFormat = "%wx%h+%x+%y\n"

	FormatEnvVar  = "XRECTSEL_FORMAT"
	CaptureEnvVar = "XRECTSEL_CAPTURE"
	CopyEnvVar    = "XRECTSEL_COPY"
	EnvFileVar    = "XRECTSEL_ENV"
)

type Config struct {
	// Format is the template used when no positional argument is given.
	Format string
	// CaptureFile, when set, names a PNG the selected region is saved to.
	CaptureFile string
	// CopyToClipboard also places the rendered text on the clipboard.
	CopyToClipboard bool
	// EnableFileLogging turns on the debug log file sink.
	EnableFileLogging bool
}

// Load resolves the configuration from the environment, first merging in an
// optional .env file found next to the executable or named by XRECTSEL_ENV.
// Process environment variables win over .env values.
func Load() (*Config, error) {
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Format:            getEnvWithDefault(FormatEnvVar, DefaultFormat),
		CaptureFile:       os.Getenv(CaptureEnvVar),
		CopyToClipboard:   boolEnv(CopyEnvVar),
		EnableFileLogging: boolEnv("ENABLE_FILE_LOGGING"),
	}
	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(EnvFileVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func boolEnv(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
