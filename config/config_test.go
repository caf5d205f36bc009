package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv(FormatEnvVar)
	os.Unsetenv(CaptureEnvVar)
	os.Unsetenv(CopyEnvVar)
	os.Unsetenv("ENABLE_FILE_LOGGING")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Format != DefaultFormat {
		t.Errorf("Expected Format to be %q, got %q", DefaultFormat, cfg.Format)
	}
	if cfg.CaptureFile != "" {
		t.Errorf("Expected CaptureFile to be empty, got %q", cfg.CaptureFile)
	}
	if cfg.CopyToClipboard {
		t.Error("Expected CopyToClipboard to be false by default")
	}
	if cfg.EnableFileLogging {
		t.Error("Expected EnableFileLogging to be false by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	os.Setenv(FormatEnvVar, "%x %y")
	os.Setenv(CaptureEnvVar, "region.png")
	os.Setenv(CopyEnvVar, "true")
	os.Setenv("ENABLE_FILE_LOGGING", "TRUE")

	defer func() {
		os.Unsetenv(FormatEnvVar)
		os.Unsetenv(CaptureEnvVar)
		os.Unsetenv(CopyEnvVar)
		os.Unsetenv("ENABLE_FILE_LOGGING")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Format != "%x %y" {
		t.Errorf("Expected Format to be '%%x %%y', got %q", cfg.Format)
	}
	if cfg.CaptureFile != "region.png" {
		t.Errorf("Expected CaptureFile to be 'region.png', got %q", cfg.CaptureFile)
	}
	if !cfg.CopyToClipboard {
		t.Error("Expected CopyToClipboard to be true")
	}
	if !cfg.EnableFileLogging {
		t.Error("Expected EnableFileLogging to be true (case-insensitive)")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := dir + "/xrectsel.env"
	if err := os.WriteFile(envFile, []byte("XRECTSEL_FORMAT=%w %h\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	os.Unsetenv(FormatEnvVar)
	os.Setenv(EnvFileVar, envFile)
	defer func() {
		os.Unsetenv(EnvFileVar)
		os.Unsetenv(FormatEnvVar)
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Format != "%w %h" {
		t.Errorf("Expected Format from env file to be '%%w %%h', got %q", cfg.Format)
	}
}
