package configs

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// setupTestEnv sets up environment variables that override config.yaml
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("API_BASE_URL", "http://localhost:18080")
	os.Setenv("API_TIMEOUT", "0")
	os.Setenv("STORAGE_DRIVER", "memory")
	os.Setenv("STORAGE_PATH", "")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("API_BASE_URL")
	os.Unsetenv("API_TIMEOUT")
	os.Unsetenv("STORAGE_DRIVER")
	os.Unsetenv("STORAGE_PATH")
}

// TestAPIConfigFromEnvironment tests that the API section is overridden by environment variables
func TestAPIConfigFromEnvironment(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("API_TIMEOUT", "15")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.API.BaseURL != "http://localhost:18080" {
		t.Errorf("Expected API.BaseURL to be http://localhost:18080, got %s", cfg.API.BaseURL)
	}

	if cfg.API.Timeout != 15 {
		t.Errorf("Expected API.Timeout to be 15, got %d", cfg.API.Timeout)
	}

	if cfg.App.Port != "9090" {
		t.Errorf("Expected App.Port to be 9090, got %s", cfg.App.Port)
	}
}

// TestEnvFlagOverridesConfigFile tests that the env argument wins over app.env in config.yaml
func TestEnvFlagOverridesConfigFile(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	if GetViper().App.Env != "test" {
		t.Errorf("Expected App.Env to be test, got %s", GetViper().App.Env)
	}
}

// TestStorageConfigAccess tests config access via configs.GetViper().Storage
func TestStorageConfigAccess(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("STORAGE_DRIVER", "sqlite")
	os.Setenv("STORAGE_PATH", "/tmp/textkit.db")

	InitViper(".", "test")

	storage := GetViper().Storage
	if storage.Driver != StorageDriverSQLite {
		t.Errorf("Expected Storage.Driver to be sqlite, got %s", storage.Driver)
	}
	if storage.Path != "/tmp/textkit.db" {
		t.Errorf("Expected Storage.Path to be /tmp/textkit.db, got %s", storage.Path)
	}
}

// TestDefaultsWithoutConfigFile tests that a directory without config.yaml falls back to defaults
func TestDefaultsWithoutConfigFile(t *testing.T) {
	cleanupTestEnv()
	viper.Reset()

	InitViper(t.TempDir(), "")

	cfg := GetViper()
	if cfg.API.BaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default API.BaseURL %s, got %s", DefaultAPIBaseURL, cfg.API.BaseURL)
	}
	if cfg.Telemetry.ServiceName != "textkit-client" {
		t.Errorf("Expected default Telemetry.ServiceName textkit-client, got %s", cfg.Telemetry.ServiceName)
	}
}
