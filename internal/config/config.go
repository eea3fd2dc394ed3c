// Package config loads application configuration from a config.toml next to
// the executable, with defaults and environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Report ReportConfig `toml:"report"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds storage paths and cache sizing.
type DataConfig struct {
	DataDir            string `toml:"data_dir"`
	ReferenceCacheSize int    `toml:"reference_cache_size"`
}

// ReportConfig holds reporting behavior knobs.
type ReportConfig struct {
	// DefaultYear applies when an uploaded filename carries no year. Zero
	// means the current year.
	DefaultYear int `toml:"default_year"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8117,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:            "data",
			ReferenceCacheSize: 32,
		},
		Report: ReportConfig{
			DefaultYear: 0,
		},
	}
}

// GetExeDir returns the directory holding the executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml beside the executable. A missing file means
// defaults; environment variables override both.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	applyEnv(config)
	return config, nil
}

func applyEnv(config *AppConfig) {
	if v := os.Getenv("SILAPOR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("SILAPOR_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("SILAPOR_DEV_MODE"); v != "" {
		config.Server.DevMode = v == "1" || v == "true"
	}
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir creates the data directory beside the executable and returns
// its path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DatabasePath is the location of the metadata database inside the data
// directory.
func DatabasePath(dataDir string) string {
	return filepath.Join(dataDir, "silapor.db")
}
