package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Data      DataConfig      `yaml:"data"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DataConfig contains local persistence settings
type DataConfig struct {
	// SnapshotPath is the JSON file holding the full application snapshot.
	SnapshotPath string `yaml:"snapshot_path"`
	// UploadDir stores uploaded document blobs (contracts, licenses, ...).
	UploadDir string `yaml:"upload_dir"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ScanDueReminders   string `yaml:"scan_due_reminders"`
	CheckpointSnapshot string `yaml:"checkpoint_snapshot"`
}

// Load reads configuration from a YAML file. A missing file is not an error;
// defaults plus environment overrides apply.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("SNAPSHOT_PATH"); val != "" {
		c.Data.SnapshotPath = val
	}
	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Data.UploadDir = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Data.SnapshotPath == "" {
		c.Data.SnapshotPath = "data/filo.json"
	}
	if c.Data.UploadDir == "" {
		c.Data.UploadDir = "data/uploads"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.ScanDueReminders == "" {
		c.Scheduler.ScanDueReminders = "0 0 8 * * *" // 8 AM daily
	}
	if c.Scheduler.CheckpointSnapshot == "" {
		c.Scheduler.CheckpointSnapshot = "0 */30 * * * *" // every 30 minutes
	}

	return nil
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
