// Package config loads dashboard settings from a YAML file with environment
// overrides and sensible defaults.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "BATCHLENS_CONFIG"
	dbPathEnv     = "BATCHLENS_DB"
	serveAddrEnv  = "BATCHLENS_ADDR"

	defaultConfigPath = "batchlens.yaml"
)

// Config holds high-level settings required across the application.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	DB     DBConfig     `yaml:"db"`
	Search SearchConfig `yaml:"search"`
	View   ViewConfig   `yaml:"view"`
	Serve  ServeConfig  `yaml:"serve"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig names the batch datasets (file path or URL per batch).
type DataConfig struct {
	Batches      map[string]string `yaml:"batches"`
	DefaultBatch string            `yaml:"defaultBatch"`
}

// DBConfig describes the SQLite bookmark store location.
type DBConfig struct {
	Path string `yaml:"path"`
}

// SearchConfig tunes fuzzy matching.
type SearchConfig struct {
	// Threshold is the matching strictness, 0 (strict) to 1 (lax). A nil
	// value means "not configured"; 0 is a valid, strictest setting.
	Threshold *float64 `yaml:"threshold"`
}

// ViewConfig holds presentation defaults.
type ViewConfig struct {
	PageSize int `yaml:"pageSize"`
}

// ServeConfig holds the HTTP API listen address.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls logging verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. A missing config file is not an error; defaults apply.
func Load() Config {
	cfg := defaultConfig()

	path := os.Getenv(configPathEnv)
	if path == "" {
		path = defaultConfigPath
	}

	if raw, err := os.ReadFile(path); err != nil {
		if os.Getenv(configPathEnv) != "" {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		}
	} else {
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// SearchThreshold returns the configured matching strictness, or a negative
// value when unconfigured so the search layer applies its own default.
func (c Config) SearchThreshold() float64 {
	if c.Search.Threshold == nil {
		return -1
	}
	return *c.Search.Threshold
}

// BatchSource resolves a batch name to its dataset source. An empty name
// selects the configured default batch.
func (c Config) BatchSource(name string) (batch, source string, ok bool) {
	if name == "" {
		name = c.Data.DefaultBatch
	}
	source, ok = c.Data.Batches[name]
	return name, source, ok
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(dbPathEnv); v != "" {
		c.DB.Path = v
	}
	if v := os.Getenv(serveAddrEnv); v != "" {
		c.Serve.Addr = v
	}
}

func mergeConfig(base, override Config) Config {
	if len(override.Data.Batches) > 0 {
		base.Data.Batches = override.Data.Batches
	}
	if override.Data.DefaultBatch != "" {
		base.Data.DefaultBatch = override.Data.DefaultBatch
	}

	if override.DB.Path != "" {
		base.DB = override.DB
	}

	if override.Search.Threshold != nil {
		base.Search = override.Search
	}

	if override.View.PageSize > 0 {
		base.View = override.View
	}

	if override.Serve.Addr != "" {
		base.Serve = override.Serve
	}

	if override.Log.Level != "" {
		base.Log = override.Log
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Data: DataConfig{
			Batches:      map[string]string{"w25": "data/companies.json"},
			DefaultBatch: "w25",
		},
		DB:     DBConfig{Path: ""},
		Search: SearchConfig{},
		View:   ViewConfig{PageSize: 20},
		Serve:  ServeConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}
