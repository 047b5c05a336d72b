package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/espalier-ui/espalier/pkg/transform"
)

// DefaultConfigFile is probed when no --config flag is given.
const DefaultConfigFile = "espalier.yaml"

// RedisConfig configures the optional shared transform cache.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	Prefix   string        `mapstructure:"prefix"`
}

// AppConfig is the full deployment configuration: the transformation
// vocabulary plus server wiring.
type AppConfig struct {
	Listen    string           `mapstructure:"listen"`
	LogJSON   bool             `mapstructure:"log_json"`
	CacheDir  string           `mapstructure:"cache_dir"`
	Redis     RedisConfig      `mapstructure:"redis"`
	Transform transform.Config `mapstructure:"transform"`
}

// DefaultAppConfig returns the stock configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Listen:    ":8080",
		Transform: transform.DefaultConfig(),
	}
}

// LoadConfig reads path and overlays it onto the defaults. An empty path
// probes DefaultConfigFile and falls back to pure defaults when the file does
// not exist; an explicit path that cannot be read is an error.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return cfg, fmt.Errorf("build config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}
