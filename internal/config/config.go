package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/mangler/internal/translator"
)

const EnvPrefix = "MANGLER"

type Config struct {
	Backend  string    `mapstructure:"backend"`
	Rounds   int       `mapstructure:"rounds"`
	DelayMS  int       `mapstructure:"delay_ms"`
	Bank     []string  `mapstructure:"bank"`
	Attempts int       `mapstructure:"attempts"`
	Log      LogConfig `mapstructure:"log"`

	Baidu    translator.ServiceConfig `mapstructure:"baidu"`
	Google   translator.ServiceConfig `mapstructure:"google"`
	Youdao   translator.ServiceConfig `mapstructure:"youdao"`
	MyMemory translator.ServiceConfig `mapstructure:"mymemory"`
	Ollama   translator.ServiceConfig `mapstructure:"ollama"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var serviceKeys = []string{"api_key", "secret", "app_id", "credentials", "email", "model", "base_url"}

// Load reads configuration from defaults, an optional YAML file, MANGLER_*
// environment variables and whatever bind attaches (usually command flags),
// in increasing order of precedence. An empty configPath searches ./mangler.yaml
// and $HOME/.mangler/mangler.yaml; a missing file is not an error.
func Load(configPath string, bind func(v *viper.Viper) error) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mangler")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.mangler")
	}

	v.SetDefault("backend", "google")
	v.SetDefault("rounds", 20)
	v.SetDefault("delay_ms", 1000)
	v.SetDefault("bank", []string{})
	v.SetDefault("attempts", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	// Every key needs a default for AutomaticEnv to reach it during Unmarshal.
	for _, name := range translator.Names() {
		for _, key := range serviceKeys {
			v.SetDefault(name+"."+key, "")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if bind != nil {
		if err := bind(v); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Bank = NormalizeBank(cfg.Bank)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(translator.Names(), c.Backend) {
		return fmt.Errorf("unknown backend %q (available: %s)", c.Backend, strings.Join(translator.Names(), ", "))
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be >= 1")
	}
	if c.DelayMS < 0 {
		return fmt.Errorf("delay_ms must be >= 0")
	}
	if c.Attempts < 1 {
		return fmt.Errorf("attempts must be >= 1")
	}
	return nil
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Service returns the credentials and endpoint settings for a backend.
func (c *Config) Service(name string) translator.ServiceConfig {
	switch name {
	case "baidu":
		return c.Baidu
	case "google":
		return c.Google
	case "youdao":
		return c.Youdao
	case "mymemory":
		return c.MyMemory
	case "ollama":
		return c.Ollama
	default:
		return translator.ServiceConfig{}
	}
}

// NormalizeBank trims codes, splits comma-joined entries, drops empties and
// duplicates, and keeps first-seen order.
func NormalizeBank(bank []string) []string {
	out := make([]string, 0, len(bank))
	seen := make(map[string]struct{}, len(bank))
	for _, entry := range bank {
		for _, code := range strings.Split(entry, ",") {
			code = strings.TrimSpace(code)
			if code == "" {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	return out
}
