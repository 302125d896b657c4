package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mangler.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend != "google" {
		t.Errorf("expected default backend google, got %q", cfg.Backend)
	}
	if cfg.Rounds != 20 {
		t.Errorf("expected 20 rounds, got %d", cfg.Rounds)
	}
	if cfg.Delay() != time.Second {
		t.Errorf("expected 1s delay, got %v", cfg.Delay())
	}
	if cfg.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", cfg.Attempts)
	}
	if len(cfg.Bank) != 0 {
		t.Errorf("expected empty bank, got %v", cfg.Bank)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
backend: baidu
rounds: 5
delay_ms: 250
bank: [en, jp, " kor ", en]
baidu:
  app_id: "20240001"
  api_key: secret
log:
  level: debug
`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend != "baidu" || cfg.Rounds != 5 || cfg.DelayMS != 250 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if want := []string{"en", "jp", "kor"}; !reflect.DeepEqual(cfg.Bank, want) {
		t.Errorf("expected bank %v, got %v", want, cfg.Bank)
	}
	svc := cfg.Service("baidu")
	if svc.AppID != "20240001" || svc.APIKey != "secret" {
		t.Errorf("unexpected baidu credentials %+v", svc)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug log level, got %q", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "backend: baidu\nrounds: 5\n")
	t.Setenv("MANGLER_ROUNDS", "7")
	t.Setenv("MANGLER_YOUDAO_SECRET", "from-env")
	t.Setenv("MANGLER_BANK", "fr, de")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Rounds != 7 {
		t.Errorf("expected env rounds 7, got %d", cfg.Rounds)
	}
	if cfg.Service("youdao").Secret != "from-env" {
		t.Errorf("expected youdao secret from env, got %q", cfg.Youdao.Secret)
	}
	if want := []string{"fr", "de"}; !reflect.DeepEqual(cfg.Bank, want) {
		t.Errorf("expected bank %v, got %v", want, cfg.Bank)
	}
}

func TestLoad_BindOverridesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MANGLER_BACKEND", "youdao")

	cfg, err := Load("", func(v *viper.Viper) error {
		v.Set("backend", "mymemory")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != "mymemory" {
		t.Errorf("expected bound value to win, got %q", cfg.Backend)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Backend: "baidu", Rounds: 1, DelayMS: 0, Attempts: 1}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "babelfish" }, wantErr: true},
		{name: "zero rounds", mutate: func(c *Config) { c.Rounds = 0 }, wantErr: true},
		{name: "negative delay", mutate: func(c *Config) { c.DelayMS = -1 }, wantErr: true},
		{name: "zero attempts", mutate: func(c *Config) { c.Attempts = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeBank(t *testing.T) {
	got := NormalizeBank([]string{"en,fr", " de ", "", "fr", "zh-CHS"})
	want := []string{"en", "fr", "de", "zh-CHS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeBank() = %v, want %v", got, want)
	}
}
