package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Multiple      int    `yaml:"multiple"`
	AceIsHigh     bool   `yaml:"ace_is_high"`
	IncludeJokers bool   `yaml:"include_jokers"`
	Seed          *int64 `yaml:"seed"`

	StatePath string       `yaml:"state_path"`
	Output    string       `yaml:"output"` // json|yaml
	Locale    string       `yaml:"locale"`
	Language  language.Tag `yaml:"-"`

	AppEnv       string `yaml:"app_env"`
	TracesExport string `yaml:"traces_export"` // stdout|none
	PrettyTraces bool   `yaml:"pretty_traces"`
}

func defaults() Config {
	return Config{
		Multiple:     1,
		Output:       "json",
		Locale:       "en",
		AppEnv:       "development",
		TracesExport: "none",
	}
}

// LoadFromEnv reads the optional DECK_CONFIG yaml file, then applies
// environment overrides on top of it.
func LoadFromEnv() (Config, error) {
	cfg := defaults()
	if path := strings.TrimSpace(os.Getenv("DECK_CONFIG")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("DECK_MULTIPLE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Multiple = n
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid DECK_MULTIPLE=%q, using %d\n", v, cfg.Multiple)
		}
	}
	if v := strings.TrimSpace(os.Getenv("DECK_ACE_HIGH")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AceIsHigh = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("DECK_JOKERS")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeJokers = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("DECK_PRETTY_TRACES")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.PrettyTraces = b
		}
	}

	var invalid []string
	if v := strings.TrimSpace(os.Getenv("DECK_SEED")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = &n
		} else {
			invalid = append(invalid, "DECK_SEED")
		}
	}
	if v := strings.TrimSpace(os.Getenv("DECK_STATE_PATH")); v != "" {
		cfg.StatePath = v
	}
	if v := strings.TrimSpace(os.Getenv("DECK_OUTPUT")); v != "" {
		cfg.Output = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("DECK_LOCALE")); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_ENV")); v != "" {
		cfg.AppEnv = v
	}
	if v := strings.TrimSpace(os.Getenv("OTEL_TRACES_EXPORTER")); v != "" {
		cfg.TracesExport = v
	}

	if cfg.Multiple < 1 {
		fmt.Fprintf(os.Stderr, "WARNING: deck multiple %d is below 1, using 1\n", cfg.Multiple)
		cfg.Multiple = 1
	}
	switch cfg.Output {
	case "json", "yaml":
	default:
		invalid = append(invalid, "DECK_OUTPUT (json|yaml)")
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		invalid = append(invalid, "DECK_LOCALE")
	}
	cfg.Language = tag

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("missing/invalid env: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
