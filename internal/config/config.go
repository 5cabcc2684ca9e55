package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vaultpass/vaultpass-engine/internal/crypto"
	"github.com/vaultpass/vaultpass-engine/internal/strength"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string
	Env            string
	ConfigFile     string
	RedisAddr      string
	RedisPassword  string
	RateLimitRPS   float64
	RateLimitBurst int
	Engine         Engine
}

// Engine holds the settings that can change at runtime via the YAML file.
type Engine struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

type GeneratorConfig struct {
	// Defaults fill in fields a request leaves unset.
	Defaults          crypto.Policy `yaml:"defaults"`
	MinLength         int           `yaml:"min_length"`
	MaxLength         int           `yaml:"max_length"`
	RejectionSampling bool          `yaml:"rejection_sampling"`
}

type ClassifierConfig struct {
	Ordering string `yaml:"ordering"`
	// Advisory adds a pattern-based estimate next to the tier.
	Advisory bool `yaml:"advisory"`
}

// DefaultEngine returns the built-in engine settings.
func DefaultEngine() Engine {
	return Engine{
		Generator: GeneratorConfig{
			Defaults:  crypto.DefaultPolicy(),
			MinLength: crypto.MinLength,
			MaxLength: crypto.MaxLength,
		},
		Classifier: ClassifierConfig{
			Ordering: string(strength.OrderingCompatible),
			Advisory: true,
		},
	}
}

// Validate reports the first inconsistency in e.
func (e Engine) Validate() error {
	g := e.Generator
	if g.MinLength < 1 {
		return fmt.Errorf("generator.min_length must be positive, got %d", g.MinLength)
	}
	if g.MaxLength < g.MinLength {
		return fmt.Errorf("generator.max_length %d is below min_length %d", g.MaxLength, g.MinLength)
	}
	if err := g.Defaults.Validate(g.MinLength, g.MaxLength); err != nil {
		return fmt.Errorf("generator.defaults: %w", err)
	}
	if _, err := strength.ParseOrdering(e.Classifier.Ordering); err != nil {
		return fmt.Errorf("classifier.ordering: %w", err)
	}
	return nil
}

// LoadEngine reads engine settings from a YAML file. Fields absent from the
// file keep their DefaultEngine values.
func LoadEngine(path string) (Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Engine{}, fmt.Errorf("read config: %w", err)
	}

	e := DefaultEngine()
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Engine{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := e.Validate(); err != nil {
		return Engine{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return e, nil
}

// Load reads process configuration from the environment and, when
// CONFIG_FILE is set, engine settings from that file.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		ConfigFile:     getEnv("CONFIG_FILE", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		Engine:         DefaultEngine(),
	}

	if cfg.ConfigFile != "" {
		engine, err := LoadEngine(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Engine = engine
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive (rps=%v burst=%d)", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
