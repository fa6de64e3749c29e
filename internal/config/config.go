// ABOUTME: Generation settings layered from defaults, a YAML file, .env files and the environment.
// ABOUTME: Command-line flags are applied last by the CLI on top of Load's result.

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/2389/recgen/internal/batch"
	"github.com/2389/recgen/internal/llm"
	"github.com/2389/recgen/internal/record"
)

// Defaults for a generation run.
const (
	DefaultOutput           = "bulk-data.xlsx"
	DefaultCount            = 10000
	DefaultClosedPercentage = 30
)

// Config is everything a generation run needs.
type Config struct {
	Output           string        `yaml:"output"`
	Count            int           `yaml:"count"`
	BatchSize        int           `yaml:"batch_size"`
	Table            string        `yaml:"table"`
	ClosedPercentage int           `yaml:"closed_percentage"`
	Split            bool          `yaml:"split"`
	Concurrency      int           `yaml:"concurrency"`
	Pause            time.Duration `yaml:"pause"`
	RefData          string        `yaml:"refdata"`
	// DBPath records the run ledger in a SQLite database. SQLite outputs
	// record into their own database when it is empty.
	DBPath  string     `yaml:"db"`
	Verbose bool       `yaml:"verbose"`
	LLM     llm.Config `yaml:"llm"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:           DefaultOutput,
		Count:            DefaultCount,
		BatchSize:        batch.DefaultBatchSize,
		Table:            string(record.Incident),
		ClosedPercentage: DefaultClosedPercentage,
		Concurrency:      batch.DefaultConcurrency,
		Pause:            batch.DefaultPause,
		LLM: llm.Config{
			Provider: llm.ProviderOpenRouter,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped when
// path is empty), any .env files found and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	LoadDotEnv()
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads the first .env found in the working directory or its two
// parents, then ~/.env. Variables already set are never overwritten.
func LoadDotEnv() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		godotenv.Load(filepath.Join(home, ".env"))
	}
}

// apiKeyEnv maps each provider to the variable holding its credential.
var apiKeyEnv = map[string]string{
	llm.ProviderOpenRouter: "OPENROUTER_API_KEY",
	llm.ProviderOpenAI:     "OPENAI_API_KEY",
	llm.ProviderAnthropic:  "ANTHROPIC_API_KEY",
}

// APIKeyEnv names the environment variable for provider's credential.
func APIKeyEnv(provider string) string {
	if name, ok := apiKeyEnv[provider]; ok {
		return name
	}
	return apiKeyEnv[llm.ProviderOpenRouter]
}

// ApplyEnv overrides settings from RECGEN_* variables and takes the
// provider credential from its conventional variable.
func (c *Config) ApplyEnv(getenv func(string) string) {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: ignoring %s=%q: not a number", key, v)
			return
		}
		*dst = n
	}

	str("RECGEN_OUTPUT", &c.Output)
	num("RECGEN_COUNT", &c.Count)
	num("RECGEN_BATCH_SIZE", &c.BatchSize)
	str("RECGEN_TABLE", &c.Table)
	num("RECGEN_CLOSED", &c.ClosedPercentage)
	num("RECGEN_CONCURRENCY", &c.Concurrency)
	str("RECGEN_REFDATA", &c.RefData)
	str("RECGEN_DB_PATH", &c.DBPath)
	str("RECGEN_PROVIDER", &c.LLM.Provider)
	str("RECGEN_MODEL", &c.LLM.Model)
	str("RECGEN_BASE_URL", &c.LLM.BaseURL)
	if v := strings.TrimSpace(getenv("RECGEN_PAUSE")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Pause = d
		} else {
			log.Printf("Warning: ignoring RECGEN_PAUSE=%q: %v", v, err)
		}
	}
	str(APIKeyEnv(c.LLM.Provider), &c.LLM.APIKey)
}

// Validate reports the first setting that would make the run fail.
func (c Config) Validate() error {
	if _, err := record.ParseKind(c.Table); err != nil {
		return err
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if c.ClosedPercentage > 100 {
		return fmt.Errorf("closed percentage must be at most 100, got %d", c.ClosedPercentage)
	}
	if _, ok := apiKeyEnv[c.LLM.Provider]; !ok {
		return fmt.Errorf("unknown provider %q", c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("no API key: pass --apiKey or set %s", APIKeyEnv(c.LLM.Provider))
	}
	return nil
}
