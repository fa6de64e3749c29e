package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/recgen/internal/llm"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func validConfig() Config {
	c := Default()
	c.LLM.APIKey = "sk-test"
	return c
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "bulk-data.xlsx", c.Output)
	assert.Equal(t, 10000, c.Count)
	assert.Equal(t, 1000, c.BatchSize)
	assert.Equal(t, "incident", c.Table)
	assert.Equal(t, 30, c.ClosedPercentage)
	assert.Equal(t, 10, c.Concurrency)
	assert.Equal(t, 100*time.Millisecond, c.Pause)
	assert.Equal(t, llm.ProviderOpenRouter, c.LLM.Provider)
}

func TestMergeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
table: case
count: 250
pause: 250ms
split: true
llm:
  provider: anthropic
  model: claude-3-5-haiku-latest
  requests_per_second: 4
`), 0o644))

	c := Default()
	require.NoError(t, c.mergeFile(path))
	assert.Equal(t, "case", c.Table)
	assert.Equal(t, 250, c.Count)
	assert.Equal(t, 250*time.Millisecond, c.Pause)
	assert.True(t, c.Split)
	assert.Equal(t, llm.ProviderAnthropic, c.LLM.Provider)
	assert.Equal(t, 4.0, c.LLM.RequestsPerSecond)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1000, c.BatchSize)
	assert.Equal(t, "bulk-data.xlsx", c.Output)
}

func TestMergeFile_Errors(t *testing.T) {
	c := Default()
	assert.ErrorContains(t, c.mergeFile(filepath.Join(t.TempDir(), "missing.yaml")), "failed to read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: [oops"), 0o644))
	assert.ErrorContains(t, c.mergeFile(path), "failed to parse config")
}

func TestApplyEnv(t *testing.T) {
	c := Default()
	c.ApplyEnv(envMap(map[string]string{
		"RECGEN_COUNT":       "42",
		"RECGEN_TABLE":       "hr_case",
		"RECGEN_PAUSE":       "2s",
		"RECGEN_CONCURRENCY": "not-a-number",
		"OPENROUTER_API_KEY": "sk-or",
		"OPENAI_API_KEY":     "sk-openai",
	}))
	assert.Equal(t, 42, c.Count)
	assert.Equal(t, "hr_case", c.Table)
	assert.Equal(t, 2*time.Second, c.Pause)
	assert.Equal(t, 10, c.Concurrency, "bad numbers are ignored")
	assert.Equal(t, "sk-or", c.LLM.APIKey)
}

func TestApplyEnv_KeyFollowsProvider(t *testing.T) {
	c := Default()
	c.ApplyEnv(envMap(map[string]string{
		"RECGEN_PROVIDER":    "anthropic",
		"OPENROUTER_API_KEY": "sk-or",
		"ANTHROPIC_API_KEY":  "sk-ant",
	}))
	assert.Equal(t, "sk-ant", c.LLM.APIKey)

	c = Default()
	c.LLM.APIKey = "from-file"
	c.ApplyEnv(envMap(nil))
	assert.Equal(t, "from-file", c.LLM.APIKey, "empty env keeps the file key")
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 5\nbatch_size: 2\n"), 0o644))
	t.Setenv("RECGEN_COUNT", "7")
	t.Setenv("OPENROUTER_API_KEY", "sk-env")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Count)
	assert.Equal(t, 2, c.BatchSize)
	assert.Equal(t, "sk-env", c.LLM.APIKey)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown table", func(c *Config) { c.Table = "problem" }, "unsupported table"},
		{"empty output", func(c *Config) { c.Output = " " }, "output path"},
		{"negative count", func(c *Config) { c.Count = -1 }, "count"},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, "batch size"},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, "concurrency"},
		{"closed over 100", func(c *Config) { c.ClosedPercentage = 101 }, "closed percentage"},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "bard" }, "unknown provider"},
		{"missing key", func(c *Config) { c.LLM.APIKey = "" }, "OPENROUTER_API_KEY"},
		{"missing anthropic key", func(c *Config) {
			c.LLM.Provider = llm.ProviderAnthropic
			c.LLM.APIKey = ""
		}, "ANTHROPIC_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}

func TestAPIKeyEnv(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", APIKeyEnv(llm.ProviderOpenAI))
	assert.Equal(t, "OPENROUTER_API_KEY", APIKeyEnv("unknown"))
}
