// ABOUTME: Text completion client with a constant fallback on provider failure.
// ABOUTME: Wraps a provider Completer with token caps, pacing and call counters.

package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// Provider names accepted by New.
const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultModel          = "google/gemini-2.0-flash-001"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 500
	OpenRouterBaseURL     = "https://openrouter.ai/api/v1"
)

// ErrMissingAPIKey is returned by New when no credential is configured.
var ErrMissingAPIKey = errors.New("llm: no API key configured")

// Request is one completion call.
type Request struct {
	Prompt    string
	MaxTokens int
}

// Completer is a text generation provider. Implementations return the raw
// model text or an error; they do not retry.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Config selects and tunes a provider.
type Config struct {
	Provider          string   `yaml:"provider"`
	Model             string   `yaml:"model"`
	APIKey            string   `yaml:"api_key"`
	BaseURL           string   `yaml:"base_url"`
	Temperature       *float64 `yaml:"temperature"`
	MaxTokens         int      `yaml:"max_tokens"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
}

func (c Config) withDefaults() Config {
	if c.Provider == "" {
		c.Provider = ProviderOpenRouter
	}
	if c.Model == "" {
		switch c.Provider {
		case ProviderAnthropic:
			c.Model = DefaultAnthropicModel
		case ProviderOpenAI:
			c.Model = DefaultOpenAIModel
		default:
			c.Model = DefaultModel
		}
	}
	if c.Temperature == nil {
		t := DefaultTemperature
		c.Temperature = &t
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.BaseURL == "" && c.Provider == ProviderOpenRouter {
		c.BaseURL = OpenRouterBaseURL
	}
	return c
}

// Stats counts calls made through a Client.
type Stats struct {
	Calls     int64
	Fallbacks int64
}

// Client generates text through a Completer and never fails: provider errors
// resolve to a fallback string embedding the prompt.
type Client struct {
	completer Completer
	maxTokens int
	limiter   *rate.Limiter
	verbose   bool

	calls     atomic.Int64
	fallbacks atomic.Int64
}

// New builds a Client for the configured provider.
func New(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	var completer Completer
	switch cfg.Provider {
	case ProviderOpenRouter, ProviderOpenAI:
		completer = NewOpenAICompleter(cfg)
	case ProviderAnthropic:
		completer = NewAnthropicCompleter(cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}

	log.Printf("Using %s provider with model: %s", cfg.Provider, cfg.Model)
	return NewWithCompleter(completer, cfg), nil
}

// NewWithCompleter wraps an existing Completer. Only MaxTokens and
// RequestsPerSecond are read from cfg.
func NewWithCompleter(completer Completer, cfg Config) *Client {
	c := &Client{completer: completer, maxTokens: cfg.MaxTokens}
	if c.maxTokens <= 0 {
		c.maxTokens = DefaultMaxTokens
	}
	if cfg.RequestsPerSecond > 0 {
		burst := max(1, int(cfg.RequestsPerSecond))
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// SetVerbose toggles logging of each fallback.
func (c *Client) SetVerbose(v bool) {
	c.verbose = v
}

// GenerateText makes one completion attempt capped at min(maxLength,
// MaxTokens) tokens. The reply is truncated to maxLength runes. Any failure
// yields Fallback(prompt, maxLength).
func (c *Client) GenerateText(ctx context.Context, prompt string, maxLength int) string {
	c.calls.Add(1)

	text, err := c.complete(ctx, prompt, maxLength)
	if err != nil {
		c.fallbacks.Add(1)
		if c.verbose {
			log.Printf("Text generation failed, using fallback: %v", err)
		}
		return Fallback(prompt, maxLength)
	}
	return truncate(text, maxLength)
}

func (c *Client) complete(ctx context.Context, prompt string, maxLength int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completer panic: %v", r)
		}
	}()
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	tokens := c.maxTokens
	if maxLength > 0 {
		tokens = min(maxLength, c.maxTokens)
	}
	text, err = c.completer.Complete(ctx, Request{Prompt: prompt, MaxTokens: tokens})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty completion")
	}
	return text, nil
}

// Stats returns a snapshot of the call counters.
func (c *Client) Stats() Stats {
	return Stats{Calls: c.calls.Load(), Fallbacks: c.fallbacks.Load()}
}

// Fallback is the constant text returned when a provider call fails.
func Fallback(prompt string, maxLength int) string {
	return truncate("Generated text for: "+prompt, maxLength)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
