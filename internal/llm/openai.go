// ABOUTME: Completer for OpenAI-compatible chat endpoints, OpenRouter by default.
// ABOUTME: Built on go-openai with attribution headers added for OpenRouter.

package llm

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	attributionReferer = "https://github.com/2389/recgen"
	attributionTitle   = "recgen"
	requestTimeout     = 30 * time.Second
)

// OpenAICompleter calls a chat completions endpoint.
type OpenAICompleter struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAICompleter builds a completer against cfg.BaseURL, or the OpenAI
// API when it is empty.
func NewOpenAICompleter(cfg Config) *OpenAICompleter {
	cfg = cfg.withDefaults()
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{
		Timeout:   requestTimeout,
		Transport: attributionTransport{base: http.DefaultTransport},
	}
	return &OpenAICompleter{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		temperature: sampleTemperature(*cfg.Temperature),
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// attributionTransport sets the headers OpenRouter uses to attribute traffic.
type attributionTransport struct {
	base http.RoundTripper
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", attributionReferer)
	req.Header.Set("X-Title", attributionTitle)
	return t.base.RoundTrip(req)
}

// sampleTemperature maps zero to the smallest positive float32, since
// go-openai omits a zero temperature and the provider default applies.
func sampleTemperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}
