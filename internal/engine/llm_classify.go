package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

const sensitivityPrompt = `You moderate a video browsing app. Answer with exactly one word, YES or NO.
Is the following video or channel title sexual, gory, or otherwise unsafe to show without a warning?

Title: %s`

// LLMClassifier asks a language model for a verdict and falls back to another
// Classifier whenever the model is unavailable or answers off-script.
type LLMClassifier struct {
	complete func(ctx context.Context, prompt string) (string, error)
	fallback Classifier
	timeout  time.Duration
}

const llmClassifyTimeout = 5 * time.Second

// NewLLMClassifier builds a classifier over the OpenAI-compatible endpoint in c.
func NewLLMClassifier(c Config, fallback Classifier) *LLMClassifier {
	timeout := llmClassifyTimeout
	client := llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(4),
		llm.WithTemperature(0),
		llm.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	return &LLMClassifier{
		complete: func(ctx context.Context, prompt string) (string, error) {
			return client.Complete(ctx, "", prompt)
		},
		fallback: fallback,
		timeout:  timeout,
	}
}

func (c *LLMClassifier) Classify(text string) bool {
	return c.ClassifyContext(context.Background(), text)
}

// ClassifyContext bounds the model call by both ctx and the classifier timeout.
func (c *LLMClassifier) ClassifyContext(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	metrics.ClassifierLLM.Add(1)
	verdict, err := c.verdict(ctx, text)
	if err != nil {
		metrics.ClassifierLLMErrs.Add(1)
		slog.Debug("llm classifier fallback", slog.Any("error", err))
		return c.fallback != nil && c.fallback.Classify(text)
	}
	return verdict
}

func (c *LLMClassifier) verdict(ctx context.Context, text string) (bool, error) {
	raw, err := c.complete(ctx, fmt.Sprintf(sensitivityPrompt, TruncateRunes(text, 300, "…")))
	if err != nil {
		return false, err
	}
	answer := strings.ToUpper(strings.Trim(strings.TrimSpace(raw), ".!\"'`"))
	switch {
	case strings.HasPrefix(answer, "YES"):
		return true, nil
	case strings.HasPrefix(answer, "NO"):
		return false, nil
	}
	return false, fmt.Errorf("unexpected verdict %q", raw)
}
