package assistant

import (
	"context"
	"fmt"
	"os"

	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
	"google.golang.org/genai"
)

// fallbackModels is tried in order; the first model that answers wins.
var fallbackModels = []string{
	"gemini-2.0-pro",
	"gemini-2.0-flash",
	"gemini-1.5-pro",
	"gemini-pro",
}

type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider refuses to construct a client without a credential so a
// misconfigured deployment fails at the first request, before any network
// call is attempted.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	var lastErr error
	for _, model := range fallbackModels {
		result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			log.WithError(err).WithField("model", model).Warn("Gemini model failed, trying next")
			lastErr = err
			continue
		}

		text := result.Text()
		if text == "" {
			lastErr = ErrEmptyResponse
			continue
		}

		log.WithField("model", model).Debug("Gemini model answered")
		return text, nil
	}

	return "", classify(lastErr)
}
