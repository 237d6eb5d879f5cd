package assistant

import (
	"context"

	"github.com/sirupsen/logrus"
)

type AssistantContainer struct {
	Handler *Handler
	Service AssistantService
}

// unavailableProvider stands in when the real provider cannot be built, so a
// missing credential surfaces per-request instead of crashing startup.
type unavailableProvider struct {
	err error
}

func (p unavailableProvider) Generate(context.Context, string) (string, error) {
	return "", p.err
}

func NewAssistantContainer(ctx context.Context) *AssistantContainer {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Gemini provider unavailable, assistant requests will fail")
		provider = unavailableProvider{err: err}
	}

	service := NewService(provider)
	handler := NewHandler(service)

	return &AssistantContainer{
		Handler: handler,
		Service: service,
	}
}
