package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

type AssistantService interface {
	Handle(ctx context.Context, dto RequestDTO) (string, error)

	Generate(ctx context.Context, prompt string) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
	ImproveNote(ctx context.Context, title, content string) (string, error)
	PrioritizeTodos(ctx context.Context, todos []string) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) AssistantService {
	return &service{provider: provider}
}

func (s *service) Handle(ctx context.Context, dto RequestDTO) (string, error) {
	switch dto.Action {
	case ActionGenerate:
		var data generateData
		if err := json.Unmarshal(dto.Data, &data); err != nil || strings.TrimSpace(data.Prompt) == "" {
			return "", ErrPromptRequired
		}
		return s.Generate(ctx, data.Prompt)

	case ActionSummarize:
		var data summarizeData
		if err := json.Unmarshal(dto.Data, &data); err != nil || strings.TrimSpace(data.Text) == "" {
			return "", ErrTextRequired
		}
		return s.Summarize(ctx, data.Text)

	case ActionImproveNote:
		var data improveNoteData
		if err := json.Unmarshal(dto.Data, &data); err != nil ||
			strings.TrimSpace(data.Title) == "" || strings.TrimSpace(data.Content) == "" {
			return "", ErrNoteRequired
		}
		return s.ImproveNote(ctx, data.Title, data.Content)

	case ActionPrioritizeTodos:
		var data prioritizeTodosData
		if err := json.Unmarshal(dto.Data, &data); err != nil || len(data.Todos) == 0 {
			return "", ErrTodosRequired
		}
		return s.PrioritizeTodos(ctx, data.Todos)

	default:
		return "", ErrInvalidAction
	}
}

func (s *service) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("Assistant generation failed")
		return "", err
	}
	return result, nil
}

func (s *service) Summarize(ctx context.Context, text string) (string, error) {
	return s.Generate(ctx, summarizePrompt(text))
}

func (s *service) ImproveNote(ctx context.Context, title, content string) (string, error) {
	return s.Generate(ctx, improveNotePrompt(title, content))
}

func (s *service) PrioritizeTodos(ctx context.Context, todos []string) (string, error) {
	return s.Generate(ctx, prioritizeTodosPrompt(todos))
}
