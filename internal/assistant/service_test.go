package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type fakeProvider struct {
	lastPrompt string
	result     string
	err        error
	calls      int
}

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func rawJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestHandleActions(t *testing.T) {
	cases := []struct {
		name       string
		dto        RequestDTO
		wantInside []string
	}{
		{
			name: "Generate",
			dto: RequestDTO{
				Action: ActionGenerate,
				Data:   json.RawMessage(`{"prompt":"write a haiku"}`),
			},
			wantInside: []string{"write a haiku"},
		},
		{
			name: "Summarize",
			dto: RequestDTO{
				Action: ActionSummarize,
				Data:   json.RawMessage(`{"text":"a long article"}`),
			},
			wantInside: []string{"summarize the following text", "a long article"},
		},
		{
			name: "ImproveNote",
			dto: RequestDTO{
				Action: ActionImproveNote,
				Data:   json.RawMessage(`{"title":"Meeting Notes","content":"discussed roadmap"}`),
			},
			wantInside: []string{"Meeting Notes", "discussed roadmap", "suggest 2-3 ways"},
		},
		{
			name: "PrioritizeTodos",
			dto: RequestDTO{
				Action: ActionPrioritizeTodos,
				Data:   json.RawMessage(`{"todos":["buy milk","file taxes"]}`),
			},
			wantInside: []string{"- buy milk", "- file taxes", "prioritize these tasks"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{result: "answer"}
			svc := NewService(provider)

			result, err := svc.Handle(t.Context(), tc.dto)
			if err != nil {
				t.Fatalf("Handle failed: %v", err)
			}
			if result != "answer" {
				t.Errorf("result: want %q, got %q", "answer", result)
			}
			for _, want := range tc.wantInside {
				if !strings.Contains(provider.lastPrompt, want) {
					t.Errorf("prompt missing %q:\n%s", want, provider.lastPrompt)
				}
			}
		})
	}
}

func TestHandleValidation(t *testing.T) {
	cases := []struct {
		name    string
		dto     RequestDTO
		wantErr error
	}{
		{"UnknownAction", RequestDTO{Action: "translate", Data: json.RawMessage(`{}`)}, ErrInvalidAction},
		{"GenerateNoPrompt", RequestDTO{Action: ActionGenerate, Data: json.RawMessage(`{}`)}, ErrPromptRequired},
		{"SummarizeNoText", RequestDTO{Action: ActionSummarize, Data: json.RawMessage(`{"text":"  "}`)}, ErrTextRequired},
		{"ImproveNoteMissingContent", RequestDTO{Action: ActionImproveNote, Data: json.RawMessage(`{"title":"x"}`)}, ErrNoteRequired},
		{"PrioritizeEmptyList", RequestDTO{Action: ActionPrioritizeTodos, Data: json.RawMessage(`{"todos":[]}`)}, ErrTodosRequired},
		{"MalformedData", RequestDTO{Action: ActionGenerate, Data: json.RawMessage(`not json`)}, ErrPromptRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{result: "answer"}
			svc := NewService(provider)

			if _, err := svc.Handle(t.Context(), tc.dto); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
			if provider.calls != 0 {
				t.Errorf("validation failure must not reach the provider, got %d calls", provider.calls)
			}
		})
	}
}

func TestMissingKeyFailsWithoutNetwork(t *testing.T) {
	svc := NewService(unavailableProvider{err: ErrMissingAPIKey})

	_, err := svc.Handle(t.Context(), RequestDTO{
		Action: ActionGenerate,
		Data:   rawJSON(t, generateData{Prompt: "hello"}),
	})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if !strings.Contains(Remediation(err), "GEMINI_API_KEY") {
		t.Errorf("remediation should name the missing variable, got %q", Remediation(err))
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"APIKey", errors.New("request failed: invalid API key provided"), ErrMissingAPIKey},
		{"NotFound404", errors.New("404 Not Found for models/gemini-2.0-pro"), ErrModelNotFound},
		{"ModelsPath", errors.New("unknown name models/gemini-x"), ErrModelNotFound},
		{"Quota429", errors.New("googleapi: Error 429: rate limited"), ErrQuotaExceeded},
		{"QuotaWord", errors.New("quota exhausted for project"), ErrQuotaExceeded},
		{"Network", errors.New("dial tcp: network is unreachable"), ErrNetwork},
		{"Connect", errors.New("failed to connect to host"), ErrNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.err); !errors.Is(got, tc.want) {
				t.Errorf("classify(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}

	t.Run("GenericPassesThrough", func(t *testing.T) {
		plain := errors.New("something else entirely")
		got := classify(plain)
		for _, sentinel := range []error{ErrMissingAPIKey, ErrModelNotFound, ErrQuotaExceeded, ErrNetwork} {
			if errors.Is(got, sentinel) {
				t.Errorf("generic error wrongly classified as %v", sentinel)
			}
		}
	})

	t.Run("Nil", func(t *testing.T) {
		if classify(nil) != nil {
			t.Error("classify(nil) should be nil")
		}
	})
}
