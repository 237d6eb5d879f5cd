package assistant

import "encoding/json"

type Action string

const (
	ActionGenerate        Action = "generate"
	ActionSummarize       Action = "summarize"
	ActionImproveNote     Action = "improveNote"
	ActionPrioritizeTodos Action = "prioritizeTodos"
)

// RequestDTO is the envelope of the assistant endpoint; Data is decoded per
// action.
type RequestDTO struct {
	Action Action          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type generateData struct {
	Prompt string `json:"prompt"`
}

type summarizeData struct {
	Text string `json:"text"`
}

type improveNoteData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type prioritizeTodosData struct {
	Todos []string `json:"todos"`
}

type ResponseDTO struct {
	Result string `json:"result"`
}
