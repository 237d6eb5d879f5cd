package assistant

import (
	"fmt"
	"strings"
)

func summarizePrompt(text string) string {
	return fmt.Sprintf(`Please summarize the following text concisely:

%s

Provide a summary that captures the main points.`, text)
}

func improveNotePrompt(title, content string) string {
	return fmt.Sprintf(`I have a note with the title %q and the following content:

%s

Please suggest 2-3 ways I could improve or expand on this note. Be concise and practical.`, title, content)
}

func prioritizeTodosPrompt(todos []string) string {
	items := make([]string, len(todos))
	for i, todo := range todos {
		items[i] = "- " + todo
	}
	return fmt.Sprintf(`Here's my todo list:

%s

Please help me prioritize these tasks by suggesting which ones I should do first, second, etc.
Explain your reasoning briefly.`, strings.Join(items, "\n"))
}
