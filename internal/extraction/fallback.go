package extraction

import (
	"strings"

	"taskhub/internal/model"
)

const (
	condenseLimit    = 80
	condenseMinBreak = 40
)

// Clause boundaries tried in priority order when condensing.
var breakpoints = []string{". ", "! ", "? ", ", ", "; "}

// condense shortens text to roughly condenseLimit characters at a
// clause boundary. Inputs within the limit pass through unchanged.
// The first breakpoint kind that lands past condenseMinBreak wins;
// with none, the text is hard-cut at the limit. Shortened output gets
// an ellipsis.
func condense(text string) string {
	runes := []rune(text)
	if len(runes) <= condenseLimit {
		return text
	}

	best := condenseLimit
	for _, bp := range breakpoints {
		window := runes
		if len(window) > condenseLimit+len(bp) {
			window = window[:condenseLimit+len(bp)]
		}
		idx := strings.LastIndex(string(window), bp)
		if idx > condenseMinBreak {
			best = len([]rune(string(window)[:idx])) + len(bp)
			break
		}
	}

	summary := strings.TrimSpace(string(runes[:best]))
	if len([]rune(summary)) < len(runes) {
		summary += "..."
	}
	return summary
}

// fallbackDraft wraps raw text as a task with no provider involved.
// This is the terminal extraction strategy and cannot fail.
func fallbackDraft(text string, ctx model.CaptureContext) model.TaskDraft {
	text = strings.TrimSpace(text)

	project := ctx.Title
	if project == "" {
		project = "General"
	}

	return model.TaskDraft{
		Task:              condense(text),
		Priority:          model.PriorityMedium,
		EstimatedDuration: 30,
		Project:           project,
		Tags:              []string{},
		Source:            model.SourceFallback,
		OriginalText:      text,
		Context:           &ctx,
	}
}
