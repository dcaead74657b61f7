package capture

import (
	"context"
	"strings"

	"taskhub/internal/model"
)

// MaxPageText bounds auto-captured page text so a long article does
// not blow up prompt sizes.
const MaxPageText = 5000

// Source abstracts the producers of raw capture input: the page's
// selection and text, and a screenshot of the visible viewport.
type Source interface {
	// Context returns the active page's metadata (URL, title).
	Context(ctx context.Context) (model.CaptureContext, error)
	Selection(ctx context.Context) (string, error)
	PageText(ctx context.Context) (string, error)
	Screenshot(ctx context.Context) (mime string, data []byte, err error)
}

// BoundPageText trims and caps page text at MaxPageText runes.
func BoundPageText(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= MaxPageText {
		return text
	}
	return string(runes[:MaxPageText])
}
