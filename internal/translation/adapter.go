package translation

import (
	"context"
	"strings"

	"taskhub/internal/model"
	"taskhub/pkg/aiprovider"
	"taskhub/pkg/log"
)

// Providers is the slice of the provider registry the adapter needs.
type Providers interface {
	Translators() (aiprovider.TranslatorFactory, bool)
}

// Adapter rewrites the user-visible fields of a draft into a target
// language. Translation is strictly best-effort: a failed field keeps
// its original value and never fails the capture.
type Adapter struct {
	providers Providers
	l         log.Logger
}

func New(providers Providers, l log.Logger) *Adapter {
	return &Adapter{providers: providers, l: l}
}

// Translate rewrites task, project and tags. Callers gate on settings;
// the adapter itself only checks that a translator is available and
// the target is not English.
func (a *Adapter) Translate(ctx context.Context, draft model.TaskDraft, targetLanguage string) model.TaskDraft {
	if targetLanguage == "" || targetLanguage == "en" {
		return draft
	}
	factory, ok := a.providers.Translators()
	if !ok {
		return draft
	}

	if draft.Task != "" {
		if translated, err := a.translateField(ctx, factory, targetLanguage, draft.Task); err == nil {
			draft.Task = translated
		} else {
			a.l.Warnf(ctx, "translation: task field failed, keeping original: %v", err)
		}
	}

	if draft.Project != "" {
		if translated, err := a.translateField(ctx, factory, targetLanguage, draft.Project); err == nil {
			draft.Project = translated
		} else {
			a.l.Warnf(ctx, "translation: project field failed, keeping original: %v", err)
		}
	}

	if len(draft.Tags) > 0 {
		// Tags travel as one newline-joined blob so a single session
		// covers them all, then split back apart.
		joined := strings.Join(draft.Tags, "\n")
		if translated, err := a.translateField(ctx, factory, targetLanguage, joined); err == nil {
			tags := make([]string, 0, len(draft.Tags))
			for _, tag := range strings.Split(translated, "\n") {
				if tag = strings.TrimSpace(tag); tag != "" {
					tags = append(tags, tag)
				}
			}
			draft.Tags = tags
		} else {
			a.l.Warnf(ctx, "translation: tags failed, keeping originals: %v", err)
		}
	}

	return draft
}

// translateField runs one field through a fresh short-lived session.
// The session is closed on every path.
func (a *Adapter) translateField(ctx context.Context, factory aiprovider.TranslatorFactory, target, text string) (string, error) {
	session, err := factory.NewTranslator(ctx, "en", target)
	if err != nil {
		return "", err
	}
	defer session.Close()

	translated, err := session.Translate(ctx, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(translated) == "" {
		return "", aiprovider.ErrEmptyResponse
	}
	return translated, nil
}
