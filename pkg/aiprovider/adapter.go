package aiprovider

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"taskhub/pkg/deepseek"
	"taskhub/pkg/gemini"
)

// geminiAdapter adapts pkg/gemini to the capability interfaces.
type geminiAdapter struct {
	client  *gemini.Client
	limiter *rate.Limiter
}

func (a *geminiAdapter) Name() string { return "gemini" }

func (a *geminiAdapter) Prompt(ctx context.Context, text string) (string, error) {
	return a.generate(ctx, []gemini.Part{{Text: text}})
}

func (a *geminiAdapter) PromptMedia(ctx context.Context, text string, media Media) (string, error) {
	parts := []gemini.Part{
		{Text: text},
		{InlineData: &gemini.InlineData{
			MimeType: media.MimeType,
			Data:     base64.StdEncoding.EncodeToString(media.Data),
		}},
	}
	return a.generate(ctx, parts)
}

func (a *geminiAdapter) Summarize(ctx context.Context, text string) (string, error) {
	prompt := "Summarize the following text as short plain-text key points. " +
		"Return only the summary, no preamble.\n\n" + text
	return a.generate(ctx, []gemini.Part{{Text: prompt}})
}

func (a *geminiAdapter) Write(ctx context.Context, prompt string) (string, error) {
	return a.generate(ctx, []gemini.Part{{Text: prompt}})
}

// NewTranslator returns a short-lived translation session for one language
// pair. The session is single-use-scoped: after Close it refuses calls.
func (a *geminiAdapter) NewTranslator(_ context.Context, sourceLanguage, targetLanguage string) (Translator, error) {
	return &geminiTranslator{
		adapter: a,
		source:  sourceLanguage,
		target:  targetLanguage,
	}, nil
}

func (a *geminiAdapter) generate(ctx context.Context, parts []gemini.Part) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := a.client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: parts}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

type geminiTranslator struct {
	adapter *geminiAdapter
	source  string
	target  string

	mu     sync.Mutex
	closed bool
}

func (t *geminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return "", ErrSessionClosed
	}
	t.mu.Unlock()

	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. Preserve line breaks. Return only the translation, nothing else.\n\n%s",
		t.source, t.target, text,
	)
	return t.adapter.generate(ctx, []gemini.Part{{Text: prompt}})
}

func (t *geminiTranslator) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}

// deepseekAdapter adapts pkg/deepseek to the text prompting capability.
type deepseekAdapter struct {
	client  *deepseek.Client
	limiter *rate.Limiter
}

func (a *deepseekAdapter) Name() string { return "deepseek" }

func (a *deepseekAdapter) Prompt(ctx context.Context, text string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages: []deepseek.Message{
			{Role: "user", Content: text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}

	out := resp.Text()
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
