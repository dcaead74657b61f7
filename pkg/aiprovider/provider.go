// Package aiprovider exposes on-device-style AI capabilities (prompting,
// summarization, writing, translation) behind small interfaces with an
// explicit registry lifecycle, so the pipeline never touches a concrete
// model client and tests can inject fakes.
package aiprovider

import "context"

// Capability identifies one AI capability the registry may hold.
type Capability string

const (
	CapabilityPrompt     Capability = "prompt"
	CapabilityMultimodal Capability = "multimodal"
	CapabilitySummarize  Capability = "summarize"
	CapabilityWrite      Capability = "write"
	CapabilityTranslate  Capability = "translate"
)

// Media is an inline media payload for multimodal prompts.
type Media struct {
	MimeType string
	Data     []byte
}

// TextPrompter generates free-text completions from a text prompt.
type TextPrompter interface {
	Prompt(ctx context.Context, text string) (string, error)
	Name() string
}

// MultimodalPrompter additionally accepts inline media alongside the prompt.
type MultimodalPrompter interface {
	TextPrompter
	PromptMedia(ctx context.Context, text string, media Media) (string, error)
}

// Summarizer condenses long text into key points.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Writer produces formatted long-form text from a writing prompt.
type Writer interface {
	Write(ctx context.Context, prompt string) (string, error)
}

// Translator is a short-lived, single-language-pair translation session.
// Callers must Close it on every exit path.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
	Close()
}

// TranslatorFactory mints Translator sessions for a language pair.
type TranslatorFactory interface {
	NewTranslator(ctx context.Context, sourceLanguage, targetLanguage string) (Translator, error)
}
