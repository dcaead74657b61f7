package extraction

import (
	"context"
	"strings"
	"sync"

	"taskhub/internal/model"
	"taskhub/pkg/aiprovider"
	"taskhub/pkg/jsonextract"
	"taskhub/pkg/log"
)

// Mode selects single-task or multi-task extraction.
type Mode string

const (
	ModeQuick   Mode = "quick"
	ModeMeeting Mode = "meeting"
)

// Original-text markers stamped on drafts extracted straight from
// media, which have no source text to carry.
const (
	OriginalTextAudio      = "Captured from audio recording"
	OriginalTextScreenshot = "Captured from screenshot"
)

// Providers is the slice of the provider registry the engine needs.
type Providers interface {
	Multimodal() (aiprovider.MultimodalPrompter, bool)
	Text() (aiprovider.TextPrompter, bool)
	Summarizer() (aiprovider.Summarizer, bool)
}

// Input is one capture to extract tasks from.
type Input struct {
	Signal   model.RawSignal
	Context  model.CaptureContext
	Settings model.Settings
	Mode     Mode
}

// Engine turns raw capture signals into task drafts via a fallback
// chain: multimodal prompt, then text prompt, then deterministic
// condensing. Extract never fails; every strategy degrades to the
// next and the last one has no external dependency.
type Engine struct {
	providers Providers
	l         log.Logger

	mu               sync.Mutex
	audioUnsupported bool
}

func NewEngine(providers Providers, l log.Logger) *Engine {
	return &Engine{providers: providers, l: l}
}

// AudioUnsupported reports whether the multimodal audio path has been
// latched off for this process.
func (e *Engine) AudioUnsupported() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.audioUnsupported
}

// Extract runs the fallback chain and returns at least one draft
// (one element unless meeting mode yields several).
func (e *Engine) Extract(ctx context.Context, in Input) []model.TaskDraft {
	if in.Mode == "" {
		in.Mode = ModeQuick
	}

	if !in.Settings.AIEnabled {
		e.l.Debug(ctx, "extraction: ai disabled, using fallback")
		return e.fallback(in)
	}

	if drafts := e.tryMultimodal(ctx, in); len(drafts) > 0 {
		return drafts
	}
	if drafts := e.tryText(ctx, in); len(drafts) > 0 {
		return drafts
	}
	return e.fallback(in)
}

// tryMultimodal prompts the multimodal provider with the image or
// audio payload. Returns nil when the strategy does not apply or the
// response is unusable.
func (e *Engine) tryMultimodal(ctx context.Context, in Input) []model.TaskDraft {
	switch in.Signal.Kind {
	case model.SignalImage, model.SignalAudio:
	default:
		return nil
	}
	if in.Signal.Kind == model.SignalAudio && e.AudioUnsupported() {
		e.l.Debug(ctx, "extraction: multimodal audio latched off, skipping")
		return nil
	}

	mm, ok := e.providers.Multimodal()
	if !ok {
		return nil
	}

	var prompt string
	var media aiprovider.Media
	switch {
	case in.Signal.Kind == model.SignalImage:
		prompt = screenshotPrompt(in.Context.Title, in.Context.URL)
		media = aiprovider.Media{MimeType: in.Signal.ImageMIME, Data: in.Signal.Image}
	case in.Mode == ModeMeeting:
		prompt = audioMeetingPrompt()
		media = aiprovider.Media{MimeType: in.Signal.AudioMIME, Data: in.Signal.Audio}
	default:
		prompt = audioQuickPrompt()
		media = aiprovider.Media{MimeType: in.Signal.AudioMIME, Data: in.Signal.Audio}
	}

	resp, err := mm.PromptMedia(ctx, prompt, media)
	if err != nil {
		e.l.Warnf(ctx, "extraction: multimodal prompt failed: %v", err)
		return nil
	}

	source := model.SourceScreenshotAI
	originalText := OriginalTextScreenshot
	if in.Signal.Kind == model.SignalAudio {
		originalText = OriginalTextAudio
		source = model.SourceAudioQuick
		if in.Mode == ModeMeeting {
			source = model.SourceAudioMeeting
		}
	}

	drafts, ok := e.decode(resp, in.Mode)
	if !ok {
		if in.Signal.Kind == model.SignalAudio {
			e.maybeLatchAudio(ctx, resp)
		}
		return nil
	}
	return e.finalize(drafts, source, originalText, in.Context)
}

// tryText prompts the text provider with the signal's text, which for
// audio is the live transcript. Long text is pre-summarized for a
// cleaner extraction when a summarizer is available.
func (e *Engine) tryText(ctx context.Context, in Input) []model.TaskDraft {
	text := signalText(in.Signal)
	if text == "" {
		return nil
	}

	tp, ok := e.providers.Text()
	if !ok {
		return nil
	}

	analyze := text
	if in.Signal.Kind == model.SignalText &&
		len(in.Context.FullEmailContext) > len(text) {
		// The selection is often just one line of an email; hand the
		// model the whole thing for better inference.
		analyze = "Selected text: \"" + text + "\"\n\nFull email context:\n\"" + in.Context.FullEmailContext + "\""
	}

	if len(analyze) > 200 {
		if sum, ok := e.providers.Summarizer(); ok {
			if condensed, err := sum.Summarize(ctx, analyze); err == nil && condensed != "" {
				analyze = condensed
			} else if err != nil {
				e.l.Debugf(ctx, "extraction: pre-summarize failed, using original text: %v", err)
			}
		}
	}

	var prompt string
	source := model.SourceAI
	switch {
	case in.Signal.Kind == model.SignalAudio && in.Mode == ModeMeeting:
		prompt = transcriptMeetingPrompt(analyze)
		source = model.SourceAudioMeeting
	case in.Signal.Kind == model.SignalAudio:
		prompt = transcriptQuickPrompt(analyze)
		source = model.SourceAudioQuick
	default:
		prompt = textPrompt(in.Context.Title, in.Context.URL, analyze)
	}

	resp, err := tp.Prompt(ctx, prompt)
	if err != nil {
		e.l.Warnf(ctx, "extraction: text prompt failed: %v", err)
		return nil
	}

	drafts, ok := e.decode(resp, in.Mode)
	if !ok {
		return nil
	}
	return e.finalize(drafts, source, text, in.Context)
}

// decode pulls drafts out of a model response: a JSON array in
// meeting mode, a single object otherwise.
func (e *Engine) decode(resp string, mode Mode) ([]model.TaskDraft, bool) {
	if mode == ModeMeeting {
		drafts, ok := jsonextract.DecodeArray[model.TaskDraft](resp)
		return drafts, ok && len(drafts) > 0
	}
	draft, ok := jsonextract.DecodeObject[model.TaskDraft](resp)
	if !ok {
		return nil, false
	}
	return []model.TaskDraft{draft}, true
}

// maybeLatchAudio permanently disables the multimodal audio path when
// the provider answers in prose asking for the audio to be supplied
// some other way. One-way for the process lifetime.
func (e *Engine) maybeLatchAudio(ctx context.Context, resp string) {
	normalized := strings.ToLower(resp)
	if !strings.Contains(normalized, "provide") || !strings.Contains(normalized, "audio") {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.audioUnsupported {
		e.audioUnsupported = true
		e.l.Warn(ctx, "extraction: provider cannot accept audio input, disabling multimodal audio path")
	}
}

// finalize validates and coerces provider output, which is never
// trusted raw. Drafts without a task string are dropped.
func (e *Engine) finalize(drafts []model.TaskDraft, source, originalText string, ctx model.CaptureContext) []model.TaskDraft {
	out := make([]model.TaskDraft, 0, len(drafts))
	for _, d := range drafts {
		d.Task = strings.TrimSpace(d.Task)
		if d.Task == "" {
			continue
		}
		d.Priority = d.Priority.Normalize()
		if d.EstimatedDuration <= 0 {
			d.EstimatedDuration = 30
		}
		if d.Tags == nil {
			d.Tags = []string{}
		}
		d.Source = source
		d.OriginalText = originalText
		c := ctx
		d.Context = &c
		out = append(out, d)
	}
	return out
}

// fallback is the terminal strategy: no provider, no failure mode.
func (e *Engine) fallback(in Input) []model.TaskDraft {
	var text string
	switch in.Signal.Kind {
	case model.SignalText:
		text = in.Signal.Text
	case model.SignalAudio:
		text = in.Signal.LiveTranscript
		if len(text) > 100 {
			text = text[:100]
		}
		if strings.TrimSpace(text) == "" {
			text = "Audio recording captured"
		}
	case model.SignalImage:
		text = "Screenshot from " + in.Context.Title
	}
	return []model.TaskDraft{fallbackDraft(text, in.Context)}
}

func signalText(sig model.RawSignal) string {
	switch sig.Kind {
	case model.SignalText:
		return strings.TrimSpace(sig.Text)
	case model.SignalAudio:
		return strings.TrimSpace(sig.LiveTranscript)
	default:
		return ""
	}
}
