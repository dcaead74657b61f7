package aiprovider

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"taskhub/pkg/deepseek"
	"taskhub/pkg/gemini"
	"taskhub/pkg/log"
)

// Config configures the registry. Either client may be nil; the registry
// simply reports the matching capabilities as unavailable.
type Config struct {
	Gemini   *gemini.Client   // multimodal-capable primary provider
	DeepSeek *deepseek.Client // text-only fallback provider

	// RequestsPerMinute caps outbound provider calls. Zero means unlimited.
	RequestsPerMinute int
}

// Registry owns the long-lived provider sessions and hands out capability
// views of them. Lifecycle: New -> Init -> (use) -> Dispose.
type Registry struct {
	cfg     Config
	l       log.Logger
	limiter *rate.Limiter

	mu         sync.RWMutex
	ready      bool
	disposed   bool
	multimodal MultimodalPrompter
	text       TextPrompter
	summarizer Summarizer
	writer     Writer
	translator TranslatorFactory
}

// NewRegistry creates an uninitialized registry.
func NewRegistry(cfg Config, l log.Logger) *Registry {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	return &Registry{
		cfg:     cfg,
		l:       l,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Init builds capability adapters from the configured clients. Missing
// clients are logged and skipped; Init only fails when the registry was
// already disposed.
func (r *Registry) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return ErrDisposed
	}

	if r.cfg.DeepSeek != nil {
		d := &deepseekAdapter{client: r.cfg.DeepSeek, limiter: r.limiter}
		// DeepSeek takes over plain-text prompting when present so the
		// multimodal provider is reserved for media-bearing requests.
		r.text = d
		r.l.Infof(ctx, "aiprovider: deepseek ready (model=%s)", r.cfg.DeepSeek.Model())
	}

	if r.cfg.Gemini != nil {
		g := &geminiAdapter{client: r.cfg.Gemini, limiter: r.limiter}
		r.multimodal = g
		r.summarizer = g
		r.writer = g
		r.translator = g
		if r.text == nil {
			r.text = g
		}
		r.l.Infof(ctx, "aiprovider: gemini ready (model=%s)", r.cfg.Gemini.Model())
	} else {
		r.l.Warn(ctx, "aiprovider: gemini not configured, multimodal capabilities unavailable")
	}

	r.ready = r.multimodal != nil || r.text != nil
	return nil
}

// IsReady reports whether the given capability is available.
func (r *Registry) IsReady(c Capability) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.disposed || !r.ready {
		return false
	}
	switch c {
	case CapabilityPrompt:
		return r.text != nil
	case CapabilityMultimodal:
		return r.multimodal != nil
	case CapabilitySummarize:
		return r.summarizer != nil
	case CapabilityWrite:
		return r.writer != nil
	case CapabilityTranslate:
		return r.translator != nil
	}
	return false
}

// Dispose releases all sessions. The registry is unusable afterwards.
func (r *Registry) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disposed = true
	r.ready = false
	r.multimodal = nil
	r.text = nil
	r.summarizer = nil
	r.writer = nil
	r.translator = nil
}

// Multimodal returns the multimodal prompter if available.
func (r *Registry) Multimodal() (MultimodalPrompter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.multimodal, r.multimodal != nil && !r.disposed
}

// Text returns the text prompter if available.
func (r *Registry) Text() (TextPrompter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.text, r.text != nil && !r.disposed
}

// Summarizer returns the summarizer if available.
func (r *Registry) Summarizer() (Summarizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summarizer, r.summarizer != nil && !r.disposed
}

// Writer returns the writer if available.
func (r *Registry) Writer() (Writer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writer, r.writer != nil && !r.disposed
}

// Translators returns the translator factory if available.
func (r *Registry) Translators() (TranslatorFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.translator, r.translator != nil && !r.disposed
}
