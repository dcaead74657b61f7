package capture

import (
	"context"
	"sync"

	"taskhub/internal/model"
)

// Snapshot is one push of the active page's state.
type Snapshot struct {
	Context        model.CaptureContext
	Selection      string
	PageText       string
	ScreenshotMIME string
	Screenshot     []byte
}

// PageState is a Source fed by client pushes: the browser side posts
// the active page's snapshot and capture operations read the latest
// one. Reads never block pushes.
type PageState struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewPageState() *PageState {
	return &PageState{}
}

// Update replaces the current snapshot wholesale.
func (p *PageState) Update(snap Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap = snap
}

func (p *PageState) Context(ctx context.Context) (model.CaptureContext, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap.Context, nil
}

func (p *PageState) Selection(ctx context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap.Selection, nil
}

func (p *PageState) PageText(ctx context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap.PageText, nil
}

// Screenshot returns the latest pushed image, or ErrNoContent when
// the page never supplied one.
func (p *PageState) Screenshot(ctx context.Context) (string, []byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.snap.Screenshot) == 0 {
		return "", nil, ErrNoContent
	}
	mime := p.snap.ScreenshotMIME
	if mime == "" {
		mime = "image/png"
	}
	return mime, p.snap.Screenshot, nil
}
