package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taskhub/internal/model"
	"taskhub/pkg/aiprovider"
	"taskhub/pkg/log"
)

type fakeMultimodal struct {
	resp       string
	err        error
	calls      int
	lastPrompt string
	lastMedia  aiprovider.Media
}

func (f *fakeMultimodal) Name() string { return "fake-multimodal" }

func (f *fakeMultimodal) Prompt(_ context.Context, prompt string) (string, error) {
	return f.resp, f.err
}

func (f *fakeMultimodal) PromptMedia(_ context.Context, prompt string, media aiprovider.Media) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastMedia = media
	return f.resp, f.err
}

type fakeText struct {
	resp       string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeText) Name() string { return "fake-text" }

func (f *fakeText) Prompt(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.resp, f.err
}

type fakeSummarizer struct {
	resp  string
	err   error
	calls int
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.calls++
	return f.resp, f.err
}

type fakeProviders struct {
	mm  *fakeMultimodal
	tp  *fakeText
	sum *fakeSummarizer
}

func (f *fakeProviders) Multimodal() (aiprovider.MultimodalPrompter, bool) {
	if f.mm == nil {
		return nil, false
	}
	return f.mm, true
}

func (f *fakeProviders) Text() (aiprovider.TextPrompter, bool) {
	if f.tp == nil {
		return nil, false
	}
	return f.tp, true
}

func (f *fakeProviders) Summarizer() (aiprovider.Summarizer, bool) {
	if f.sum == nil {
		return nil, false
	}
	return f.sum, true
}

func aiSettings() model.Settings {
	s := model.DefaultSettings()
	s.AIEnabled = true
	return s
}

func textInput(text string) Input {
	return Input{
		Signal:   model.TextSignal(text),
		Context:  model.CaptureContext{Title: "Project Wiki", URL: "https://wiki.example.com"},
		Settings: aiSettings(),
	}
}

func TestExtractTextViaProvider(t *testing.T) {
	tp := &fakeText{resp: `Here you go: {"task": "Send Q3 report", "priority": "high", "estimatedDuration": 45, "project": "Finance", "tags": ["report"]}`}
	e := NewEngine(&fakeProviders{tp: tp}, log.Discard())

	drafts := e.Extract(context.Background(), textInput("Please send the Q3 report"))

	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(drafts))
	}
	d := drafts[0]
	if d.Task != "Send Q3 report" || d.Priority != model.PriorityHigh || d.EstimatedDuration != 45 {
		t.Errorf("draft = %+v", d)
	}
	if d.Source != model.SourceAI {
		t.Errorf("source = %q, want ai", d.Source)
	}
	if d.OriginalText != "Please send the Q3 report" {
		t.Errorf("originalText = %q", d.OriginalText)
	}
}

func TestExtractCoercesUntrustedOutput(t *testing.T) {
	tp := &fakeText{resp: `{"task": "  Do the thing  ", "priority": "URGENT!!", "estimatedDuration": -5}`}
	e := NewEngine(&fakeProviders{tp: tp}, log.Discard())

	drafts := e.Extract(context.Background(), textInput("do the thing"))

	d := drafts[0]
	if d.Task != "Do the thing" {
		t.Errorf("task = %q, want trimmed", d.Task)
	}
	if d.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want coerced to medium", d.Priority)
	}
	if d.EstimatedDuration != 30 {
		t.Errorf("duration = %d, want defaulted to 30", d.EstimatedDuration)
	}
	if d.Tags == nil {
		t.Error("tags = nil, want empty slice")
	}
}

func TestExtractAIDisabledSkipsProviders(t *testing.T) {
	tp := &fakeText{resp: `{"task": "should not be used"}`}
	e := NewEngine(&fakeProviders{tp: tp}, log.Discard())

	in := textInput("Please send the Q3 report to finance by Friday, it's urgent")
	in.Settings.AIEnabled = false
	drafts := e.Extract(context.Background(), in)

	if tp.calls != 0 {
		t.Errorf("text provider called %d times with AI disabled", tp.calls)
	}
	d := drafts[0]
	if d.Task != "Please send the Q3 report to finance by Friday, it's urgent" {
		t.Errorf("task = %q, want input unchanged (under limit)", d.Task)
	}
	if d.Source != model.SourceFallback || d.Priority != model.PriorityMedium || d.EstimatedDuration != 30 {
		t.Errorf("fallback draft = %+v", d)
	}
	if d.Project != "Project Wiki" {
		t.Errorf("project = %q, want page title", d.Project)
	}
}

func TestExtractMalformedResponseFallsThrough(t *testing.T) {
	tp := &fakeText{resp: "I could not find any task in that."}
	e := NewEngine(&fakeProviders{tp: tp}, log.Discard())

	drafts := e.Extract(context.Background(), textInput("water the office plants"))

	if tp.calls != 1 {
		t.Errorf("text provider calls = %d, want 1", tp.calls)
	}
	if drafts[0].Source != model.SourceFallback {
		t.Errorf("source = %q, want fallback after unusable response", drafts[0].Source)
	}
}

func TestExtractProviderErrorFallsThrough(t *testing.T) {
	tp := &fakeText{err: errors.New("quota exceeded")}
	e := NewEngine(&fakeProviders{tp: tp}, log.Discard())

	drafts := e.Extract(context.Background(), textInput("book flights"))

	if len(drafts) != 1 || drafts[0].Source != model.SourceFallback {
		t.Fatalf("drafts = %+v, want single fallback draft", drafts)
	}
}

func TestExtractEmptyTaskDiscarded(t *testing.T) {
	tp := &fakeText{resp: `{"task": "   ", "priority": "high"}`}
	e := NewEngine(&fakeProviders{tp: tp}, log.Discard())

	drafts := e.Extract(context.Background(), textInput("something"))

	if drafts[0].Source != model.SourceFallback {
		t.Errorf("source = %q, want fallback when provider returns empty task", drafts[0].Source)
	}
}

func TestExtractPreSummarizesLongText(t *testing.T) {
	sum := &fakeSummarizer{resp: "Condensed version of the email"}
	tp := &fakeText{resp: `{"task": "Review contract"}`}
	e := NewEngine(&fakeProviders{tp: tp, sum: sum}, log.Discard())

	e.Extract(context.Background(), textInput(strings.Repeat("lots of words ", 30)))

	if sum.calls != 1 {
		t.Errorf("summarizer calls = %d, want 1 for >200 char input", sum.calls)
	}
	if !strings.Contains(tp.lastPrompt, "Condensed version of the email") {
		t.Error("prompt does not use the summarized text")
	}
}

func TestExtractShortTextSkipsSummarizer(t *testing.T) {
	sum := &fakeSummarizer{resp: "unused"}
	tp := &fakeText{resp: `{"task": "Review contract"}`}
	e := NewEngine(&fakeProviders{tp: tp, sum: sum}, log.Discard())

	e.Extract(context.Background(), textInput("short note"))

	if sum.calls != 0 {
		t.Errorf("summarizer calls = %d, want 0 for short input", sum.calls)
	}
}

func TestExtractExpandsEmailContext(t *testing.T) {
	tp := &fakeText{resp: `{"task": "Reply to vendor"}`}
	e := NewEngine(&fakeProviders{tp: tp}, log.Discard())

	in := textInput("please respond")
	in.Context.FullEmailContext = "Hi team, the vendor needs a response about the renewal terms before Thursday. Please respond with our decision."
	e.Extract(context.Background(), in)

	if !strings.Contains(tp.lastPrompt, "Full email context") {
		t.Error("prompt missing expanded email context")
	}
	if !strings.Contains(tp.lastPrompt, "renewal terms") {
		t.Error("prompt missing email body")
	}
}

func TestExtractScreenshotViaMultimodal(t *testing.T) {
	mm := &fakeMultimodal{resp: `{"task": "Fix the failing deploy", "priority": "high", "estimatedDuration": 60}`}
	e := NewEngine(&fakeProviders{mm: mm}, log.Discard())

	in := Input{
		Signal:   model.ImageSignal("image/png", []byte{0x89, 0x50}),
		Context:  model.CaptureContext{Title: "CI Dashboard"},
		Settings: aiSettings(),
	}
	drafts := e.Extract(context.Background(), in)

	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(drafts))
	}
	if drafts[0].Source != model.SourceScreenshotAI {
		t.Errorf("source = %q, want screenshot-ai", drafts[0].Source)
	}
	if mm.lastMedia.MimeType != "image/png" {
		t.Errorf("media mime = %q", mm.lastMedia.MimeType)
	}
	if drafts[0].OriginalText != "Captured from screenshot" {
		t.Errorf("originalText = %q", drafts[0].OriginalText)
	}
}

func TestExtractMeetingModeArray(t *testing.T) {
	mm := &fakeMultimodal{resp: `Sure: [
		{"task": "Draft the proposal", "priority": "high", "estimatedDuration": 60, "assignee": "Sam"},
		{"task": "Book the demo room", "priority": "low"}
	]`}
	e := NewEngine(&fakeProviders{mm: mm}, log.Discard())

	in := Input{
		Signal:   model.AudioSignal("audio/webm", []byte{1, 2, 3}, "we discussed the proposal"),
		Settings: aiSettings(),
		Mode:     ModeMeeting,
	}
	drafts := e.Extract(context.Background(), in)

	if len(drafts) != 2 {
		t.Fatalf("drafts = %d, want 2", len(drafts))
	}
	for _, d := range drafts {
		if d.Source != model.SourceAudioMeeting {
			t.Errorf("source = %q, want audio-meeting", d.Source)
		}
	}
	if drafts[0].Assignee != "Sam" {
		t.Errorf("assignee = %q, want Sam", drafts[0].Assignee)
	}
	if drafts[1].EstimatedDuration != 30 {
		t.Errorf("duration = %d, want defaulted", drafts[1].EstimatedDuration)
	}
}

func TestExtractAudioFallsBackToTranscript(t *testing.T) {
	mm := &fakeMultimodal{resp: "no structured data here"}
	tp := &fakeText{resp: `{"task": "Call the dentist", "priority": "medium"}`}
	e := NewEngine(&fakeProviders{mm: mm, tp: tp}, log.Discard())

	in := Input{
		Signal:   model.AudioSignal("audio/webm", []byte{1}, "remind me to call the dentist"),
		Settings: aiSettings(),
		Mode:     ModeQuick,
	}
	drafts := e.Extract(context.Background(), in)

	if mm.calls != 1 || tp.calls != 1 {
		t.Errorf("calls mm=%d tp=%d, want 1 and 1", mm.calls, tp.calls)
	}
	if drafts[0].Source != model.SourceAudioQuick {
		t.Errorf("source = %q, want audio-quick", drafts[0].Source)
	}
	if drafts[0].OriginalText != "remind me to call the dentist" {
		t.Errorf("originalText = %q, want transcript", drafts[0].OriginalText)
	}
}

func TestAudioUnsupportedLatch(t *testing.T) {
	mm := &fakeMultimodal{resp: "Please provide the audio file as an attachment instead."}
	tp := &fakeText{resp: `{"task": "Call the dentist"}`}
	e := NewEngine(&fakeProviders{mm: mm, tp: tp}, log.Discard())

	in := Input{
		Signal:   model.AudioSignal("audio/webm", []byte{1}, "call the dentist"),
		Settings: aiSettings(),
	}

	if e.AudioUnsupported() {
		t.Fatal("latch set before any extraction")
	}

	e.Extract(context.Background(), in)
	if !e.AudioUnsupported() {
		t.Fatal("latch not set after provide/audio response")
	}
	if mm.calls != 1 {
		t.Fatalf("mm calls = %d, want 1", mm.calls)
	}

	// Subsequent audio captures skip the multimodal path entirely.
	e.Extract(context.Background(), in)
	if mm.calls != 1 {
		t.Errorf("mm calls = %d after latch, want still 1", mm.calls)
	}

	// The latch is audio-only; screenshots still use multimodal.
	e.Extract(context.Background(), Input{
		Signal:   model.ImageSignal("image/png", []byte{1}),
		Settings: aiSettings(),
	})
	if mm.calls != 2 {
		t.Errorf("mm calls = %d, want image path unaffected by latch", mm.calls)
	}
}

func TestLatchNotSetOnOrdinaryGarbage(t *testing.T) {
	mm := &fakeMultimodal{resp: "I cannot help with that."}
	e := NewEngine(&fakeProviders{mm: mm}, log.Discard())

	e.Extract(context.Background(), Input{
		Signal:   model.AudioSignal("audio/webm", []byte{1}, ""),
		Settings: aiSettings(),
	})

	if e.AudioUnsupported() {
		t.Error("latch set on a response without provide/audio markers")
	}
}

func TestExtractAudioNoTranscriptFallback(t *testing.T) {
	e := NewEngine(&fakeProviders{}, log.Discard())

	drafts := e.Extract(context.Background(), Input{
		Signal:   model.AudioSignal("audio/webm", []byte{1}, ""),
		Settings: aiSettings(),
	})

	if drafts[0].Task != "Audio recording captured" {
		t.Errorf("task = %q, want placeholder for empty transcript", drafts[0].Task)
	}
}
