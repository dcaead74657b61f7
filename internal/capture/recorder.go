package capture

import (
	"strings"
	"sync"

	"taskhub/internal/model"
)

// Recorder assembles one audio recording from streamed chunks plus an
// optional live transcript. The capture handle is exclusive: at most
// one recording is active at a time and a second Start is rejected.
type Recorder struct {
	mu         sync.Mutex
	active     bool
	mime       string
	chunks     [][]byte
	transcript strings.Builder
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a recording session. Returns ErrAlreadyRecording when
// one is already active.
func (r *Recorder) Start(mime string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active {
		return ErrAlreadyRecording
	}
	if mime == "" {
		mime = "audio/webm"
	}
	r.active = true
	r.mime = mime
	r.chunks = nil
	r.transcript.Reset()
	return nil
}

// Recording reports whether a session is active.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// AppendChunk adds one audio chunk to the active session.
func (r *Recorder) AppendChunk(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return ErrNotRecording
	}
	if len(data) > 0 {
		buf := make([]byte, len(data))
		copy(buf, data)
		r.chunks = append(r.chunks, buf)
	}
	return nil
}

// AppendTranscript adds live speech-recognition text to the session.
func (r *Recorder) AppendTranscript(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return ErrNotRecording
	}
	if text = strings.TrimSpace(text); text != "" {
		if r.transcript.Len() > 0 {
			r.transcript.WriteByte(' ')
		}
		r.transcript.WriteString(text)
	}
	return nil
}

// Stop ends the session and returns the assembled signal. A session
// that collected neither audio nor transcript yields ErrNoContent.
func (r *Recorder) Stop() (model.RawSignal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return model.RawSignal{}, ErrNotRecording
	}

	var size int
	for _, c := range r.chunks {
		size += len(c)
	}
	audio := make([]byte, 0, size)
	for _, c := range r.chunks {
		audio = append(audio, c...)
	}
	transcript := r.transcript.String()

	r.reset()

	if len(audio) == 0 && transcript == "" {
		return model.RawSignal{}, ErrNoContent
	}
	return model.AudioSignal(r.mime, audio, transcript), nil
}

// Cancel abandons the in-flight session and discards its buffers.
// Safe to call when idle.
func (r *Recorder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func (r *Recorder) reset() {
	r.active = false
	r.chunks = nil
	r.transcript.Reset()
}
