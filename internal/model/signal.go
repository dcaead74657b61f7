package model

// SignalKind discriminates the capture payload variants.
type SignalKind string

const (
	SignalText  SignalKind = "text"
	SignalImage SignalKind = "image"
	SignalAudio SignalKind = "audio"
)

// RawSignal is one captured input before extraction. Exactly one of
// the payload fields matching Kind is set.
type RawSignal struct {
	Kind SignalKind

	// Text payload.
	Text string

	// Image payload, e.g. a page screenshot.
	ImageMIME string
	Image     []byte

	// Audio payload, optionally accompanied by a live transcript
	// collected while recording.
	AudioMIME      string
	Audio          []byte
	LiveTranscript string
}

// TextSignal builds a text signal.
func TextSignal(text string) RawSignal {
	return RawSignal{Kind: SignalText, Text: text}
}

// ImageSignal builds an image signal.
func ImageSignal(mime string, data []byte) RawSignal {
	return RawSignal{Kind: SignalImage, ImageMIME: mime, Image: data}
}

// AudioSignal builds an audio signal.
func AudioSignal(mime string, data []byte, liveTranscript string) RawSignal {
	return RawSignal{Kind: SignalAudio, AudioMIME: mime, Audio: data, LiveTranscript: liveTranscript}
}
