package usecase

import (
	"context"
	"strings"
	"time"

	"taskhub/internal/extraction"
	"taskhub/internal/model"
	"taskhub/internal/task"
)

// ProcessAudioRecording extracts drafts from a finished recording.
// Drafts come back for review; nothing is persisted here.
func (uc *implUseCase) ProcessAudioRecording(ctx context.Context, input task.AudioInput) (task.AudioOutput, error) {
	settings, err := uc.store.Settings(ctx)
	if err != nil {
		return task.AudioOutput{}, err
	}

	mode := input.Mode
	if mode == "" {
		mode = extraction.ModeQuick
	}

	signal := model.AudioSignal(input.MIME, input.Audio, input.Transcript)
	drafts := uc.extractor.Extract(ctx, extraction.Input{
		Signal:   signal,
		Context:  audioContext(mode, "audio-capture", uc.now()),
		Settings: settings,
		Mode:     mode,
	})

	out := uc.audioOutput(drafts)
	if mode == extraction.ModeMeeting {
		out.Summary = uc.meetingSummary(ctx, input.Transcript, drafts)
	}
	return out, nil
}

// ProcessTranscript extracts drafts from a bare speech transcript.
func (uc *implUseCase) ProcessTranscript(ctx context.Context, input task.TranscriptInput) (task.AudioOutput, error) {
	settings, err := uc.store.Settings(ctx)
	if err != nil {
		return task.AudioOutput{}, err
	}

	mode := input.Mode
	if mode == "" {
		mode = extraction.ModeQuick
	}
	captureCtx := audioContext(mode, "speech-capture", uc.now())

	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		draft := model.TaskDraft{
			Task:              "No speech detected",
			Priority:          model.PriorityMedium,
			EstimatedDuration: 30,
			Project:           "General",
			Tags:              []string{},
			Source:            model.SourceFallback,
			Context:           &captureCtx,
		}
		return task.AudioOutput{
			Tasks:            []model.TaskDraft{draft},
			FallbackUsed:     true,
			AudioUnsupported: uc.extractor.AudioUnsupported(),
		}, nil
	}

	drafts := uc.extractor.Extract(ctx, extraction.Input{
		Signal:   model.AudioSignal("", nil, transcript),
		Context:  captureCtx,
		Settings: settings,
		Mode:     mode,
	})

	out := uc.audioOutput(drafts)
	if mode == extraction.ModeMeeting {
		out.Summary = uc.meetingSummary(ctx, transcript, drafts)
	}
	return out, nil
}

// SaveAudioTasks persists reviewed drafts, one save with sync fan-out
// per draft. A persistence failure stops the loop and returns what
// was already saved.
func (uc *implUseCase) SaveAudioTasks(ctx context.Context, drafts []model.TaskDraft) ([]task.SaveResult, error) {
	if len(drafts) == 0 {
		return nil, task.ErrNoDrafts
	}

	settings, err := uc.store.Settings(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]task.SaveResult, 0, len(drafts))
	for _, draft := range drafts {
		if strings.TrimSpace(draft.Task) == "" {
			continue
		}
		res, err := uc.save(ctx, draft, settings)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, task.ErrNoDrafts
	}
	return results, nil
}

func (uc *implUseCase) audioOutput(drafts []model.TaskDraft) task.AudioOutput {
	out := task.AudioOutput{
		Tasks:            drafts,
		AudioUnsupported: uc.extractor.AudioUnsupported(),
	}
	if len(drafts) > 0 {
		first := drafts[0]
		out.FallbackUsed = first.Source == model.SourceFallback
		out.UsedAudio = !out.FallbackUsed && first.OriginalText == extraction.OriginalTextAudio
	}
	return out
}

func audioContext(mode extraction.Mode, url string, now time.Time) model.CaptureContext {
	title := "Voice Task"
	if mode == extraction.ModeMeeting {
		title = "Meeting"
	}
	return model.CaptureContext{
		URL:       url,
		Title:     title,
		Timestamp: now.Format(time.RFC3339),
	}
}
