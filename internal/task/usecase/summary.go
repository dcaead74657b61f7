package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"taskhub/internal/model"
)

// GenerateSummary renders a daily report of today's captured tasks,
// grouped by project. When a writing provider is available the report
// is rewritten into friendlier prose; the plain rendering is the
// fallback.
func (uc *implUseCase) GenerateSummary(ctx context.Context) (string, error) {
	tasks, err := uc.store.Tasks(ctx)
	if err != nil {
		return "", err
	}

	now := uc.now()
	today := now.Format("2006-01-02")
	var todays []model.TaskRecord
	for _, t := range tasks {
		if strings.HasPrefix(t.CreatedAt, today) {
			todays = append(todays, t)
		}
	}
	if len(todays) == 0 {
		return "No tasks captured today.", nil
	}

	basic := renderDailySummary(now, todays)
	if uc.writers == nil {
		return basic, nil
	}
	w, ok := uc.writers.Writer()
	if !ok {
		return basic, nil
	}

	prompt := "Rewrite this daily task summary as a short, encouraging progress report. " +
		"Keep every task and number intact.\n\n" + basic
	enhanced, err := w.Write(ctx, prompt)
	if err != nil || strings.TrimSpace(enhanced) == "" {
		uc.l.Debugf(ctx, "task.GenerateSummary writer unavailable, using basic report: %v", err)
		return basic, nil
	}
	return enhanced, nil
}

func renderDailySummary(now time.Time, tasks []model.TaskRecord) string {
	byProject := make(map[string][]model.TaskRecord)
	var order []string
	totalMinutes := 0
	for _, t := range tasks {
		project := t.Project
		if project == "" {
			project = "General"
		}
		if _, seen := byProject[project]; !seen {
			order = append(order, project)
		}
		byProject[project] = append(byProject[project], t)
		totalMinutes += t.EstimatedDuration
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Daily Summary - %s\n\n", now.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "Tasks captured: %d\n", len(tasks))
	fmt.Fprintf(&b, "Estimated time: %.1f hours\n\n", roundHours(totalMinutes))

	for _, project := range order {
		group := byProject[project]
		minutes := 0
		for _, t := range group {
			minutes += t.EstimatedDuration
		}
		fmt.Fprintf(&b, "%s (%d tasks, %.1f hours)\n", project, len(group), roundHours(minutes))
		for _, t := range group {
			fmt.Fprintf(&b, "  - %s (%s, %d min)\n", t.Task, t.Priority, t.EstimatedDuration)
		}
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}

// meetingSummary produces the meeting-mode report. Writer output is
// preferred; basicMeetingSummary never fails.
func (uc *implUseCase) meetingSummary(ctx context.Context, transcript string, drafts []model.TaskDraft) string {
	if uc.writers != nil {
		if w, ok := uc.writers.Writer(); ok {
			prompt := meetingSummaryPrompt(transcript, drafts)
			out, err := w.Write(ctx, prompt)
			if err == nil && strings.TrimSpace(out) != "" {
				return out
			}
			uc.l.Debugf(ctx, "task: meeting summary writer failed, using basic format: %v", err)
		}
	}
	return basicMeetingSummary(transcript, drafts)
}

func meetingSummaryPrompt(transcript string, drafts []model.TaskDraft) string {
	var b strings.Builder
	b.WriteString("Write a concise meeting summary with these sections: Key Discussion Points, Decisions Made, Action Items.\n\n")
	if transcript != "" {
		b.WriteString("Transcript:\n")
		b.WriteString(transcript)
		b.WriteString("\n\n")
	}
	b.WriteString("Extracted action items:\n")
	for i, d := range drafts {
		fmt.Fprintf(&b, "%d. %s (priority %s, ~%d min)\n", i+1, d.Task, d.Priority, d.EstimatedDuration)
	}
	return b.String()
}

func basicMeetingSummary(transcript string, drafts []model.TaskDraft) string {
	var b strings.Builder
	b.WriteString("Meeting Summary\n\n")

	if preview := strings.TrimSpace(transcript); preview != "" {
		if len(preview) > 300 {
			preview = preview[:300] + "..."
		}
		fmt.Fprintf(&b, "Discussion: %s\n\n", preview)
	}

	fmt.Fprintf(&b, "Action items (%d):\n", len(drafts))
	totalMinutes := 0
	for i, d := range drafts {
		fmt.Fprintf(&b, "%d. %s (priority %s, ~%d min)\n", i+1, d.Task, d.Priority, d.EstimatedDuration)
		totalMinutes += d.EstimatedDuration
	}
	fmt.Fprintf(&b, "\nTotal estimated time: %d minutes", totalMinutes)
	return b.String()
}

// roundHours converts minutes to hours rounded to one decimal.
func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
