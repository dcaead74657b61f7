package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"taskhub/internal/model"
	"taskhub/pkg/log"
)

// Store is the durable home of tasks and settings, one JSON document
// on disk. Every logical mutation is a full read-modify-write of the
// document, serialized by a mutex so overlapping operations never
// overwrite each other's entries.
type Store struct {
	fs   afero.Fs
	path string
	l    log.Logger

	mu sync.Mutex
}

// document is the on-disk layout. Settings use pointer fields so a
// file written by an older version can be told apart from explicit
// zero values and backfilled additively.
type document struct {
	Tasks    []model.TaskRecord `json:"tasks"`
	Settings *settingsDoc       `json:"settings,omitempty"`
}

type settingsDoc struct {
	GoogleSyncEnabled   *bool   `json:"googleSyncEnabled,omitempty"`
	AIEnabled           *bool   `json:"aiEnabled,omitempty"`
	DefaultDuration     *int    `json:"defaultDuration,omitempty"`
	ProductiveHours     *int    `json:"productiveHours,omitempty"`
	WorkStartTime       *string `json:"workStartTime,omitempty"`
	TranslationEnabled  *bool   `json:"translationEnabled,omitempty"`
	TranslationLanguage *string `json:"translationLanguage,omitempty"`
}

// New opens the store, seeding defaults on first run and backfilling
// any settings keys missing from an existing file.
func New(ctx context.Context, fs afero.Fs, path string, l log.Logger) (*Store, error) {
	s := &Store{fs: fs, path: path, l: l}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	_, changed := resolveSettings(doc.Settings)
	if doc.Settings == nil {
		l.Info(ctx, "store: seeding default settings")
	} else if changed {
		l.Info(ctx, "store: backfilling missing settings keys")
	}
	if doc.Settings == nil || changed {
		merged := mergeSettings(doc.Settings)
		doc.Settings = &merged
		if err := s.write(doc); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Load returns the full document contents.
func (s *Store) Load(ctx context.Context) ([]model.TaskRecord, model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, model.Settings{}, err
	}
	settings, _ := resolveSettings(doc.Settings)
	return doc.Tasks, settings, nil
}

// Tasks returns all stored tasks. Callers sort by Order.
func (s *Store) Tasks(ctx context.Context) ([]model.TaskRecord, error) {
	tasks, _, err := s.Load(ctx)
	return tasks, err
}

// Settings returns the effective settings with defaults applied.
func (s *Store) Settings(ctx context.Context) (model.Settings, error) {
	_, settings, err := s.Load(ctx)
	return settings, err
}

// SaveSettings overwrites the settings record, keeping tasks intact.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.mutate(func(doc *document) error {
		sd := toSettingsDoc(settings)
		doc.Settings = &sd
		return nil
	})
}

// AppendTask adds one task record.
func (s *Store) AppendTask(ctx context.Context, rec model.TaskRecord) error {
	return s.mutate(func(doc *document) error {
		doc.Tasks = append(doc.Tasks, rec)
		return nil
	})
}

// UpdateTask applies fn to the task with the given id and persists the
// result. Returns the updated record.
func (s *Store) UpdateTask(ctx context.Context, id string, fn func(*model.TaskRecord) error) (model.TaskRecord, error) {
	var updated model.TaskRecord
	err := s.mutate(func(doc *document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				if err := fn(&doc.Tasks[i]); err != nil {
					return err
				}
				updated = doc.Tasks[i]
				return nil
			}
		}
		return ErrTaskNotFound
	})
	return updated, err
}

// DeleteTask removes the task with the given id and returns it.
func (s *Store) DeleteTask(ctx context.Context, id string) (model.TaskRecord, error) {
	var removed model.TaskRecord
	err := s.mutate(func(doc *document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				removed = doc.Tasks[i]
				doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)
				return nil
			}
		}
		return ErrTaskNotFound
	})
	return removed, err
}

// SwapOrder exchanges the sort keys of two tasks in one write, the
// drag-reorder primitive.
func (s *Store) SwapOrder(ctx context.Context, idA, idB string) error {
	return s.mutate(func(doc *document) error {
		a, b := -1, -1
		for i := range doc.Tasks {
			switch doc.Tasks[i].ID {
			case idA:
				a = i
			case idB:
				b = i
			}
		}
		if a < 0 || b < 0 {
			return ErrTaskNotFound
		}
		doc.Tasks[a].Order, doc.Tasks[b].Order = doc.Tasks[b].Order, doc.Tasks[a].Order
		return nil
	})
}

func (s *Store) mutate(fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (*document, error) {
	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		// Missing file means first run.
		var doc document
		return &doc, nil
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	if doc.Tasks == nil {
		doc.Tasks = []model.TaskRecord{}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(s.fs, s.path, b, 0o644)
}

// resolveSettings applies defaults to any unset keys. The second
// return reports whether anything was backfilled.
func resolveSettings(sd *settingsDoc) (model.Settings, bool) {
	out := model.DefaultSettings()
	if sd == nil {
		return out, true
	}

	changed := false
	if sd.GoogleSyncEnabled != nil {
		out.GoogleSyncEnabled = *sd.GoogleSyncEnabled
	} else {
		changed = true
	}
	if sd.AIEnabled != nil {
		out.AIEnabled = *sd.AIEnabled
	} else {
		changed = true
	}
	if sd.DefaultDuration != nil {
		out.DefaultDuration = *sd.DefaultDuration
	} else {
		changed = true
	}
	if sd.ProductiveHours != nil {
		out.ProductiveHours = *sd.ProductiveHours
	} else {
		changed = true
	}
	if sd.WorkStartTime != nil {
		out.WorkStartTime = *sd.WorkStartTime
	} else {
		changed = true
	}
	if sd.TranslationEnabled != nil {
		out.TranslationEnabled = *sd.TranslationEnabled
	} else {
		changed = true
	}
	if sd.TranslationLanguage != nil {
		out.TranslationLanguage = *sd.TranslationLanguage
	} else {
		changed = true
	}
	return out, changed
}

// mergeSettings produces the fully-populated doc written back after a
// seed or backfill, preserving any keys the file already had.
func mergeSettings(sd *settingsDoc) settingsDoc {
	resolved, _ := resolveSettings(sd)
	return toSettingsDoc(resolved)
}

func toSettingsDoc(s model.Settings) settingsDoc {
	return settingsDoc{
		GoogleSyncEnabled:   &s.GoogleSyncEnabled,
		AIEnabled:           &s.AIEnabled,
		DefaultDuration:     &s.DefaultDuration,
		ProductiveHours:     &s.ProductiveHours,
		WorkStartTime:       &s.WorkStartTime,
		TranslationEnabled:  &s.TranslationEnabled,
		TranslationLanguage: &s.TranslationLanguage,
	}
}
