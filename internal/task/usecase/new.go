package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"taskhub/internal/capture"
	"taskhub/internal/extraction"
	"taskhub/internal/store"
	"taskhub/internal/task/repository"
	"taskhub/internal/translation"
	"taskhub/pkg/aiprovider"
	"taskhub/pkg/googleauth"
	"taskhub/pkg/log"
)

// WriterSource hands out the long-form writing provider when one is
// configured.
type WriterSource interface {
	Writer() (aiprovider.Writer, bool)
}

// Dependencies are the collaborators of the task use case. Auth,
// Tasks, Calendar and Writers may be nil; the affected features then
// degrade (sync skipped, basic summaries).
type Dependencies struct {
	Store      *store.Store
	Extractor  *extraction.Engine
	Translator *translation.Adapter
	Source     capture.Source
	Auth       googleauth.TokenProvider
	Tasks      repository.TaskSyncer
	Calendar   repository.CalendarScheduler
	Writers    WriterSource
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	store      *store.Store
	extractor  *extraction.Engine
	translator *translation.Adapter
	source     capture.Source
	auth       googleauth.TokenProvider
	tasks      repository.TaskSyncer
	calendar   repository.CalendarScheduler
	writers    WriterSource

	validate *validator.Validate
	now      func() time.Time
}

// New creates a new task UseCase implementation.
func New(deps Dependencies, l log.Logger) *implUseCase {
	return &implUseCase{
		l:          l,
		store:      deps.Store,
		extractor:  deps.Extractor,
		translator: deps.Translator,
		source:     deps.Source,
		auth:       deps.Auth,
		tasks:      deps.Tasks,
		calendar:   deps.Calendar,
		writers:    deps.Writers,
		validate:   validator.New(),
		now:        time.Now,
	}
}
