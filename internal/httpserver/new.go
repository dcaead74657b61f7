package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"taskhub/internal/capture"
	"taskhub/internal/store"
	taskHTTP "taskhub/internal/task/delivery/http"
	"taskhub/pkg/log"
)

// AuthFlow is the slice of the OAuth provider the server exposes over
// HTTP: status, interactive authorization, and revocation.
type AuthFlow interface {
	IsAuthenticated(ctx context.Context) bool
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) error
	Revoke(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin  *gin.Engine
	l    log.Logger
	host string
	port int
	mode string

	taskHandler taskHTTP.Handler
	store       *store.Store
	auth        AuthFlow
	pageState   *capture.PageState
}

// Config is the dependency bag passed to New().
type Config struct {
	Host string
	Port int
	Mode string

	TaskHandler taskHTTP.Handler
	Store       *store.Store
	PageState   *capture.PageState

	// Auth may be nil; the auth routes then report unauthenticated.
	Auth AuthFlow
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		taskHandler: cfg.TaskHandler,
		store:       cfg.Store,
		auth:        cfg.Auth,
		pageState:   cfg.PageState,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.pageState == nil {
		return errors.New("page state is required")
	}
	return nil
}
