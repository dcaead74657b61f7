package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"taskhub/config"
	"taskhub/internal/capture"
	"taskhub/internal/extraction"
	"taskhub/internal/httpserver"
	"taskhub/internal/scheduling"
	"taskhub/internal/store"
	taskHTTP "taskhub/internal/task/delivery/http"
	"taskhub/internal/task/repository"
	reposgoogle "taskhub/internal/task/repository/google"
	"taskhub/internal/task/usecase"
	"taskhub/internal/translation"
	"taskhub/pkg/aiprovider"
	"taskhub/pkg/datemath"
	"taskhub/pkg/deepseek"
	"taskhub/pkg/gcalendar"
	"taskhub/pkg/gemini"
	"taskhub/pkg/googleauth"
	"taskhub/pkg/gtasks"
	"taskhub/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskHub...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	fs := afero.NewOsFs()

	// 3. Store
	st, err := store.New(ctx, fs, cfg.Store.Path, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open store at %s: %v", cfg.Store.Path, err)
		return
	}

	// 4. AI provider registry
	var geminiClient *gemini.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient = gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			geminiClient.SetModel(cfg.Gemini.Model)
		}
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, multimodal extraction disabled")
	}

	var deepseekClient *deepseek.Client
	if cfg.DeepSeek.APIKey != "" {
		deepseekClient, err = deepseek.New(deepseek.Config{
			APIKey:  cfg.DeepSeek.APIKey,
			Model:   cfg.DeepSeek.Model,
			BaseURL: cfg.DeepSeek.BaseURL,
		})
		if err != nil {
			logger.Warnf(ctx, "DeepSeek not available: %v", err)
		}
	}

	registry := aiprovider.NewRegistry(aiprovider.Config{
		Gemini:            geminiClient,
		DeepSeek:          deepseekClient,
		RequestsPerMinute: cfg.AI.RequestsPerMinute,
	}, logger)
	if err := registry.Init(ctx); err != nil {
		logger.Errorf(ctx, "Failed to initialize AI providers: %v", err)
		return
	}
	defer registry.Dispose()

	// 5. Timezone
	timezone := cfg.Scheduling.Timezone
	dateParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		dateParser, _ = datemath.NewParser(timezone)
	}

	// 6. Google sync (optional)
	var (
		auth      *googleauth.Provider
		taskRepo  repository.TaskSyncer
		calRepo   repository.CalendarScheduler
		authFlow  httpserver.AuthFlow
		tokenProv googleauth.TokenProvider
	)
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		auth, err = googleauth.New(googleauth.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			TokenFile:    cfg.Google.TokenFile,
			Fs:           fs,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Google auth: %v", err)
			return
		}
		authFlow = auth
		tokenProv = auth

		httpClient := googleauth.NewHTTPClient(http.DefaultTransport, auth)
		httpClient.Timeout = 30 * time.Second

		tasksClient, err := gtasks.NewClientFromHTTP(ctx, httpClient)
		if err != nil {
			logger.Errorf(ctx, "Failed to build Google Tasks client: %v", err)
			return
		}
		calendarClient, err := gcalendar.NewClientFromHTTP(ctx, httpClient)
		if err != nil {
			logger.Errorf(ctx, "Failed to build Google Calendar client: %v", err)
			return
		}

		loc, _ := time.LoadLocation(timezone)
		slots := scheduling.New(reposgoogle.NewBusyLister(calendarClient), loc, logger)

		taskRepo = reposgoogle.NewTasksRepository(tasksClient, dateParser, logger)
		calRepo = reposgoogle.NewCalendarRepository(calendarClient, slots, timezone, logger)
		logger.Info(ctx, "Google sync initialized")
	} else {
		logger.Warn(ctx, "Google OAuth not configured, sync disabled")
	}

	// 7. Capture plumbing
	pageState := capture.NewPageState()
	recorder := capture.NewRecorder()

	// 8. Task domain
	taskUC := usecase.New(usecase.Dependencies{
		Store:      st,
		Extractor:  extraction.NewEngine(registry, logger),
		Translator: translation.New(registry, logger),
		Source:     pageState,
		Auth:       tokenProv,
		Tasks:      taskRepo,
		Calendar:   calRepo,
		Writers:    registry,
	}, logger)
	taskHandler := taskHTTP.New(logger, taskUC, recorder)

	// 9. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		TaskHandler: taskHandler,
		Store:       st,
		PageState:   pageState,
		Auth:        authFlow,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Server error: %v", err)
		return
	}
	logger.Info(ctx, "Server stopped gracefully")
}
