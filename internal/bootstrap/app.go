// Package bootstrap wires configuration, storage, the LLM provider, the job
// dispatcher, and HTTP handlers into a runnable application. All dependency
// construction lives here; packages receive their collaborators explicitly.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	googleauth "studykit-backend/internal/auth"
	"studykit-backend/internal/documents"
	"studykit-backend/internal/jobs"
	"studykit-backend/internal/llm"
	"studykit-backend/internal/llm/ollama"
	"studykit-backend/internal/llm/openai"
	"studykit-backend/internal/materials"
	"studykit-backend/internal/progress"
	"studykit-backend/internal/shared/config"
	"studykit-backend/internal/shared/server"
	"studykit-backend/internal/shared/storage/db"
	"studykit-backend/internal/users"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultOllamaModel = "llama3.1"
)

// App holds the constructed application.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	DB         *sql.DB
	Dispatcher *jobs.Dispatcher

	DocumentsRepo documents.Repo
	MaterialsRepo materials.Repo
	ProgressRepo  progress.Repo
	UsersRepo     users.Repo

	DocumentsService *documents.Service
	MaterialsService *materials.Service
	ProgressService  *progress.Service
	UsersService     *users.Service
}

// Build prepares dependencies and the router. The dispatcher is constructed
// but not started; callers own its lifecycle via Start/Stop.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, driver, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	app.buildRepos(driver)

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	processor := &materials.Processor{
		Docs:      app.DocumentsRepo,
		Materials: app.MaterialsRepo,
		Generator: &materials.Generator{LLM: llmClient},
	}
	app.Dispatcher = jobs.NewDispatcher(processor, cfg.WorkerCount, cfg.QueueSize)

	app.DocumentsService = documents.NewService(app.DocumentsRepo, app.Dispatcher)
	if cfg.MaxUploadBytes > 0 {
		app.DocumentsService.MaxUploadBytes = cfg.MaxUploadBytes
	}
	app.MaterialsService = materials.NewService(app.DocumentsRepo, app.MaterialsRepo)
	app.ProgressService = progress.NewService(app.ProgressRepo)
	app.UsersService = users.NewService(app.UsersRepo)

	googleAuth := googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		app.UsersService,
	)

	app.Router = server.NewRouter(cfg, server.RouterDeps{
		Documents: documents.NewHandler(app.DocumentsService),
		Materials: materials.NewHandler(app.MaterialsService),
		Progress:  progress.NewHandler(app.ProgressService),
		Users:     users.NewHandler(app.UsersService),
		Google:    googleAuth,
	})

	return app, nil
}

// buildDB connects and migrates the configured SQL backend. An empty driver
// means in-memory repositories; in dev-like environments a failing database
// also falls back to memory instead of refusing to start.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, string, error) {
	driver := cfg.DatabaseDriver
	if driver == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: no database configured; using in-memory repositories")
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("DATABASE_DRIVER or DATABASE_URL is required in %s", cfg.Env)
	}

	dsn := cfg.DatabaseURL
	if driver == "sqlite" && dsn == "" {
		dsn = cfg.SQLitePath
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, driver, dsn, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB, driver)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database unavailable; using in-memory repositories: %v", err)
			return nil, "", nil
		}
		return nil, "", err
	}
	return sqlDB, driver, nil
}

func (app *App) buildRepos(driver string) {
	switch driver {
	case "postgres":
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.MaterialsRepo = &materials.PGRepo{DB: app.DB}
		app.ProgressRepo = &progress.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	case "sqlite":
		app.DocumentsRepo = &documents.SQLiteRepo{DB: app.DB}
		app.MaterialsRepo = &materials.SQLiteRepo{DB: app.DB}
		app.ProgressRepo = &progress.SQLiteRepo{DB: app.DB}
		app.UsersRepo = &users.SQLiteRepo{DB: app.DB}
	default:
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.MaterialsRepo = materials.NewMemoryRepo()
		app.ProgressRepo = progress.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}
}

// buildLLM selects the provider. Dev-like environments without credentials
// get the placeholder client so the rest of the pipeline stays exercisable.
func buildLLM(cfg config.Config) (llm.Client, error) {
	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second

	switch cfg.LLMProvider {
	case "ollama":
		model := cfg.LLMModel
		if model == "" {
			model = defaultOllamaModel
		}
		return ollama.NewClient(cfg.OllamaBaseURL, model, timeout)
	default:
		if cfg.OpenAIAPIKey == "" {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder LLM client")
				return llm.PlaceholderClient{}, nil
			}
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider openai")
		}
		model := cfg.LLMModel
		if model == "" {
			model = defaultOpenAIModel
		}
		return openai.NewClient(cfg.OpenAIAPIKey, model, timeout)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
