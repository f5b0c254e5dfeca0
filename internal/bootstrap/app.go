package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/llm/gemini"
	"resume-analyzer/internal/resumes"
	"resume-analyzer/internal/server"
	"resume-analyzer/internal/services/health"
	"resume-analyzer/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Repo          resumes.Repo
	LLM           llm.Client
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := &resumes.Service{
		Repo: repo,
		LLM:  llmClient,
	}

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Repo:          repo,
		LLM:           llmClient,
		ResumeService: svc,
		ResumeHandler: resumes.NewHandler(svc, cfg.MaxUploadBytes),
		Health:        health.NewService(sqlDB),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Resumes: app.ResumeHandler,
		Health:  app.Health,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.Env == "development" {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.Env == "development" {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if cfg.Env == "development" {
			log.Printf("bootstrap: GEMINI_API_KEY empty; analysis requests will fail until configured")
			return llm.PlaceholderClient{}, nil
		}
		return nil, errGeminiKeyRequired
	}

	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	return llm.WithRetry(client), nil
}

type buildError string

func (e buildError) Error() string { return string(e) }

const (
	errDatabaseRequired  = buildError("DATABASE_URL is required outside development")
	errGeminiKeyRequired = buildError("GEMINI_API_KEY is required outside development")
)
