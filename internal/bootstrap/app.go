package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"eventplanner-backend/internal/documents"
	"eventplanner-backend/internal/invoices"
	"eventplanner-backend/internal/llm"
	openai "eventplanner-backend/internal/llm/openai"
	"eventplanner-backend/internal/projects"
	"eventplanner-backend/internal/shared/auth"
	"eventplanner-backend/internal/shared/config"
	"eventplanner-backend/internal/shared/server"
	"eventplanner-backend/internal/shared/storage/db"
	"eventplanner-backend/internal/shared/storage/object"
	localstore "eventplanner-backend/internal/shared/storage/object/local"
	s3store "eventplanner-backend/internal/shared/storage/object/s3"
	"eventplanner-backend/internal/users"
)

// App holds shared dependencies. Services and repos stay reachable so tests
// can swap collaborators after Build.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.UploadStore
	Tokens *auth.TokenManager

	UsersRepo     users.Repo
	ProjectsRepo  projects.Repo
	InvoicesRepo  invoices.Repo
	DocumentsRepo documents.Repo

	UsersService     *users.Service
	ProjectsService  *projects.Service
	InvoicesService  *invoices.Service
	DocumentsService *documents.Service

	UsersHandler     *users.Handler
	ProjectsHandler  *projects.Handler
	InvoicesHandler  *invoices.Handler
	DocumentsHandler *documents.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Tokens: auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		Tokens:           app.Tokens,
		UserResolver:     app.UsersService,
		UsersHandler:     app.UsersHandler,
		ProjectsHandler:  app.ProjectsHandler,
		InvoicesHandler:  app.InvoicesHandler,
		DocumentsHandler: app.DocumentsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.UploadStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.UploadDir), nil
	}
}

func buildServices(app *App) error {
	var (
		userRepo    users.Repo
		projectRepo projects.Repo
		invoiceRepo invoices.Repo
		docRepo     documents.Repo
	)
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		projectRepo = &projects.PGRepo{DB: app.DB}
		invoiceRepo = &invoices.PGRepo{DB: app.DB}
		docRepo = &documents.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		projectRepo = projects.NewMemoryRepo()
		invoiceRepo = invoices.NewMemoryRepo()
		docRepo = documents.NewMemoryRepo()
	}

	summarizer := llm.Summarizer(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if apiKey == "" {
			log.Printf("bootstrap: OPENAI_API_KEY empty; summarization disabled")
		} else {
			client, err := openai.NewClient(apiKey, app.Config.LLMModel)
			if err != nil {
				return err
			}
			summarizer = client
		}
	}

	userSvc := users.NewService(userRepo)
	projectSvc := projects.NewService(projectRepo)
	invoiceSvc := invoices.NewService(invoiceRepo, projectSvc)
	docSvc := documents.NewService(docRepo, projectSvc, app.Store, summarizer)

	app.UsersRepo = userRepo
	app.ProjectsRepo = projectRepo
	app.InvoicesRepo = invoiceRepo
	app.DocumentsRepo = docRepo
	app.UsersService = userSvc
	app.ProjectsService = projectSvc
	app.InvoicesService = invoiceSvc
	app.DocumentsService = docSvc
	app.UsersHandler = users.NewHandler(userSvc, app.Tokens)
	app.ProjectsHandler = projects.NewHandler(projectSvc)
	app.InvoicesHandler = invoices.NewHandler(invoiceSvc)
	app.DocumentsHandler = documents.NewHandler(docSvc)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
