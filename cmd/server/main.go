package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/hirestream/hirestream/internal/api"
	v1 "github.com/hirestream/hirestream/internal/api/v1"
	"github.com/hirestream/hirestream/internal/cache"
	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/linktoken"
	"github.com/hirestream/hirestream/internal/llm"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/objectstore"
	"github.com/hirestream/hirestream/internal/postgres"
	"github.com/hirestream/hirestream/internal/repository"
	"github.com/hirestream/hirestream/internal/sentry"
	"github.com/hirestream/hirestream/internal/service"
	"github.com/hirestream/hirestream/internal/validator"
)

// @title HireStream API
// @version 1.0
// @description Multi-tenant HR onboarding API
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Enter your token in the format *Bearer &lt;token&gt;*

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Object store
			objectstore.NewService,

			// LLM collaborator
			provideLLMClient,

			// Link tokens
			linktoken.NewService,

			// Repositories
			repository.NewPersonRepository,
			repository.NewCompanyRepository,
			repository.NewDocumentRepository,
			repository.NewUserRepository,
			repository.NewAuthRepository,

			// Services
			service.NewServiceParams,
			service.NewAuthService,
			service.NewPersonService,
			service.NewLifecycleService,
			service.NewCompanyService,
			service.NewDocumentService,
			service.NewAdvisorService,
			service.NewOnboardingService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app.Run()
}

func provideLLMClient(cfg *config.Configuration) (llm.Client, error) {
	return llm.NewClient(context.Background(), cfg)
}

func provideHandlers(
	logger *logger.Logger,
	authService service.AuthService,
	personService service.PersonService,
	lifecycleService service.LifecycleService,
	companyService service.CompanyService,
	documentService service.DocumentService,
	advisorService service.AdvisorService,
	onboardingService service.OnboardingService,
) api.Handlers {
	return api.Handlers{
		Health:     v1.NewHealthHandler(logger),
		Auth:       v1.NewAuthHandler(authService, logger),
		Person:     v1.NewPersonHandler(personService, lifecycleService, logger),
		Company:    v1.NewCompanyHandler(companyService, logger),
		Document:   v1.NewDocumentHandler(documentService, logger),
		Onboarding: v1.NewOnboardingHandler(onboardingService, logger),
		Advisor:    v1.NewAdvisorHandler(advisorService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
