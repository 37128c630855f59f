package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	v1 "github.com/hirestream/hirestream/internal/api/v1"
	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/rest/middleware"
)

type Handlers struct {
	Health     *v1.HealthHandler
	Auth       *v1.AuthHandler
	Person     *v1.PersonHandler
	Company    *v1.CompanyHandler
	Document   *v1.DocumentHandler
	Onboarding *v1.OnboardingHandler
	Advisor    *v1.AdvisorHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1Group := router.Group("/v1")

	// Public routes: application submission and link-token onboarding.
	public := v1Group.Group("", middleware.GuestAuthenticateMiddleware)
	{
		public.POST("/auth/signup", handlers.Auth.SignUp)
		public.POST("/auth/login", handlers.Auth.Login)
		public.POST("/applications", handlers.Person.CreateApplication)
		public.GET("/onboarding/phase", handlers.Onboarding.GetPhase)
	}

	// Staff routes behind JWT auth.
	private := v1Group.Group("", middleware.AuthenticateMiddleware(cfg, log))
	{
		persons := private.Group("/persons")
		{
			persons.GET("", handlers.Person.ListPersons)
			persons.POST("/import", handlers.Person.ImportEmployee)
			persons.GET("/:id", handlers.Person.GetPerson)
			persons.PUT("/:id", handlers.Person.UpdatePerson)
			persons.DELETE("/:id", handlers.Person.DeletePerson)
			persons.POST("/:id/status", handlers.Person.SetStatus)
			persons.POST("/:id/documents", handlers.Document.UploadDocument)
			persons.GET("/:id/documents", handlers.Document.ListDocuments)
			persons.GET("/:id/files/*key", handlers.Document.GetPersonFile)
			persons.GET("/:id/advisor/suggestions", handlers.Advisor.SuggestMissingDocuments)
		}

		companies := private.Group("/companies")
		{
			companies.POST("", handlers.Company.CreateCompany)
			companies.GET("", handlers.Company.ListCompanies)
			companies.GET("/:id", handlers.Company.GetCompany)
			companies.PUT("/:id", handlers.Company.UpdateCompany)
			companies.DELETE("/:id", handlers.Company.DeleteCompany)
			companies.POST("/:id/logo", handlers.Company.UploadLogo)
		}

		documents := private.Group("/documents")
		{
			documents.GET("/:id", handlers.Document.GetDocument)
			documents.DELETE("/:id", handlers.Document.DeleteDocument)
			documents.GET("/:id/fields", handlers.Advisor.ExtractDocumentFields)
		}

		private.GET("/files/*key", handlers.Document.GetFile)
		private.GET("/dashboard/summary", handlers.Person.GetDashboardSummary)
		private.GET("/credentials/expiring", handlers.Person.CheckExpiringCredentials)
		private.POST("/onboarding/links", handlers.Onboarding.IssueLink)
	}

	return router
}
