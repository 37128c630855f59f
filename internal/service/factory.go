package service

import (
	"github.com/hirestream/hirestream/internal/cache"
	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/domain/auth"
	"github.com/hirestream/hirestream/internal/domain/company"
	"github.com/hirestream/hirestream/internal/domain/document"
	"github.com/hirestream/hirestream/internal/domain/person"
	"github.com/hirestream/hirestream/internal/domain/user"
	"github.com/hirestream/hirestream/internal/linktoken"
	"github.com/hirestream/hirestream/internal/llm"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/objectstore"
	"github.com/hirestream/hirestream/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger      *logger.Logger
	Config      *config.Configuration
	DB          postgres.IClient
	ObjectStore objectstore.Service
	LLM         llm.Client
	LinkToken   linktoken.Service
	Cache       cache.Cache

	// Repositories
	PersonRepo   person.Repository
	CompanyRepo  company.Repository
	DocumentRepo document.Repository
	UserRepo     user.Repository
	AuthRepo     auth.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	objectStore objectstore.Service,
	llmClient llm.Client,
	linkToken linktoken.Service,
	cacheClient cache.Cache,
	personRepo person.Repository,
	companyRepo company.Repository,
	documentRepo document.Repository,
	userRepo user.Repository,
	authRepo auth.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		DB:           db,
		ObjectStore:  objectStore,
		LLM:          llmClient,
		LinkToken:    linkToken,
		Cache:        cacheClient,
		PersonRepo:   personRepo,
		CompanyRepo:  companyRepo,
		DocumentRepo: documentRepo,
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
	}
}
