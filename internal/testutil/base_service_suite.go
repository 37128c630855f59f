package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hirestream/hirestream/internal/cache"
	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/domain/auth"
	"github.com/hirestream/hirestream/internal/domain/company"
	"github.com/hirestream/hirestream/internal/domain/document"
	"github.com/hirestream/hirestream/internal/domain/person"
	"github.com/hirestream/hirestream/internal/domain/user"
	"github.com/hirestream/hirestream/internal/linktoken"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/postgres"
	"github.com/hirestream/hirestream/internal/types"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	PersonRepo   person.Repository
	CompanyRepo  company.Repository
	DocumentRepo document.Repository
	UserRepo     user.Repository
	AuthRepo     auth.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	stores      Stores
	db          postgres.IClient
	objectStore *InMemoryObjectStore
	llm         *MockLLMClient
	linkToken   linktoken.Service
	cache       cache.Cache
	logger      *logger.Logger
	config      *config.Configuration
	now         time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	cfg := config.GetDefaultConfig()

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		PersonRepo:   NewInMemoryPersonStore(),
		CompanyRepo:  NewInMemoryCompanyStore(),
		DocumentRepo: NewInMemoryDocumentStore(),
		UserRepo:     NewInMemoryUserStore(),
		AuthRepo:     NewInMemoryAuthStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.objectStore = NewInMemoryObjectStore()
	s.llm = NewMockLLMClient()
	s.linkToken = linktoken.NewService(s.config)
	s.cache = cache.NewInMemoryCache(s.config)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.PersonRepo.(*InMemoryPersonStore).Clear()
	s.stores.CompanyRepo.(*InMemoryCompanyStore).Clear()
	s.stores.DocumentRepo.(*InMemoryDocumentStore).Clear()
	s.cache.Flush(context.Background())
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext overrides the test context, e.g. to switch tenants
func (s *BaseServiceTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetObjectStore returns the in-memory object store
func (s *BaseServiceTestSuite) GetObjectStore() *InMemoryObjectStore {
	return s.objectStore
}

// GetLLM returns the scripted LLM client
func (s *BaseServiceTestSuite) GetLLM() *MockLLMClient {
	return s.llm
}

// GetLinkToken returns the link token service
func (s *BaseServiceTestSuite) GetLinkToken() linktoken.Service {
	return s.linkToken
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the time recorded at test setup
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetTenantID returns the tenant the test context is scoped to
func (s *BaseServiceTestSuite) GetTenantID() string {
	return types.GetTenantID(s.ctx)
}
