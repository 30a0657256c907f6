package testutil

import (
	"context"

	"github.com/docsense/docsense/internal/cache"
	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/logger"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides fresh in-memory dependencies per test.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	cfg       *config.Configuration
	log       *logger.Logger
	leadStore *InMemoryLeadStore
	memCache  cache.Cache
}

// SetupTest resets all stores before each test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = config.GetDefaultConfig()
	s.log = logger.GetLogger()
	s.leadStore = NewInMemoryLeadStore()
	s.memCache = cache.NewInMemoryCache()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.log
}

func (s *BaseServiceTestSuite) GetLeadStore() *InMemoryLeadStore {
	return s.leadStore
}

func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.memCache
}
