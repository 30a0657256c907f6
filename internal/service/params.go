package service

import (
	"github.com/docsense/docsense/internal/cache"
	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/domain/lead"
	"github.com/docsense/docsense/internal/email"
	"github.com/docsense/docsense/internal/logger"
)

// ServiceParams bundles the dependencies shared by all services.
type ServiceParams struct {
	Logger   *logger.Logger
	Config   *config.Configuration
	Cache    cache.Cache
	LeadRepo lead.Repository
	Email    *email.Service
}
