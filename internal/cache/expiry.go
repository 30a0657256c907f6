package cache

import "time"

const (
	ExpiryDefaultInMemory = 30 * time.Minute
	ExpiryDefaultRedis    = 5 * time.Minute

	// ExpiryPlanCatalog is deliberately long: the catalog only changes with
	// a deploy.
	ExpiryPlanCatalog = 12 * time.Hour
)
