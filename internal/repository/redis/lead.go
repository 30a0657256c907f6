// Package redis contains the redis-backed repositories. Leads are the only
// data the marketing-site backend persists; redis with AOF persistence is
// enough for an append-only inbox that the sales tooling drains.
package redis

import (
	"context"
	"encoding/json"

	"github.com/docsense/docsense/internal/domain/lead"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/logger"
	redisClient "github.com/docsense/docsense/internal/redis"
	"github.com/redis/go-redis/v9"
)

const (
	leadKeyPrefix = "lead:"
	leadIndexKey  = "leads:index"
)

// LeadRepository implements lead.Repository on redis. Each lead is a JSON
// value under lead:<id>; leads:index keeps insertion order for List.
type LeadRepository struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewLeadRepository creates a new redis-backed lead repository
func NewLeadRepository(client *redisClient.Client, log *logger.Logger) *LeadRepository {
	return &LeadRepository{rdb: client.GetClient(), log: log}
}

func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	if l == nil {
		return ierr.NewError("lead cannot be nil").
			WithHint("Lead cannot be nil").
			Mark(ierr.ErrValidation)
	}

	data, err := json.Marshal(l)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to marshal lead").
			WithHint("Failed to store lead").
			Mark(ierr.ErrSystem)
	}

	key := leadKeyPrefix + l.ID

	// SetNX so a retried request cannot overwrite an existing lead
	ok, err := r.rdb.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return ierr.WithError(err).
			WithMessage("redis SETNX failed").
			WithHint("Failed to store lead").
			WithReportableDetails(map[string]any{"id": l.ID}).
			Mark(ierr.ErrDatabase)
	}
	if !ok {
		return ierr.NewError("lead already exists").
			WithHint("A lead with this ID already exists").
			WithReportableDetails(map[string]any{"id": l.ID}).
			Mark(ierr.ErrAlreadyExists)
	}

	if err := r.rdb.RPush(ctx, leadIndexKey, l.ID).Err(); err != nil {
		return ierr.WithError(err).
			WithMessage("redis RPUSH failed").
			WithHint("Failed to index lead").
			WithReportableDetails(map[string]any{"id": l.ID}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *LeadRepository) Get(ctx context.Context, id string) (*lead.Lead, error) {
	data, err := r.rdb.Get(ctx, leadKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ierr.NewError("lead not found").
				WithHint("Lead not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithMessage("redis GET failed").
			WithHint("Failed to load lead").
			Mark(ierr.ErrDatabase)
	}

	var l lead.Lead
	if err := json.Unmarshal([]byte(data), &l); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to unmarshal lead").
			WithHint("Failed to load lead").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrSystem)
	}
	return &l, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]*lead.Lead, error) {
	ids, err := r.rdb.LRange(ctx, leadIndexKey, 0, -1).Result()
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("redis LRANGE failed").
			WithHint("Failed to list leads").
			Mark(ierr.ErrDatabase)
	}

	leads := make([]*lead.Lead, 0, len(ids))
	for _, id := range ids {
		l, err := r.Get(ctx, id)
		if err != nil {
			if ierr.IsNotFound(err) {
				// index entry without a value; skip rather than fail the page
				r.log.Warnw("lead index entry without value", "id", id)
				continue
			}
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	n, err := r.rdb.LLen(ctx, leadIndexKey).Result()
	if err != nil {
		return 0, ierr.WithError(err).
			WithMessage("redis LLEN failed").
			WithHint("Failed to count leads").
			Mark(ierr.ErrDatabase)
	}
	return int(n), nil
}
