package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
)

const dashboardCachePrefix = "dashboard:"

// DashboardCacheService caches whole dashboard snapshots per user. A nil
// underlying cache disables caching; all methods then no-op.
type DashboardCacheService interface {
	GetSnapshot(ctx context.Context, userID string) (*dto.DashboardResponse, error)
	PutSnapshot(ctx context.Context, userID string, snapshot *dto.DashboardResponse) error
	Invalidate(ctx context.Context, userID string) error
}

type dashboardCacheServiceImpl struct {
	cache domain.Cache
	cfg   *config.Config
}

// NewDashboardCacheService creates a new DashboardCacheService.
func NewDashboardCacheService(cache domain.Cache, cfg *config.Config) DashboardCacheService {
	return &dashboardCacheServiceImpl{cache: cache, cfg: cfg}
}

// GetSnapshot returns the cached snapshot or nil on a miss. Cache errors
// are logged and reported as misses; the dashboard must keep working when
// Redis is down.
func (s *dashboardCacheServiceImpl) GetSnapshot(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	if s.cache == nil {
		return nil, nil
	}

	key := dashboardCachePrefix + userID
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Dashboard cache get failed", zap.Error(err), zap.String("key", key))
		}
		return nil, nil
	}

	var snapshot dto.DashboardResponse
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		logger.Get().Warn("Failed to unmarshal cached dashboard snapshot", zap.Error(err), zap.String("key", key))
		return nil, nil
	}
	return &snapshot, nil
}

func (s *dashboardCacheServiceImpl) PutSnapshot(ctx context.Context, userID string, snapshot *dto.DashboardResponse) error {
	if s.cache == nil || snapshot == nil {
		return nil
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	key := dashboardCachePrefix + userID
	if err := s.cache.Set(ctx, key, string(raw), s.cfg.Cache.DashboardTTL); err != nil {
		logger.Get().Warn("Dashboard cache set failed", zap.Error(err), zap.String("key", key))
	}
	return nil
}

// Invalidate drops the cached snapshot. Called after resume uploads and
// interview submissions.
func (s *dashboardCacheServiceImpl) Invalidate(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	key := dashboardCachePrefix + userID
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Warn("Dashboard cache invalidation failed", zap.Error(err), zap.String("key", key))
	}
	return nil
}
