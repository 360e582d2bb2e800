package repositories

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

const statsCacheKey = "library:stats"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatsCacheRepository caches the aggregate library counters in Redis so
// the public overview does not hit the database on every request.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached stats
}

// NewStatsCacheRepository creates a new repository instance with the given TTL
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached stats, or nil on a cache miss.
func (r *StatsCacheRepository) Get(ctx context.Context) (*models.LibraryStats, error) {
	val, err := r.client.Get(ctx, statsCacheKey).Result()
	if err != nil {
		logger.Log.Infow("stats cache get",
			"key", statsCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var stats models.LibraryStats
	if err := json.UnmarshalFromString(val, &stats); err != nil {
		logger.Log.Errorw("failed to unmarshal cached stats",
			"key", statsCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("stats cache get",
		"key", statsCacheKey,
		"result", stats,
		"error", nil,
	)

	return &stats, nil
}

// Set caches the stats with the configured expiration.
func (r *StatsCacheRepository) Set(ctx context.Context, stats models.LibraryStats) error {
	val, err := json.MarshalToString(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsCacheKey, val, r.exp).Err()

	logger.Log.Infow("stats cache set",
		"key", statsCacheKey,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached stats. Called after any mutation that
// changes the counters.
func (r *StatsCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, statsCacheKey).Err()

	logger.Log.Infow("stats cache invalidate",
		"key", statsCacheKey,
		"error", err,
	)

	return err
}
