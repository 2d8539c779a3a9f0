package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/campaign-service/internal/logger"
	"github.com/sbilibin2017/campaign-service/internal/models"
)

// CampaignCacheRepository keeps JSON copies of campaign rows in Redis.
type CampaignCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached rows
}

// NewCampaignCacheRepository creates a cache repository with the given TTL.
func NewCampaignCacheRepository(client *redis.Client, expiration time.Duration) *CampaignCacheRepository {
	return &CampaignCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// versionTTL bounds how long an eviction counter outlives its last bump. It only has
// to exceed the time between a cache miss and the matching Set.
const versionTTL = 24 * time.Hour

func campaignKey(id uuid.UUID) string {
	return fmt.Sprintf("campaign:%s", id)
}

func campaignVersionKey(id uuid.UUID) string {
	return fmt.Sprintf("campaign:%s:version", id)
}

// Get returns the cached campaign. On a miss it returns nil together with the
// current eviction version, which the caller hands back to Set.
func (r *CampaignCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.CampaignDB, int64, error) {
	key := campaignKey(id)

	var dataCmd, versionCmd *redis.StringCmd
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		dataCmd = pipe.Get(ctx, key)
		versionCmd = pipe.Get(ctx, campaignVersionKey(id))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return nil, 0, err
	}

	val, err := dataCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		version, err := readVersion(versionCmd)
		if err != nil {
			logger.Log.Errorw("cache version unreadable", "key", key, "error", err)
			return nil, 0, err
		}
		logger.Log.Debugw("cache miss", "key", key, "version", version)
		return nil, version, nil
	}
	if err != nil {
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return nil, 0, err
	}

	var c models.CampaignDB
	if err := json.Unmarshal(val, &c); err != nil {
		logger.Log.Errorw("cache entry corrupt", "key", key, "error", err)
		return nil, 0, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &c, 0, nil
}

// Set stores the campaign under its id, but only if no eviction happened since the
// miss that returned version. A skipped write is not an error.
func (r *CampaignCacheRepository) Set(ctx context.Context, c *models.CampaignDB, version int64) error {
	key := campaignKey(c.ID)
	versionKey := campaignVersionKey(c.ID)

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(tx.Get(ctx, versionKey))
		if err != nil {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}, versionKey)
	if errors.Is(err, errStaleVersion) || errors.Is(err, redis.TxFailedErr) {
		logger.Log.Debugw("cache set skipped after eviction", "key", key, "version", version)
		return nil
	}

	logger.Log.Debugw("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}

// Delete evicts the campaign and bumps its version so in-flight reads do not
// re-cache an older row. Evicting a missing key is not an error.
func (r *CampaignCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := campaignKey(id)
	versionKey := campaignVersionKey(id)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, versionTTL)
		pipe.Del(ctx, key)
		return nil
	})

	logger.Log.Debugw("cache delete", "key", key, "error", err)

	return err
}

var errStaleVersion = errors.New("campaign evicted since cache miss")

func readVersion(cmd *redis.StringCmd) (int64, error) {
	version, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}
