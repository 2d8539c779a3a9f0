package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/campaign-service/internal/models"
)

func setupCampaignCache(t *testing.T, ttl time.Duration) (*CampaignCacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCampaignCacheRepository(client, ttl), mr
}

func TestCampaignCacheRepository_SetGetDelete(t *testing.T) {
	repo, mr := setupCampaignCache(t, time.Minute)
	ctx := context.Background()

	desc := "A test campaign"
	c := &models.CampaignDB{
		ID:          uuid.New(),
		Name:        "Test Campaign",
		Description: &desc,
		StartDate:   time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
		Budget:      decimal.RequireFromString("1000.50"),
		CreatedBy:   uuid.New(),
	}

	got, version, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, version)

	require.NoError(t, repo.Set(ctx, c, version))
	assert.True(t, mr.Exists("campaign:"+c.ID.String()))
	assert.Equal(t, time.Minute, mr.TTL("campaign:"+c.ID.String()))

	got, _, err = repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, desc, *got.Description)
	assert.True(t, c.Budget.Equal(got.Budget))
	assert.True(t, c.StartDate.Equal(got.StartDate))
	assert.Equal(t, c.CreatedBy, got.CreatedBy)

	require.NoError(t, repo.Delete(ctx, c.ID))
	got, version, err = repo.Get(ctx, c.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int64(1), version)

	assert.NoError(t, repo.Delete(ctx, c.ID), "deleting a missing key is fine")
}

func TestCampaignCacheRepository_SetAfterEvictionIsSkipped(t *testing.T) {
	repo, mr := setupCampaignCache(t, time.Minute)
	ctx := context.Background()

	stale := &models.CampaignDB{ID: uuid.New(), Name: "Before update"}

	_, version, err := repo.Get(ctx, stale.ID)
	require.NoError(t, err)

	// An update lands between the miss and the write-back.
	require.NoError(t, repo.Delete(ctx, stale.ID))

	require.NoError(t, repo.Set(ctx, stale, version))
	assert.False(t, mr.Exists("campaign:"+stale.ID.String()))

	versionKey := "campaign:" + stale.ID.String() + ":version"
	assert.Equal(t, versionTTL, mr.TTL(versionKey))

	// The next miss sees the bumped version and may cache again.
	_, version, err = repo.Get(ctx, stale.ID)
	require.NoError(t, err)
	fresh := &models.CampaignDB{ID: stale.ID, Name: "After update"}
	require.NoError(t, repo.Set(ctx, fresh, version))

	got, _, err := repo.Get(ctx, stale.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "After update", got.Name)
}

func TestCampaignCacheRepository_Expiry(t *testing.T) {
	repo, mr := setupCampaignCache(t, time.Second)
	ctx := context.Background()

	c := &models.CampaignDB{ID: uuid.New(), Name: "Short lived"}
	require.NoError(t, repo.Set(ctx, c, 0))

	mr.FastForward(2 * time.Second)

	got, _, err := repo.Get(ctx, c.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCampaignCacheRepository_CorruptEntry(t *testing.T) {
	repo, mr := setupCampaignCache(t, time.Minute)
	id := uuid.New()
	require.NoError(t, mr.Set("campaign:"+id.String(), "{not json"))

	got, _, err := repo.Get(context.Background(), id)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestCampaignCacheRepository_ServerDown(t *testing.T) {
	repo, mr := setupCampaignCache(t, time.Minute)
	mr.Close()

	got, _, err := repo.Get(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, got)

	assert.Error(t, repo.Delete(context.Background(), uuid.New()))
}
