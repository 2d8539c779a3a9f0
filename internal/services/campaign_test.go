package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/repositories"
	"github.com/sbilibin2017/campaign-service/internal/services"
)

type campaignMocks struct {
	reader *services.MockCampaignReader
	writer *services.MockCampaignWriter
	cache  *services.MockCampaignCache
}

func newCampaignMocks(t *testing.T) campaignMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return campaignMocks{
		reader: services.NewMockCampaignReader(ctrl),
		writer: services.NewMockCampaignWriter(ctrl),
		cache:  services.NewMockCampaignCache(ctrl),
	}
}

func sampleCampaign() *models.CampaignDB {
	status := models.DefaultCampaignStatus
	start := time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC)
	return &models.CampaignDB{
		ID:        uuid.New(),
		Name:      "Test Campaign",
		StartDate: start,
		EndDate:   start.AddDate(0, 2, 0),
		Budget:    decimal.NewFromInt(1000),
		Status:    &status,
		CreatedBy: uuid.New(),
	}
}

func TestCampaignService_Create(t *testing.T) {
	t.Run("saves and returns the campaign", func(t *testing.T) {
		m := newCampaignMocks(t)
		c := sampleCampaign()
		c.ID = uuid.Nil

		m.writer.EXPECT().Save(gomock.Any(), c).DoAndReturn(
			func(_ context.Context, c *models.CampaignDB) error {
				c.ID = uuid.New()
				return nil
			})

		svc := services.NewCampaignService(m.reader, m.writer, nil)
		got, err := svc.Create(context.Background(), c)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, c.CreatedBy, got.CreatedBy)
	})

	t.Run("save error", func(t *testing.T) {
		m := newCampaignMocks(t)
		dbErr := errors.New("insert failed")
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)

		svc := services.NewCampaignService(m.reader, m.writer, nil)
		got, err := svc.Create(context.Background(), sampleCampaign())
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, got)
	})
}

func TestCampaignService_List(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
	}{
		{name: "first page", page: 1, pageSize: 20, wantOffset: 0},
		{name: "third page", page: 3, pageSize: 10, wantOffset: 20},
		{name: "single item pages", page: 5, pageSize: 1, wantOffset: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCampaignMocks(t)
			page := []*models.CampaignDB{sampleCampaign()}
			m.reader.EXPECT().List(gomock.Any(), tt.wantOffset, tt.pageSize).Return(page, nil)

			svc := services.NewCampaignService(m.reader, m.writer, m.cache)
			got, err := svc.List(context.Background(), tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, page, got)
		})
	}

	t.Run("reader error", func(t *testing.T) {
		m := newCampaignMocks(t)
		dbErr := errors.New("select failed")
		m.reader.EXPECT().List(gomock.Any(), 0, 20).Return(nil, dbErr)

		svc := services.NewCampaignService(m.reader, m.writer, m.cache)
		_, err := svc.List(context.Background(), 1, 20)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCampaignService_Get(t *testing.T) {
	c := sampleCampaign()
	dbErr := errors.New("select failed")

	tests := []struct {
		name     string
		useCache bool
		setup    func(m campaignMocks)
		want     *models.CampaignDB
		wantErr  error
	}{
		{
			name:     "cache hit skips the database",
			useCache: true,
			setup: func(m campaignMocks) {
				m.cache.EXPECT().Get(gomock.Any(), c.ID).Return(c, int64(0), nil)
			},
			want: c,
		},
		{
			name:     "cache miss reads and fills the cache",
			useCache: true,
			setup: func(m campaignMocks) {
				gomock.InOrder(
					m.cache.EXPECT().Get(gomock.Any(), c.ID).Return(nil, int64(3), nil),
					m.reader.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil),
					m.cache.EXPECT().Set(gomock.Any(), c, int64(3)).Return(nil),
				)
			},
			want: c,
		},
		{
			name:     "cache errors fall back to the database without write-back",
			useCache: true,
			setup: func(m campaignMocks) {
				m.cache.EXPECT().Get(gomock.Any(), c.ID).Return(nil, int64(0), errors.New("redis down"))
				m.reader.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)
			},
			want: c,
		},
		{
			name:     "failed write-back still returns the row",
			useCache: true,
			setup: func(m campaignMocks) {
				m.cache.EXPECT().Get(gomock.Any(), c.ID).Return(nil, int64(0), nil)
				m.reader.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)
				m.cache.EXPECT().Set(gomock.Any(), c, int64(0)).Return(errors.New("redis down"))
			},
			want: c,
		},
		{
			name: "without cache",
			setup: func(m campaignMocks) {
				m.reader.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)
			},
			want: c,
		},
		{
			name:     "not found is not cached",
			useCache: true,
			setup: func(m campaignMocks) {
				m.cache.EXPECT().Get(gomock.Any(), c.ID).Return(nil, int64(0), nil)
				m.reader.EXPECT().GetByID(gomock.Any(), c.ID).Return(nil, nil)
			},
			wantErr: services.ErrCampaignNotFound,
		},
		{
			name: "reader error",
			setup: func(m campaignMocks) {
				m.reader.EXPECT().GetByID(gomock.Any(), c.ID).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCampaignMocks(t)
			tt.setup(m)

			var svc *services.CampaignService
			if tt.useCache {
				svc = services.NewCampaignService(m.reader, m.writer, m.cache)
			} else {
				svc = services.NewCampaignService(m.reader, m.writer, nil)
			}

			got, err := svc.Get(context.Background(), c.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCampaignService_GetDoesNotRecacheRowEvictedMidRead(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	m := newCampaignMocks(t)
	svc := services.NewCampaignService(m.reader, m.writer, repositories.NewCampaignCacheRepository(client, time.Minute))

	before := sampleCampaign()
	after := *before
	after.Name = "Renamed"
	changes := map[string]any{"name": "Renamed"}

	m.writer.EXPECT().Update(gomock.Any(), before.ID, changes).Return(&after, nil)
	gomock.InOrder(
		// The update commits and evicts while the first read is between its
		// cache miss and its write-back.
		m.reader.EXPECT().GetByID(gomock.Any(), before.ID).DoAndReturn(
			func(ctx context.Context, id uuid.UUID) (*models.CampaignDB, error) {
				_, err := svc.Update(ctx, id, changes)
				require.NoError(t, err)
				return before, nil
			}),
		m.reader.EXPECT().GetByID(gomock.Any(), before.ID).Return(&after, nil),
	)

	got, err := svc.Get(context.Background(), before.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Campaign", got.Name)
	assert.False(t, mr.Exists("campaign:"+before.ID.String()))

	got, err = svc.Get(context.Background(), before.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	// Now cached, served without touching the reader.
	got, err = svc.Get(context.Background(), before.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestCampaignService_Update(t *testing.T) {
	c := sampleCampaign()
	changes := map[string]any{"name": "Renamed", "description": nil}

	t.Run("applies changes and evicts the cache", func(t *testing.T) {
		m := newCampaignMocks(t)
		gomock.InOrder(
			m.writer.EXPECT().Update(gomock.Any(), c.ID, changes).Return(c, nil),
			m.cache.EXPECT().Delete(gomock.Any(), c.ID).Return(nil),
		)

		svc := services.NewCampaignService(m.reader, m.writer, m.cache)
		got, err := svc.Update(context.Background(), c.ID, changes)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("eviction failure does not fail the update", func(t *testing.T) {
		m := newCampaignMocks(t)
		m.writer.EXPECT().Update(gomock.Any(), c.ID, changes).Return(c, nil)
		m.cache.EXPECT().Delete(gomock.Any(), c.ID).Return(errors.New("redis down"))

		svc := services.NewCampaignService(m.reader, m.writer, m.cache)
		_, err := svc.Update(context.Background(), c.ID, changes)
		assert.NoError(t, err)
	})

	t.Run("missing campaign", func(t *testing.T) {
		m := newCampaignMocks(t)
		m.writer.EXPECT().Update(gomock.Any(), c.ID, changes).Return(nil, nil)

		svc := services.NewCampaignService(m.reader, m.writer, m.cache)
		got, err := svc.Update(context.Background(), c.ID, changes)
		assert.ErrorIs(t, err, services.ErrCampaignNotFound)
		assert.Nil(t, got)
	})

	t.Run("writer error", func(t *testing.T) {
		m := newCampaignMocks(t)
		dbErr := errors.New("update failed")
		m.writer.EXPECT().Update(gomock.Any(), c.ID, changes).Return(nil, dbErr)

		svc := services.NewCampaignService(m.reader, m.writer, nil)
		_, err := svc.Update(context.Background(), c.ID, changes)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCampaignService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("deletes and evicts the cache", func(t *testing.T) {
		m := newCampaignMocks(t)
		gomock.InOrder(
			m.writer.EXPECT().Delete(gomock.Any(), id).Return(true, nil),
			m.cache.EXPECT().Delete(gomock.Any(), id).Return(nil),
		)

		svc := services.NewCampaignService(m.reader, m.writer, m.cache)
		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("missing campaign", func(t *testing.T) {
		m := newCampaignMocks(t)
		m.writer.EXPECT().Delete(gomock.Any(), id).Return(false, nil)

		svc := services.NewCampaignService(m.reader, m.writer, m.cache)
		assert.ErrorIs(t, svc.Delete(context.Background(), id), services.ErrCampaignNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		m := newCampaignMocks(t)
		dbErr := errors.New("delete failed")
		m.writer.EXPECT().Delete(gomock.Any(), id).Return(false, dbErr)

		svc := services.NewCampaignService(m.reader, m.writer, nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), id), dbErr)
	})
}
