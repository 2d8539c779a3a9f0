package services

//go:generate mockgen -source=campaign.go -destination=campaign_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/campaign-service/internal/logger"
	"github.com/sbilibin2017/campaign-service/internal/metrics"
	"github.com/sbilibin2017/campaign-service/internal/models"
)

// ErrCampaignNotFound is returned when no campaign has the requested id.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignReader defines campaign read operations.
type CampaignReader interface {
	List(ctx context.Context, offset, limit int) ([]*models.CampaignDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignDB, error)
}

// CampaignWriter defines campaign write operations.
type CampaignWriter interface {
	Save(ctx context.Context, c *models.CampaignDB) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.CampaignDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CampaignCache is an optional read-through cache keyed by campaign id.
// Get reports a version on a miss; Set with that version is dropped if Delete ran in between.
type CampaignCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.CampaignDB, int64, error)
	Set(ctx context.Context, c *models.CampaignDB, version int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CampaignService implements campaign CRUD on top of the repositories.
type CampaignService struct {
	reader CampaignReader
	writer CampaignWriter
	cache  CampaignCache
}

// NewCampaignService creates a new CampaignService. cache may be nil.
func NewCampaignService(reader CampaignReader, writer CampaignWriter, cache CampaignCache) *CampaignService {
	return &CampaignService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Create stores a validated campaign; CreatedBy must already hold the caller's id.
func (s *CampaignService) Create(ctx context.Context, c *models.CampaignDB) (*models.CampaignDB, error) {
	if err := s.writer.Save(ctx, c); err != nil {
		logger.Log.Errorw("failed to save campaign", "created_by", c.CreatedBy, "error", err)
		return nil, err
	}
	logger.Log.Infow("campaign created", "campaign_id", c.ID, "created_by", c.CreatedBy)
	return c, nil
}

// List returns the given 1-based page of campaigns.
func (s *CampaignService) List(ctx context.Context, page, pageSize int) ([]*models.CampaignDB, error) {
	offset := (page - 1) * pageSize
	campaigns, err := s.reader.List(ctx, offset, pageSize)
	if err != nil {
		logger.Log.Errorw("failed to list campaigns", "page", page, "page_size", pageSize, "error", err)
		return nil, err
	}
	return campaigns, nil
}

// Get returns one campaign, consulting the cache first when one is configured.
func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*models.CampaignDB, error) {
	var (
		version   int64
		writeBack bool
	)
	if s.cache != nil {
		cached, v, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			metrics.CacheRequests.WithLabelValues("error").Inc()
		case cached != nil:
			metrics.CacheRequests.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.CacheRequests.WithLabelValues("miss").Inc()
			version, writeBack = v, true
		}
	}

	c, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get campaign", "campaign_id", id, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, ErrCampaignNotFound
	}

	if writeBack {
		if err := s.cache.Set(ctx, c, version); err != nil {
			logger.Log.Warnw("failed to cache campaign", "campaign_id", id, "error", err)
		}
	}
	return c, nil
}

// Update applies the supplied changes. Ownership is not checked.
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.CampaignDB, error) {
	c, err := s.writer.Update(ctx, id, changes)
	if err != nil {
		logger.Log.Errorw("failed to update campaign", "campaign_id", id, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, ErrCampaignNotFound
	}

	s.evict(ctx, id)
	logger.Log.Infow("campaign updated", "campaign_id", id, "fields", len(changes))
	return c, nil
}

// Delete removes the campaign row. Ownership is not checked.
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete campaign", "campaign_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrCampaignNotFound
	}

	s.evict(ctx, id)
	logger.Log.Infow("campaign deleted", "campaign_id", id)
	return nil
}

func (s *CampaignService) evict(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("failed to evict campaign from cache", "campaign_id", id, "error", err)
	}
}
