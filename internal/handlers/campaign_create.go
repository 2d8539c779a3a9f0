package handlers

//go:generate mockgen -source=campaign_create.go -destination=campaign_create_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/campaign-service/internal/middlewares"
	"github.com/sbilibin2017/campaign-service/internal/models"
)

// CampaignCreator defines the interface that the service must implement.
type CampaignCreator interface {
	Create(ctx context.Context, c *models.CampaignDB) (*models.CampaignDB, error)
}

// NewCampaignCreateHandler returns an HTTP handler creating a campaign owned by the caller.
// @Summary Create a campaign
// @Description Creates a campaign. created_by is always the authenticated user; status defaults to Draft.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body models.CampaignCreateRequest true "Campaign"
// @Success 200 {object} models.CampaignCreateResponse "Created campaign"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/campaigns/ [post]
// @Security BearerAuth
func NewCampaignCreateHandler(svc CampaignCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := middlewares.UserFromContext(ctx)
		if !ok {
			writeInternalError(w, r, errors.New("campaign create reached without an authenticated user"))
			return
		}

		var req models.CampaignCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			writeRequestError(w, err)
			return
		}

		created, err := svc.Create(ctx, req.ToCampaignDB(user.UserID))
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.CampaignCreateResponse{
			Campaign: models.NewCampaignResponse(created),
		})
	}
}
