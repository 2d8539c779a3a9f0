package handlers

//go:generate mockgen -source=campaign_get.go -destination=campaign_get_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/services"
)

// CampaignGetter defines the interface that the service must implement.
type CampaignGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.CampaignDB, error)
}

// NewCampaignGetHandler returns an HTTP handler fetching one campaign.
// @Summary Get a campaign
// @Tags campaigns
// @Produce json
// @Param campaign_id path string true "Campaign ID" format(uuid)
// @Success 200 {object} models.CampaignResponse "Campaign"
// @Failure 404 {object} models.ErrorResponse "Campaign not found"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/campaigns/{campaign_id} [get]
func NewCampaignGetHandler(svc CampaignGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseCampaignID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}

		campaign, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCampaignNotFound):
				writeError(w, http.StatusNotFound, "Campaign not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.NewCampaignResponse(campaign))
	}
}
