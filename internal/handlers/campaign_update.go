package handlers

//go:generate mockgen -source=campaign_update.go -destination=campaign_update_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/services"
)

// CampaignUpdater defines the interface that the service must implement.
type CampaignUpdater interface {
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.CampaignDB, error)
}

// NewCampaignUpdateHandler returns an HTTP handler applying a partial update.
// @Summary Update a campaign
// @Description Applies only the supplied fields. description and status may be cleared with null.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID" format(uuid)
// @Param campaign body models.CampaignUpdateRequest true "Fields to change"
// @Success 200 {object} models.CampaignUpdateResponse "Updated campaign"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Campaign not found"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/campaigns/{campaign_id} [put]
func NewCampaignUpdateHandler(svc CampaignUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseCampaignID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}

		var req models.CampaignUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			writeRequestError(w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, req.Changes())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCampaignNotFound):
				writeError(w, http.StatusNotFound, "Campaign not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.CampaignUpdateResponse{
			Message:  "Campaign updated successfully",
			Campaign: models.NewCampaignResponse(updated),
		})
	}
}
