package handlers

//go:generate mockgen -source=campaign_delete.go -destination=campaign_delete_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/services"
)

// CampaignDeleter defines the interface that the service must implement.
type CampaignDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewCampaignDeleteHandler returns an HTTP handler removing a campaign.
// @Summary Delete a campaign
// @Tags campaigns
// @Produce json
// @Param campaign_id path string true "Campaign ID" format(uuid)
// @Success 200 {object} models.MessageResponse "Campaign deleted"
// @Failure 404 {object} models.ErrorResponse "Campaign not found"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/campaigns/{campaign_id} [delete]
func NewCampaignDeleteHandler(svc CampaignDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseCampaignID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrCampaignNotFound):
				writeError(w, http.StatusNotFound, "Campaign not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: fmt.Sprintf("Campaign %s deleted successfully.", id),
		})
	}
}
