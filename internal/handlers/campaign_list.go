package handlers

//go:generate mockgen -source=campaign_list.go -destination=campaign_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/campaign-service/internal/models"
)

// CampaignLister defines the interface that the service must implement.
type CampaignLister interface {
	List(ctx context.Context, page, pageSize int) ([]*models.CampaignDB, error)
}

// NewCampaignListHandler returns an HTTP handler listing one page of campaigns.
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param page query int false "1-based page number" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} models.CampaignResponse "Campaigns"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/campaigns/ [get]
func NewCampaignListHandler(svc CampaignLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize, err := parsePagination(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}

		campaigns, err := svc.List(r.Context(), page, pageSize)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewCampaignResponses(campaigns))
	}
}
