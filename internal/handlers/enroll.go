package handlers

//go:generate mockgen -source=enroll.go -destination=enroll_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/services"
)

// Enroller defines the interface that the service must implement.
type Enroller interface {
	Enroll(ctx context.Context, email, password string) (uuid.UUID, error)
}

// NewEnrollHandler returns an HTTP handler for user enrollment.
// @Summary Enroll a new user
// @Description Creates a user account. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param enrollRequest body models.EnrollRequest true "User enrollment request"
// @Success 200 {object} models.EnrollResponse "User created"
// @Failure 400 {object} models.ErrorResponse "Email already registered / invalid request"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/enroll [post]
func NewEnrollHandler(svc Enroller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.EnrollRequest
		if err := decodeJSON(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			writeRequestError(w, err)
			return
		}

		userID, err := svc.Enroll(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeError(w, http.StatusBadRequest, "Email already registered")
			case isValidationError(err):
				writeRequestError(w, err)
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.EnrollResponse{
			Message: "User created successfully",
			UserID:  userID.String(),
		})
	}
}
