package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/campaign-service/internal/logger"
	"github.com/sbilibin2017/campaign-service/internal/middlewares"
	"github.com/sbilibin2017/campaign-service/internal/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100

	// maxPage keeps (page-1)*pageSize inside int for every allowed pageSize.
	maxPage = math.MaxInt / maxPageSize
)

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// writeRequestError answers 422 for field-level problems and 400 for anything else
// produced while reading the request.
func writeRequestError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "validation failed",
			Details: verr.Fields,
		})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func isValidationError(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr)
}

// decodeJSON reads exactly one JSON object into dst. Type mismatches on a named field
// come back as *models.ValidationError, everything else wraps errInvalidBody.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", errInvalidBody)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return models.NewValidationError("body", "field required")
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return models.NewValidationError(typeErr.Field, fmt.Sprintf("invalid value for type %s", typeErr.Type))
		}
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

func parseCampaignID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "campaign_id"))
	if err != nil {
		return uuid.Nil, models.NewValidationError("campaign_id", "must be a valid UUID")
	}
	return id, nil
}

// parsePagination reads the 1-based page and pageSize query parameters.
func parsePagination(r *http.Request) (page, pageSize int, err error) {
	q := r.URL.Query()
	verr := &models.ValidationError{}

	page = defaultPage
	if raw := q.Get("page"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > maxPage {
			verr.Fields = append(verr.Fields, models.FieldError{Field: "page", Message: fmt.Sprintf("must be an integer between 1 and %d", maxPage)})
		} else {
			page = n
		}
	}

	pageSize = defaultPageSize
	if raw := q.Get("pageSize"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > maxPageSize {
			verr.Fields = append(verr.Fields, models.FieldError{Field: "pageSize", Message: "must be an integer between 1 and 100"})
		} else {
			pageSize = n
		}
	}

	if len(verr.Fields) > 0 {
		return 0, 0, verr
	}
	return page, pageSize, nil
}
