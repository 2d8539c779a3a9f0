package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for password login.
// @Summary User login
// @Description Checks the credentials and returns a bearer token. The email goes in the username field.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} models.TokenResponse "Bearer token"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "User not found / invalid credentials"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Router /users_Login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := readLoginRequest(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			writeRequestError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusUnauthorized, "User not found")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

func readLoginRequest(r *http.Request) (*models.LoginRequest, error) {
	var req models.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	req.Username = r.PostForm.Get("username")
	req.Password = r.PostForm.Get("password")
	return &req, nil
}
