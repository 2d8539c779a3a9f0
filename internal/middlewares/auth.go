package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/campaign-service/internal/logger"
	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error)
}

type userKey struct{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*models.UserDB, bool) {
	user, ok := ctx.Value(userKey{}).(*models.UserDB)
	return user, ok && user != nil
}

// AuthMiddleware rejects requests without a valid bearer token for an existing user
// and passes the resolved user downstream in the request context.
func AuthMiddleware(tokener Tokener, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			user, err := authenticator.Authenticate(ctx, tokenString)
			if err != nil {
				if !errors.Is(err, services.ErrUnauthorized) {
					logger.Log.Errorw("authentication error", "err", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
					return
				}
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Could not validate credentials"})
}
