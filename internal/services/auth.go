package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/campaign-service/internal/jwt"
	"github.com/sbilibin2017/campaign-service/internal/logger"
	"github.com/sbilibin2017/campaign-service/internal/models"
	"github.com/sbilibin2017/campaign-service/internal/password"
	"github.com/sbilibin2017/campaign-service/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("could not validate credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTManager issues and decodes access tokens.
type JWTManager interface {
	Generate(ctx context.Context, subject string, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles enrollment, login and token authentication.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTManager) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Enroll registers a new user and returns its id.
func (svc *AuthService) Enroll(ctx context.Context, email, plainPassword string) (uuid.UUID, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return uuid.Nil, ErrEmailAlreadyRegistered
	}

	hashed, err := password.Hash(plainPassword)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return uuid.Nil, models.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", models.MaxPasswordBytes))
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	user := &models.UserDB{Email: email, HashedPassword: hashed}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			logger.Log.Warnw("email registered concurrently", "email", email)
			return uuid.Nil, ErrEmailAlreadyRegistered
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	logger.Log.Infow("user enrolled", "user_id", user.UserID)
	return user.UserID, nil
}

// Login checks the credentials and returns a signed access token.
func (svc *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		return "", ErrUserNotFound
	}

	if !password.Verify(plainPassword, user.HashedPassword) {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Email, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate decodes the token and resolves the user it names.
// Any failure other than a storage error yields ErrUnauthorized.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error) {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Warnw("token rejected", "err", err)
		return nil, ErrUnauthorized
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", claims.UserID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("token names unknown user", "user_id", claims.UserID)
		return nil, ErrUnauthorized
	}

	return user, nil
}
