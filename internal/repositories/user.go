package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/campaign-service/internal/models"
)

// ErrDuplicateEmail is returned by Save when the email is already taken.
var ErrDuplicateEmail = errors.New("email already exists")

const uniqueViolation = "23505"

// UserReadRepository looks users up.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user whose email matches case-insensitively, or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, hashed_password, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1
	`
	return r.get(ctx, query, email)
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT id, email, hashed_password, created_at
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository persists users.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user, assigning an id when none is set, and fills in the stored timestamps.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, email, hashed_password, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, email, hashed_password, created_at
	`
	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), user, query,
		user.UserID, user.Email, user.HashedPassword)

	// The hash stays out of the log.
	logQuery(query, []any{user.UserID, user.Email}, user.CreatedAt, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}
