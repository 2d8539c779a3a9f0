package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema creates the users and campaigns tables when they do not exist yet.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id              UUID PRIMARY KEY,
	email           VARCHAR(255) NOT NULL UNIQUE,
	hashed_password VARCHAR(255) NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email));

CREATE TABLE IF NOT EXISTS campaigns (
	id          UUID PRIMARY KEY,
	name        VARCHAR(100) NOT NULL,
	description TEXT,
	start_date  TIMESTAMP NOT NULL,
	end_date    TIMESTAMP NOT NULL,
	budget      NUMERIC(12, 2) NOT NULL,
	status      VARCHAR(50) DEFAULT 'Draft',
	created_by  UUID NOT NULL REFERENCES users (id),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	is_deleted  BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS campaigns_created_by_idx ON campaigns (created_by);
`

// Migrate applies Schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	logQuery("migrate schema", nil, nil, err)
	return err
}
