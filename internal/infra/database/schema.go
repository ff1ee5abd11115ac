package database

import (
	"context"
	"database/sql"
)

// The unique index on email is the authoritative guard against duplicate
// leads: under concurrent creations the second writer gets a constraint
// violation instead of slipping past the application-level check.
const leadsSchema = `
CREATE TABLE IF NOT EXISTS leads (
	id             BIGSERIAL PRIMARY KEY,
	first_name     TEXT NOT NULL,
	last_name      TEXT NOT NULL,
	email          TEXT NOT NULL,
	resume_s3_path TEXT NOT NULL,
	state          TEXT NOT NULL DEFAULT 'PENDING',
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_leads_email ON leads (email);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, leadsSchema)
	return err
}
