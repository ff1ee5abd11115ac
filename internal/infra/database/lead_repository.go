package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, first_name, last_name, email, resume_s3_path, state, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (first_name, last_name, email, resume_s3_path, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.ResumeS3Path,
		string(lead.State),
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *LeadRepository) List(ctx context.Context, skip, limit int, state *entity.LeadState) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE ($1::text IS NULL OR state = $1)
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	rows, err := r.DB.QueryContext(ctx, query, stateString(state), skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return lead, nil
}

// Update applies a partial patch; absent fields keep their stored values.
// updated_at is always refreshed, even for an empty patch, from the same
// application clock that stamped created_at.
func (r *LeadRepository) Update(ctx context.Context, id int64, patch *entity.LeadPatch) (*entity.Lead, error) {
	query := `
		UPDATE leads SET
			first_name     = COALESCE($2, first_name),
			last_name      = COALESCE($3, last_name),
			email          = COALESCE($4, email),
			resume_s3_path = COALESCE($5, resume_s3_path),
			state          = COALESCE($6, state),
			updated_at     = $7
		WHERE id = $1
		RETURNING ` + leadColumns + `
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query,
		id,
		patch.FirstName,
		patch.LastName,
		patch.Email,
		patch.ResumeS3Path,
		stateString(patch.State),
		patch.UpdatedAt,
	))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		if isUniqueViolation(err) {
			return nil, entity.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return lead, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var state string

	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.ResumeS3Path,
		&state,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.State = entity.LeadState(state)
	return &lead, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func stateString(s *entity.LeadState) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
