package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS verification_projects (
	project_id      TEXT PRIMARY KEY,
	owner           TEXT NOT NULL,
	technical_score BIGINT NOT NULL DEFAULT 0,
	financial_score BIGINT NOT NULL DEFAULT 0,
	status          SMALLINT NOT NULL DEFAULT 0,
	block_height    BIGINT NOT NULL
);
`

// PostgresStore persists projects in the verification_projects table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new project store backed by Postgres
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the projects table if it does not exist.
func (r *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("failed to migrate projects table: %w", err)
	}
	return nil
}

// Insert adds a new project.
func (r *PostgresStore) Insert(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO verification_projects (project_id, owner, technical_score, financial_score, status, block_height)
VALUES ($1, $2, $3, $4, $5, $6);
`
	_, err := r.db.ExecContext(ctx, q,
		p.ProjectID, p.Owner, p.TechnicalScore, p.FinancialScore, int16(p.Status), int64(p.Timestamp))
	if err != nil {
		// unique violation on project_id
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateProject
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Get retrieves a project by its id.
func (r *PostgresStore) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	const q = `
SELECT project_id, owner, technical_score, financial_score, status, block_height
FROM verification_projects
WHERE project_id = $1;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, projectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Update writes the mutable columns of an existing project. Owner and block
// height are never touched.
func (r *PostgresStore) Update(ctx context.Context, p *domain.Project) error {
	const q = `
UPDATE verification_projects
SET technical_score = $2, financial_score = $3, status = $4
WHERE project_id = $1;
`
	result, err := r.db.ExecContext(ctx, q, p.ProjectID, p.TechnicalScore, p.FinancialScore, int16(p.Status))
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all projects in registration order.
func (r *PostgresStore) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT project_id, owner, technical_score, financial_score, status, block_height
FROM verification_projects
ORDER BY block_height, project_id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p      domain.Project
		status int16
		height int64
	)
	if err := row.Scan(&p.ProjectID, &p.Owner, &p.TechnicalScore, &p.FinancialScore, &status, &height); err != nil {
		return nil, err
	}
	p.Status = domain.Status(status)
	p.Timestamp = uint64(height)
	return &p, nil
}
