package repository

import (
	"context"
	"fmt"

	"career-connector/internal/database"
	"career-connector/internal/domain/job"
)

const jobColumns = `id, title, description, skills, salary, location, eligibility, recruiter_email, created_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (title, description, skills, salary, location, eligibility, recruiter_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		p.Title, p.Description, p.Skills, p.Salary, p.Location, p.Eligibility, p.RecruiterEmail,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return job.Posting{}, fmt.Errorf("insert job: %w", err)
	}
	return p, nil
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Posting, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id ASC`)
}

func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, email string) ([]job.Posting, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE recruiter_email = $1 ORDER BY id ASC`, email)
}

func (r *PostgresJobRepository) list(ctx context.Context, query string, args ...any) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var p job.Posting
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Skills,
			&p.Salary,
			&p.Location,
			&p.Eligibility,
			&p.RecruiterEmail,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return out, nil
}
