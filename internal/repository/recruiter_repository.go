package repository

import (
	"context"
	"fmt"

	"career-connector/internal/database"
	dbpostgres "career-connector/internal/database/postgres"
	"career-connector/internal/domain/recruiter"
)

const recruiterEmailConstraint = "recruiters_email_key"

type PostgresRecruiterRepository struct {
	db database.DB
}

func NewPostgresRecruiterRepository(db database.DB) *PostgresRecruiterRepository {
	return &PostgresRecruiterRepository{db: db}
}

// Create inserts in a single statement and relies on recruiters_email_key to
// reject a taken email, so two concurrent signups cannot both succeed.
func (r *PostgresRecruiterRepository) Create(ctx context.Context, a recruiter.Account) (recruiter.Account, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO recruiters (name, email, password, company)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Name, a.Email, a.PasswordHash, a.Company,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if dbpostgres.IsUniqueViolation(err, recruiterEmailConstraint) {
			return recruiter.Account{}, recruiter.ErrDuplicateEmail
		}
		return recruiter.Account{}, fmt.Errorf("insert recruiter: %w", err)
	}
	return a, nil
}

func (r *PostgresRecruiterRepository) GetByEmail(ctx context.Context, email string) (recruiter.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, company, created_at
		 FROM recruiters
		 WHERE email = $1`,
		email,
	)

	var a recruiter.Account
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Company, &a.CreatedAt); err != nil {
		if dbpostgres.IsNoRows(err) {
			return recruiter.Account{}, recruiter.ErrNotFound
		}
		return recruiter.Account{}, fmt.Errorf("select recruiter: %w", err)
	}
	return a, nil
}
