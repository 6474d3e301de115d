package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"career-connector/internal/database"
	"career-connector/internal/domain/job"
	"career-connector/internal/domain/recruiter"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB emulates the recruiters/jobs tables closely enough to exercise the
// repositories' SQL routing, constraint mapping and scanning.
type fakeDB struct {
	mu sync.Mutex

	recruiters []recruiter.Account
	jobs       []job.Posting
	nextID     int64
	queryErr   error
}

func newFakeDB() *fakeDB { return &fakeDB{} }

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close() error               { return nil }
func (db *fakeDB) SQLDB() *sql.DB             { return nil }

func (db *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	now := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

	switch {
	case strings.HasPrefix(q, "insert into recruiters"):
		email := args[1].(string)
		for _, a := range db.recruiters {
			if a.Email == email {
				return fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "recruiters_email_key"}}
			}
		}
		db.nextID++
		db.recruiters = append(db.recruiters, recruiter.Account{
			ID:           db.nextID,
			Name:         args[0].(string),
			Email:        email,
			PasswordHash: args[2].(string),
			Company:      args[3].(string),
			CreatedAt:    now,
		})
		return fakeRow{vals: []any{db.nextID, now}}

	case strings.HasPrefix(q, "select") && strings.Contains(q, "from recruiters"):
		for _, a := range db.recruiters {
			if a.Email == args[0].(string) {
				return fakeRow{vals: []any{a.ID, a.Name, a.Email, a.PasswordHash, a.Company, a.CreatedAt}}
			}
		}
		return fakeRow{err: pgx.ErrNoRows}

	case strings.HasPrefix(q, "insert into jobs"):
		db.nextID++
		db.jobs = append(db.jobs, job.Posting{
			ID:             db.nextID,
			Title:          args[0].(string),
			Description:    args[1].(string),
			Skills:         args[2].(string),
			Salary:         args[3].(string),
			Location:       args[4].(string),
			Eligibility:    args[5].(string),
			RecruiterEmail: args[6].(string),
			CreatedAt:      now,
		})
		return fakeRow{vals: []any{db.nextID, now}}
	}

	return fakeRow{err: fmt.Errorf("unexpected query: %s", query)}
}

func (db *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.queryErr != nil {
		return nil, db.queryErr
	}

	q := strings.ToLower(query)
	if !strings.Contains(q, "from jobs") {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}

	out := &fakeRows{}
	for _, p := range db.jobs {
		if strings.Contains(q, "where recruiter_email") && p.RecruiterEmail != args[0].(string) {
			continue
		}
		out.rows = append(out.rows, []any{
			p.ID, p.Title, p.Description, p.Skills, p.Salary, p.Location, p.Eligibility, p.RecruiterEmail, p.CreatedAt,
		})
	}
	return out, nil
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.vals, dest)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close() {}
func (r *fakeRows) Err() error {
	return nil
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.idx-1], dest)
}

func scanInto(vals []any, dest []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan dest mismatch: %d != %d", len(dest), len(vals))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			*d = vals[i].(int64)
		case *string:
			*d = vals[i].(string)
		case *time.Time:
			*d = vals[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan type %T", dest[i])
		}
	}
	return nil
}

func TestRecruiterRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRecruiterRepository(newFakeDB())

	created, err := repo.Create(ctx, recruiter.Account{Name: "A", Email: "a@x.com", PasswordHash: "h", Company: "Co"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and created_at, got %+v", created)
	}

	got, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "A" || got.Company != "Co" || got.PasswordHash != "h" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestRecruiterRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	repo := NewPostgresRecruiterRepository(db)

	if _, err := repo.Create(ctx, recruiter.Account{Name: "A", Email: "a@x.com", PasswordHash: "h", Company: "Co"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := repo.Create(ctx, recruiter.Account{Name: "B", Email: "a@x.com", PasswordHash: "h2", Company: "Co2"})
	if !errors.Is(err, recruiter.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if len(db.recruiters) != 1 || db.recruiters[0].Name != "A" {
		t.Fatalf("expected exactly the first account to remain, got %+v", db.recruiters)
	}
}

func TestRecruiterRepository_GetByEmail_NotFound(t *testing.T) {
	repo := NewPostgresRecruiterRepository(newFakeDB())
	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, recruiter.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecruiterRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRecruiterRepository(newFakeDB())

	if _, err := repo.Create(ctx, recruiter.Account{Name: "A", Email: "a@x.com", PasswordHash: "h", Company: "Co"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "A@X.COM"); !errors.Is(err, recruiter.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different case, got %v", err)
	}
}

func TestJobRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresJobRepository(newFakeDB())

	for i, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		_, err := repo.Create(ctx, job.Posting{
			Title:          fmt.Sprintf("Job %d", i),
			Description:    "desc",
			Skills:         "go, sql",
			Salary:         "100k",
			Location:       "Remote",
			Eligibility:    "Any",
			RecruiterEmail: email,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Fatalf("expected ascending ids, got %d after %d", all[i].ID, all[i-1].ID)
		}
	}

	mine, err := repo.ListByRecruiter(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(mine) != 2 || mine[0].Title != "Job 0" || mine[1].Title != "Job 2" {
		t.Fatalf("unexpected recruiter jobs: %+v", mine)
	}

	none, err := repo.ListByRecruiter(ctx, "c@x.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestJobRepository_QueryError(t *testing.T) {
	db := newFakeDB()
	db.queryErr = errors.New("connection refused")
	repo := NewPostgresJobRepository(db)

	_, err := repo.ListAll(context.Background())
	if err == nil || !errors.Is(err, db.queryErr) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}
