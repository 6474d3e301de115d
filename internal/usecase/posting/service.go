package posting

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"career-connector/internal/domain/job"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")

	ErrMarkup = fmt.Errorf("%w: markup and html entities are not allowed", ErrInvalidInput)
)

const (
	listAllKey          = "jobs:list:all"
	listByRecruiterPref = "jobs:list:recruiter:"
	listPattern         = "jobs:list:*"
)

type PostInput struct {
	Title       string
	Description string
	Skills      string
	Salary      string
	Location    string
	Eligibility string
}

type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Notifier interface {
	NotifyJobPosted(p job.Posting)
}

type Service struct {
	jobs     job.Repository
	cache    ListingCache
	notifier Notifier
	policy   *bluemonday.Policy
	ttl      time.Duration
	logger   *log.Logger

	// gen advances on every successful Post; a listing loaded under an
	// older generation must not outlive the invalidation.
	gen atomic.Uint64
}

func NewService(jobs job.Repository, cache ListingCache, notifier Notifier, ttl time.Duration, logger *log.Logger) *Service {
	return &Service{
		jobs:     jobs,
		cache:    cache,
		notifier: notifier,
		policy:   bluemonday.StrictPolicy(),
		ttl:      ttl,
		logger:   logger,
	}
}

// Post stores a job owned by recruiterEmail. Fields are stored as plain
// text exactly as trimmed; a field carrying markup or HTML entities is
// rejected with ErrMarkup rather than rewritten.
func (s *Service) Post(ctx context.Context, recruiterEmail string, in PostInput) (job.Posting, error) {
	recruiterEmail = strings.TrimSpace(recruiterEmail)
	if recruiterEmail == "" {
		return job.Posting{}, ErrUnauthorized
	}

	fields := []string{in.Title, in.Description, in.Skills, in.Salary, in.Location, in.Eligibility}
	for i, v := range fields {
		v, err := s.clean(v)
		if err != nil {
			return job.Posting{}, err
		}
		fields[i] = v
	}

	p := job.Posting{
		Title:          fields[0],
		Description:    fields[1],
		Skills:         fields[2],
		Salary:         fields[3],
		Location:       fields[4],
		Eligibility:    fields[5],
		RecruiterEmail: recruiterEmail,
	}

	created, err := s.jobs.Create(ctx, p)
	if err != nil {
		return job.Posting{}, errors.Join(ErrInternal, err)
	}

	s.gen.Add(1)
	s.invalidate(ctx)
	if s.notifier != nil {
		s.notifier.NotifyJobPosted(created)
	}
	s.logf("[Jobs] posted id=%d recruiter=%s", created.ID, recruiterKeyHash(recruiterEmail))
	return created, nil
}

func (s *Service) ListAll(ctx context.Context) ([]job.Posting, error) {
	return s.cached(ctx, listAllKey, func() ([]job.Posting, error) {
		return s.jobs.ListAll(ctx)
	})
}

func (s *Service) ListByRecruiter(ctx context.Context, recruiterEmail string) ([]job.Posting, error) {
	recruiterEmail = strings.TrimSpace(recruiterEmail)
	if recruiterEmail == "" {
		return nil, ErrUnauthorized
	}
	key := listByRecruiterPref + recruiterKeyHash(recruiterEmail)
	return s.cached(ctx, key, func() ([]job.Posting, error) {
		return s.jobs.ListByRecruiter(ctx, recruiterEmail)
	})
}

func (s *Service) cached(ctx context.Context, key string, load func() ([]job.Posting, error)) ([]job.Posting, error) {
	if s.cache != nil {
		var hit []job.Posting
		ok, err := s.cache.GetJSON(ctx, key, &hit)
		if err == nil && ok {
			s.logf("[Jobs] Cache HIT: %s", key)
			if hit == nil {
				hit = []job.Posting{}
			}
			return hit, nil
		}
		s.logf("[Jobs] Cache MISS: %s", key)
	}

	gen := s.gen.Load()
	items, err := load()
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if items == nil {
		items = []job.Posting{}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, items, s.ttl); err != nil {
			s.logf("[Jobs] Cache SET error: %s err=%v", key, err)
		}
		// A Post landed while loading; its invalidation may already have
		// run, so drop what was just written.
		if s.gen.Load() != gen {
			s.logf("[Jobs] Cache SET superseded: %s", key)
			s.invalidate(ctx)
		}
	}
	return items, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, listPattern); err != nil {
		s.logf("[Jobs] Cache invalidate error: %v", err)
	}
}

// clean trims v and rejects it when empty or when sanitising would change
// its text, which is the case for tags and HTML entities but not for a
// bare "<" or "&" in prose.
func (s *Service) clean(v string) (string, error) {
	v = strings.TrimSpace(strings.ReplaceAll(v, "\r\n", "\n"))
	if v == "" {
		return "", ErrInvalidInput
	}
	if html.UnescapeString(s.policy.Sanitize(v)) != v {
		return "", ErrMarkup
	}
	return v, nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func recruiterKeyHash(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}
