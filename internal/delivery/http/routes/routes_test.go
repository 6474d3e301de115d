package routes

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"career-connector/internal/delivery/http/handler"
	"career-connector/internal/delivery/http/middleware"
	v1 "career-connector/internal/delivery/http/routes/v1"
	"career-connector/internal/domain/catalog"
	"career-connector/internal/domain/job"
	"career-connector/internal/domain/recruiter"
	"career-connector/internal/pkg/jwt"
	"career-connector/internal/pkg/password"
	"career-connector/internal/usecase"
	ucauth "career-connector/internal/usecase/auth"
	"career-connector/internal/usecase/posting"
	"career-connector/internal/ws"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

type memAccounts struct{ byEmail map[string]recruiter.Account }

func (m *memAccounts) Create(_ context.Context, a recruiter.Account) (recruiter.Account, error) {
	if _, ok := m.byEmail[a.Email]; ok {
		return recruiter.Account{}, recruiter.ErrDuplicateEmail
	}
	a.ID = int64(len(m.byEmail) + 1)
	m.byEmail[a.Email] = a
	return a, nil
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (recruiter.Account, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return recruiter.Account{}, recruiter.ErrNotFound
	}
	return a, nil
}

type memJobs struct{ items []job.Posting }

func (m *memJobs) Create(_ context.Context, p job.Posting) (job.Posting, error) {
	p.ID = int64(len(m.items) + 1)
	m.items = append(m.items, p)
	return p, nil
}

func (m *memJobs) ListAll(context.Context) ([]job.Posting, error) { return m.items, nil }

func (m *memJobs) ListByRecruiter(_ context.Context, email string) ([]job.Posting, error) {
	var out []job.Posting
	for _, p := range m.items {
		if p.RecruiterEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type nopPinger struct{}

func (nopPinger) Ping(context.Context) error { return nil }

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)

	authUC := usecase.NewAuthUsecase(
		ucauth.NewService(&memAccounts{byEmail: map[string]recruiter.Account{}}, password.NewBcryptHasher(bcrypt.MinCost)),
		jwtSvc,
	)
	jobsUC := posting.NewService(&memJobs{}, nil, nil, time.Minute, logger)
	recUC := usecase.NewRecommendationUsecase([]catalog.Entry{{Domain: "Data", JobRole: "Analyst", Skills: "python, sql"}})

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	NewRegistry(
		handler.NewHealthHandler(nopPinger{}, nopPinger{}),
		ws.NewHandler(ws.NewHub(logger), logger),
		v1.Handlers{
			Auth:           handler.NewRecruiterAuthHandler(authUC),
			Jobs:           handler.NewJobHandler(jobsUC),
			Recommendation: handler.NewRecommendationHandler(recUC),
			RequireAuth:    middleware.NewAuthMiddleware(jwtSvc).Middleware(),
		},
	).Register(app)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body, token string) (int, string) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestRegistry_RecruiterFlow(t *testing.T) {
	app := newApp(t)

	status, _ := call(t, app, http.MethodGet, "/health", "", "")
	if status != fiber.StatusOK {
		t.Fatalf("health: expected 200, got %d", status)
	}

	status, body := call(t, app, http.MethodPost, "/api/v1/recruiters/signup", `{"name":"Rita","email":"r@x.com","password":"pw","company":"Co"}`, "")
	if status != fiber.StatusCreated {
		t.Fatalf("signup: %d %s", status, body)
	}
	status, _ = call(t, app, http.MethodPost, "/api/v1/recruiters/signup", `{"name":"Other","email":"r@x.com","password":"pw2","company":"Co2"}`, "")
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate signup: expected 409, got %d", status)
	}

	status, _ = call(t, app, http.MethodPost, "/api/v1/recruiters/login", `{"email":"r@x.com","password":"wrong"}`, "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", status)
	}

	status, body = call(t, app, http.MethodPost, "/api/v1/recruiters/login", `{"email":"r@x.com","password":"pw"}`, "")
	if status != fiber.StatusOK {
		t.Fatalf("login: %d %s", status, body)
	}
	const marker = `"access_token":"`
	i := strings.Index(body, marker)
	if i < 0 {
		t.Fatalf("no token in %s", body)
	}
	token := body[i+len(marker):]
	token = token[:strings.Index(token, `"`)]

	status, _ = call(t, app, http.MethodPost, "/api/v1/recruiters/jobs", `{"title":"Go Dev","description":"d","skills":"go","salary":"1","location":"Remote","eligibility":"any"}`, "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("anonymous post: expected 401, got %d", status)
	}

	status, body = call(t, app, http.MethodPost, "/api/v1/recruiters/jobs", `{"title":"Go Dev","description":"d","skills":"go","salary":"1","location":"Remote","eligibility":"any"}`, token)
	if status != fiber.StatusCreated {
		t.Fatalf("post: %d %s", status, body)
	}

	status, body = call(t, app, http.MethodGet, "/api/v1/recruiters/jobs", "", token)
	if status != fiber.StatusOK || !strings.Contains(body, "Go Dev") {
		t.Fatalf("my jobs: %d %s", status, body)
	}

	status, body = call(t, app, http.MethodGet, "/api/v1/jobs", "", "")
	if status != fiber.StatusOK || !strings.Contains(body, "Go Dev") {
		t.Fatalf("browse: %d %s", status, body)
	}

	status, body = call(t, app, http.MethodGet, "/api/v1/recruiters/me", "", token)
	if status != fiber.StatusOK || !strings.Contains(body, `"company":"Co"`) {
		t.Fatalf("me: %d %s", status, body)
	}
}

func TestRegistry_StudentRoutes(t *testing.T) {
	app := newApp(t)

	status, body := call(t, app, http.MethodGet, "/api/v1/recommendations?skills=SQL", "", "")
	if status != fiber.StatusOK || !strings.Contains(body, "Analyst") {
		t.Fatalf("recommendations: %d %s", status, body)
	}

	status, body = call(t, app, http.MethodGet, "/api/v1/catalog", "", "")
	if status != fiber.StatusOK || !strings.Contains(body, `"total":1`) {
		t.Fatalf("catalog: %d %s", status, body)
	}

	status, _ = call(t, app, http.MethodGet, "/ws/jobs", "", "")
	if status != fiber.StatusUpgradeRequired {
		t.Fatalf("plain GET on feed: expected 426, got %d", status)
	}
}
