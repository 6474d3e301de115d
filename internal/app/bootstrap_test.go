package app

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	"career-connector/internal/config"
	"career-connector/internal/domain/catalog"
	"career-connector/internal/infrastructure/cache"
	"career-connector/internal/ws"
)

func TestListenAddr(t *testing.T) {
	cases := map[string]string{"8080": ":8080", ":9000": ":9000", " 3000 ": ":3000"}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil || got != want {
			t.Fatalf("ListenAddr(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ListenAddr("  "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}

func TestLoadCatalog_LocalFile(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	entries := loadCatalog(context.Background(), config.CatalogConfig{Source: "../../data/JobData.csv"}, logger)
	if len(entries) == 0 {
		t.Fatalf("expected bundled catalog to load")
	}
	if missing := loadCatalog(context.Background(), config.CatalogConfig{Source: "does-not-exist.csv"}, logger); len(missing) != 0 {
		t.Fatalf("expected empty catalog for missing file")
	}
}

func TestNew_RoutesWithoutDatabase(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	c := &Container{
		Config: config.Config{
			App:  config.AppConfig{AppName: "career-connector"},
			JWT:  config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour},
			Auth: config.AuthConfig{BcryptCost: 4},
		},
		Logger:  logger,
		Cache:   cache.NewRedis(context.Background(), config.RedisConfig{Enabled: false}, logger),
		Hub:     ws.NewHub(logger),
		Catalog: []catalog.Entry{{JobRole: "Analyst", Skills: "sql"}},
	}
	a := New(c)

	resp, err := a.Fiber.Test(httptest.NewRequest("GET", "/api/v1/recommendations?skills=sql", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected access log middleware to set a request id")
	}

	resp, err = a.Fiber.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 503 {
		t.Fatalf("expected 503 without a database, got %d", resp.StatusCode)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
