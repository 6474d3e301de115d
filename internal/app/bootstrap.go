package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"career-connector/internal/config"
	"career-connector/internal/delivery/http/handler"
	"career-connector/internal/delivery/http/middleware"
	"career-connector/internal/delivery/http/routes"
	v1 "career-connector/internal/delivery/http/routes/v1"
	"career-connector/internal/pkg/jwt"
	"career-connector/internal/pkg/password"
	"career-connector/internal/repository"
	"career-connector/internal/usecase"
	ucauth "career-connector/internal/usecase/auth"
	"career-connector/internal/usecase/posting"
	"career-connector/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New wires handlers onto an already built container.
func New(c *Container) *App {
	cfg := c.Config
	logger := c.Logger

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	recruiters := repository.NewPostgresRecruiterRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)

	authUC := usecase.NewAuthUsecase(
		ucauth.NewService(recruiters, password.NewBcryptHasher(cfg.Auth.BcryptCost)),
		jwtSvc,
	)
	postingUC := posting.NewService(jobs, c.Cache, ws.NewJobNotifier(c.Hub), cfg.Redis.TTL, logger)
	recommendationUC := usecase.NewRecommendationUsecase(c.Catalog)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		ws.NewHandler(c.Hub, logger),
		v1.Handlers{
			Auth:           handler.NewRecruiterAuthHandler(authUC),
			Jobs:           handler.NewJobHandler(postingUC),
			Recommendation: handler.NewRecommendationHandler(recommendationUC),
			RequireAuth:    middleware.NewAuthMiddleware(jwtSvc).Middleware(),
		},
	).Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds config-dependent resources in order (database, cache, hub,
// catalog) and then the HTTP app. The returned cleanup releases them.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
