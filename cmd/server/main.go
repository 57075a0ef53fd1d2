package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	authmodule "github.com/profiledeck/socialauth/modules/auth"
	"github.com/profiledeck/socialauth/pkg/config"
	"github.com/profiledeck/socialauth/pkg/cookie"
	"github.com/profiledeck/socialauth/pkg/httpserver"
	"github.com/profiledeck/socialauth/pkg/identity"
	"github.com/profiledeck/socialauth/pkg/logger"
	"github.com/profiledeck/socialauth/pkg/pg"
	"github.com/profiledeck/socialauth/pkg/provider"
	"github.com/profiledeck/socialauth/pkg/redis"
	"github.com/profiledeck/socialauth/pkg/requestid"
	"github.com/profiledeck/socialauth/pkg/session"
	"github.com/profiledeck/socialauth/pkg/statestore"
	authsvc "github.com/profiledeck/socialauth/svc/auth"
)

type oauthCreds struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

type appConfig struct {
	Env           string   `env:"APP_ENV" envDefault:"development"`
	BaseURL       string   `env:"BASE_URL" envDefault:"http://localhost:8080"`
	CookieSecrets []string `env:"COOKIE_SECRETS,required" envSeparator:","`

	// StateStore picks where pending OAuth flows live: "redis" or "postgres".
	StateStore string `env:"STATE_STORE" envDefault:"postgres"`

	Twitter  oauthCreds `envPrefix:"TWITTER_"`
	GitHub   oauthCreds `envPrefix:"GITHUB_"`
	Discord  oauthCreds `envPrefix:"DISCORD_"`
	LinkedIn oauthCreds `envPrefix:"LINKEDIN_"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "socialauth"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var pgCfg pg.Config
	config.MustLoad(&pgCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	var states statestore.Store = statestore.NewPostgresStore(pool)
	healthchecks := []func(context.Context) error{pg.Healthcheck(pool)}

	if cfg.StateStore == "redis" {
		var redisCfg redis.Config
		config.MustLoad(&redisCfg)

		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		states = statestore.NewRedisStore(client)
		healthchecks = append(healthchecks, redis.Healthcheck(client))
	}

	registry := provider.NewRegistry(
		provider.NewTwitter(),
		provider.NewGitHub(),
		provider.NewDiscord(),
		provider.NewLinkedIn(),
	)

	credentials := make(map[string]authsvc.Credentials)
	for id, creds := range map[string]oauthCreds{
		"twitter":  cfg.Twitter,
		"github":   cfg.GitHub,
		"discord":  cfg.Discord,
		"linkedin": cfg.LinkedIn,
	} {
		if creds.ClientID != "" {
			credentials[id] = authsvc.Credentials{
				ClientID:     creds.ClientID,
				ClientSecret: creds.ClientSecret,
			}
		}
	}
	if len(credentials) == 0 {
		log.Warn("no provider credentials configured, all logins will fail")
	}

	svc := authsvc.New(
		authsvc.Config{
			CallbackBaseURL: cfg.BaseURL,
			Credentials:     credentials,
		},
		registry,
		states,
		identity.NewPostgresStore(pool),
		session.New(session.WithStore(session.NewPostgresStore(pool))),
	)

	cookies, err := cookie.New(cfg.CookieSecrets)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(requestid.Middleware)
	router.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	router.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, healthchecks...))
	router.Mount("/auth", authmodule.New(svc, cookies,
		authmodule.WithLogger(log),
		authmodule.WithSecureCookies(cfg.Env == "production"),
	).Router())

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("listening", slog.String("addr", httpCfg.Addr), slog.String("base_url", cfg.BaseURL))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("stopped")
		}),
	)

	return srv.Run(ctx, router)
}
