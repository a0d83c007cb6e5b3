package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"StudioSite/internal/admin"
	"StudioSite/internal/brands"
	"StudioSite/internal/catalog"
	"StudioSite/internal/config"
	"StudioSite/internal/contact"
	"StudioSite/internal/content"
	"StudioSite/internal/site"
	"StudioSite/pkg/kit"
)

const hydrateTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	service := "site"
	log := kit.NewLogger(service, os.Getenv("APP_ENV"))
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}

	deps, err := buildDeps(cfg, log)
	if err != nil {
		log.Fatal("init backends failed", zap.Error(err))
	}

	h := site.NewHandler(deps, site.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildDeps(cfg config.Config, log *zap.Logger) (site.Deps, error) {
	var (
		catalogStore catalog.Store  = catalog.NewMemStore()
		contactStore contact.Store  = contact.NewMemStore()
		source       content.Source = content.NewMemSource()
		fetcher      brands.Fetcher = brands.NewStaticFetcher()
	)

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return site.Deps{}, err
		}
		catalogStore = catalog.NewPostgresStore(db)
		contactStore = contact.NewPostgresStore(db)
		source = content.NewPostgresSource(db)
		fetcher = brands.NewPostgresFetcher(db)
		log.Info("using postgres backends")
	}

	brandStore := brands.NewStore()

	ctx, cancel := context.WithTimeout(context.Background(), hydrateTimeout)
	defer cancel()
	brands.Hydrate(ctx, brandStore, fetcher, log)

	deps := site.Deps{
		Catalog:        catalogStore,
		Brands:         brandStore,
		Content:        &content.Loader{Source: source, Log: log},
		Contact:        contactStore,
		ContactLimiter: kit.NewIPRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow),
	}

	if cfg.AdminEnabled() {
		deps.Admin = &admin.Server{
			Creds: admin.Credentials{
				Email:        cfg.AdminEmail,
				PasswordHash: []byte(cfg.AdminPasswordHash),
			},
			JWT:    admin.NewTokenMaker(cfg.JWTSecret),
			Brands: brandStore,
			Log:    log,
		}
	} else {
		log.Info("admin surface disabled")
	}

	return deps, nil
}
