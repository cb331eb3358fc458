package bootstrap

import (
	"errors"
	"log/slog"
	"strings"

	identityservice "nusakarya/contexts/identity-access/identity-service"
	identitypostgres "nusakarya/contexts/identity-access/identity-service/adapters/postgres"
	"nusakarya/contexts/identity-access/identity-service/adapters/privy"
	karyaregistry "nusakarya/contexts/provenance/karya-registry"
	karyapostgres "nusakarya/contexts/provenance/karya-registry/adapters/postgres"
	licenseservice "nusakarya/contexts/provenance/license-service"
	licensepostgres "nusakarya/contexts/provenance/license-service/adapters/postgres"
	"nusakarya/internal/platform/config"
	"nusakarya/internal/platform/db"
	"nusakarya/internal/platform/httpserver"
	"nusakarya/internal/shared/directory"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	verifier := privy.NewClient(cfg.PrivyBaseURL, cfg.PrivyAppID, cfg.PrivyAppSecret, logger)

	identityModule := identityservice.NewModule(identityservice.Dependencies{
		Verifier: verifier,
		Users:    identitypostgres.NewRepository(pg.DB, logger),
		Clock:    identitypostgres.SystemClock{},
		IDGen:    identitypostgres.UUIDGenerator{},
		Logger:   logger,
	})

	licenseRepo := licensepostgres.NewRepository(pg.DB, logger)

	karyaModule := karyaregistry.NewModule(karyaregistry.Dependencies{
		Karya:    karyapostgres.NewRepository(pg.DB, logger),
		Owners:   directory.OwnerDirectory{Identity: identityModule.Service},
		Licenses: directory.LicenseDirectory{Licenses: licenseRepo},
		Clock:    karyapostgres.SystemClock{},
		IDGen:    karyapostgres.UUIDGenerator{},
		Logger:   logger,
	})

	licenseModule := licenseservice.NewModule(licenseservice.Dependencies{
		Licenses: licenseRepo,
		Karya:    directory.KaryaDirectory{Registry: karyaModule.Service},
		Clock:    licensepostgres.SystemClock{},
		IDGen:    licensepostgres.UUIDGenerator{},
		Logger:   logger,
	})

	server := httpserver.New(identityModule, karyaModule, licenseModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	defer func() {
		_ = a.postgres.Close()
	}()
	return a.server.Start()
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":3000"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
