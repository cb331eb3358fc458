package karyaregistry

import (
	"log/slog"

	httpadapter "nusakarya/contexts/provenance/karya-registry/adapters/http"
	"nusakarya/contexts/provenance/karya-registry/adapters/memory"
	"nusakarya/contexts/provenance/karya-registry/application"
	"nusakarya/contexts/provenance/karya-registry/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Karya    ports.KaryaRepository
	Owners   ports.OwnerDirectory
	Licenses ports.LicenseDirectory
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Karya:    deps.Karya,
		Owners:   deps.Owners,
		Licenses: deps.Licenses,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule wires the module against the in-memory store. The
// owner and license directories still come from the caller because they
// belong to other contexts.
func NewInMemoryModule(
	owners ports.OwnerDirectory,
	licenses ports.LicenseDirectory,
	logger *slog.Logger,
) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Karya:    store,
		Owners:   owners,
		Licenses: licenses,
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
