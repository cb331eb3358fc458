package licenseservice

import (
	"log/slog"

	httpadapter "nusakarya/contexts/provenance/license-service/adapters/http"
	"nusakarya/contexts/provenance/license-service/adapters/memory"
	"nusakarya/contexts/provenance/license-service/application"
	"nusakarya/contexts/provenance/license-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Licenses ports.LicenseRepository
	Karya    ports.KaryaDirectory
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Licenses: deps.Licenses,
		Karya:    deps.Karya,
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

// NewInMemoryModule wires the module against the in-memory store. The karya
// directory comes from the caller because it belongs to another context.
func NewInMemoryModule(karya ports.KaryaDirectory, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Licenses: store,
		Karya:    karya,
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
