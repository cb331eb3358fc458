package identityservice

import (
	"log/slog"

	httpadapter "nusakarya/contexts/identity-access/identity-service/adapters/http"
	"nusakarya/contexts/identity-access/identity-service/adapters/memory"
	"nusakarya/contexts/identity-access/identity-service/application"
	"nusakarya/contexts/identity-access/identity-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Verifier ports.TokenVerifier
	Users    ports.UserRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Verifier: deps.Verifier,
		Users:    deps.Users,
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

// NewInMemoryModule wires the module against the in-memory store; used by
// tests and local runs without postgres.
func NewInMemoryModule(verifier ports.TokenVerifier, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Verifier: verifier,
		Users:    store,
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
