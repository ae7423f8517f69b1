package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/pricing/domain/repositories"
	"github.com/ghuser/stockroom/services/pricing/infrastructure/persistence/memory"
	"github.com/ghuser/stockroom/services/pricing/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for pricing.
type Services struct {
	Price *PriceService
}

// New wires pricing services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Price: NewPriceService(NewRepository(a), a.Clock, a.Logger),
	}
}

// NewRepository selects the storage backend configured on a.
func NewRepository(a *app.Application) repositories.PriceRepository {
	if a.InMemory() {
		return memory.NewPriceRepository(a.Mem, a.EventBus, a.Logger)
	}
	return postgres.NewPriceRepository(a.Db, a.EventBus)
}
