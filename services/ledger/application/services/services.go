package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/ledger/domain/repositories"
	"github.com/ghuser/stockroom/services/ledger/infrastructure/persistence/memory"
	"github.com/ghuser/stockroom/services/ledger/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the ledger.
type Services struct {
	Ledger *LedgerService
}

// New wires ledger services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Ledger: NewLedgerService(NewRepository(a), a.Clock, a.Logger),
	}
}

// NewRepository selects the storage backend configured on a.
func NewRepository(a *app.Application) repositories.PurchaseRepository {
	if a.InMemory() {
		return memory.NewPurchaseRepository(a.Mem, a.EventBus, a.Logger)
	}
	return postgres.NewPurchaseRepository(a.Db, a.EventBus)
}
