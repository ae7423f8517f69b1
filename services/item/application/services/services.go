package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
	"github.com/ghuser/stockroom/services/item/infrastructure/persistence/memory"
	"github.com/ghuser/stockroom/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Item: NewItemService(NewRepository(a), a.Clock, a.Logger),
	}
}

// NewRepository selects the storage backend configured on a.
func NewRepository(a *app.Application) repositories.ItemRepository {
	if a.InMemory() {
		return memory.NewItemRepository(a.Mem, a.EventBus, a.Logger)
	}
	return postgres.NewItemRepository(a.Db, a.EventBus)
}
