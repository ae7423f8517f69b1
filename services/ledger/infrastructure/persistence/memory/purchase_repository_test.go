package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/memdb"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
	domainevents "github.com/ghuser/stockroom/services/ledger/domain/events"
	"github.com/ghuser/stockroom/services/ledger/domain/services"
)

var now = time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)

func seedItem(t *testing.T, store *memdb.Store, active bool, level, reorder int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, store.InsertItem(memdb.ItemRow{
		ID: id, Name: "item " + id.String(), Category: "pieces", Weight: 1,
		Active: active, InventoryLevel: level, ReorderLevel: reorder,
	}))
	return id
}

func post(qty int, date time.Time) func(services.StockItem) (services.Posting, error) {
	return func(item services.StockItem) (services.Posting, error) {
		return services.Post(item, qty, date, now)
	}
}

func level(t *testing.T, store *memdb.Store, id uuid.UUID) int {
	t.Helper()
	row, ok := store.Item(id)
	require.True(t, ok)
	return row.InventoryLevel
}

func TestPurchaseRepository_Apply(t *testing.T) {
	store := memdb.New()
	repo := NewPurchaseRepository(store, nil, logger.Discard())
	ctx := context.Background()
	itemID := seedItem(t, store, true, 50, 20)

	posting, err := repo.Apply(ctx, itemID, post(-45, clock.Date(2025, 6, 30)))
	require.NoError(t, err)
	assert.Equal(t, 5, posting.NewLevel)
	assert.True(t, posting.NeedsReorder)
	assert.Equal(t, 5, level(t, store, itemID))

	_, err = repo.Apply(ctx, itemID, post(0, clock.Date(2025, 6, 30)))
	assert.Equal(t, domainerr.KindValue, domainerr.KindOf(err))
	_, err = repo.Apply(ctx, itemID, post(3, clock.Date(2025, 7, 1)))
	assert.Equal(t, domainerr.KindTemporalOrder, domainerr.KindOf(err))
	assert.Equal(t, 5, level(t, store, itemID), "rejected purchases must not move the level")

	history, err := repo.History(ctx, itemID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPurchaseRepository_Apply_ItemChecks(t *testing.T) {
	store := memdb.New()
	repo := NewPurchaseRepository(store, nil, logger.Discard())
	ctx := context.Background()

	_, err := repo.Apply(ctx, uuid.New(), post(1, clock.Date(2025, 6, 1)))
	assert.ErrorIs(t, err, ledgerdomain.ErrUnknownItem)

	inactive := seedItem(t, store, false, 3, 1)
	_, err = repo.Apply(ctx, inactive, post(1, clock.Date(2025, 6, 1)))
	assert.ErrorIs(t, err, ledgerdomain.ErrInactiveItem)
	assert.Equal(t, 3, level(t, store, inactive))
}

func TestPurchaseRepository_HistoryAndLosses(t *testing.T) {
	store := memdb.New()
	repo := NewPurchaseRepository(store, nil, logger.Discard())
	ctx := context.Background()
	a := seedItem(t, store, true, 100, 10)
	b := seedItem(t, store, true, 100, 10)

	apply := func(id uuid.UUID, qty int, date time.Time) uuid.UUID {
		p, err := repo.Apply(ctx, id, post(qty, date))
		require.NoError(t, err)
		return p.Purchase.ID
	}
	a1 := apply(a, 20, clock.Date(2025, 5, 1))
	a2 := apply(a, -5, clock.Date(2025, 6, 1))
	a3 := apply(a, -2, clock.Date(2025, 6, 1))
	b1 := apply(b, -7, clock.Date(2025, 6, 15))
	apply(b, 4, clock.Date(2025, 6, 20))

	history, err := repo.History(ctx, a)
	require.NoError(t, err)
	ids := make([]uuid.UUID, len(history))
	for i, p := range history {
		ids[i] = p.ID
	}
	assert.Equal(t, []uuid.UUID{a3, a2, a1}, ids, "date desc, newest first on ties")

	losses, err := repo.Losses(ctx, nil)
	require.NoError(t, err)
	ids = ids[:0]
	for _, p := range losses {
		assert.True(t, p.IsLoss())
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []uuid.UUID{b1, a3, a2}, ids)

	losses, err = repo.Losses(ctx, &a)
	require.NoError(t, err)
	assert.Len(t, losses, 2)

	unknown := uuid.New()
	losses, err = repo.Losses(ctx, &unknown)
	require.NoError(t, err)
	assert.Empty(t, losses)
}

func TestPurchaseRepository_ConcurrentPurchases(t *testing.T) {
	store := memdb.New()
	repo := NewPurchaseRepository(store, nil, logger.Discard())
	ctx := context.Background()
	items := []uuid.UUID{seedItem(t, store, true, 0, 5), seedItem(t, store, true, 1000, 5)}

	const perItem = 100
	var wg sync.WaitGroup
	for _, id := range items {
		for i := 0; i < perItem; i++ {
			wg.Add(1)
			go func(id uuid.UUID, i int) {
				defer wg.Done()
				qty := 3
				if i%2 == 1 {
					qty = -1
				}
				_, err := repo.Apply(ctx, id, post(qty, clock.Date(2025, 6, 1)))
				assert.NoError(t, err)
			}(id, i)
		}
	}
	wg.Wait()

	// 50 receipts of 3 and 50 losses of 1 per item.
	assert.Equal(t, 100, level(t, store, items[0]))
	assert.Equal(t, 1100, level(t, store, items[1]))
	for _, id := range items {
		history, err := repo.History(ctx, id)
		require.NoError(t, err)
		assert.Len(t, history, perItem)
	}
}

func TestPurchaseRepository_PublishesPurchaseRecorded(t *testing.T) {
	store := memdb.New()
	bus := events.NewInMemoryEventBus(logger.Discard())
	t.Cleanup(func() { _ = bus.Close() })
	repo := NewPurchaseRepository(store, bus, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan domainevents.PurchaseRecordedEvent, 1)
	_, err := bus.Subscribe(ctx, domainevents.TopicPurchaseRecorded, func(_ context.Context, msg *message.Message) error {
		evt, err := events.Decode[domainevents.PurchaseRecordedEvent](msg)
		if err != nil {
			return err
		}
		received <- evt
		return nil
	})
	require.NoError(t, err)

	itemID := seedItem(t, store, true, 50, 20)
	posting, err := repo.Apply(ctx, itemID, post(-45, clock.Date(2025, 6, 30)))
	require.NoError(t, err)

	select {
	case evt := <-received:
		assert.Equal(t, posting.Purchase.ID, evt.PurchaseID)
		assert.Equal(t, 5, evt.NewLevel)
		assert.True(t, evt.NeedsReorder)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for purchase.recorded")
	}
}
