package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
)

var now = time.Date(2025, 6, 30, 16, 20, 0, 0, time.UTC)

func TestPost(t *testing.T) {
	item := StockItem{ID: uuid.New(), Active: true, InventoryLevel: 50, ReorderLevel: 20}

	tests := []struct {
		name         string
		item         StockItem
		qty          int
		date         time.Time
		wantKind     domainerr.Kind
		wantLevel    int
		wantReorder  bool
		wantSentinel error
	}{
		{name: "loss below reorder level", item: item, qty: -45, date: clock.Date(2025, 6, 30), wantLevel: 5, wantReorder: true},
		{name: "receipt", item: item, qty: 10, date: clock.Date(2025, 6, 1), wantLevel: 60},
		{name: "exactly at reorder level", item: item, qty: -30, date: clock.Date(2025, 6, 1), wantLevel: 20, wantReorder: true},
		{name: "negative level allowed", item: item, qty: -70, date: clock.Date(2025, 6, 1), wantLevel: -20, wantReorder: true},
		{name: "zero quantity", item: item, qty: 0, date: clock.Date(2025, 6, 1), wantKind: domainerr.KindValue},
		{name: "future date", item: item, qty: 1, date: clock.Date(2025, 7, 1), wantKind: domainerr.KindTemporalOrder},
		{
			name:      "level up to storage maximum",
			item:      StockItem{ID: item.ID, Active: true, InventoryLevel: MaxLevel - 10},
			qty:       10,
			date:      clock.Date(2025, 6, 1),
			wantLevel: MaxLevel,
		},
		{
			name:     "level past storage maximum",
			item:     StockItem{ID: item.ID, Active: true, InventoryLevel: MaxLevel - 10},
			qty:      11,
			date:     clock.Date(2025, 6, 1),
			wantKind: domainerr.KindValue,
		},
		{
			name:     "level past storage minimum",
			item:     StockItem{ID: item.ID, Active: true, InventoryLevel: MinLevel + 5},
			qty:      -6,
			date:     clock.Date(2025, 6, 1),
			wantKind: domainerr.KindValue,
		},
		{
			name:         "inactive item",
			item:         StockItem{ID: item.ID, InventoryLevel: 5},
			qty:          1,
			date:         clock.Date(2025, 6, 1),
			wantKind:     domainerr.KindValidation,
			wantSentinel: ledgerdomain.ErrInactiveItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Post(tt.item, tt.qty, tt.date, now)
			if tt.wantKind != domainerr.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domainerr.KindOf(err))
				if tt.wantSentinel != nil {
					assert.ErrorIs(t, err, tt.wantSentinel)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, got.NewLevel)
			assert.Equal(t, tt.wantReorder, got.NeedsReorder)
			assert.Equal(t, tt.qty, got.Purchase.Quantity)
			assert.Equal(t, tt.item.ID, got.Purchase.ItemID)
			assert.Equal(t, now, got.Purchase.CreatedAt)
		})
	}
}

func TestPost_DateUsesCallersCalendar(t *testing.T) {
	// 23:30 on June 30th in UTC-5 is already July 1st in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2025, 6, 30, 23, 30, 0, 0, loc)
	item := StockItem{ID: uuid.New(), Active: true}

	_, err := Post(item, 1, clock.Date(2025, 6, 30), local)
	require.NoError(t, err)

	_, err = Post(item, 1, clock.Date(2025, 7, 1), local)
	assert.Equal(t, domainerr.KindTemporalOrder, domainerr.KindOf(err))
}

func TestPost_LevelIsInitialPlusSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	item := StockItem{ID: uuid.New(), Active: true, InventoryLevel: 12, ReorderLevel: 4}
	sum := 0
	for i := 0; i < 200; i++ {
		qty := rng.Intn(41) - 20
		if qty == 0 {
			continue
		}
		p, err := Post(item, qty, clock.Date(2025, 6, 1), now)
		require.NoError(t, err)
		sum += qty
		item.InventoryLevel = p.NewLevel
		assert.Equal(t, p.NewLevel <= item.ReorderLevel, p.NeedsReorder)
	}
	assert.Equal(t, 12+sum, item.InventoryLevel)
}
