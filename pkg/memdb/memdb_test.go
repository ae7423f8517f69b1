package memdb

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func seedItem(t *testing.T, s *Store, name string) ItemRow {
	t.Helper()
	row := ItemRow{ID: uuid.New(), Name: name, Category: "pieces", Weight: 1, Active: true, InventoryLevel: 10}
	require.NoError(t, s.InsertItem(row))
	return row
}

func TestInsertItem_CaseInsensitiveUniqueName(t *testing.T) {
	s := New()
	seedItem(t, s, "Staunton Knight")

	err := s.InsertItem(ItemRow{ID: uuid.New(), Name: "staunton KNIGHT"})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Len(t, s.Items(), 1)
	assert.True(t, s.HasName("STAUNTON knight"))
	assert.False(t, s.HasName("Staunton Bishop"))
}

func TestUpdate_CommitsAllOrNothing(t *testing.T) {
	s := New()
	item := seedItem(t, s, "Vinyl Board")
	boom := errors.New("boom")

	err := s.Update(item.ID, func(tx *Tx) error {
		row, _ := tx.Item()
		row.InventoryLevel = 99
		tx.PutItem(row)
		tx.AppendPurchase(PurchaseRow{ID: uuid.New(), Quantity: 89, Date: day(2)})
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, _ := s.Item(item.ID)
	assert.Equal(t, 10, got.InventoryLevel)
	assert.Empty(t, s.AllPurchases())

	require.NoError(t, s.Update(item.ID, func(tx *Tx) error {
		row, _ := tx.Item()
		row.InventoryLevel = 15
		tx.PutItem(row)
		tx.AppendPurchase(PurchaseRow{ID: uuid.New(), Quantity: 5, Date: day(2)})
		return nil
	}))

	got, _ = s.Item(item.ID)
	assert.Equal(t, 15, got.InventoryLevel)
	require.Len(t, s.AllPurchases(), 1)
	assert.Equal(t, item.ID, s.AllPurchases()[0].ItemID)
}

func TestUpdate_StagedWritesVisibleInsideTx(t *testing.T) {
	s := New()
	item := seedItem(t, s, "Digital Clock")

	require.NoError(t, s.Update(item.ID, func(tx *Tx) error {
		tx.PutPrice(PriceRow{ID: uuid.New(), Price: decimal.RequireFromString("9.99"), StartDate: day(1)})
		open, ok := tx.OpenPrice()
		require.True(t, ok)
		assert.True(t, open.Price.Equal(decimal.RequireFromString("9.99")))
		return nil
	}))
}

func TestCommit_RejectsSecondOpenInterval(t *testing.T) {
	s := New()
	item := seedItem(t, s, "Score Sheets")

	require.NoError(t, s.Update(item.ID, func(tx *Tx) error {
		tx.PutPrice(PriceRow{ID: uuid.New(), Price: decimal.NewFromInt(1), StartDate: day(1)})
		return nil
	}))

	err := s.Update(item.ID, func(tx *Tx) error {
		tx.PutPrice(PriceRow{ID: uuid.New(), Price: decimal.NewFromInt(2), StartDate: day(3)})
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenIntervalConflict)

	var prices []PriceRow
	require.NoError(t, s.View(item.ID, func(tx *Tx) error {
		prices = tx.Prices()
		return nil
	}))
	assert.Len(t, prices, 1)
}

func TestCommit_RejectsInvertedInterval(t *testing.T) {
	s := New()
	item := seedItem(t, s, "Tournament Bag")
	end := day(1)

	err := s.Update(item.ID, func(tx *Tx) error {
		tx.PutPrice(PriceRow{ID: uuid.New(), StartDate: day(5), EndDate: &end})
		return nil
	})
	assert.ErrorIs(t, err, ErrIntervalOrder)
}

func TestPutPrice_UpdateKeepsSequence(t *testing.T) {
	s := New()
	item := seedItem(t, s, "Rosewood Set")
	first := PriceRow{ID: uuid.New(), Price: decimal.NewFromInt(10), StartDate: day(1)}

	require.NoError(t, s.Update(item.ID, func(tx *Tx) error { tx.PutPrice(first); return nil }))
	require.NoError(t, s.Update(item.ID, func(tx *Tx) error {
		open, ok := tx.OpenPrice()
		require.True(t, ok)
		end := day(1)
		open.EndDate = &end
		tx.PutPrice(open)
		tx.PutPrice(PriceRow{ID: uuid.New(), Price: decimal.NewFromInt(12), StartDate: day(1)})
		return nil
	}))

	var prices []PriceRow
	require.NoError(t, s.View(item.ID, func(tx *Tx) error {
		prices = tx.Prices()
		return nil
	}))
	require.Len(t, prices, 2)

	SortPricesNewestFirst(prices)
	assert.True(t, prices[0].Price.Equal(decimal.NewFromInt(12)), "newest row first on equal start dates")
	assert.Nil(t, prices[0].EndDate)
	assert.Equal(t, first.ID, prices[1].ID)
	assert.Less(t, prices[1].Seq, prices[0].Seq)
}

func TestPrices_ReturnsCopies(t *testing.T) {
	s := New()
	item := seedItem(t, s, "Clock Battery")
	end := day(4)
	require.NoError(t, s.Update(item.ID, func(tx *Tx) error {
		tx.PutPrice(PriceRow{ID: uuid.New(), StartDate: day(1), EndDate: &end})
		return nil
	}))

	require.NoError(t, s.View(item.ID, func(tx *Tx) error {
		p := tx.Prices()
		*p[0].EndDate = day(20)
		return nil
	}))
	require.NoError(t, s.View(item.ID, func(tx *Tx) error {
		assert.True(t, tx.Prices()[0].EndDate.Equal(day(4)))
		return nil
	}))
}

func TestUpdate_ConcurrentWritersSameItem(t *testing.T) {
	s := New()
	item := seedItem(t, s, "Club Set")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(item.ID, func(tx *Tx) error {
				row, _ := tx.Item()
				row.InventoryLevel++
				tx.PutItem(row)
				tx.AppendPurchase(PurchaseRow{ID: uuid.New(), Quantity: 1, Date: day(2)})
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.Item(item.ID)
	assert.Equal(t, 60, got.InventoryLevel)
	assert.Len(t, s.AllPurchases(), 50)
}

func TestSortPurchasesNewestFirst(t *testing.T) {
	rows := []PurchaseRow{
		{Quantity: 1, Date: day(1), Seq: 1},
		{Quantity: 2, Date: day(3), Seq: 2},
		{Quantity: 3, Date: day(3), Seq: 3},
	}
	SortPurchasesNewestFirst(rows)
	assert.Equal(t, []int{3, 2, 1}, []int{rows[0].Quantity, rows[1].Quantity, rows[2].Quantity})
}
