// Package memdb is the in-process storage backend used when STORAGE_DRIVER=memory.
//
// Writers serialize per item through Update, which stages every write in a Tx
// and applies them together only when the callback returns nil. Readers use
// View and observe a consistent snapshot of one item.
package memdb

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/keylock"
)

var (
	// ErrDuplicateName mirrors the unique index on lower(items.name).
	ErrDuplicateName = errors.New("memdb: duplicate item name")

	// ErrOpenIntervalConflict mirrors the partial unique index on open price intervals.
	ErrOpenIntervalConflict = errors.New("memdb: more than one open price interval")

	// ErrIntervalOrder mirrors CHECK (end_date >= start_date).
	ErrIntervalOrder = errors.New("memdb: price interval ends before it starts")
)

type ItemRow struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Category       string
	Weight         float64
	Color          string
	Active         bool
	InventoryLevel int
	ReorderLevel   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PriceRow struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Price     decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	Seq       int64
}

func (r PriceRow) clone() PriceRow {
	if r.EndDate != nil {
		end := *r.EndDate
		r.EndDate = &end
	}
	return r
}

type PurchaseRow struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	Date      time.Time
	CreatedAt time.Time
	Seq       int64
}

type Store struct {
	locks keylock.Locks[uuid.UUID]

	mu        sync.RWMutex
	seq       int64
	items     map[uuid.UUID]ItemRow
	names     map[string]uuid.UUID
	prices    map[uuid.UUID][]PriceRow
	purchases map[uuid.UUID][]PurchaseRow
}

func New() *Store {
	return &Store{
		items:     make(map[uuid.UUID]ItemRow),
		names:     make(map[string]uuid.UUID),
		prices:    make(map[uuid.UUID][]PriceRow),
		purchases: make(map[uuid.UUID][]PurchaseRow),
	}
}

func nameKey(name string) string { return strings.ToLower(name) }

// InsertItem adds a new item, rejecting case-insensitive name collisions.
func (s *Store) InsertItem(row ItemRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.names[nameKey(row.Name)]; taken {
		return ErrDuplicateName
	}
	s.items[row.ID] = row
	s.names[nameKey(row.Name)] = row.ID
	return nil
}

// HasName reports whether any item uses name, ignoring case.
func (s *Store) HasName(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, taken := s.names[nameKey(name)]
	return taken
}

// Item returns the committed item row.
func (s *Store) Item(id uuid.UUID) (ItemRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.items[id]
	return row, ok
}

// Items returns a snapshot of every item, in no particular order.
func (s *Store) Items() []ItemRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ItemRow, 0, len(s.items))
	for _, row := range s.items {
		out = append(out, row)
	}
	return out
}

// AllPurchases returns a snapshot of every purchase across items.
func (s *Store) AllPurchases() []PurchaseRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []PurchaseRow
	for _, rows := range s.purchases {
		out = append(out, rows...)
	}
	return out
}

// Update runs fn holding itemID's exclusive lock. Writes staged on tx are
// applied atomically if fn returns nil and discarded otherwise.
func (s *Store) Update(itemID uuid.UUID, fn func(tx *Tx) error) error {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	tx := &Tx{s: s, itemID: itemID}
	if err := fn(tx); err != nil {
		return err
	}
	return s.commit(tx)
}

// View runs fn holding itemID's shared lock. Writes staged on tx are discarded.
func (s *Store) View(itemID uuid.UUID, fn func(tx *Tx) error) error {
	unlock := s.locks.RLock(itemID)
	defer unlock()
	return fn(&Tx{s: s, itemID: itemID})
}

func (s *Store) commit(tx *Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(tx.prices) > 0 {
		merged := mergePrices(s.prices[tx.itemID], tx.prices)
		open := 0
		for _, p := range merged {
			if p.EndDate == nil {
				open++
			} else if p.EndDate.Before(p.StartDate) {
				return ErrIntervalOrder
			}
		}
		if open > 1 {
			return ErrOpenIntervalConflict
		}
		for i := range merged {
			if merged[i].Seq == 0 {
				s.seq++
				merged[i].Seq = s.seq
			}
		}
		s.prices[tx.itemID] = merged
	}

	for _, p := range tx.purchases {
		s.seq++
		p.Seq = s.seq
		s.purchases[tx.itemID] = append(s.purchases[tx.itemID], p)
	}

	if tx.item != nil {
		if prev, ok := s.items[tx.itemID]; ok && nameKey(prev.Name) != nameKey(tx.item.Name) {
			delete(s.names, nameKey(prev.Name))
		}
		s.items[tx.itemID] = *tx.item
		s.names[nameKey(tx.item.Name)] = tx.itemID
	}
	return nil
}

func mergePrices(committed, staged []PriceRow) []PriceRow {
	out := make([]PriceRow, 0, len(committed)+len(staged))
	replaced := make(map[uuid.UUID]PriceRow, len(staged))
	for _, p := range staged {
		replaced[p.ID] = p
	}
	for _, p := range committed {
		if r, ok := replaced[p.ID]; ok {
			r.Seq = p.Seq
			out = append(out, r)
			delete(replaced, p.ID)
			continue
		}
		out = append(out, p)
	}
	for _, p := range staged {
		if _, ok := replaced[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Tx is scoped to one item. Reads see committed state overlaid with this tx's
// staged writes.
type Tx struct {
	s         *Store
	itemID    uuid.UUID
	item      *ItemRow
	prices    []PriceRow
	purchases []PurchaseRow
}

func (tx *Tx) Item() (ItemRow, bool) {
	if tx.item != nil {
		return *tx.item, true
	}
	return tx.s.Item(tx.itemID)
}

// PutItem stages a full replacement of the item row.
func (tx *Tx) PutItem(row ItemRow) {
	row.ID = tx.itemID
	tx.item = &row
}

// Prices returns the item's intervals, unordered, including staged writes.
func (tx *Tx) Prices() []PriceRow {
	tx.s.mu.RLock()
	committed := tx.s.prices[tx.itemID]
	merged := mergePrices(committed, tx.prices)
	tx.s.mu.RUnlock()

	out := make([]PriceRow, len(merged))
	for i, p := range merged {
		out[i] = p.clone()
	}
	return out
}

// OpenPrice returns the interval with no end date, if any.
func (tx *Tx) OpenPrice() (PriceRow, bool) {
	for _, p := range tx.Prices() {
		if p.EndDate == nil {
			return p, true
		}
	}
	return PriceRow{}, false
}

// PutPrice stages an insert, or an update when row.ID already exists.
func (tx *Tx) PutPrice(row PriceRow) {
	row.ItemID = tx.itemID
	row = row.clone()
	for i, p := range tx.prices {
		if p.ID == row.ID {
			tx.prices[i] = row
			return
		}
	}
	tx.prices = append(tx.prices, row)
}

// Purchases returns the item's purchases including staged appends.
func (tx *Tx) Purchases() []PurchaseRow {
	tx.s.mu.RLock()
	committed := tx.s.purchases[tx.itemID]
	out := make([]PurchaseRow, 0, len(committed)+len(tx.purchases))
	out = append(out, committed...)
	tx.s.mu.RUnlock()
	return append(out, tx.purchases...)
}

// AppendPurchase stages a new purchase row.
func (tx *Tx) AppendPurchase(row PurchaseRow) {
	row.ItemID = tx.itemID
	tx.purchases = append(tx.purchases, row)
}

// SortPricesNewestFirst orders by start date descending, newest row first on ties.
func SortPricesNewestFirst(rows []PriceRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].StartDate.Equal(rows[j].StartDate) {
			return rows[i].StartDate.After(rows[j].StartDate)
		}
		return rows[i].Seq > rows[j].Seq
	})
}

// SortPurchasesNewestFirst orders by date descending, newest row first on ties.
func SortPurchasesNewestFirst(rows []PurchaseRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].Seq > rows[j].Seq
	})
}
