package services

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/pkg/collection"
	"github.com/shashiranjanraj/feastbook/pkg/event"
	"github.com/shashiranjanraj/feastbook/pkg/logger"
	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

// CustomerLookup resolves customer ids. *CustomerRegistry implements it.
type CustomerLookup interface {
	SearchByID(id string) (models.Customer, bool)
}

// MenuLookup resolves set menu ids. *SetMenuCatalog implements it.
type MenuLookup interface {
	Lookup(id string) (models.SetMenu, bool)
}

// OrderStore persists the whole order list.
type OrderStore interface {
	Load() ([]models.Order, error)
	Save([]models.Order) error
	Path() string
}

// OrderBook holds orders keyed by code and checks every write against the
// customer registry and the menu catalog.
type OrderBook struct {
	mu        sync.RWMutex
	store     OrderStore
	customers CustomerLookup
	menus     MenuLookup
	byCode    map[string]models.Order
	loaded    bool
	dirty     bool
}

func NewOrderBook(store OrderStore, customers CustomerLookup, menus MenuLookup) *OrderBook {
	return &OrderBook{
		store:     store,
		customers: customers,
		menus:     menus,
		byCode:    map[string]models.Order{},
	}
}

// AddNew places o. Checks run in order and the first failure wins: nil
// order, unknown customer, unknown menu, duplicate triple, code collision.
// An order without a code gets a generated one. On success o holds the
// stored form.
func (b *OrderBook) AddNew(o *models.Order) error {
	if o == nil {
		return b.reject("nil", ErrNilOrder)
	}
	rec := *o
	if strings.TrimSpace(rec.Code) == "" {
		rec.Code = models.NewOrderCode()
	}
	rec.Normalize()

	if _, ok := b.customers.SearchByID(rec.CustomerID); !ok {
		return b.reject("unknown_customer", fmt.Errorf("%w: %s", ErrUnknownCustomer, rec.CustomerID))
	}
	if _, ok := b.menus.Lookup(rec.MenuID); !ok {
		return b.reject("unknown_menu", fmt.Errorf("%w: %s", ErrUnknownMenu, rec.MenuID))
	}

	b.mu.Lock()
	if b.isDuplicateLocked(rec) {
		b.mu.Unlock()
		return b.reject("duplicate", fmt.Errorf("%w: %s/%s on %s",
			ErrDuplicateOrder, rec.CustomerID, rec.MenuID, rec.FormattedDate()))
	}
	if _, exists := b.byCode[rec.Key()]; exists {
		b.mu.Unlock()
		return b.reject("exists", fmt.Errorf("%w: %s", ErrOrderExists, rec.Code))
	}
	b.byCode[rec.Key()] = rec
	b.dirty = true
	b.mu.Unlock()

	*o = rec
	event.Fire(event.OrderPlaced, event.Change{Registry: "orders", ID: rec.Code})
	return nil
}

// Update replaces the order with o's code. The new menu must resolve; the
// duplicate-triple rule is not re-checked.
func (b *OrderBook) Update(o *models.Order) error {
	if o == nil {
		return b.reject("nil", ErrNilOrder)
	}
	if strings.TrimSpace(o.Code) == "" {
		return b.reject("missing_code", ErrOrderCodeMissing)
	}
	rec := *o
	rec.Normalize()

	b.mu.RLock()
	_, exists := b.byCode[rec.Key()]
	b.mu.RUnlock()
	if !exists {
		return b.reject("not_found", fmt.Errorf("%w: %s", ErrOrderNotFound, rec.Code))
	}
	if _, ok := b.menus.Lookup(rec.MenuID); !ok {
		return b.reject("unknown_menu", fmt.Errorf("%w: %s", ErrUnknownMenu, rec.MenuID))
	}

	b.mu.Lock()
	if _, exists := b.byCode[rec.Key()]; !exists {
		b.mu.Unlock()
		return b.reject("not_found", fmt.Errorf("%w: %s", ErrOrderNotFound, rec.Code))
	}
	b.byCode[rec.Key()] = rec
	b.dirty = true
	b.mu.Unlock()

	*o = rec
	event.Fire(event.OrderUpdated, event.Change{Registry: "orders", ID: rec.Code})
	return nil
}

func (b *OrderBook) reject(reason string, err error) error {
	event.Fire(event.OrderRejected, event.Rejection{Reason: reason, Err: err})
	return err
}

// SearchByID finds an order by code, ignoring case. Blank codes never match.
func (b *OrderBook) SearchByID(code string) (models.Order, bool) {
	key := models.NormalizeID(code)
	if key == "" {
		return models.Order{}, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.byCode[key]
	return o, ok
}

// IsDuplicate reports whether an order with o's customer, menu and event
// date is already booked.
func (b *OrderBook) IsDuplicate(o models.Order) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.isDuplicateLocked(o)
}

func (b *OrderBook) isDuplicateLocked(o models.Order) bool {
	for _, existing := range b.byCode {
		if existing.SameTriple(o) {
			return true
		}
	}
	return false
}

// List returns every order by ascending event date, then code.
func (b *OrderBook) List() []models.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.listLocked()
}

func (b *OrderBook) listLocked() []models.Order {
	return collection.SortStableBy(collection.Values(b.byCode), func(x, y models.Order) int {
		if c := x.EventDate.Compare(y.EventDate); c != 0 {
			return c
		}
		return strings.Compare(x.Code, y.Code)
	})
}

// TotalCost is the menu price times the table count. If the menu cannot be
// resolved the cost is 0 and ErrUnknownMenu is returned; a product that does
// not fit in an int64 returns ErrCostOverflow.
func (b *OrderBook) TotalCost(o models.Order) (int64, error) {
	menu, ok := b.menus.Lookup(o.MenuID)
	if !ok {
		logger.Warn("cannot compute total cost", "order", o.Code, "menu", o.MenuID)
		return 0, fmt.Errorf("%w: %s", ErrUnknownMenu, o.MenuID)
	}
	total, err := orderCost(menu, o)
	if err != nil {
		logger.Warn("cannot compute total cost", "order", o.Code, "menu", o.MenuID, "err", err)
		return 0, err
	}
	return total, nil
}

// orderCost multiplies without wrapping around.
func orderCost(m models.SetMenu, o models.Order) (int64, error) {
	if m.Price < 0 || o.Tables < 0 {
		return 0, fmt.Errorf("%w: price %d, tables %d", ErrCostOverflow, m.Price, o.Tables)
	}
	if o.Tables != 0 && m.Price > math.MaxInt64/int64(o.Tables) {
		return 0, fmt.Errorf("%w: price %d, tables %d", ErrCostOverflow, m.Price, o.Tables)
	}
	return m.Price * int64(o.Tables), nil
}

func (b *OrderBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byCode)
}

func (b *OrderBook) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

func (b *OrderBook) HasUnsavedChanges() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

func (b *OrderBook) Path() string { return b.store.Path() }

// Save writes every order. A failed save changes nothing in memory.
func (b *OrderBook) Save() error {
	b.mu.Lock()
	list := b.listLocked()
	if err := b.store.Save(list); err != nil {
		b.mu.Unlock()
		return fmt.Errorf("save orders: %w", err)
	}
	b.dirty = false
	b.mu.Unlock()

	event.Fire(event.RegistrySaved, event.Persisted{Registry: "orders", Path: b.store.Path(), Count: len(list)})
	return nil
}

// Load replaces the book with the stored orders. Stored orders are not
// re-validated against the other registries; orders failing their own field
// rules are kept and logged. If the store is corrupt the
// book is reset to empty and the error returned.
func (b *OrderBook) Load() error {
	records, err := b.store.Load()

	b.mu.Lock()
	b.byCode = make(map[string]models.Order, len(records))
	b.loaded = true
	b.dirty = false
	if err != nil {
		b.mu.Unlock()
		logger.Warn("order data could not be loaded", "path", b.store.Path(), "err", err)
		return fmt.Errorf("load orders: %w", err)
	}
	for _, o := range records {
		o.Normalize()
		if _, dup := b.byCode[o.Key()]; dup {
			continue
		}
		if errs := o.Validate(); validate.HasErrors(errs) {
			logger.Warn("stored order fails validation", "path", b.store.Path(), "code", o.Code, "errors", errs)
		}
		b.byCode[o.Key()] = o
	}
	n := len(b.byCode)
	b.mu.Unlock()

	event.Fire(event.RegistryLoaded, event.Persisted{Registry: "orders", Path: b.store.Path(), Count: n})
	return nil
}
