package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/pkg/collection"
	"github.com/shashiranjanraj/feastbook/pkg/event"
	"github.com/shashiranjanraj/feastbook/pkg/logger"
	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

// CustomerStore persists the whole customer list.
type CustomerStore interface {
	Load() ([]models.Customer, error)
	Save([]models.Customer) error
	Path() string
}

// CustomerRegistry holds customers keyed by upper-cased id.
type CustomerRegistry struct {
	mu     sync.RWMutex
	store  CustomerStore
	byID   map[string]models.Customer
	loaded bool
	dirty  bool
}

func NewCustomerRegistry(store CustomerStore) *CustomerRegistry {
	return &CustomerRegistry{store: store, byID: map[string]models.Customer{}}
}

// AddNew inserts c. The id is normalized first, so "c0001" collides with
// "C0001". On success c holds the stored form.
func (r *CustomerRegistry) AddNew(c *models.Customer) error {
	if c == nil {
		return ErrNilCustomer
	}
	rec := *c
	rec.Normalize()

	r.mu.Lock()
	if _, exists := r.byID[rec.ID]; exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrCustomerExists, rec.ID)
	}
	r.byID[rec.ID] = rec
	r.dirty = true
	r.mu.Unlock()

	*c = rec
	event.Fire(event.CustomerCreated, event.Change{Registry: "customers", ID: rec.ID})
	return nil
}

// Update replaces the customer with c's id.
func (r *CustomerRegistry) Update(c *models.Customer) error {
	if c == nil {
		return ErrNilCustomer
	}
	rec := *c
	rec.Normalize()

	r.mu.Lock()
	if _, exists := r.byID[rec.ID]; !exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrCustomerNotFound, rec.ID)
	}
	r.byID[rec.ID] = rec
	r.dirty = true
	r.mu.Unlock()

	*c = rec
	event.Fire(event.CustomerUpdated, event.Change{Registry: "customers", ID: rec.ID})
	return nil
}

// SearchByID finds a customer, ignoring case.
func (r *CustomerRegistry) SearchByID(id string) (models.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[models.NormalizeID(id)]
	return c, ok
}

// FilterByName returns customers whose name contains query, ignoring case,
// ordered like List.
func (r *CustomerRegistry) FilterByName(query string) []models.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	return collection.Filter(r.List(), func(c models.Customer) bool {
		return strings.Contains(strings.ToLower(c.Name), q)
	})
}

// List returns every customer by last name (case-insensitive), then id.
func (r *CustomerRegistry) List() []models.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

func (r *CustomerRegistry) listLocked() []models.Customer {
	return collection.SortByKey(collection.Values(r.byID),
		func(c models.Customer) string { return strings.ToLower(c.LastName()) },
		func(a, b models.Customer) int { return strings.Compare(a.ID, b.ID) },
	)
}

func (r *CustomerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Loaded reports whether Load has run, so an empty registry can be told
// apart from one that was never read.
func (r *CustomerRegistry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

func (r *CustomerRegistry) HasUnsavedChanges() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dirty
}

func (r *CustomerRegistry) Path() string { return r.store.Path() }

// Save writes every customer. A failed save changes nothing in memory.
func (r *CustomerRegistry) Save() error {
	r.mu.Lock()
	list := r.listLocked()
	if err := r.store.Save(list); err != nil {
		r.mu.Unlock()
		return fmt.Errorf("save customers: %w", err)
	}
	r.dirty = false
	r.mu.Unlock()

	event.Fire(event.RegistrySaved, event.Persisted{Registry: "customers", Path: r.store.Path(), Count: len(list)})
	return nil
}

// Load replaces the registry with the stored customers. Records failing
// their field rules are kept and logged. If the store is corrupt the
// registry is reset to empty and the error returned.
func (r *CustomerRegistry) Load() error {
	records, err := r.store.Load()

	r.mu.Lock()
	r.byID = make(map[string]models.Customer, len(records))
	r.loaded = true
	r.dirty = false
	if err != nil {
		r.mu.Unlock()
		logger.Warn("customer data could not be loaded", "path", r.store.Path(), "err", err)
		return fmt.Errorf("load customers: %w", err)
	}
	for _, c := range records {
		c.Normalize()
		if _, dup := r.byID[c.ID]; dup {
			continue
		}
		if errs := c.Validate(); validate.HasErrors(errs) {
			logger.Warn("stored customer fails validation", "path", r.store.Path(), "id", c.ID, "errors", errs)
		}
		r.byID[c.ID] = c
	}
	n := len(r.byID)
	r.mu.Unlock()

	event.Fire(event.RegistryLoaded, event.Persisted{Registry: "customers", Path: r.store.Path(), Count: n})
	return nil
}
