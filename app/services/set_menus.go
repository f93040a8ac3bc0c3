package services

import (
	"errors"
	"sync"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/pkg/collection"
	"github.com/shashiranjanraj/feastbook/pkg/logger"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

// CatalogStatus describes the outcome of the last catalog load.
type CatalogStatus int

const (
	CatalogMissing    CatalogStatus = iota // not loaded yet, or no menu file
	CatalogUnreadable                      // the file exists but reading it failed
	CatalogEmpty                           // readable, but no valid entries
	CatalogReady
)

func (s CatalogStatus) String() string {
	switch s {
	case CatalogUnreadable:
		return "unreadable"
	case CatalogEmpty:
		return "empty"
	case CatalogReady:
		return "ready"
	default:
		return "missing"
	}
}

// MenuSource produces the catalog entries stored at path, in file order.
type MenuSource interface {
	LoadMenus(path string) ([]models.SetMenu, error)
}

// SetMenuCatalog is the read-only feast menu. It can only be replaced as a
// whole by Load.
type SetMenuCatalog struct {
	mu      sync.RWMutex
	source  MenuSource
	entries []models.SetMenu // file order
	byID    map[string]int   // normalized id → index in entries
	status  CatalogStatus
}

func NewSetMenuCatalog(source MenuSource) *SetMenuCatalog {
	return &SetMenuCatalog{source: source, byID: map[string]int{}}
}

// Load replaces the catalog with the entries at path. On any failure the
// catalog is left empty and the error is returned; Status tells a missing
// file from an unreadable one.
func (c *SetMenuCatalog) Load(path string) error {
	menus, err := c.source.LoadMenus(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.byID = map[string]int{}

	switch {
	case errors.Is(err, storage.ErrNotExist):
		c.status = CatalogMissing
		logger.Warn("menu file is missing", "path", path)
		return err
	case err != nil:
		c.status = CatalogUnreadable
		logger.Warn("menu file is not readable", "path", path, "err", err)
		return err
	case len(menus) == 0:
		c.status = CatalogEmpty
		logger.Warn("menu file has no entries", "path", path)
		return nil
	}

	c.entries = make([]models.SetMenu, 0, len(menus))
	for _, m := range menus {
		key := models.NormalizeID(m.ID)
		if _, dup := c.byID[key]; dup {
			continue // first occurrence wins
		}
		c.byID[key] = len(c.entries)
		c.entries = append(c.entries, m)
	}
	c.status = CatalogReady
	logger.Info("menu catalog loaded", "path", path, "entries", len(c.entries))
	return nil
}

// Lookup finds a menu by id, ignoring case.
func (c *SetMenuCatalog) Lookup(id string) (models.SetMenu, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[models.NormalizeID(id)]
	if !ok {
		return models.SetMenu{}, false
	}
	return c.entries[i], true
}

// List returns the menus by ascending price; equal prices keep file order.
func (c *SetMenuCatalog) List() []models.SetMenu {
	c.mu.RLock()
	out := make([]models.SetMenu, len(c.entries))
	copy(out, c.entries)
	c.mu.RUnlock()

	return collection.SortByKey(out, func(m models.SetMenu) int64 { return m.Price }, nil)
}

func (c *SetMenuCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *SetMenuCatalog) Status() CatalogStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Available reports whether menus can be ordered.
func (c *SetMenuCatalog) Available() bool { return c.Status() == CatalogReady }
