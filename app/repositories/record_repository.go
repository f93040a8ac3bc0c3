package repositories

import (
	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/pkg/recordstore"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

// RecordRepository persists one registry's records as a single stream.
type RecordRepository[T any] struct {
	store *recordstore.Store[T]
	path  string
}

// NewCustomerRepository stores customers at path on disk.
func NewCustomerRepository(disk storage.Disk, path string) *RecordRepository[models.Customer] {
	return &RecordRepository[models.Customer]{
		store: recordstore.New[models.Customer](disk, "customers"),
		path:  path,
	}
}

// NewOrderRepository stores orders at path on disk.
func NewOrderRepository(disk storage.Disk, path string) *RecordRepository[models.Order] {
	return &RecordRepository[models.Order]{
		store: recordstore.New[models.Order](disk, "orders"),
		path:  path,
	}
}

// Load returns every stored record. Missing or unreadable streams are empty;
// corrupt streams return recordstore.ErrCorrupt.
func (r *RecordRepository[T]) Load() ([]T, error) {
	return r.store.LoadAll(r.path)
}

// Save replaces the stored stream with records.
func (r *RecordRepository[T]) Save(records []T) error {
	return r.store.SaveAll(r.path, records)
}

// Path is where the stream lives on its disk.
func (r *RecordRepository[T]) Path() string { return r.path }

// Exists reports whether anything has been saved yet.
func (r *RecordRepository[T]) Exists() bool { return r.store.Exists(r.path) }
