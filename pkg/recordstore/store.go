// Package recordstore loads and saves a homogeneous list of records as one
// binary stream on a storage.Disk.
//
// A stream is a BSON header document {magic, version, kind, count} followed
// by exactly count BSON documents:
//
//	customers := recordstore.New[models.Customer](storage.Default(), "customers")
//	list, err := customers.LoadAll("customers.dat")
//	err = customers.SaveAll("customers.dat", list)
//
// LoadAll treats a missing or unreadable stream as empty; only a stream that
// is present but cannot be decoded is an error (ErrCorrupt).
package recordstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/feastbook/pkg/logger"
	"github.com/shashiranjanraj/feastbook/pkg/metrics"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

// Store reads and writes streams of T on one disk.
type Store[T any] struct {
	disk storage.Disk
	kind string
}

// New returns a Store for records of the given kind ("customers", "orders").
// The kind is written into every header and checked on load.
func New[T any](disk storage.Disk, kind string) *Store[T] {
	return &Store[T]{disk: disk, kind: kind}
}

func (s *Store[T]) Kind() string { return s.kind }

// Exists reports whether a stream is stored at path.
func (s *Store[T]) Exists(path string) bool { return s.disk.Exists(path) }

// LoadAll returns the records stored at path. The result is never nil.
func (s *Store[T]) LoadAll(path string) (records []T, err error) {
	start := time.Now()
	result := "ok"
	defer func() { metrics.ObserveStore(s.kind, "load", result, start) }()

	rc, err := s.disk.GetStream(path)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			result = "missing"
			return []T{}, nil
		}
		result = "unreadable"
		logger.Warn("recordstore: stream unreadable, treating as empty", "kind", s.kind, "path", path, "err", err)
		return []T{}, nil
	}
	defer rc.Close()

	records, err = Decode[T](s.kind, rc)
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			result = "corrupt"
			return []T{}, fmt.Errorf("recordstore: load %s: %w", path, err)
		}
		result = "unreadable"
		logger.Warn("recordstore: read failed mid-stream, treating as empty", "kind", s.kind, "path", path, "err", err)
		return []T{}, nil
	}

	logger.Debug("recordstore: loaded", "kind", s.kind, "path", path, "count", len(records))
	return records, nil
}

// SaveAll replaces the stream at path with records. The stream is encoded in
// memory first and handed to the disk in one Put, so a failure leaves the
// previous stream intact.
func (s *Store[T]) SaveAll(path string, records []T) error {
	start := time.Now()
	result := "ok"
	defer func() { metrics.ObserveStore(s.kind, "save", result, start) }()

	data, err := Encode(s.kind, records)
	if err != nil {
		result = "error"
		return fmt.Errorf("recordstore: save %s: %w", path, err)
	}
	if err := s.disk.Put(path, data); err != nil {
		result = "error"
		return fmt.Errorf("recordstore: save %s: %w", path, err)
	}

	logger.Debug("recordstore: saved", "kind", s.kind, "path", path, "count", len(records), "bytes", len(data))
	return nil
}
