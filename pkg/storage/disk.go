// Package storage provides the filesystem abstraction feastbook keeps its
// data files on.
//
// Four drivers are available:
//   - "local"    - a directory on the local filesystem (default, DATA_DIR)
//   - "s3"       - S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//   - "redis"    - one string key per file
//   - "database" - one row per file in a stored_files table (gorm)
//
// Quick start:
//
//	// boot once (pkg/app does this):
//	storage.Connect()
//
//	// default disk (STORAGE_DISK)
//	storage.Default().Put("customers.dat", data)
//
//	// named disk
//	storage.Use("local").GetStream("FeastMenu.csv")
package storage

import (
	"io"
	"io/fs"
)

// ErrNotExist is returned (wrapped) by Get and GetStream when nothing is
// stored at path. Check it with errors.Is.
var ErrNotExist = fs.ErrNotExist

// Disk is the filesystem driver interface. Every driver must implement this.
type Disk interface {
	// Put replaces the content at path as a whole. Readers observe either the
	// previous content or the new content, never a partial write.
	Put(path string, content []byte) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// MakeDirectory creates directory (and any parents). Drivers without
	// directories treat it as a no-op.
	MakeDirectory(path string) error
}
