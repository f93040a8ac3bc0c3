package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shashiranjanraj/feastbook/config"
	"github.com/shashiranjanraj/feastbook/pkg/database"
	"github.com/shashiranjanraj/feastbook/pkg/logger"
)

// ─── Manager ──────────────────────────────────────────────────────────────────

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk = "local"
)

// Connect boots the storage manager from config.
// The local disk (DATA_DIR) is always available; the remote disk named by
// STORAGE_DISK is booted on demand and becomes the default. The data
// directory is created when missing.
func Connect() error {
	managerMu.Lock()
	defer managerMu.Unlock()

	local := NewLocalDisk(config.DataDir())
	if err := local.MakeDirectory("."); err != nil {
		return err
	}
	disks = map[string]Disk{"local": local}
	defaultDisk = "local"

	name := config.StorageDisk()
	if name == "local" {
		return nil
	}

	d, err := bootRemote(name)
	if err != nil {
		return err
	}
	disks[name] = d
	defaultDisk = name
	logger.Info("storage: default disk", "disk", name)
	return nil
}

func bootRemote(name string) (Disk, error) {
	switch name {
	case "s3":
		return NewS3Disk(S3Options{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			Prefix:   config.StorageS3Prefix(),
		})
	case "redis":
		client, err := NewRedisClient(config.RedisAddr(), config.RedisPassword())
		if err != nil {
			return nil, err
		}
		return NewRedisDisk(client, ""), nil
	case "database":
		if err := database.Connect(); err != nil {
			return nil, fmt.Errorf("storage/database: %w", err)
		}
		return NewDatabaseDisk(database.DB)
	default:
		return nil, fmt.Errorf("storage: unknown disk %q", name)
	}
}

// Use returns the named disk.
//
//	storage.Use("local").GetStream("FeastMenu.csv")
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// Default returns the disk named by STORAGE_DISK.
func Default() Disk {
	managerMu.RLock()
	name := defaultDisk
	managerMu.RUnlock()
	return Use(name)
}

// RegisterDisk plugs in a Disk under name. With makeDefault it also becomes
// the default disk.
func RegisterDisk(name string, d Disk, makeDefault bool) {
	managerMu.Lock()
	disks[name] = d
	if makeDefault {
		defaultDisk = name
	}
	managerMu.Unlock()
}

// Names lists the configured disks.
func Names() []string {
	managerMu.RLock()
	defer managerMu.RUnlock()
	out := make([]string, 0, len(disks))
	for n := range disks {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
