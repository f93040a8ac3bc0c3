package storage_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/config"
	"github.com/shashiranjanraj/feastbook/pkg/database"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

func exerciseDisk(t *testing.T, disk storage.Disk) {
	t.Helper()

	_, err := disk.Get("missing.dat")
	assert.ErrorIs(t, err, storage.ErrNotExist)
	_, err = disk.GetStream("missing.dat")
	assert.ErrorIs(t, err, storage.ErrNotExist)
	assert.False(t, disk.Exists("missing.dat"))

	require.NoError(t, disk.Put("customers.dat", []byte("first")))
	require.NoError(t, disk.Put("customers.dat", []byte("second")))
	assert.True(t, disk.Exists("customers.dat"))

	data, err := disk.Get("customers.dat")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	rc, err := disk.GetStream("customers.dat")
	require.NoError(t, err)
	streamed, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "second", string(streamed))

	require.NoError(t, disk.Delete("customers.dat"))
	require.NoError(t, disk.Delete("customers.dat"), "deleting twice is not an error")
	assert.False(t, disk.Exists("customers.dat"))
	assert.NoError(t, disk.MakeDirectory("nested"))
}

func TestLocalDisk(t *testing.T) {
	exerciseDisk(t, storage.NewLocalDisk(t.TempDir()))
}

// fakeRedis keeps string values in memory. Only the commands the redis disk
// sends are implemented; anything else panics on the nil embedded Cmdable.
type fakeRedis struct {
	redis.Cmdable
	data map[string][]byte
}

func newFakeRedis() *fakeRedis { return &fakeRedis{data: map[string][]byte{}} }

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = append([]byte(nil), v...)
	case string:
		f.data[key] = []byte(v)
	default:
		return redis.NewStatusResult("", fmt.Errorf("unsupported value %T", value))
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) keys() []string {
	out := make([]string, 0, len(f.data))
	for k := range f.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestRedisDisk(t *testing.T) {
	exerciseDisk(t, storage.NewRedisDisk(newFakeRedis(), ""))
}

func TestRedisDiskKeyPrefix(t *testing.T) {
	client := newFakeRedis()
	require.NoError(t, storage.NewRedisDisk(client, "").Put("/orders.dat", []byte("x")))
	require.NoError(t, storage.NewRedisDisk(client, "tenant:").Put("orders.dat", []byte("y")))
	assert.Equal(t, []string{storage.RedisKeyPrefix + "orders.dat", "tenant:orders.dat"}, client.keys())

	data, err := storage.NewRedisDisk(client, "tenant:").Get("orders.dat")
	require.NoError(t, err)
	assert.Equal(t, "y", string(data))
}

func TestLocalDiskPutLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	disk := storage.NewLocalDisk(root)

	require.NoError(t, disk.Put("sub/orders.dat", []byte("x")))
	require.NoError(t, disk.Put("sub/orders.dat", []byte("y")))

	entries, err := os.ReadDir(filepath.Join(root, "sub"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "orders.dat", entries[0].Name())
}

func TestLocalDiskFailedPutKeepsPreviousContent(t *testing.T) {
	root := t.TempDir()
	disk := storage.NewLocalDisk(root)
	require.NoError(t, disk.Put("orders.dat", []byte("good")))

	// A directory in the way makes the rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "blocked.dat"), 0o755))
	assert.Error(t, disk.Put("blocked.dat", []byte("new")))

	data, err := disk.Get("orders.dat")
	require.NoError(t, err)
	assert.Equal(t, "good", string(data))
	assert.False(t, disk.Exists("blocked.dat"), "directories are not files")
}

func TestDatabaseDisk(t *testing.T) {
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "files.db"))
	require.NoError(t, err)

	disk, err := storage.NewDatabaseDisk(db)
	require.NoError(t, err)
	exerciseDisk(t, disk)
}

func TestS3DiskRequiresBucket(t *testing.T) {
	_, err := storage.NewS3Disk(storage.S3Options{})
	assert.ErrorContains(t, err, "S3_BUCKET")

	disk, err := storage.NewS3Disk(storage.S3Options{Bucket: "feastbook", Key: "k", Secret: "s", Endpoint: "http://127.0.0.1:9000"})
	require.NoError(t, err)
	assert.NoError(t, disk.MakeDirectory("anything"))
}

func TestManagerConnectsLocalDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	config.Set("DATA_DIR", dir)
	config.Set("STORAGE_DISK", "local")
	t.Cleanup(func() { _ = config.LoadFrom("", "") })

	require.NoError(t, storage.Connect())
	assert.DirExists(t, dir, "Connect creates the data directory")
	assert.Equal(t, []string{"local"}, storage.Names())

	require.NoError(t, storage.Default().Put("a.dat", []byte("1")))
	assert.FileExists(t, filepath.Join(dir, "a.dat"))

	mem := storage.NewLocalDisk(t.TempDir())
	storage.RegisterDisk("scratch", mem, true)
	assert.Same(t, mem, storage.Default())
	assert.Panics(t, func() { storage.Use("nope") })
}
