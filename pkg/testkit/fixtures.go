package testkit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

// MenuHeader is the header line of the feast menu CSV.
const MenuHeader = "Code,Name,Price,Ingredients"

// TempDisk returns a local disk rooted in a fresh t.TempDir().
func TempDisk(t *testing.T) storage.Disk {
	t.Helper()
	return storage.NewLocalDisk(t.TempDir())
}

// WriteFile stores content at path on disk, failing the test on error.
func WriteFile(t *testing.T, disk storage.Disk, path, content string) {
	t.Helper()
	require.NoError(t, disk.Put(path, []byte(content)), "write fixture %s", path)
}

// MenuCSV joins rows under MenuHeader into a feast menu file.
//
//	testkit.MenuCSV(`PW001,Wedding,500000,"#Soup#Rice"`)
func MenuCSV(rows ...string) string {
	return MenuHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

// FixedClock returns a clock that always reports now.
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// Date builds a UTC midnight date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
