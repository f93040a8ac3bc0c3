package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/config"
	"github.com/shashiranjanraj/feastbook/pkg/app"
	"github.com/shashiranjanraj/feastbook/pkg/testkit"
)

func boot(t *testing.T, menu string) (*app.Application, string) {
	t.Helper()
	dir := t.TempDir()
	if menu != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "FeastMenu.csv"), []byte(menu), 0o644))
	}
	t.Cleanup(func() { _ = config.LoadFrom("", "") })

	a, err := app.New(app.Options{DataDir: dir, Disk: "local", LogOutput: &bytes.Buffer{}})
	require.NoError(t, err)
	return a, dir
}

func TestNewLoadSaveAll(t *testing.T) {
	a, dir := boot(t, testkit.MenuCSV("PW001,Wedding,500000,#Soup"))
	require.NoError(t, a.Load())
	assert.True(t, a.Menus.Available())
	assert.False(t, a.HasUnsavedChanges())

	require.NoError(t, a.Customers.AddNew(&models.Customer{ID: "C0001", Name: "Anna Lee", Phone: "0912345678", Email: "a@b.com"}))
	require.NoError(t, a.Orders.AddNew(models.NewOrder("C0001", "PW001", 2, testkit.Date(2030, time.June, 2))))
	assert.True(t, a.HasUnsavedChanges())

	require.NoError(t, a.SaveAll())
	assert.False(t, a.HasUnsavedChanges())
	assert.FileExists(t, filepath.Join(dir, "customers.dat"))
	assert.FileExists(t, filepath.Join(dir, "orders.dat"))

	// A second session sees the saved data.
	b, err := app.New(app.Options{DataDir: dir, LogOutput: &bytes.Buffer{}})
	require.NoError(t, err)
	require.NoError(t, b.Load())
	assert.Equal(t, 1, b.Customers.Len())
	assert.Equal(t, 1, b.Orders.Len())

	var out strings.Builder
	b.ListOrders(&out)
	assert.Contains(t, out.String(), "1,000,000")
}

func TestLoadJoinsFailures(t *testing.T) {
	a, dir := boot(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.dat"), []byte("garbage!"), 0o644))

	err := a.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "menu catalog FeastMenu.csv")
	assert.Contains(t, err.Error(), "load orders")
	assert.NotContains(t, err.Error(), "load customers")
	assert.Zero(t, a.Orders.Len())
}

func TestListCommands(t *testing.T) {
	a, _ := boot(t, "")
	require.NoError(t, a.Customers.AddNew(&models.Customer{ID: "C0001", Name: "Anna Lee"}))
	_ = a.Load() // resets the registry; the menu file is missing

	var out strings.Builder
	assert.ErrorContains(t, a.ListMenus(&out), "menu catalog is missing")

	a.ListCustomers(&out, "")
	assert.Contains(t, out.String(), "Does not have any customer information.")

	out.Reset()
	require.NoError(t, a.Customers.AddNew(&models.Customer{ID: "C0002", Name: "Bob Smith"}))
	a.ListCustomers(&out, "lee")
	assert.Contains(t, out.String(), "No one matches the search criteria!")

	out.Reset()
	a.ListCustomers(&out, "smith")
	assert.Contains(t, out.String(), "Smith, Bob")

	out.Reset()
	a.ListOrders(&out)
	assert.Contains(t, out.String(), "Does not have any order information.")
}

func TestRunConsolePrintsSummary(t *testing.T) {
	a, _ := boot(t, testkit.MenuCSV("PW001,Wedding,500000,#Soup"))
	require.NoError(t, a.Load())

	in := strings.NewReader("1\nC0001\nAnna Lee\n0912345678\na@b.com\nn\n0\ny\n")
	var out strings.Builder
	require.NoError(t, a.RunConsole(in, &out, testkit.FixedClock(testkit.Date(2030, time.January, 1))))

	text := out.String()
	assert.Contains(t, text, "Customer data is saved at customers.dat")
	assert.Contains(t, text, "Session summary:")
	assert.Contains(t, text, `feastbook_registry_mutations_total{op=create,registry=customers}`)
}

func TestUnknownDiskFailsBoot(t *testing.T) {
	t.Cleanup(func() { _ = config.LoadFrom("", "") })
	_, err := app.New(app.Options{DataDir: t.TempDir(), Disk: "floppy", LogOutput: &bytes.Buffer{}})
	assert.Error(t, err)
}
