package console_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/app/repositories"
	"github.com/shashiranjanraj/feastbook/app/services"
	"github.com/shashiranjanraj/feastbook/internal/console"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
	"github.com/shashiranjanraj/feastbook/pkg/testkit"
	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

const (
	menuFile     = "FeastMenu.csv"
	customerFile = "customers.dat"
	orderFile    = "orders.dat"
)

func TestSessions(t *testing.T) {
	testkit.RunDir(t, runSession, "testdata")
}

// runSession seeds a temp disk from the scenario, runs one console session
// and reports what ended up on disk.
func runSession(t *testing.T, s *testkit.Scenario) (string, map[string]int) {
	disk := testkit.TempDisk(t)
	seed(t, disk, s)

	session := open(disk)
	today, err := validate.ParseDate(s.Today)
	require.NoError(t, err)
	session.Now = testkit.FixedClock(today.Add(10 * time.Hour))

	var out strings.Builder
	require.NoError(t, console.New(strings.NewReader(s.Stdin()), &out, session).Run())

	customers, err := repositories.NewCustomerRepository(disk, customerFile).Load()
	require.NoError(t, err)
	orders, err := repositories.NewOrderRepository(disk, orderFile).Load()
	require.NoError(t, err)
	return out.String(), map[string]int{"customers": len(customers), "orders": len(orders)}
}

func seed(t *testing.T, disk storage.Disk, s *testkit.Scenario) {
	t.Helper()
	if s.MenuRows != nil {
		testkit.WriteFile(t, disk, menuFile, testkit.MenuCSV(s.MenuRows...))
	}
	if len(s.Customers) > 0 {
		list := make([]models.Customer, len(s.Customers))
		for i, c := range s.Customers {
			list[i] = models.Customer{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email}
		}
		require.NoError(t, repositories.NewCustomerRepository(disk, customerFile).Save(list))
	}
	if len(s.Orders) > 0 {
		list := make([]models.Order, len(s.Orders))
		for i, o := range s.Orders {
			day, err := validate.ParseDate(o.EventDate)
			require.NoError(t, err)
			list[i] = models.Order{Code: o.Code, CustomerID: o.CustomerID, MenuID: o.MenuID, Tables: o.Tables, EventDate: day}
		}
		require.NoError(t, repositories.NewOrderRepository(disk, orderFile).Save(list))
	}
}

func open(disk storage.Disk) console.Session {
	menus := services.NewSetMenuCatalog(repositories.NewSetMenuRepository(disk))
	_ = menus.Load(menuFile)
	customers := services.NewCustomerRegistry(repositories.NewCustomerRepository(disk, customerFile))
	_ = customers.Load()
	orders := services.NewOrderBook(repositories.NewOrderRepository(disk, orderFile), customers, menus)
	_ = orders.Load()
	return console.Session{Menus: menus, Customers: customers, Orders: orders}
}

func TestQuitPrintsSummary(t *testing.T) {
	session := open(testkit.TempDisk(t))
	session.Summary = func(w io.Writer) error {
		fmt.Fprintln(w, "Session summary: 0 changes")
		return nil
	}

	var out strings.Builder
	require.NoError(t, console.New(strings.NewReader("0\n"), &out, session).Run())
	assert.Contains(t, out.String(), "Session summary: 0 changes")
	assert.True(t, strings.HasSuffix(out.String(), "Exiting...Goodbye!\n"))
}

func TestSummaryFailureIsOnlyAWarning(t *testing.T) {
	session := open(testkit.TempDisk(t))
	session.Summary = func(io.Writer) error { return errors.New("gather failed") }

	var out strings.Builder
	require.NoError(t, console.New(strings.NewReader("0\n"), &out, session).Run())
	assert.Contains(t, out.String(), "Warning: session summary unavailable: gather failed")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty closed") }

func TestInputErrorIsReturned(t *testing.T) {
	session := open(testkit.TempDisk(t))
	var out strings.Builder
	err := console.New(failingReader{}, &out, session).Run()
	assert.EqualError(t, err, "tty closed")
}

func TestMainMenuIsFollowedByOneBlankLine(t *testing.T) {
	session := open(testkit.TempDisk(t))
	var out strings.Builder
	require.NoError(t, console.New(strings.NewReader("0\n"), &out, session).Run())
	assert.True(t, strings.HasPrefix(out.String(), "1. Register customers.\n"))
	assert.Contains(t, out.String(), "0. Quit\n\nEnter your choice: ")
	assert.NotContains(t, out.String(), "0. Quit\n\n\n")
}
