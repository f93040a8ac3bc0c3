// Package app boots a feastbook session.
//
// Boot order: config, logger, storage, metrics, then the menu catalog and
// the two registries on top of the configured disks.
//
//	a, err := app.New(app.Options{DataDir: "data"})
//	if err != nil { ... }
//	_ = a.Load()
//	return a.RunConsole(os.Stdin, os.Stdout, time.Now)
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shashiranjanraj/feastbook/app/repositories"
	"github.com/shashiranjanraj/feastbook/app/services"
	"github.com/shashiranjanraj/feastbook/config"
	"github.com/shashiranjanraj/feastbook/pkg/logger"
	"github.com/shashiranjanraj/feastbook/pkg/metrics"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

// Options override the layered config. Empty fields keep the configured
// value.
type Options struct {
	ConfigPath string
	EnvPath    string
	DataDir    string
	Disk       string    // local | s3 | redis | database
	LogOutput  io.Writer // os.Stderr when nil
}

// ─── Application ──────────────────────────────────────────────────────────────

// Application owns the catalog and registries of one session.
type Application struct {
	Menus     *services.SetMenuCatalog
	Customers *services.CustomerRegistry
	Orders    *services.OrderBook

	menuFile string
}

// New boots the ambient stack and wires the registries. Nothing is read from
// disk until Load.
func New(opts Options) (*Application, error) {
	if err := config.LoadFrom(opts.ConfigPath, opts.EnvPath); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.DataDir != "" {
		config.Set("DATA_DIR", opts.DataDir)
	}
	if opts.Disk != "" {
		config.Set("STORAGE_DISK", opts.Disk)
		if config.StorageDisk() != strings.ToLower(opts.Disk) {
			return nil, fmt.Errorf("storage: unknown disk %q", opts.Disk)
		}
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger.Setup(out, config.AppEnv(), config.LogLevel())

	if err := storage.Connect(); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	bindListeners()

	return wire(storage.Use("local"), storage.Default(), config.MenuFile(), config.CustomerFile(), config.OrderFile()), nil
}

// wire builds the registries. The menu file ships with the installation, so
// it is always read from menuDisk; records go to recordDisk.
func wire(menuDisk, recordDisk storage.Disk, menuFile, customerFile, orderFile string) *Application {
	menus := services.NewSetMenuCatalog(repositories.NewSetMenuRepository(menuDisk))
	customers := services.NewCustomerRegistry(repositories.NewCustomerRepository(recordDisk, customerFile))
	orders := services.NewOrderBook(repositories.NewOrderRepository(recordDisk, orderFile), customers, menus)

	return &Application{
		Menus:     menus,
		Customers: customers,
		Orders:    orders,
		menuFile:  menuFile,
	}
}

// Load reads the menu catalog and both registries. Every source is tried;
// the returned error joins whatever failed. A session can continue after a
// failed load: the affected registry is simply empty.
func (a *Application) Load() error {
	var errs []error
	if err := a.Menus.Load(a.menuFile); err != nil {
		errs = append(errs, fmt.Errorf("menu catalog %s: %w", a.menuFile, err))
	}
	if err := a.Customers.Load(); err != nil {
		errs = append(errs, err)
	}
	if err := a.Orders.Load(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// HasUnsavedChanges reports whether either registry is dirty.
func (a *Application) HasUnsavedChanges() bool {
	return a.Customers.HasUnsavedChanges() || a.Orders.HasUnsavedChanges()
}

// SaveAll saves both registries. A failure in one does not stop the other.
func (a *Application) SaveAll() error {
	return errors.Join(a.Customers.Save(), a.Orders.Save())
}

// bindListeners subscribes metrics and the audit log to registry events.
func bindListeners() {
	metrics.Bind()
	bindAuditLog()
}

// ─── Metrics summary ──────────────────────────────────────────────────────────

// PrintSummary writes the non-zero feastbook metrics of this process.
func PrintSummary(w io.Writer) error {
	samples, err := metrics.Snapshot()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return nil
	}
	fmt.Fprintln(w, "Session summary:")
	for _, s := range samples {
		fmt.Fprintf(w, "  %-70s %g\n", s.String(), s.Value)
	}
	return nil
}
