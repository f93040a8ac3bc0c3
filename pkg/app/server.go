package app

// pkg/app/server.go - bridges Application → internal/console.
// The only job of this file is to hand the registries to the prompt loop.

import (
	"io"
	"time"

	"github.com/shashiranjanraj/feastbook/internal/console"
)

// RunConsole runs the interactive session until the user quits or in is
// exhausted.
func (a *Application) RunConsole(in io.Reader, out io.Writer, now func() time.Time) error {
	return console.New(in, out, console.Session{
		Menus:     a.Menus,
		Customers: a.Customers,
		Orders:    a.Orders,
		Now:       now,
		Summary:   PrintSummary,
	}).Run()
}
