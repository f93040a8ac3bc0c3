package app

// pkg/app/commands.go - the non-interactive reports behind the CLI
// sub-commands. They print to w and never mutate a registry.

import (
	"fmt"
	"io"

	"github.com/shashiranjanraj/feastbook/app/services"
)

// ListMenus prints the catalog by ascending price.
func (a *Application) ListMenus(w io.Writer) error {
	if !a.Menus.Available() {
		return fmt.Errorf("menu catalog is %s: %s", a.Menus.Status(), a.menuFile)
	}
	services.RenderMenus(w, a.Menus.List())
	return nil
}

// ListCustomers prints every customer, or those whose name contains query.
func (a *Application) ListCustomers(w io.Writer, query string) {
	list := a.Customers.List()
	if query != "" {
		list = a.Customers.FilterByName(query)
	}
	if len(list) == 0 {
		if query != "" {
			fmt.Fprintln(w, "No one matches the search criteria!")
		} else {
			fmt.Fprintln(w, "Does not have any customer information.")
		}
		return
	}
	services.RenderCustomers(w, list)
}

// ListOrders prints the order table by event date.
func (a *Application) ListOrders(w io.Writer) {
	list := a.Orders.List()
	if len(list) == 0 {
		fmt.Fprintln(w, "Does not have any order information.")
		return
	}
	services.RenderOrderTable(w, list, a.Menus)
}
