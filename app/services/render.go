package services

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shashiranjanraj/feastbook/app/models"
)

var (
	printer = message.NewPrinter(language.English)

	menuRule     = strings.Repeat("-", 64)
	customerRule = strings.Repeat("-", 70)
	orderRule    = strings.Repeat("-", 60)
	tableRule    = strings.Repeat("-", 92)
)

// FormatPrice groups thousands: 1500000 → "1,500,000".
func FormatPrice(v int64) string {
	return printer.Sprintf("%d", v)
}

// RenderMenus prints the catalog the way guests see it.
func RenderMenus(w io.Writer, menus []models.SetMenu) {
	fmt.Fprintln(w, menuRule)
	fmt.Fprintln(w, "List of Set Menus for ordering party:")
	fmt.Fprintln(w, menuRule)
	for _, m := range menus {
		fmt.Fprintf(w, "Code       :%s\nName       :%s\nPrice      :%s Vnd\nIngredients:\n%s\n",
			m.ID, m.Name, FormatPrice(m.Price), m.Ingredients)
		fmt.Fprintln(w, menuRule)
	}
}

// RenderCustomers prints customers as a fixed-width table, in the order
// given.
func RenderCustomers(w io.Writer, customers []models.Customer) {
	fmt.Fprintln(w, customerRule)
	fmt.Fprintf(w, "| %-5s | %-20s | %-12s | %-20s |\n", "Code", "Customer Name", "Phone", "Email")
	fmt.Fprintln(w, customerRule)
	for _, c := range customers {
		fmt.Fprintf(w, "| %-5s | %-20s | %-12s | %-20s |\n", c.ID, c.DisplayName(), c.Phone, c.Email)
	}
	fmt.Fprintln(w, customerRule)
}

// RenderOrder prints the detail block of one order. The customer and menu
// are resolved at render time; an order pointing at either one that no
// longer exists is reported instead of printed.
func RenderOrder(w io.Writer, o models.Order, customers CustomerLookup, menus MenuLookup) error {
	c, ok := customers.SearchByID(o.CustomerID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCustomer, o.CustomerID)
	}
	m, ok := menus.Lookup(o.MenuID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMenu, o.MenuID)
	}
	total, err := orderCost(m, o)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, orderRule)
	fmt.Fprintf(w, "Customer order information [Order ID: %s]\n", o.Code)
	fmt.Fprintln(w, orderRule)
	fmt.Fprintf(w, "Customer code  : %s\n", c.ID)
	fmt.Fprintf(w, "Customer name  : %s\n", c.Name)
	fmt.Fprintf(w, "Phone number   : %s\n", c.Phone)
	fmt.Fprintf(w, "Email          : %s\n", c.Email)
	fmt.Fprintln(w, orderRule)
	fmt.Fprintf(w, "Code of Set Menu : %s\n", m.ID)
	fmt.Fprintf(w, "Set menu name    : %s\n", m.Name)
	fmt.Fprintf(w, "Event date       : %s\n", o.FormattedDate())
	fmt.Fprintf(w, "Number of tables : %d\n", o.Tables)
	fmt.Fprintf(w, "Price            : %s Vnd\n", FormatPrice(m.Price))
	fmt.Fprintf(w, "Ingredients:\n%s\n", m.Ingredients)
	fmt.Fprintln(w, orderRule)
	fmt.Fprintf(w, "Total cost       : %s Vnd\n", FormatPrice(total))
	fmt.Fprintln(w, orderRule)
	return nil
}

// RenderOrderTable prints orders one per row, in the order given. Rows whose
// menu cannot be resolved show "-" for price and cost; a cost that overflows
// shows "-".
func RenderOrderTable(w io.Writer, orders []models.Order, menus MenuLookup) {
	const row = "| %-12s | %-10s | %-11s | %-8s | %9s | %5s | %15s |\n"

	fmt.Fprintln(w, tableRule)
	fmt.Fprintf(w, row, "ID", "Event date", "Customer ID", "Set Menu", "Price", "Table", "Cost")
	fmt.Fprintln(w, tableRule)
	for _, o := range orders {
		price, cost := "-", "-"
		if m, ok := menus.Lookup(o.MenuID); ok {
			price = FormatPrice(m.Price)
			if total, err := orderCost(m, o); err == nil {
				cost = FormatPrice(total)
			}
		}
		fmt.Fprintf(w, row, o.Code, o.FormattedDate(), o.CustomerID, o.MenuID, price, fmt.Sprint(o.Tables), cost)
	}
	fmt.Fprintln(w, tableRule)
}
