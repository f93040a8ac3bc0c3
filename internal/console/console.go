// Package console is the interactive prompt loop of a feastbook session.
package console

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/app/services"
)

const mainMenu = `1. Register customers.
2. Update customer information.
3. Search for customer information by name.
4. Display feast menus.
5. Place a feast order.
6. Update order information.
7. Save data to file.
8. Display Customer or Order lists.
0. Quit
`

// Session is what the console operates on.
type Session struct {
	Menus     *services.SetMenuCatalog
	Customers *services.CustomerRegistry
	Orders    *services.OrderBook

	Now     func() time.Time      // time.Now when nil
	Summary func(io.Writer) error // printed on quit; optional
}

// Console runs the numbered main menu against a Session.
type Console struct {
	Session
	p   *prompter
	out io.Writer
}

func New(in io.Reader, out io.Writer, s Session) *Console {
	if s.Now == nil {
		s.Now = time.Now
	}
	return &Console{Session: s, p: newPrompter(in, out), out: out}
}

// Run loops until the user picks 0 or the input ends. Running out of input
// ends the session without saving.
func (c *Console) Run() error {
	err := c.loop()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) loop() error {
	actions := map[int]func() error{
		1: c.registerCustomers,
		2: c.updateCustomers,
		3: c.searchCustomers,
		4: c.displayMenus,
		5: c.placeOrders,
		6: c.updateOrders,
		7: c.saveData,
		8: c.displayLists,
	}

	for {
		fmt.Fprint(c.out, mainMenu+"\n")
		choice, err := c.p.askInt("Enter your choice: ", 0, 8)
		if err != nil {
			return err
		}
		if choice == 0 {
			return c.quit()
		}
		if err := actions[choice](); err != nil {
			return err
		}
	}
}

// today is the session date; event dates must be strictly after it.
func (c *Console) today() time.Time {
	return models.DateOnly(c.Now())
}

func (c *Console) quit() error {
	if c.Customers.HasUnsavedChanges() || c.Orders.HasUnsavedChanges() {
		save, err := c.p.askYesNo("You have unsaved changes. Save before quitting?")
		if err != nil {
			return err
		}
		if save {
			c.save(true, true)
		}
	}
	if c.Summary != nil {
		if err := c.Summary(c.out); err != nil {
			fmt.Fprintln(c.out, "Warning: session summary unavailable:", err)
		}
	}
	fmt.Fprintln(c.out, "Exiting...Goodbye!")
	return nil
}

// ─── Save & lists ─────────────────────────────────────────────────────────────

func (c *Console) saveData() error {
	fmt.Fprintln(c.out, "\n--- SAVE DATA TO FILE ---")
	fmt.Fprintln(c.out, "1. Save Customer Data")
	fmt.Fprintln(c.out, "2. Save Order Data")
	fmt.Fprintln(c.out, "3. Save Both")
	fmt.Fprintln(c.out, "0. Cancel")
	choice, err := c.p.askInt("Choice: ", 0, 3)
	if err != nil {
		return err
	}
	if choice == 0 {
		fmt.Fprintln(c.out, "Save cancelled.")
	} else {
		c.save(choice == 1 || choice == 3, choice == 2 || choice == 3)
	}
	return c.p.pause()
}

func (c *Console) save(customers, orders bool) {
	if customers {
		if err := c.Customers.Save(); err != nil {
			fmt.Fprintln(c.out, "Error: customer data was not saved:", err)
		} else {
			fmt.Fprintln(c.out, "Customer data is saved at", c.Customers.Path())
		}
	}
	if orders {
		if err := c.Orders.Save(); err != nil {
			fmt.Fprintln(c.out, "Error: order data was not saved:", err)
		} else {
			fmt.Fprintln(c.out, "Order data is saved at", c.Orders.Path())
		}
	}
}

func (c *Console) displayLists() error {
	fmt.Fprintln(c.out, "\n--- DISPLAY LISTS ---")
	fmt.Fprintln(c.out, "1. Display Customer List")
	fmt.Fprintln(c.out, "2. Display Order List")
	fmt.Fprintln(c.out, "0. Return to Main Menu")
	choice, err := c.p.askInt("Choice: ", 0, 2)
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		if list := c.Customers.List(); len(list) == 0 {
			fmt.Fprintln(c.out, "Does not have any customer information.")
		} else {
			services.RenderCustomers(c.out, list)
		}
	case 2:
		if list := c.Orders.List(); len(list) == 0 {
			fmt.Fprintln(c.out, "Does not have any order information.")
		} else {
			services.RenderOrderTable(c.out, list, c.Menus)
		}
	}
	return c.p.pause()
}

func (c *Console) displayMenus() error {
	switch c.Menus.Status() {
	case services.CatalogReady:
		services.RenderMenus(c.out, c.Menus.List())
	case services.CatalogEmpty:
		fmt.Fprintln(c.out, "No menu items found.")
	default:
		fmt.Fprintln(c.out, "Cannot read data from the feast menu file. Please check it.")
	}
	return c.p.pause()
}
