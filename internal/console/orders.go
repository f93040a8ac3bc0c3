package console

import (
	"fmt"
	"math"
	"time"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/app/services"
	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

const pastDate = "Event date must be in the future."

func (c *Console) futureOnly(d time.Time) string {
	if !d.After(c.today()) {
		return pastDate
	}
	return ""
}

func (c *Console) placeOrders() error {
	fmt.Fprintln(c.out, "\n--- PLACE A FEAST ORDER ---")
	for {
		customerID, err := c.p.askID("Enter Customer ID: ", validate.CustomerID, "Invalid customer ID.", false)
		if err != nil {
			return err
		}
		menuID, err := c.p.askID("Enter Set Menu ID (e.g., PW003): ", validate.MenuID, "Invalid menu ID.", false)
		if err != nil {
			return err
		}
		tables, err := c.p.askInt("Enter Number of Tables: ", 0, math.MaxInt32)
		if err != nil {
			return err
		}
		date, err := c.p.askDate("Enter Preferred Event Date (dd/MM/yyyy): ", false, c.futureOnly)
		if err != nil {
			return err
		}

		o := models.NewOrder(customerID, menuID, tables, date)
		if err := c.Orders.AddNew(o); err != nil {
			c.reportRejection(err)
		} else {
			if err := services.RenderOrder(c.out, *o, c.Customers, c.Menus); err != nil {
				fmt.Fprintln(c.out, "Warning:", err)
			}
			fmt.Fprintln(c.out, "Order successfully placed!")
		}

		more, err := c.p.askYesNo("Place another order?")
		if err != nil || !more {
			return err
		}
	}
}

func (c *Console) reportRejection(err error) {
	switch {
	case services.IsReferential(err):
		fmt.Fprintln(c.out, "Error: customer or set menu does not exist:", err)
	case services.IsConflict(err):
		fmt.Fprintln(c.out, "Duplicate data!", err)
	default:
		fmt.Fprintln(c.out, "Error:", err)
	}
}

func (c *Console) updateOrders() error {
	fmt.Fprintln(c.out, "\n--- UPDATE ORDER INFORMATION ---")
	for {
		code, err := c.p.askID("Enter order code to update (e.g., ORD-1A2B3C4D): ", validate.OrderCode,
			"Invalid order code.", false)
		if err != nil {
			return err
		}

		current, ok := c.Orders.SearchByID(code)
		if !ok {
			fmt.Fprintln(c.out, "This order does not exist.")
		} else if err := c.editOrder(current); err != nil {
			return err
		}

		more, err := c.p.askYesNo("Update another order?")
		if err != nil || !more {
			return err
		}
	}
}

func (c *Console) editOrder(current models.Order) error {
	fmt.Fprintln(c.out, "Updating order:", current.Code)
	fmt.Fprintf(c.out, "Current details:\nMenuID = %s\nTables = %d\nDate = %s\n",
		current.MenuID, current.Tables, current.FormattedDate())

	if !current.EventDate.After(c.today()) {
		fmt.Fprintln(c.out, "This order's event date has passed. It cannot be updated.")
		return nil
	}
	fmt.Fprintln(c.out, "Enter new information (leave blank to keep current):")

	updated := current
	menuID, err := c.p.askID("New Set Menu ID: ", validate.MenuID, "Invalid menu ID.", true)
	if err != nil {
		return err
	}
	tables, err := c.p.askString("New Number of Tables: ", validate.Integer, "Invalid number.", true)
	if err != nil {
		return err
	}
	date, err := c.p.askDate("New Event Date (dd/MM/yyyy): ", true, c.futureOnly)
	if err != nil {
		return err
	}

	if menuID != "" {
		updated.MenuID = menuID
	}
	if tables != "" {
		if _, err := fmt.Sscan(tables, &updated.Tables); err != nil {
			fmt.Fprintln(c.out, "Invalid number.")
			return nil
		}
	}
	if !date.IsZero() {
		updated.EventDate = date
	}

	if err := c.Orders.Update(&updated); err != nil {
		c.reportRejection(err)
		return nil
	}
	fmt.Fprintln(c.out, "Order successfully updated!")
	if err := services.RenderOrder(c.out, updated, c.Customers, c.Menus); err != nil {
		fmt.Fprintln(c.out, "Warning:", err)
	}
	return nil
}
