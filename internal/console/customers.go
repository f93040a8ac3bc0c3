package console

import (
	"fmt"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/app/services"
	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

func (c *Console) registerCustomers() error {
	fmt.Fprintln(c.out, "\n--- REGISTER NEW CUSTOMER ---")
	for {
		id, err := c.p.askID("Enter Customer ID (e.g., C1234): ", validate.CustomerID,
			"Invalid ID. Must be C/G/K followed by 4 digits.", false)
		if err != nil {
			return err
		}
		if _, exists := c.Customers.SearchByID(id); exists {
			fmt.Fprintf(c.out, "Customer ID %s already exists. Please use a different ID.\n", id)
			continue
		}

		cust := models.Customer{ID: id}
		if cust.Name, err = c.p.askString("Enter Name (2-25 characters): ", validate.Name,
			"Invalid name. Must be 2-25 characters.", false); err != nil {
			return err
		}
		if cust.Phone, err = c.p.askString("Enter Phone Number (10 digits, Vietnamese): ", validate.Phone,
			"Invalid phone. Must be 10 digits.", false); err != nil {
			return err
		}
		if cust.Email, err = c.p.askString("Enter Email (e.g., example@domain.com): ", validate.Email,
			"Invalid email format.", false); err != nil {
			return err
		}

		if err := c.Customers.AddNew(&cust); err != nil {
			fmt.Fprintln(c.out, "Error:", err)
		} else {
			fmt.Fprintln(c.out, "Customer successfully added!")
		}

		more, err := c.p.askYesNo("Continue entering new customers?")
		if err != nil || !more {
			return err
		}
	}
}

func (c *Console) updateCustomers() error {
	fmt.Fprintln(c.out, "\n--- UPDATE CUSTOMER INFORMATION ---")
	for {
		id, err := c.p.askID("Enter Customer ID to update: ", validate.CustomerID,
			"Invalid customer ID format.", true)
		if err != nil {
			return err
		}
		if id == "" {
			fmt.Fprintln(c.out, "Update operation cancelled by user.")
			return nil
		}

		current, ok := c.Customers.SearchByID(id)
		if !ok {
			fmt.Fprintln(c.out, "This customer does not exist.")
		} else if err := c.editCustomer(current); err != nil {
			return err
		}

		more, err := c.p.askYesNo("Continue with another update?")
		if err != nil || !more {
			return err
		}
	}
}

func (c *Console) editCustomer(current models.Customer) error {
	services.RenderCustomers(c.out, []models.Customer{current})
	fmt.Fprintln(c.out, "Enter new information (leave blank to keep current):")

	updated := current
	name, err := c.p.askString("New Name: ", validate.Name, "Invalid name.", true)
	if err != nil {
		return err
	}
	phone, err := c.p.askString("New Phone: ", validate.Phone, "Invalid phone.", true)
	if err != nil {
		return err
	}
	email, err := c.p.askString("New Email: ", validate.Email, "Invalid email.", true)
	if err != nil {
		return err
	}
	if name != "" {
		updated.Name = name
	}
	if phone != "" {
		updated.Phone = phone
	}
	if email != "" {
		updated.Email = email
	}

	if err := c.Customers.Update(&updated); err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return nil
	}
	fmt.Fprintln(c.out, "Customer successfully updated!")
	services.RenderCustomers(c.out, []models.Customer{updated})
	return nil
}

func (c *Console) searchCustomers() error {
	fmt.Fprintln(c.out, "\n--- SEARCH CUSTOMERS BY NAME ---")
	q, err := c.p.askString("Enter full or partial name to search: ", validate.NotEmpty,
		"Search query cannot be empty.", false)
	if err != nil {
		return err
	}
	if results := c.Customers.FilterByName(q); len(results) == 0 {
		fmt.Fprintln(c.out, "No one matches the search criteria!")
	} else {
		services.RenderCustomers(c.out, results)
	}
	return c.p.pause()
}
