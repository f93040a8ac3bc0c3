package main

import (
	"github.com/spf13/cobra"
)

// feastbook menus
var menusCmd = &cobra.Command{
	Use:   "menus",
	Short: "Print the feast menu catalog by ascending price",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd)
		if err != nil {
			return err
		}
		return a.ListMenus(cmd.OutOrStdout())
	},
}

// feastbook customers [--name q]
var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List customers, optionally filtered by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		a.ListCustomers(cmd.OutOrStdout(), name)
		return nil
	},
}

// feastbook orders
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Print every order by event date",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd)
		if err != nil {
			return err
		}
		a.ListOrders(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	customersCmd.Flags().String("name", "", "full or partial name to search for")
}
