package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var flags struct {
	configPath string
	envPath    string
	dataDir    string
	disk       string
}

var rootCmd = &cobra.Command{
	Use:           "feastbook",
	Short:         "feastbook - catering order manager",
	Long:          "feastbook registers customers, shows the feast menu catalog and books set-menu orders.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConsole,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "config/app.json", "JSON config file")
	pf.StringVar(&flags.envPath, "env-file", ".env", "dotenv file")
	pf.StringVar(&flags.dataDir, "data-dir", "", "data directory (overrides DATA_DIR)")
	pf.StringVar(&flags.disk, "disk", "", "record disk: local, s3, redis or database (overrides STORAGE_DISK)")

	// Session
	rootCmd.AddCommand(consoleCmd)

	// Reports
	rootCmd.AddCommand(menusCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(ordersCmd)
}
