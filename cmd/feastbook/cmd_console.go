package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/feastbook/pkg/app"
)

// boot builds the application from the persistent flags and loads every
// registry. Load failures are reported but do not stop the command.
func boot(cmd *cobra.Command) (*app.Application, error) {
	a, err := app.New(app.Options{
		ConfigPath: flags.configPath,
		EnvPath:    flags.envPath,
		DataDir:    flags.dataDir,
		Disk:       flags.disk,
		LogOutput:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	if err := a.Load(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
	}
	return a, nil
}

// feastbook console - the interactive session.
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive session (default)",
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	a, err := boot(cmd)
	if err != nil {
		return err
	}
	return a.RunConsole(cmd.InOrStdin(), cmd.OutOrStdout(), time.Now)
}
