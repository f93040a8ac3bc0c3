package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/config"
	"github.com/shashiranjanraj/feastbook/pkg/testkit"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { _ = config.LoadFrom("", "") })

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMenusCommand(t *testing.T) {
	dir := t.TempDir()
	csv := testkit.MenuCSV("PW001,Wedding,500000,#Soup", "PW002,Party,250000,#Cake")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "FeastMenu.csv"), []byte(csv), 0o644))

	out, err := execute(t, "--data-dir", dir, "--config", "", "--env-file", "", "menus")
	require.NoError(t, err)
	assert.Contains(t, out, "Price      :250,000 Vnd")
}

func TestMenusCommandMissingFile(t *testing.T) {
	_, err := execute(t, "--data-dir", t.TempDir(), "--config", "", "--env-file", "", "menus")
	assert.ErrorContains(t, err, "menu catalog is missing")
}

func TestCustomersAndOrdersCommandsOnEmptyData(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--data-dir", dir, "--config", "", "--env-file", "", "customers", "--name", "lee")
	require.NoError(t, err)
	assert.Contains(t, out, "No one matches the search criteria!")

	out, err = execute(t, "--data-dir", dir, "--config", "", "--env-file", "", "orders")
	require.NoError(t, err)
	assert.Contains(t, out, "Does not have any order information.")
}

func TestRootCommandRunsConsoleOnCommandInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "FeastMenu.csv"), []byte(testkit.MenuCSV("PW001,Wedding,500000,#Soup")), 0o644))

	out, err := executeWithInput(t, "0\n", "--data-dir", dir, "--config", "", "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, out, "0. Quit")
	assert.Contains(t, out, "Exiting...Goodbye!")
}
