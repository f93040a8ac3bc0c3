// Package testkit_test demonstrates how to drive console sessions from JSON
// scenario files with testkit.RunDir().
package testkit_test

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/pkg/storage"
	"github.com/shashiranjanraj/feastbook/pkg/testkit"
)

// echoDriver writes "> line" for every input line and reports the line count.
func echoDriver(t *testing.T, s *testkit.Scenario) (string, map[string]int) {
	var out strings.Builder
	sc := bufio.NewScanner(strings.NewReader(s.Stdin()))
	n := 0
	for sc.Scan() {
		fmt.Fprintf(&out, "> %s\n", sc.Text())
		n++
	}
	return out.String(), map[string]int{"lines": n}
}

func TestRunDir_Echo(t *testing.T) {
	testkit.RunDir(t, echoDriver, "testdata")
}

func TestLoadScenarioDefaultsAndDump(t *testing.T) {
	s, err := testkit.LoadScenario("testdata/echo.json")
	require.NoError(t, err)

	assert.Equal(t, "01/01/2030", s.Today)
	assert.Equal(t, "hello\nfeast\n0\n", s.Stdin())
	assert.Contains(t, testkit.DumpScenario(s), "Scenario: echo session")

	abs, _ := filepath.Abs("testdata")
	assert.Equal(t, abs, s.Dir())
}

func TestLoadScenarioRejectsMissingInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"no input"}`), 0o644))

	_, err := testkit.LoadScenario(path)
	assert.ErrorContains(t, err, "input is required")
}

func TestMenuCSVAndTempDisk(t *testing.T) {
	disk := testkit.TempDisk(t)
	testkit.WriteFile(t, disk, "FeastMenu.csv", testkit.MenuCSV("PW001,Wedding,500000,#Soup"))

	data, err := disk.Get("FeastMenu.csv")
	require.NoError(t, err)
	assert.Equal(t, "Code,Name,Price,Ingredients\nPW001,Wedding,500000,#Soup\n", string(data))
}

func TestMockDisk(t *testing.T) {
	disk := testkit.NewMockDisk()
	disk.On("Get", "orders.dat").Return(nil, storage.ErrNotExist)
	disk.On("Put", "orders.dat", mock.Anything).Return(errors.New("disk full"))

	_, err := disk.GetStream("orders.dat")
	assert.ErrorIs(t, err, storage.ErrNotExist)
	assert.EqualError(t, disk.Put("orders.dat", []byte{1}), "disk full")
	assert.NoError(t, disk.MakeDirectory("."))

	disk.AssertExpectations(t)
}
