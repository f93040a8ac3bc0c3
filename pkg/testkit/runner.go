// Package testkit - runner.go
//
// Run() executes a single scenario through a Driver.
// RunDir() discovers all *.json files in a directory and runs them as subtests.
package testkit

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// Driver runs one console session for s, reading s.Stdin() and returning
// everything written to the console. The driver owns seeding the fixtures
// and reporting the stored counts for ExpectStored.
type Driver func(t *testing.T, s *Scenario) (output string, stored map[string]int)

// ─── Public API ───────────────────────────────────────────────────────────────

// Run executes a single scenario from a JSON file.
func Run(t *testing.T, drive Driver, scenarioPath string) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, drive, s)
	})
}

// RunDir discovers every *.json file in dir and runs each as a t.Run subtest.
// Scenario files that fail to parse are reported as test failures (not fatal).
func RunDir(t *testing.T, drive Driver, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			t.Errorf("testkit: load %q: %v", path, err)
			continue
		}

		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, drive, s)
		})
	}
}

// ─── Internal execution ───────────────────────────────────────────────────────

func runScenario(t *testing.T, drive Driver, s *Scenario) {
	t.Helper()

	out, stored := drive(t, s)

	AssertOutputInOrder(t, s, out)
	AssertOutputExcludes(t, s, out)
	AssertStored(t, s, stored)
}

// ─── Debug helpers ────────────────────────────────────────────────────────────

// DumpScenario renders a human-readable summary of the scenario.
// Useful during test development to inspect what was loaded.
func DumpScenario(s *Scenario) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Scenario: %s\n", s.Name)
	fmt.Fprintf(&b, "  today: %s  menu rows: %d  customers: %d  orders: %d\n",
		s.Today, len(s.MenuRows), len(s.Customers), len(s.Orders))
	fmt.Fprintf(&b, "  input: %s\n", strings.Join(s.Input, " ⏎ "))
	for i, want := range s.ExpectOutput {
		fmt.Fprintf(&b, "  expect[%d]: %q\n", i, want)
	}
	return b.String()
}
