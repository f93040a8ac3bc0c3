// Package testkit provides a JSON-scenario-driven console testing framework
// plus the disk and clock fixtures feastbook's tests share.
//
// Each scenario is a JSON file that describes:
//   - the feast menu CSV and the records to seed before the session starts
//   - the lines typed at the prompts
//   - output fragments that must appear (in order) and must not appear
//   - the record counts expected on disk once the session ends
//
// Scenario files live next to your *_test.go files:
//
//	testdata/
//	  register_customer.json
//	  place_duplicate_order.json
//
// Example _test.go:
//
//	func TestSessions(t *testing.T) {
//	    testkit.RunDir(t, runSession, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ─── Schema ───────────────────────────────────────────────────────────────────

// Scenario describes a single console session loaded from a JSON file.
type Scenario struct {
	// Meta
	Name        string `json:"name"`
	Description string `json:"description"`

	// Fixtures
	Today     string         `json:"today"`     // dd/mm/yyyy; the session clock
	MenuRows  []string       `json:"menuRows"`  // CSV rows after the header; nil means no menu file
	Customers []CustomerSeed `json:"customers"` // saved before the session starts
	Orders    []OrderSeed    `json:"orders"`

	// Session
	Input []string `json:"input"` // one entry per typed line

	// Assertions
	ExpectOutput    []string       `json:"expectOutput"`    // must appear, in this order
	ExpectNotOutput []string       `json:"expectNotOutput"` // must not appear anywhere
	ExpectStored    map[string]int `json:"expectStored"`    // "customers"/"orders" → count on disk afterwards

	// resolved at load time - not in JSON
	dir string // directory of the scenario file
}

// CustomerSeed is a customer saved before the session.
type CustomerSeed struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// OrderSeed is an order saved before the session.
type OrderSeed struct {
	Code       string `json:"code"`
	CustomerID string `json:"customerId"`
	MenuID     string `json:"menuId"`
	Tables     int    `json:"tables"`
	EventDate  string `json:"eventDate"` // dd/mm/yyyy
}

// ─── Loading ──────────────────────────────────────────────────────────────────

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

// validate performs basic sanity checks on the loaded scenario.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Input) == 0 {
		return fmt.Errorf("input is required")
	}
	if s.Today == "" {
		s.Today = "01/01/2030"
	}
	for i, o := range s.Orders {
		if o.Code == "" || o.EventDate == "" {
			return fmt.Errorf("orders[%d]: code and eventDate are required", i)
		}
	}
	return nil
}

// Stdin joins Input into the text the session reads, one line per entry.
func (s *Scenario) Stdin() string {
	return strings.Join(s.Input, "\n") + "\n"
}

// Dir is the directory the scenario file was loaded from.
func (s *Scenario) Dir() string { return s.dir }

// LoadAllFromDir loads every *.json file in dir as a Scenario.
// Files that fail to parse are collected as errors, not panicked.
func LoadAllFromDir(dir string) ([]*Scenario, []error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		return nil, []error{fmt.Errorf("testkit: no scenario files found in %q", dir)}
	}

	var (
		scenarios []*Scenario
		errs      []error
	)
	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, errs
}
