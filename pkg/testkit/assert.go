package testkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertOutputInOrder checks that every ExpectOutput fragment appears in out,
// each one after the previous match.
func AssertOutputInOrder(t *testing.T, scenario *Scenario, out string) {
	t.Helper()

	rest := out
	for i, want := range scenario.ExpectOutput {
		idx := strings.Index(rest, want)
		if !assert.GreaterOrEqual(t, idx, 0,
			"[%s] expectOutput[%d] %q not found after previous match\n--- output ---\n%s",
			scenario.Name, i, want, out) {
			return
		}
		rest = rest[idx+len(want):]
	}
}

// AssertOutputExcludes fails for every ExpectNotOutput fragment found in out.
func AssertOutputExcludes(t *testing.T, scenario *Scenario, out string) {
	t.Helper()

	for _, banned := range scenario.ExpectNotOutput {
		assert.NotContains(t, out, banned, "[%s] unexpected output fragment", scenario.Name)
	}
}

// AssertStored compares the record counts the driver found on disk.
func AssertStored(t *testing.T, scenario *Scenario, stored map[string]int) {
	t.Helper()

	for kind, want := range scenario.ExpectStored {
		assert.Equal(t, want, stored[kind], "[%s] stored %s count mismatch", scenario.Name, kind)
	}
}
