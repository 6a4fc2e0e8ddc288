package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertReportLine checks the report output within a HarnessResult for a
// line containing the given fragment, abstracting away indentation.
func AssertReportLine(t *testing.T, result *HarnessResult, fragment string) {
	t.Helper()

	for _, line := range strings.Split(result.Output, "\n") {
		if strings.Contains(line, fragment) {
			return
		}
	}
	require.Failf(t, "missing report line",
		"expected a report line containing %q, got:\n%s", fragment, result.Output)
}

// AssertReportOrder checks that the given fragments appear in the report
// in the given relative order.
func AssertReportOrder(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()

	pos := 0
	for _, fragment := range fragments {
		idx := strings.Index(result.Output[pos:], fragment)
		require.GreaterOrEqualf(t, idx, 0,
			"expected %q after position %d in report:\n%s", fragment, pos, result.Output)
		pos += idx + len(fragment)
	}
}
