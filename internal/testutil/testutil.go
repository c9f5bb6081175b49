// Package testutil holds helpers shared by package tests.
package testutil

import (
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/elapsed/internal/osutil"
)

// CompareGoldenFile verifies that got matches testdata/<name>.golden. Run
// the tests with -update to regenerate the fixture.
func CompareGoldenFile(t *testing.T, name string, got []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings in fixtures
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)

	g.Assert(t, name, got)
}
