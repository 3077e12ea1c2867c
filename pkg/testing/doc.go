// Package testing provides a view testing framework for compose.
//
// # Quick Start
//
// Create a tester for a root view, pump frames and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := composetest.NewViewTesterWithT(t, func(cx *core.Context) core.View {
//	        return Counter()
//	    })
//	    tester.Pump()
//
//	    // Simulate input
//	    tester.Tap(composetest.ByRole(semantics.RoleButton))
//	    tester.SendKeys("Ctrl+Z")
//
//	    // Assert state
//	    if got := composetest.StateAt[int](t, tester, core.ViewID{}); got != 0 {
//	        t.Errorf("count = %d, want 0", got)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the print trace, layout boxes, display operations, commands and
// accessibility nodes and compare them with a YAML golden file:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Update snapshots with:
//
//	COMPOSE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import composetest "github.com/go-drift/compose/pkg/testing"
package testing
