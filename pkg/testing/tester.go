package testing

import (
	"strings"
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/engine"
	"github.com/go-drift/compose/pkg/errors"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ViewTester drives a view tree without a real backend. It runs the same
// passes as the engine but uses a fake clock and a recording canvas.
type ViewTester struct {
	engine  *engine.Engine
	clock   *FakeClock
	trace   *engine.FrameTraceBuffer
	display *graphics.DisplayList
	redraws int
	handler errors.ErrorHandler
}

// NewViewTester creates a tester for the tree built by root. opts are
// passed to the engine after the tester's own defaults.
func NewViewTester(root engine.RootFunc, opts ...engine.Option) *ViewTester {
	clk := NewFakeClock()
	trace := engine.NewFrameTraceBuffer(0, 0)
	base := []engine.Option{
		engine.WithSize(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
		engine.WithClock(clk.Now),
		engine.WithFrameTrace(trace),
	}
	return &ViewTester{
		engine: engine.New(root, append(base, opts...)...),
		clock:  clk,
		trace:  trace,
	}
}

// NewViewTesterWithT creates a tester whose error reports go to t.Log and
// whose handler is restored via t.Cleanup(). This is the recommended
// constructor for tests.
func NewViewTesterWithT(t *testing.T, root engine.RootFunc, opts ...engine.Option) *ViewTester {
	tester := NewViewTester(root, opts...)
	tester.handler = errors.DefaultHandler
	errors.SetHandler(&errors.LogHandler{Verbose: true, Out: testLogWriter{t}})
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the global error handler replaced by
// NewViewTesterWithT.
func (t *ViewTester) Cleanup() {
	if t.handler != nil {
		errors.SetHandler(t.handler)
		t.handler = nil
	}
}

// testLogWriter forwards error handler output to the test log.
type testLogWriter struct {
	t *testing.T
}

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// SetSize sets the logical surface size and lays the tree out again.
func (t *ViewTester) SetSize(size graphics.Size) {
	t.engine.Layout(size)
}

// Engine returns the engine driving the tree.
func (t *ViewTester) Engine() *engine.Engine {
	return t.engine
}

// Context returns the Context holding the tree's state.
func (t *ViewTester) Context() *core.Context {
	return t.engine.Context()
}

// Clock returns the fake clock stamping frame samples.
func (t *ViewTester) Clock() *FakeClock {
	return t.clock
}

// Pump runs one full frame, delivering events first. It reports whether
// any event requested a redraw.
func (t *ViewTester) Pump(events ...input.Event) bool {
	list, redraw := t.engine.Frame(events...)
	t.display = list
	if redraw {
		t.redraws++
	}
	return redraw
}

// Redraws returns the number of pumped frames that requested a redraw.
func (t *ViewTester) Redraws() int {
	return t.redraws
}

// DisplayList returns the display list recorded by the last pump.
func (t *ViewTester) DisplayList() *graphics.DisplayList {
	return t.display
}

// Timeline returns the frame samples recorded so far.
func (t *ViewTester) Timeline() engine.FrameTimeline {
	return t.trace.Snapshot()
}

// StateAt returns the state of type T stored for id. It fails the test
// instead of panicking when there is none.
func StateAt[T any](tt *testing.T, t *ViewTester, id core.ViewID) T {
	tt.Helper()
	var zero T
	if !t.Context().HasState(id) {
		tt.Fatalf("no state stored for view %s", id)
		return zero
	}
	defer func() {
		if r := recover(); r != nil {
			tt.Fatalf("reading state for view %s: %v", id, r)
		}
	}()
	return core.GetState[T](t.Context(), id)
}

// Find evaluates a finder against the tree's accessibility nodes.
func (t *ViewTester) Find(finder Finder) FinderResult {
	update := t.engine.Accessibility()
	return FinderResult{nodes: finder.Evaluate(update.Nodes), finder: finder}
}

// Print returns the print pass trace.
func (t *ViewTester) Print() string {
	var sb strings.Builder
	t.engine.Print(&sb)
	return sb.String()
}
