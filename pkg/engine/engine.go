package engine

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"golang.org/x/image/font"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/errors"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// DefaultGCGrace is the number of consecutive GC passes an id may be
// missing from before its state is evicted.
const DefaultGCGrace = 2

// DefaultAppName labels the accessibility window when no name is set.
const DefaultAppName = "compose"

// RootFunc rebuilds the root view. It runs at the start of every pass so
// that views always reflect the current state.
type RootFunc func(cx *core.Context) core.View

// Engine drives a view tree: it owns the Context, rebuilds the root for
// every pass and runs the passes in the order a host needs them.
//
// All methods lock the engine, so a host may call them from different
// goroutines, but passes never run concurrently.
type Engine struct {
	mu sync.Mutex

	cx       *core.Context
	root     RootFunc
	recorder graphics.PictureRecorder
	size     graphics.Size
	grace    int
	appName  string
	trace    *FrameTraceBuffer
	verbose  bool
	out      io.Writer
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithGCGrace sets how many consecutive GC passes an id may miss before
// eviction. Values below 1 are treated as 1.
func WithGCGrace(n int) Option {
	return func(e *Engine) {
		e.grace = n
	}
}

// WithOutput directs print pass output to w.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
		e.cx.SetOutput(w)
	}
}

// WithAppName sets the label of the accessibility window node.
func WithAppName(name string) Option {
	return func(e *Engine) {
		e.appName = name
	}
}

// WithSize sets the initial window size.
func WithSize(size graphics.Size) Option {
	return func(e *Engine) {
		e.size = size
	}
}

// WithFontFace sets the face used to measure text. Nil means basicfont.
func WithFontFace(face font.Face) Option {
	return func(e *Engine) {
		e.recorder.Face = face
	}
}

// WithFrameTrace records a sample per Frame call into buf.
func WithFrameTrace(buf *FrameTraceBuffer) Option {
	return func(e *Engine) {
		e.trace = buf
	}
}

// WithClock sets the time source used to stamp frame samples.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithVerbose reports every eviction through the error handler.
func WithVerbose(verbose bool) Option {
	return func(e *Engine) {
		e.verbose = verbose
	}
}

// New creates an Engine for the tree built by root.
func New(root RootFunc, opts ...Option) *Engine {
	e := &Engine{
		cx:      core.NewContext(),
		root:    root,
		size:    graphics.Size{Width: 800, Height: 600},
		grace:   DefaultGCGrace,
		appName: DefaultAppName,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.grace < 1 {
		e.grace = 1
	}
	return e
}

// Context returns the Context owned by the engine. Callers must not use it
// while a pass is running.
func (e *Engine) Context() *core.Context {
	return e.cx
}

// Size returns the current window size.
func (e *Engine) Size() graphics.Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.size
}

// AppName returns the accessibility window label.
func (e *Engine) AppName() string {
	return e.appName
}

// rootID is the id every pass starts from.
var rootID = core.ViewID{}

// canvas returns a fresh measuring canvas for passes that draw nothing.
func (e *Engine) canvas() graphics.Canvas {
	return e.recorder.BeginRecording(e.size)
}

// Dispatch delivers ev to the tree and reports whether a redraw was
// requested while processing it.
func (e *Engine) Dispatch(ev input.Event) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dispatchLocked(ev)
}

func (e *Engine) dispatchLocked(ev input.Event) bool {
	defer errors.RecoverFatal("engine.Dispatch")
	e.root(e.cx).Process(ev, rootID, e.cx, e.canvas())
	e.recorder.EndRecording()
	return e.cx.TakeRedraw()
}

// Layout runs the layout pass for size and returns the size the root
// chose. Boxes from the previous layout are discarded first.
func (e *Engine) Layout(size graphics.Size) graphics.Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.size = size
	return e.layoutLocked()
}

func (e *Engine) layoutLocked() graphics.Size {
	defer errors.RecoverFatal("engine.Layout")
	e.cx.ResetLayout()
	got := e.root(e.cx).Layout(rootID, e.size, e.cx, e.canvas())
	e.recorder.EndRecording()
	if !validSize(got) {
		errors.Report(&errors.ComposeError{
			Op:     "engine.Layout",
			Kind:   errors.KindPass,
			ViewID: rootID.String(),
			Err:    fmt.Errorf("root laid out to invalid size %gx%g", got.Width, got.Height),
		})
	}
	return got
}

// validSize reports whether both dimensions are finite and non-negative.
func validSize(s graphics.Size) bool {
	for _, v := range []float64{s.Width, s.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// Paint runs the dirty pass with the identity transform followed by the
// draw pass onto canvas.
func (e *Engine) Paint(canvas graphics.Canvas) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dirtyLocked()
	e.drawLocked(canvas)
}

// Record paints the tree into a display list.
func (e *Engine) Record() *graphics.DisplayList {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dirtyLocked()
	return e.recordLocked()
}

func (e *Engine) recordLocked() *graphics.DisplayList {
	e.drawLocked(e.recorder.BeginRecording(e.size))
	return e.recorder.EndRecording()
}

func (e *Engine) dirtyLocked() {
	defer errors.RecoverFatal("engine.Dirty")
	e.root(e.cx).Dirty(rootID, graphics.Identity(), e.cx)
}

func (e *Engine) drawLocked(canvas graphics.Canvas) {
	defer errors.RecoverFatal("engine.Draw")
	e.root(e.cx).Draw(rootID, e.cx, canvas)
}

// HitTest returns the id of the view under pt, in window coordinates.
// Layout must have run for views to be hit.
func (e *Engine) HitTest(pt graphics.Offset) (core.ViewID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer errors.RecoverFatal("engine.HitTest")
	id, ok := e.root(e.cx).HitTest(rootID, pt, e.cx, e.canvas())
	e.recorder.EndRecording()
	return id, ok
}

// Commands returns every menu command offered by the tree, in tree order.
func (e *Engine) Commands() []core.CommandInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer errors.RecoverFatal("engine.Commands")
	return e.root(e.cx).Commands(rootID, e.cx, nil)
}

// Collect runs the GC pass and evicts state for ids that have been missing
// for the configured number of passes. It returns the evicted ids.
func (e *Engine) Collect() []core.ViewID {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, evicted := e.collectLocked()
	return evicted
}

func (e *Engine) collectLocked() (live, evicted []core.ViewID) {
	defer errors.RecoverFatal("engine.Collect")
	live = e.root(e.cx).GC(rootID, e.cx, nil)
	evicted = e.cx.Sweep(live, e.grace)
	if e.verbose {
		for _, id := range evicted {
			errors.Report(&errors.ComposeError{
				Op:     "engine.Collect",
				Kind:   errors.KindState,
				ViewID: id.String(),
				Err:    fmt.Errorf("evicted state after %d missed passes", e.grace),
			})
		}
	}
	return live, evicted
}

// Accessibility runs the access pass and wraps the tree's node in a window
// node labelled with the app name.
func (e *Engine) Accessibility() semantics.Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer errors.RecoverFatal("engine.Accessibility")

	var tree semantics.Tree
	child, ok := e.root(e.cx).Access(rootID, e.cx, &tree)

	window := semantics.Node{
		ID:     e.windowNodeID(),
		Role:   semantics.RoleWindow,
		Label:  e.appName,
		Bounds: graphics.RectFromOriginSize(graphics.Offset{}, e.size),
	}
	if ok {
		window.Children = []semantics.NodeID{child}
	}
	tree.Push(window)
	return semantics.Update{Nodes: tree.Nodes, Root: window.ID}
}

// windowNodeID is derived from a key no view can produce as its own id.
func (e *Engine) windowNodeID() semantics.NodeID {
	return rootID.Key("\x00window").AccessID()
}

// Print writes the structural trace of the tree to w, or to the
// configured output when w is nil.
func (e *Engine) Print(w io.Writer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer errors.RecoverFatal("engine.Print")
	if w != nil {
		e.cx.SetOutput(w)
		defer e.cx.SetOutput(e.out)
	}
	e.root(e.cx).Print(rootID, e.cx)
}

// Frame runs one complete frame: it dispatches events in order, lays out
// the tree at the current size, records the draw pass and collects stale
// state. It returns the recorded display list and whether any event
// requested a redraw.
func (e *Engine) Frame(events ...input.Event) (*graphics.DisplayList, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := e.now()
	var sample FrameSample
	mark := start
	phase := func(dst *float64) {
		now := e.now()
		*dst = durationToMillis(now.Sub(mark))
		mark = now
	}

	redraw := false
	for _, ev := range events {
		if e.dispatchLocked(ev) {
			redraw = true
		}
	}
	phase(&sample.Phases.ProcessMs)

	e.layoutLocked()
	phase(&sample.Phases.LayoutMs)

	e.dirtyLocked()
	phase(&sample.Phases.DirtyMs)

	list := e.recordLocked()
	phase(&sample.Phases.DrawMs)

	live, evicted := e.collectLocked()
	phase(&sample.Phases.GCMs)

	if e.trace != nil {
		frame := e.now().Sub(start)
		sample.Timestamp = start.UnixMilli()
		sample.FrameMs = durationToMillis(frame)
		sample.Redraw = redraw
		sample.Counts = FrameCounts{
			Events:      len(events),
			States:      len(e.cx.StateIDs()),
			LayoutBoxes: len(e.cx.LayoutIDs()),
			Live:        len(live),
			Evicted:     len(evicted),
			DrawOps:     list.Len(),
		}
		e.trace.Add(sample, frame)
	}
	return list, redraw
}
