package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-drift/compose/pkg/errors"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/semantics"
)

// DebugServer serves inspection endpoints for a running engine:
//
//	/health   liveness probe
//	/tree     print pass output (text)
//	/state    state store entries
//	/frames   frame trace samples, filterable by query
//	/access   accessibility nodes
//
// Handlers take the engine lock like any other pass, so requests are
// served between frames.
type DebugServer struct {
	engine *Engine

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewDebugServer creates a debug server for e. It does not listen until
// Start is called.
func NewDebugServer(e *Engine) *DebugServer {
	return &DebugServer{engine: e}
}

// StateInfo describes one entry of the state store.
type StateInfo struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Dirty bool   `json:"dirty"`
}

// AccessNode is the JSON form of a semantics.Node.
type AccessNode struct {
	ID       string   `json:"id"`
	Role     string   `json:"role"`
	Label    string   `json:"label,omitempty"`
	Value    string   `json:"value,omitempty"`
	Bounds   SafeRect `json:"bounds"`
	Children []string `json:"children,omitempty"`
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding. Views may
// report unbounded sizes when laid out without limits.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeRect is a JSON-safe version of graphics.Rect.
type SafeRect struct {
	Left   SafeFloat `json:"left"`
	Top    SafeFloat `json:"top"`
	Right  SafeFloat `json:"right"`
	Bottom SafeFloat `json:"bottom"`
}

func safeRect(r graphics.Rect) SafeRect {
	return SafeRect{
		Left:   SafeFloat(r.Left),
		Top:    SafeFloat(r.Top),
		Right:  SafeFloat(r.Right),
		Bottom: SafeFloat(r.Bottom),
	}
}

// States returns the entries of the state store in path order.
func (e *Engine) States() []StateInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := e.cx.StateIDs()
	infos := make([]StateInfo, 0, len(ids))
	for _, id := range ids {
		typ, _ := e.cx.StateType(id)
		infos = append(infos, StateInfo{ID: id.String(), Type: typ, Dirty: e.cx.IsDirty(id)})
	}
	return infos
}

// FrameTrace returns the buffer configured with WithFrameTrace, or nil.
func (e *Engine) FrameTrace() *FrameTraceBuffer {
	return e.trace
}

// Handler returns the mux serving the debug endpoints.
func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/tree", s.handleTree)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/frames", s.handleFrames)
	mux.HandleFunc("/access", s.handleAccess)
	return mux
}

// Start listens on addr (":0" picks a free port) and serves in the
// background. It returns the bound address. Starting a running server
// returns its current address.
func (s *DebugServer) Start(addr string) (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr(), nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("debug server listen: %w", err)
	}

	server := &http.Server{Handler: s.Handler()}
	s.server = server
	s.listener = listener

	go func() {
		defer errors.Recover("engine.DebugServer")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
			errors.Report(&errors.ComposeError{Op: "engine.DebugServer", Kind: errors.KindUnknown, Err: err})
		}
	}()

	return listener.Addr(), nil
}

// Stop shuts the server down, waiting for in-flight requests until ctx
// is done. Stopping a server that is not running is a no-op.
func (s *DebugServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (s *DebugServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *DebugServer) handleTree(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	defer errors.RecoverWithCallback("engine.DebugServer.tree", internalError(w))

	var sb strings.Builder
	s.engine.Print(&sb)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(sb.String()))
}

func (s *DebugServer) handleState(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, struct {
		States []StateInfo `json:"states"`
	}{States: s.engine.States()})
}

func (s *DebugServer) handleFrames(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	trace := s.engine.FrameTrace()
	if trace == nil {
		http.Error(w, "frame tracing disabled", http.StatusServiceUnavailable)
		return
	}
	resp := trace.Snapshot()
	applyFrameFilters(r, &resp)
	writeJSON(w, resp)
}

func (s *DebugServer) handleAccess(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	defer errors.RecoverWithCallback("engine.DebugServer.access", internalError(w))

	update := s.engine.Accessibility()
	nodes := make([]AccessNode, 0, len(update.Nodes))
	for _, n := range update.Nodes {
		nodes = append(nodes, accessNode(n))
	}
	writeJSON(w, struct {
		Root  string       `json:"root"`
		Nodes []AccessNode `json:"nodes"`
	}{Root: update.Root.String(), Nodes: nodes})
}

func accessNode(n semantics.Node) AccessNode {
	out := AccessNode{
		ID:     n.ID.String(),
		Role:   n.Role.String(),
		Label:  n.Label,
		Value:  n.Value,
		Bounds: safeRect(n.Bounds),
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.String())
	}
	return out
}

// applyFrameFilters keeps samples matching every query filter, then trims
// to the most recent limit samples.
func applyFrameFilters(r *http.Request, resp *FrameTimeline) {
	limit := 0
	if value := r.URL.Query().Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var filters []func(FrameSample) bool

	if v := parseFloatQuery(r, "min_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.FrameMs >= v })
	}
	if v := parseFloatQuery(r, "process_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.Phases.ProcessMs >= v })
	}
	if v := parseFloatQuery(r, "layout_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.Phases.LayoutMs >= v })
	}
	if v := parseFloatQuery(r, "draw_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.Phases.DrawMs >= v })
	}
	if v := parseFloatQuery(r, "gc_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.Phases.GCMs >= v })
	}
	if value := r.URL.Query().Get("redraw"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			filters = append(filters, func(s FrameSample) bool { return s.Redraw == parsed })
		}
	}
	if value := r.URL.Query().Get("evicted"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil && parsed {
			filters = append(filters, func(s FrameSample) bool { return s.Counts.Evicted > 0 })
		}
	}

	if len(filters) > 0 {
		filtered := make([]FrameSample, 0, len(resp.Samples))
	outer:
		for _, sample := range resp.Samples {
			for _, f := range filters {
				if !f(sample) {
					continue outer
				}
			}
			filtered = append(filtered, sample)
		}
		resp.Samples = filtered
	}

	if limit > 0 && len(resp.Samples) > limit {
		resp.Samples = resp.Samples[len(resp.Samples)-limit:]
	}
}

func parseFloatQuery(r *http.Request, key string) float64 {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// internalError answers a panicking handler with a 500.
func internalError(w http.ResponseWriter) func(rec any) {
	return func(rec any) {
		http.Error(w, fmt.Sprintf("panic: %v", rec), http.StatusInternalServerError)
	}
}

// writeJSON encodes to a buffer first so encoding errors become a 500.
func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
