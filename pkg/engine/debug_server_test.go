package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDebugHealth(t *testing.T) {
	h := NewDebugServer(New(counter)).Handler()

	rec := get(t, h, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var health map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatal(err)
	}
	if health["status"] != "ok" {
		t.Errorf("status = %q, want ok", health["status"])
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestDebugTree(t *testing.T) {
	h := NewDebugServer(New(counter)).Handler()
	rec := get(t, h, "/tree")
	want := "State {\n  Key {\n    box \"count\"\n  }\n}\n"
	if diff := cmp.Diff(want, rec.Body.String()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

// printPanicky panics in Print.
type printPanicky struct{ box }

func (printPanicky) Print(core.ViewID, *core.Context) {
	panic("print exploded")
}

func TestDebugTreeRecoversPanic(t *testing.T) {
	h := installHandler(t)
	e := New(func(*core.Context) core.View { return printPanicky{} })

	rec := get(t, NewDebugServer(e).Handler(), "/tree")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var ops []string
	for _, p := range h.panics {
		ops = append(ops, p.Op)
	}
	if diff := cmp.Diff([]string{"engine.Print", "engine.DebugServer.tree"}, ops); diff != "" {
		t.Errorf("reported panics mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugState(t *testing.T) {
	e := New(counter)
	e.Frame(input.KeyEvent{Key: input.Char('a')})

	var resp struct {
		States []StateInfo `json:"states"`
	}
	if err := json.Unmarshal(get(t, NewDebugServer(e).Handler(), "/state").Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := []StateInfo{{ID: "/", Type: "int"}}
	if diff := cmp.Diff(want, resp.States); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugFrames(t *testing.T) {
	h := NewDebugServer(New(counter)).Handler()
	if rec := get(t, h, "/frames"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status without trace = %d, want 503", rec.Code)
	}

	now := time.Unix(100, 0)
	clock := func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
	e := New(counter, WithFrameTrace(NewFrameTraceBuffer(8, 0)), WithClock(clock))
	e.Frame()
	e.Frame(input.KeyEvent{Key: input.Char('a')})
	e.Frame()
	h = NewDebugServer(e).Handler()

	tests := []struct {
		query string
		want  []bool
	}{
		{"/frames", []bool{false, true, false}},
		{"/frames?redraw=true", []bool{true}},
		{"/frames?redraw=false&limit=1", []bool{false}},
		{"/frames?min_ms=1000", nil},
	}
	for _, tt := range tests {
		var timeline FrameTimeline
		if err := json.Unmarshal(get(t, h, tt.query).Body.Bytes(), &timeline); err != nil {
			t.Fatalf("%s: %v", tt.query, err)
		}
		var got []bool
		for _, s := range timeline.Samples {
			got = append(got, s.Redraw)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s redraw flags mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestDebugAccess(t *testing.T) {
	e := New(counter, WithAppName("Counter"), WithSize(graphics.Size{Width: 320, Height: 200}))
	e.Frame()

	var resp struct {
		Root  string       `json:"root"`
		Nodes []AccessNode `json:"nodes"`
	}
	if err := json.Unmarshal(get(t, NewDebugServer(e).Handler(), "/access").Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(resp.Nodes))
	}
	window := resp.Nodes[1]
	if window.ID != resp.Root || window.Role != "window" || window.Label != "Counter" {
		t.Errorf("window node = %+v, root %s", window, resp.Root)
	}
	if diff := cmp.Diff([]string{resp.Nodes[0].ID}, window.Children); diff != "" {
		t.Errorf("window children mismatch (-want +got):\n%s", diff)
	}
	if resp.Nodes[0].Role != "button" || resp.Nodes[0].Label != "count" {
		t.Errorf("leaf node = %+v", resp.Nodes[0])
	}
}

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		in   SafeFloat
		want string
	}{
		{1.5, "1.5"},
		{SafeFloat(math.Inf(1)), `"Infinity"`},
		{SafeFloat(math.Inf(-1)), `"-Infinity"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", float64(tt.in), got, tt.want)
		}
	}
}

func TestDebugServerStartStop(t *testing.T) {
	srv := NewDebugServer(New(counter))
	addr, err := srv.Start("127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start debug server: %v", err)
	}
	defer srv.Stop(context.Background())

	again, err := srv.Start("127.0.0.1:0")
	if err != nil || again.String() != addr.String() {
		t.Errorf("second Start = %v, %v; want %v", again, err, addr)
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
	if err != nil {
		t.Fatalf("failed to reach health endpoint: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	if err := srv.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := srv.Stop(context.Background()); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}
