package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/semantics"
)

// UpdateSnapshotsEnv names the environment variable that makes MatchesFile
// rewrite golden files instead of comparing against them.
const UpdateSnapshotsEnv = "COMPOSE_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures everything the passes report about a tree: the print
// trace, recorded layout boxes, display operations, menu commands and the
// accessibility nodes.
type Snapshot struct {
	Trace      []string      `yaml:"trace"`
	Layout     []LayoutEntry `yaml:"layout,omitempty"`
	DisplayOps []DisplayOp   `yaml:"displayOps,omitempty"`
	Commands   []string      `yaml:"commands,omitempty"`
	Access     []AccessNode  `yaml:"access,omitempty"`
}

// LayoutEntry is one recorded layout box.
type LayoutEntry struct {
	ID     string    `yaml:"id"`
	Rect   []float64 `yaml:"rect,flow"`
	Offset []float64 `yaml:"offset,omitempty,flow"`
}

// AccessNode is a serialized accessibility node. Ids are rendered as view
// paths where the node belongs to a laid out view.
type AccessNode struct {
	ID       string    `yaml:"id"`
	Role     string    `yaml:"role"`
	Label    string    `yaml:"label,omitempty"`
	Value    string    `yaml:"value,omitempty"`
	Bounds   []float64 `yaml:"bounds,flow"`
	Children []string  `yaml:"children,omitempty,flow"`
}

// CaptureSnapshot runs the print, draw, commands and access passes on the
// current tree. Layout boxes are those of the last pump.
func (t *ViewTester) CaptureSnapshot() *Snapshot {
	var trace bytes.Buffer
	t.engine.Print(&trace)
	snap := &Snapshot{Trace: strings.Split(strings.TrimSuffix(trace.String(), "\n"), "\n")}

	cx := t.engine.Context()
	names := make(map[semantics.NodeID]string)
	for _, id := range cx.LayoutIDs() {
		box, _ := cx.LayoutOf(id)
		entry := LayoutEntry{ID: id.String(), Rect: serializeRect(box.Rect)}
		if box.Offset != (graphics.Offset{}) {
			entry.Offset = []float64{round2(box.Offset.X), round2(box.Offset.Y)}
		}
		snap.Layout = append(snap.Layout, entry)
		names[id.AccessID()] = id.String()
	}

	snap.DisplayOps = serializeDisplayList(t.engine.Record())

	for _, c := range t.engine.Commands() {
		if c.Key != nil {
			snap.Commands = append(snap.Commands, fmt.Sprintf("%s (%s)", c.Path, c.Key))
		} else {
			snap.Commands = append(snap.Commands, c.Path)
		}
	}

	update := t.engine.Accessibility()
	names[update.Root] = "window"
	nodeName := func(id semantics.NodeID) string {
		if name, ok := names[id]; ok {
			return name
		}
		return id.String()
	}
	for _, n := range update.Nodes {
		node := AccessNode{
			ID:     nodeName(n.ID),
			Role:   n.Role.String(),
			Label:  n.Label,
			Value:  n.Value,
			Bounds: serializeRect(n.Bounds),
		}
		for _, c := range n.Children {
			node.Children = append(node.Children, nodeName(c))
		}
		snap.Access = append(snap.Access, node)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// COMPOSE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff from other to this snapshot, or the empty
// string if both serialize identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	return cmp.Diff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
