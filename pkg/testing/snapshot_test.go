package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/testing/internal/testbed"
)

// fakeT records failures instead of failing the surrounding test.
type fakeT struct {
	fatals []string
	errors []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func TestCaptureSnapshot_Counter(t *testing.T) {
	copyKey := input.Key{Code: input.KeyCharacter, Char: 'c', Mods: input.ModControl}
	tester := NewViewTesterWithT(t, func(*core.Context) core.View {
		return core.OnKey(testbed.LayoutBox{
			Label:  "hi",
			Width:  30,
			Height: 10,
			Menu:   []core.CommandInfo{{Path: "Edit/Copy", Key: &copyKey}, {Path: "Edit/Select All"}},
		}, nil)
	})
	tester.Pump()
	snap := tester.CaptureSnapshot()

	wantTrace := []string{"Key {", `  LayoutBox "hi" 30x10`, "}"}
	if strings.Join(snap.Trace, "\n") != strings.Join(wantTrace, "\n") {
		t.Errorf("trace = %q, want %q", snap.Trace, wantTrace)
	}
	if len(snap.Layout) != 2 || snap.Layout[0].ID != "/" || snap.Layout[1].ID != "/[0]" {
		t.Errorf("layout = %+v", snap.Layout)
	}
	if len(snap.DisplayOps) != 2 || snap.DisplayOps[0].Op != "drawRect" || snap.DisplayOps[1].Op != "drawText" {
		t.Fatalf("display ops = %+v", snap.DisplayOps)
	}
	if got := snap.DisplayOps[1].Params["text"]; got != "hi" {
		t.Errorf("drawText text = %v", got)
	}
	wantCmds := []string{"Edit/Copy (Control+c)", "Edit/Select All"}
	if strings.Join(snap.Commands, "|") != strings.Join(wantCmds, "|") {
		t.Errorf("commands = %q, want %q", snap.Commands, wantCmds)
	}
	if len(snap.Access) != 2 {
		t.Fatalf("access = %+v", snap.Access)
	}
	if leaf, window := snap.Access[0], snap.Access[1]; leaf.ID != "/[0]" || leaf.Label != "hi" ||
		window.ID != "window" || len(window.Children) != 1 || window.Children[0] != "/[0]" {
		t.Errorf("access nodes = %+v", snap.Access)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := newCounterTester(t, nil)
	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := newCounterTester(t, nil)
	a := tester.CaptureSnapshot()
	tester.SendKey(input.Char('+'))
	b := tester.CaptureSnapshot()

	diff := a.Diff(b)
	if diff == "" {
		t.Fatal("expected diff for different snapshots")
	}
	if !strings.Contains(diff, "LayoutBox") {
		t.Errorf("diff should mention the relabelled box:\n%s", diff)
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester := newCounterTester(t, nil)
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "testdata", "counter.snapshot.yaml")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	// MatchesFile should pass now
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester := newCounterTester(t, nil)
	snap := tester.CaptureSnapshot()

	ft := &fakeT{}
	snap.MatchesFile(ft, filepath.Join(t.TempDir(), "missing.yaml"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "snapshot file missing") {
		t.Errorf("fatals = %q", ft.fatals)
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester := newCounterTester(t, nil)
	path := filepath.Join(t.TempDir(), "counter.yaml")
	if err := tester.CaptureSnapshot().UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.SendKey(input.Char('+'))
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.errors) != 1 || !strings.Contains(ft.errors[0], UpdateSnapshotsEnv+"=1") {
		t.Errorf("errors = %q", ft.errors)
	}
}

func TestSnapshot_MatchesFile_UpdateEnv(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	tester := newCounterTester(t, nil)
	path := filepath.Join(t.TempDir(), "nested", "counter.yaml")

	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errors) != 0 {
		t.Fatalf("update mode should not fail: %q %q", ft.fatals, ft.errors)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "trace:") {
		t.Errorf("written snapshot missing trace:\n%s", data)
	}
}

func TestSnapshot_InvalidYAML(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("trace: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	ft := &fakeT{}
	(&Snapshot{}).MatchesFile(ft, path)
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "invalid snapshot YAML") {
		t.Errorf("fatals = %q", ft.fatals)
	}
}
