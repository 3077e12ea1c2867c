package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/mixer/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := &Resolved{
		Root:       dir,
		ModulePath: "example.com/acme/mixer/v2",
		AppName:    "mixer",
		GCGrace:    DefaultGCGrace,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWithoutModule(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scratch")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.AppName != "scratch" || got.ModulePath != "" {
		t.Errorf("got name %q module %q, want directory name and no module", got.AppName, got.ModulePath)
	}
}

func TestResolveYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/mixer\n")
	writeFile(t, dir, YAMLFile, `
app:
  name: "  Mixer Deluxe  "
engine:
  gcGrace: 3
  verbose: true
  width: 1024
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.AppName != "Mixer Deluxe" {
		t.Errorf("AppName = %q", got.AppName)
	}
	if got.GCGrace != 3 || !got.Verbose || got.Width != 1024 || got.Height != DefaultHeight {
		t.Errorf("engine settings = %+v", got)
	}
	if got.Source != filepath.Join(dir, YAMLFile) {
		t.Errorf("Source = %q", got.Source)
	}
}

func TestResolveTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLFile, `
[app]
name = "tomlapp"

[engine]
gcGrace = 4
height = 480.0
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.AppName != "tomlapp" || got.GCGrace != 4 || got.Height != 480 {
		t.Errorf("resolved = %+v", got)
	}
}

func TestYAMLTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "app:\n  name: fromyaml\n")
	writeFile(t, dir, TOMLFile, "[app]\nname = \"fromtoml\"\n")

	cfg, source, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Name != "fromyaml" || filepath.Base(source) != YAMLFile {
		t.Errorf("loaded %q from %q", cfg.App.Name, source)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad yaml", YAMLFile, "app: [", "failed to parse compose.yaml"},
		{"bad toml", TOMLFile, "[app\n", "failed to parse compose.toml"},
		{"negative grace", YAMLFile, "engine:\n  gcGrace: -1\n", "gcGrace must not be negative"},
		{"negative size", TOMLFile, "[engine]\nwidth = -5.0\n", "size must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/x\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := FindProjectRoot(nested); got != root {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestDefaultAppName(t *testing.T) {
	tests := []struct {
		module, dir, want string
	}{
		{"github.com/acme/notes", "/tmp/x", "notes"},
		{"github.com/acme/notes/v3", "/tmp/x", "notes"},
		{"", "/tmp/project", "project"},
		{"", "/", "compose_app"},
	}
	for _, tt := range tests {
		if got := defaultAppName(tt.module, tt.dir); got != tt.want {
			t.Errorf("defaultAppName(%q, %q) = %q, want %q", tt.module, tt.dir, got, tt.want)
		}
	}
}
