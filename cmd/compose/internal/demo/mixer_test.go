package demo

import (
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
	composetest "github.com/go-drift/compose/pkg/testing"
)

func newMixer(t *testing.T) *composetest.ViewTester {
	t.Helper()
	tester := composetest.NewViewTesterWithT(t, App)
	tester.Pump()
	return tester
}

func mixerState(t *testing.T, tester *composetest.ViewTester) Mixer {
	t.Helper()
	return composetest.StateAt[Mixer](t, tester, core.ViewID{})
}

func TestArrowUpDoublesVolume(t *testing.T) {
	tester := newMixer(t)

	if !tester.SendKey(input.Key{Code: input.KeyArrowUp}) {
		t.Error("volume change should request a redraw")
	}
	if got := mixerState(t, tester).Volume; got != 10 {
		t.Errorf("Volume = %d, want 10", got)
	}
	if tester.SendKey(input.Char('x')) {
		t.Error("unbound key should not request a redraw")
	}
	if got := mixerState(t, tester).Volume; got != 10 {
		t.Errorf("Volume = %d after unbound key, want 10", got)
	}
}

func TestVolumeIsClamped(t *testing.T) {
	tester := newMixer(t)
	for range 6 {
		tester.SendKey(input.Key{Code: input.KeyArrowUp})
	}
	if got := mixerState(t, tester).Volume; got != MaxVolume {
		t.Errorf("Volume = %d, want %d", got, MaxVolume)
	}
	for range 10 {
		tester.SendKey(input.Key{Code: input.KeyArrowLeft})
	}
	if got := mixerState(t, tester).Volume; got != MaxVolume-10 {
		t.Errorf("Volume = %d, want %d", got, MaxVolume-10)
	}
}

func TestMuteKeyAndCommand(t *testing.T) {
	tester := newMixer(t)

	tester.SendKey(input.Char('m'))
	if !mixerState(t, tester).Muted {
		t.Fatal("'m' should mute")
	}
	if !tester.Find(composetest.ByLabel("Main: 5 (muted)")).Exists() {
		t.Errorf("label should show muted state:\n%s", tester.Print())
	}

	if err := tester.Invoke(CommandMute); err != nil {
		t.Fatal(err)
	}
	if mixerState(t, tester).Muted {
		t.Error("mute command should toggle back")
	}
}

func TestResetCommandFlowsThroughMap(t *testing.T) {
	tester := newMixer(t)
	tester.SendKey(input.Key{Code: input.KeyArrowRight})
	tester.SendKey(input.Key{Code: input.KeyArrowRight})
	if got := mixerState(t, tester).Volume; got != 7 {
		t.Fatalf("Volume = %d, want 7", got)
	}

	if err := tester.Invoke(CommandReset); err != nil {
		t.Fatal(err)
	}
	if got := mixerState(t, tester).Volume; got != 5 {
		t.Errorf("Volume = %d after reset, want 5", got)
	}
}

func TestSliderAccessibility(t *testing.T) {
	tester := newMixer(t)
	slider := tester.Find(composetest.ByRole(semantics.RoleSlider))
	if slider.Count() != 1 {
		t.Fatalf("found %d sliders, want 1", slider.Count())
	}
	node := slider.First()
	if node.Value != "5" || node.Label != "Main: 5" {
		t.Errorf("slider = %+v", node)
	}
	// basicfont is 7 pixels per glyph.
	if w := node.Bounds.Width(); w != 7*float64(len("Main: 5")) {
		t.Errorf("slider width = %v", w)
	}
}

func TestLabelIgnoresUnknownCommands(t *testing.T) {
	called := false
	l := Label{
		Text:      "x",
		Menu:      []core.CommandInfo{{Path: "A/B"}},
		OnCommand: func(*core.Context, string) { called = true },
	}
	cx := core.NewContext()
	l.Process(input.CommandEvent{Name: "C/D"}, core.ViewID{}, cx, nil)
	if called {
		t.Error("OnCommand should only run for offered commands")
	}
	l.Process(input.CommandEvent{Name: "A/B"}, core.ViewID{}, cx, nil)
	if !called {
		t.Error("OnCommand should run for an offered command")
	}
}
