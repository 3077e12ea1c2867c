// Package demo holds the sample view tree driven by the compose CLI.
package demo

import (
	"fmt"
	"strconv"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// Mixer is the persistent state of the demo app.
type Mixer struct {
	Channel string
	Volume  int
	Muted   bool
}

// MaxVolume bounds the volume slider.
const MaxVolume = 100

// Command paths offered by the demo.
const (
	CommandMute  = "Audio/Mute"
	CommandReset = "Audio/Reset"
)

var muteKey = input.Key{Code: input.KeyCharacter, Char: 'm', Mods: input.ModControl}

// InitialMixer returns the state a fresh demo starts from.
func InitialMixer() Mixer {
	return Mixer{Channel: "Main", Volume: 5}
}

// App builds the demo tree: a mixer whose volume is exposed to the slider
// as derived local state.
//
//	State {            mixer
//	  Key {            'm' toggles mute
//	    Map {          volume copy
//	      Key {        arrows change the copy
//	        Label
func App(cx *core.Context) core.View {
	return core.Stateful(InitialMixer, func(mixer core.State[Mixer], cx *core.Context) core.View {
		m := mixer.Get(cx)
		return core.OnKey(
			core.Map(m.Volume,
				func(v int, cx *core.Context) {
					mixer.Update(cx, func(m *Mixer) { m.Volume = v })
				},
				func(volume core.State[int], cx *core.Context) core.View {
					return core.OnKey(slider(m, volume, cx, mixer), func(cx *core.Context, k input.Key) {
						switch k.Code {
						case input.KeyArrowUp:
							volume.Set(cx, min(volume.Get(cx)*2, MaxVolume))
						case input.KeyArrowRight:
							volume.Set(cx, min(volume.Get(cx)+1, MaxVolume))
						case input.KeyArrowLeft:
							volume.Set(cx, max(volume.Get(cx)-1, 0))
						case input.KeyArrowDown:
							volume.Set(cx, volume.Get(cx)/2)
						}
					})
				},
			),
			func(cx *core.Context, k input.Key) {
				if k.Code == input.KeyCharacter && k.Char == 'm' {
					mixer.Update(cx, func(m *Mixer) { m.Muted = !m.Muted })
				}
			},
		)
	})
}

func slider(m Mixer, volume core.State[int], cx *core.Context, mixer core.State[Mixer]) Label {
	text := fmt.Sprintf("%s: %d", m.Channel, volume.Get(cx))
	if m.Muted {
		text += " (muted)"
	}
	return Label{
		Text:  text,
		Role:  semantics.RoleSlider,
		Value: strconv.Itoa(volume.Get(cx)),
		Menu: []core.CommandInfo{
			{Path: CommandMute, Key: &muteKey},
			{Path: CommandReset},
		},
		OnCommand: func(cx *core.Context, name string) {
			switch name {
			case CommandMute:
				mixer.Update(cx, func(m *Mixer) { m.Muted = !m.Muted })
			case CommandReset:
				volume.Set(cx, InitialMixer().Volume)
			}
		},
	}
}
