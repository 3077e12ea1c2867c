package cmd

import (
	"fmt"

	"github.com/go-drift/compose/pkg/input"
)

func init() {
	RegisterCommand(&Command{
		Name:  "keys",
		Short: "Replay input and report each frame",
		Long: `Replay key chords and menu commands against the demo tree, one
frame per input, and report whether each one requested a redraw.

Finishes with the menu commands the tree offers.`,
		Usage: "compose keys <input...>",
		Run:   runKeys,
	})
}

func runKeys(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("keys requires at least one input")
	}
	events, err := parseInput(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}

	p := newPalette()
	s.replay(events, func(ev input.Event, redraw bool) {
		status := p.dim("unchanged")
		if redraw {
			status = p.block("redraw")
		}
		fmt.Fprintf(stdout, "%-16s %s\n", describeEvent(ev), status)
	})

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, c := range s.engine.Commands() {
		if c.Key != nil {
			fmt.Fprintf(stdout, "  %-16s %s\n", c.Path, p.leaf(c.Key.String()))
		} else {
			fmt.Fprintf(stdout, "  %s\n", c.Path)
		}
	}
	return nil
}
