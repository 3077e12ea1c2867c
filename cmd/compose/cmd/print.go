package cmd

import (
	"fmt"
	"strings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "print",
		Short: "Print the view tree",
		Long: `Replay the given input against the demo tree and print the
structural trace produced by the print pass.

Wrappers open a block ("Key {", "Map {", "State {"); leaves print one
line.`,
		Usage: "compose print [input...]",
		Run:   runPrint,
	})
}

func runPrint(args []string) error {
	events, err := parseInput(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	s.replay(events, nil)

	var sb strings.Builder
	s.engine.Print(&sb)

	p := newPalette()
	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		fmt.Fprintln(stdout, p.traceLine(line))
	}
	return nil
}
