package cmd

import (
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Dump frame timings as YAML",
		Long: `Replay the given input against the demo tree, one frame per
input, and write the recorded frame samples as YAML: per-pass timings,
state and layout counts, evictions and draw operations.`,
		Usage: "compose trace [input...]",
		Run:   runTrace,
	})
}

func runTrace(args []string) error {
	events, err := parseInput(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	s.replay(events, nil)

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(s.trace.Snapshot()); err != nil {
		return err
	}
	return enc.Close()
}
