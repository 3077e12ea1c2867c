package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/compose/pkg/semantics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "access",
		Short: "Show the accessibility tree",
		Long: `Replay the given input against the demo tree and print the
accessibility nodes, rooted at the window node named after the app.`,
		Usage: "compose access [input...]",
		Run:   runAccess,
	})
}

func runAccess(args []string) error {
	events, err := parseInput(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	s.replay(events, nil)

	update := s.engine.Accessibility()
	var tree semantics.Tree
	for _, n := range update.Nodes {
		tree.Push(n)
	}
	printNode(newPalette(), &tree, update.Root, 0)
	return nil
}

func printNode(p palette, tree *semantics.Tree, id semantics.NodeID, depth int) {
	n, ok := tree.Find(id)
	if !ok {
		fmt.Fprintf(stdout, "%s%s\n", strings.Repeat("  ", depth), p.warn("missing "+id.String()))
		return
	}
	line := fmt.Sprintf("%s%s %q", strings.Repeat("  ", depth), p.block(n.Role.String()), n.Label)
	if n.Value != "" {
		line += " value=" + p.leaf(n.Value)
	}
	r := n.Bounds
	line += p.dim(fmt.Sprintf(" [%g,%g %gx%g]", r.Left, r.Top, r.Width(), r.Height()))
	fmt.Fprintln(stdout, line)
	for _, c := range n.Children {
		printNode(p, tree, c, depth+1)
	}
}
