package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/compose/pkg/semantics"
)

// Finder locates nodes in the accessibility tree.
type Finder interface {
	// Evaluate returns all matching nodes in tree order.
	Evaluate(nodes []semantics.Node) []semantics.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []semantics.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() semantics.Node {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("FinderResult.First: no nodes found for %s", desc))
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) semantics.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("FinderResult.At(%d): index out of range [0, %d)", index, len(r.nodes)))
	}
	return r.nodes[index]
}

// All returns all matching nodes.
func (r FinderResult) All() []semantics.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

type predicateFinder struct {
	fn   func(semantics.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(nodes []semantics.Node) []semantics.Node {
	var out []semantics.Node
	for _, n := range nodes {
		if f.fn(n) {
			out = append(out, n)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByLabel finds nodes whose label equals text exactly.
func ByLabel(text string) Finder {
	return &predicateFinder{
		fn:   func(n semantics.Node) bool { return n.Label == text },
		desc: fmt.Sprintf("ByLabel(%q)", text),
	}
}

// ByLabelContaining finds nodes whose label contains substring.
func ByLabelContaining(substring string) Finder {
	return &predicateFinder{
		fn:   func(n semantics.Node) bool { return strings.Contains(n.Label, substring) },
		desc: fmt.Sprintf("ByLabelContaining(%q)", substring),
	}
}

// ByRole finds nodes with the given role.
func ByRole(role semantics.Role) Finder {
	return &predicateFinder{
		fn:   func(n semantics.Node) bool { return n.Role == role },
		desc: fmt.Sprintf("ByRole(%s)", role),
	}
}

// ByPredicate finds nodes matching fn.
func ByPredicate(fn func(semantics.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate"}
}

type andFinder struct {
	finders []Finder
}

func (f *andFinder) Evaluate(nodes []semantics.Node) []semantics.Node {
	for _, finder := range f.finders {
		nodes = finder.Evaluate(nodes)
	}
	return nodes
}

func (f *andFinder) Description() string {
	parts := make([]string, len(f.finders))
	for i, finder := range f.finders {
		parts[i] = finder.Description()
	}
	return "And(" + strings.Join(parts, ", ") + ")"
}

// And finds nodes matched by every finder.
func And(finders ...Finder) Finder {
	return &andFinder{finders: finders}
}
