// Package semantics describes the accessibility fragment a view tree exports.
//
// Views append flat Node descriptors to a Tree during the access pass and
// return the NodeID that represents their subtree. Parents reference
// children by id, so the fragment can be handed to a platform accessibility
// service without further conversion.
package semantics

import (
	"fmt"

	"github.com/go-drift/compose/pkg/graphics"
)

// NodeID identifies an accessibility node. Views derive it from their
// ViewID so it stays stable across passes.
type NodeID uint64

func (id NodeID) String() string {
	return fmt.Sprintf("#%016x", uint64(id))
}

// Role is the semantic role of a node.
type Role int

const (
	RoleUnknown Role = iota
	RoleWindow
	RoleGroup
	RoleLabel
	RoleButton
	RoleCheckBox
	RoleSlider
	RoleTextField
)

func (r Role) String() string {
	switch r {
	case RoleWindow:
		return "window"
	case RoleGroup:
		return "group"
	case RoleLabel:
		return "label"
	case RoleButton:
		return "button"
	case RoleCheckBox:
		return "checkbox"
	case RoleSlider:
		return "slider"
	case RoleTextField:
		return "textfield"
	default:
		return "unknown"
	}
}

// Node is one accessibility node descriptor.
type Node struct {
	ID       NodeID
	Role     Role
	Label    string
	Value    string
	Bounds   graphics.Rect
	Children []NodeID
}

// Tree collects the nodes appended during one access pass.
type Tree struct {
	Nodes []Node
	index map[NodeID]int
}

// Push appends a node and returns its id. A node pushed twice with the same
// id replaces the earlier descriptor.
func (t *Tree) Push(n Node) NodeID {
	if t.index == nil {
		t.index = make(map[NodeID]int)
	}
	if i, ok := t.index[n.ID]; ok {
		t.Nodes[i] = n
		return n.ID
	}
	t.index[n.ID] = len(t.Nodes)
	t.Nodes = append(t.Nodes, n)
	return n.ID
}

// Find returns the node with the given id.
func (t *Tree) Find(id NodeID) (Node, bool) {
	i, ok := t.index[id]
	if !ok {
		return Node{}, false
	}
	return t.Nodes[i], true
}

// Len returns the number of collected nodes.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Update is a complete accessibility snapshot ready for a platform sink.
type Update struct {
	Nodes []Node
	Root  NodeID
	// Focus is the node holding keyboard focus, zero when none.
	Focus NodeID
}
