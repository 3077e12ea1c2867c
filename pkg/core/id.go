package core

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/go-drift/compose/pkg/semantics"
)

// ViewID is the stable identity of a position in the view tree: the
// sequence of child discriminators taken from the root. The zero value is
// the root. ViewIDs are comparable and can be used as map keys.
//
// Index segments render as [n] and key segments as Go-quoted strings, so
// the path of Child(1) never equals the path of Key("1").
type ViewID struct {
	path  string
	depth int
}

// Child returns the id of the child at index i.
func (id ViewID) Child(i int) ViewID {
	return id.push("[" + strconv.Itoa(i) + "]")
}

// Key returns the id of the child identified by key, for keyed collections
// whose children keep their identity when reordered.
func (id ViewID) Key(key string) ViewID {
	return id.push(strconv.Quote(key))
}

func (id ViewID) push(segment string) ViewID {
	return ViewID{path: id.path + "/" + segment, depth: id.depth + 1}
}

// IsRoot reports whether id is the root id.
func (id ViewID) IsRoot() bool {
	return id.depth == 0
}

// Depth returns the number of segments in the path.
func (id ViewID) Depth() int {
	return id.depth
}

// IsAncestorOf reports whether other lies strictly below id.
func (id ViewID) IsAncestorOf(other ViewID) bool {
	if other.depth <= id.depth {
		return false
	}
	return strings.HasPrefix(other.path, id.path+"/")
}

// String returns the path, "/" for the root.
func (id ViewID) String() string {
	if id.path == "" {
		return "/"
	}
	return id.path
}

// Hash returns a 64-bit FNV-1a hash of the path.
func (id ViewID) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(id.String()))
	return h.Sum64()
}

// AccessID returns the accessibility node id for this view. It is never
// zero, which semantics reserves for "none".
func (id ViewID) AccessID() semantics.NodeID {
	if h := id.Hash(); h != 0 {
		return semantics.NodeID(h)
	}
	return 1
}

// Equal reports whether id and other name the same position.
func (id ViewID) Equal(other ViewID) bool {
	return id == other
}
