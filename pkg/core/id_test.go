package core

import "testing"

func TestViewIDRoot(t *testing.T) {
	var root ViewID
	if !root.IsRoot() || root.Depth() != 0 {
		t.Errorf("zero ViewID should be the root, depth %d", root.Depth())
	}
	if got := root.String(); got != "/" {
		t.Errorf("String() = %q, want %q", got, "/")
	}
}

func TestViewIDChildDeterministic(t *testing.T) {
	var root ViewID
	a := root.Child(0).Child(3)
	b := root.Child(0).Child(3)
	if a != b {
		t.Errorf("Child not deterministic: %v vs %v", a, b)
	}
	if got, want := a.String(), "/[0]/[3]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if a.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", a.Depth())
	}
}

func TestViewIDDistinctDiscriminators(t *testing.T) {
	var root ViewID
	ids := []ViewID{
		root.Child(0),
		root.Child(1),
		root.Child(10),
		root.Key("1"),
		root.Key("[1]"),
		root.Key("a/[0]"),
		root.Child(1).Child(0),
		root.Key("a").Child(0),
	}
	seen := make(map[ViewID]int)
	for i, id := range ids {
		if j, dup := seen[id]; dup {
			t.Errorf("ids[%d] (%v) collides with ids[%d]", i, id, j)
		}
		seen[id] = i
	}
}

func TestViewIDKeyString(t *testing.T) {
	id := ViewID{}.Child(2).Key(`row "7"`)
	if got, want := id.String(), `/[2]/"row \"7\""`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestViewIDIsAncestorOf(t *testing.T) {
	var root ViewID
	parent := root.Child(1)
	tests := []struct {
		name  string
		other ViewID
		want  bool
	}{
		{"child", parent.Child(0), true},
		{"grandchild", parent.Child(0).Key("x"), true},
		{"self", parent, false},
		{"sibling with shared prefix", root.Child(10), false},
		{"parent", root, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parent.IsAncestorOf(tt.other); got != tt.want {
				t.Errorf("IsAncestorOf(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
	if !root.IsAncestorOf(parent) {
		t.Error("root should be an ancestor of every other id")
	}
}

func TestViewIDAccessID(t *testing.T) {
	var root ViewID
	if root.AccessID() == 0 {
		t.Error("AccessID must not be zero")
	}
	if root.Child(0).AccessID() != root.Child(0).AccessID() {
		t.Error("AccessID must be stable")
	}
	if root.Child(0).AccessID() == root.Child(1).AccessID() {
		t.Error("sibling AccessIDs should differ")
	}
}
