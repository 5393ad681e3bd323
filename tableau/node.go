package tableau

import "github.com/crillab/gophertableau/tf"

// A Side tells which arm of its originating fork a node descends from.
type Side byte

const (
	// NoSide marks nodes on the trunk, which descend from no fork.
	NoSide Side = iota
	// LeftSide marks nodes descending from the left arm of their fork.
	LeftSide
	// RightSide marks nodes descending from the right arm of their fork.
	RightSide
)

func (s Side) String() string {
	switch s {
	case NoSide:
		return "?"
	case LeftSide:
		return "l"
	case RightSide:
		return "r"
	}
	panic("invalid branch side")
}

// A node is one statement placed in the tree. Nodes live in the arena of
// their Tableau and reference each other by id; id 0 stands for no node.
// A node has zero children, one (the continuation of its chain, always on
// the left) or two (a fork splitting the branch).
type node struct {
	id       int
	form     tf.Formula
	parent   int
	left     int
	right    int
	closed   bool
	expanded bool

	// branch lineage
	origin int // id of the node its branch forked at; 0 on the trunk
	depth  int // number of forks between the root and this node
	side   Side
}
