package tableau

import "github.com/crillab/gophertableau/tf"

// A Tableau is a truth tree under construction: premises chained below the
// root, grown downward by decomposing statements and pruned by closing
// branches. Every Tableau owns its node arena and its id sequence, so
// independent tableaux can be built side by side.
//
// All operations are synchronous and none returns an error: the fallible
// ones report plain success or failure, leaving the caller to explain the
// failure to whoever drives the construction.
type Tableau struct {
	nodes []*node // arena; the node with id n sits at index n-1
}

// New creates a tableau whose trunk carries the given premises in order.
func New(premise tf.Formula, more ...tf.Formula) *Tableau {
	t := &Tableau{}
	t.newNode(premise)
	for _, f := range more {
		t.AddPremise(f)
	}
	return t
}

// newNode appends a fresh open node to the arena. Ids are assigned in
// creation order, starting at 1, and are never reused.
func (t *Tableau) newNode(f tf.Formula) *node {
	n := &node{id: len(t.nodes) + 1, form: f}
	t.nodes = append(t.nodes, n)
	return n
}

func (t *Tableau) at(id int) *node { return t.nodes[id-1] }

// Size returns the number of nodes created so far. Valid node ids run from
// 1 through Size.
func (t *Tableau) Size() int { return len(t.nodes) }

// AddPremise appends one more premise at the bottom of the trunk, following
// left children down from the root. It is meant to be called before
// expansion begins; a premise added afterwards lands at the bottom of the
// leftmost chain and keeps trunk lineage, without disturbing existing ids.
func (t *Tableau) AddPremise(f tf.Formula) {
	at := t.at(1)
	for at.left != 0 {
		at = t.at(at.left)
	}
	n := t.newNode(f)
	n.parent = at.id
	at.left = n.id
}

// Expand decomposes the statement with the given id one step, appending the
// result below every open leaf of the subtree under that node: a single
// chained statement, a left/right fork, or a two-deep chain, depending on
// the decomposition. It reports whether the expansion happened; it fails
// when the id is out of range, the node was already expanded, or the
// statement is a literal with nothing to decompose.
func (t *Tableau) Expand(id int) bool {
	if id < 1 || id > len(t.nodes) {
		return false
	}
	target := t.at(id)
	if target.expanded {
		return false
	}
	left, right := target.form.LeftExpansion(), target.form.RightExpansion()
	if left == nil && right == nil {
		return false
	}
	if right == nil {
		t.insert(target, left, nil, false)
	} else {
		t.insert(target, left, right, target.form.Branches())
	}
	target.expanded = true
	return true
}

// insert carries an expansion result down to every open leaf below n.
// Closed subtrees are skipped entirely. A chained result copies the leaf's
// lineage; a forked pair starts two branches originating at the leaf
// itself.
func (t *Tableau) insert(n *node, left, right tf.Formula, fork bool) {
	if n.closed {
		return
	}
	if n.left != 0 {
		t.insert(t.at(n.left), left, right, fork)
		if n.right != 0 {
			t.insert(t.at(n.right), left, right, fork)
		}
		return
	}
	if fork {
		l := t.newNode(left)
		l.parent = n.id
		l.origin = n.id
		l.depth = n.depth + 1
		l.side = LeftSide
		n.left = l.id

		r := t.newNode(right)
		r.parent = n.id
		r.origin = n.id
		r.depth = n.depth + 1
		r.side = RightSide
		n.right = r.id
		return
	}
	l := t.newNode(left)
	l.parent = n.id
	l.origin = n.origin
	l.depth = n.depth
	l.side = n.side
	n.left = l.id
	if right != nil {
		t.insert(l, right, nil, false)
	}
}

// CloseBranch records that the statements with the two given ids contradict
// each other: at least one must be a negation, the two nodes must sit on a
// common branch and one statement must be, textually, the negation of the
// other. The statements need not be atomic. On success the deeper node is
// closed together with its whole subtree, closure spreads upward as far as
// it can be proven, and true is returned. Argument order does not matter.
func (t *Tableau) CloseBranch(id1, id2 int) bool {
	if id1 < 1 || id2 < 1 || id1 > len(t.nodes) || id2 > len(t.nodes) {
		return false
	}
	n1, n2 := t.at(id1), t.at(id2)
	if n1.form.Kind() != tf.Not && n2.form.Kind() != tf.Not {
		return false
	}
	if !t.related(n1, n2) {
		return false
	}
	if !negates(n1.form, n2.form) && !negates(n2.form, n1.form) {
		return false
	}
	deeper := n1
	if n2.id > n1.id {
		deeper = n2
	}
	t.closeDown(deeper)
	t.closeUp(deeper)
	return true
}

// related reports whether one node is an ancestor of the other. On a common
// branch the smaller id always sits higher, so the walk runs from the node
// with the larger id toward the root.
func (t *Tableau) related(a, b *node) bool {
	if a.id == b.id {
		return true
	}
	hi, lo := a, b
	if lo.id > hi.id {
		hi, lo = lo, hi
	}
	for n := hi; n.parent != 0; n = t.at(n.parent) {
		if n.parent == lo.id {
			return true
		}
	}
	return false
}

// negates reports whether f is the negation of g, by text.
func negates(f, g tf.Formula) bool {
	return f.Kind() == tf.Not && tf.Equal(f.Left(), g)
}

func (t *Tableau) closeDown(n *node) {
	n.closed = true
	if n.left != 0 {
		t.closeDown(t.at(n.left))
	}
	if n.right != 0 {
		t.closeDown(t.at(n.right))
	}
}

// closeUp propagates closure toward the root. A parent on the same branch
// closes with its chain; a fork parent closes only once both arms are
// closed; the walk stops at the first parent that stays open.
func (t *Tableau) closeUp(n *node) {
	if n.parent == 0 {
		return
	}
	parent := t.at(n.parent)
	switch {
	case parent.depth == n.depth:
		parent.closed = true
		t.closeUp(parent)
	case parent.right != 0 && t.at(parent.left).closed && t.at(parent.right).closed:
		parent.closed = true
		t.closeUp(parent)
	}
}

// Done reports whether construction is finished: either the root is closed,
// so the whole tree is, or every open decomposable statement has been
// expanded and no open statement still contradicts one of its ancestors.
// In the latter case the tree is saturated and at least one branch stays
// open.
func (t *Tableau) Done() bool {
	if t.at(1).closed {
		return true
	}
	for _, n := range t.nodes {
		if !n.closed && n.form.CanExpand() && !n.expanded {
			return false
		}
	}
	// Look for a contradiction nobody closed yet, newest statements first.
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := t.nodes[i]
		if n.closed {
			continue
		}
		for p := n.parent; p != 0; p = t.at(p).parent {
			anc := t.at(p)
			if negates(n.form, anc.form) || negates(anc.form, n.form) {
				return false
			}
		}
	}
	return true
}

// NodeInfo is the view of one node yielded by Walk.
type NodeInfo struct {
	ID       int
	Formula  tf.Formula
	Expanded bool
	Closed   bool
	Origin   int // id of the node its branch forked at; 0 on the trunk
	Depth    int // number of forks between the root and the node
	Side     Side
	Leaf     bool
}

// Walk visits every node in depth-first pre-order: the node itself, then
// its left subtree, then its right one. This is the order renderings of the
// tree rely on. Walk stops early and returns the first error fn returns.
func (t *Tableau) Walk(fn func(NodeInfo) error) error {
	return t.walk(t.at(1), fn)
}

func (t *Tableau) walk(n *node, fn func(NodeInfo) error) error {
	err := fn(NodeInfo{
		ID:       n.id,
		Formula:  n.form,
		Expanded: n.expanded,
		Closed:   n.closed,
		Origin:   n.origin,
		Depth:    n.depth,
		Side:     n.side,
		Leaf:     n.left == 0,
	})
	if err != nil {
		return err
	}
	if n.left != 0 {
		if err := t.walk(t.at(n.left), fn); err != nil {
			return err
		}
	}
	if n.right != 0 {
		if err := t.walk(t.at(n.right), fn); err != nil {
			return err
		}
	}
	return nil
}
