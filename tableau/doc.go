/*
Package tableau grows semantic tableaux, better known as truth trees, from
sets of premises in truth-functional logic.

A tableau starts as a single chain of premise nodes below the root. Each
node holds one statement (a tf.Formula) plus its bookkeeping: a numeric id
assigned in creation order, an expanded flag, a closed flag, and the lineage
of the branch it sits on. The caller then drives construction with two
operations, addressed by node id the way a person working on paper points at
numbered lines:

	t := tableau.New(tf.Parse("(or P Q)"), tf.Parse("(not P)"))
	t.Expand(1)         // fork: P on the left branch, Q on the right
	t.CloseBranch(2, 3) // (not P) against P closes the left branch

Expand decomposes a statement one step and appends the result below every
open leaf under it; depending on the statement the result is a chained
child, a two-deep chain, or a left/right fork that splits the branch.
CloseBranch takes two ids on a common branch where one statement is the
textual negation of the other; it closes the deeper node's subtree and lets
closure climb as high as it can be proven. Both report success as a plain
bool.

Done tells whether anything remains to do: it is true once the root is
closed (every branch refuted) or once every decomposable statement has been
expanded and no open contradiction is left unexploited (the tree is
saturated and some branch stays open).

Walk hands the tree to presentation code in depth-first pre-order, the
layout truth trees are customarily printed in.

Problems

A set of premises can also be loaded from a file. A Problem names the
premise set:

	name: modus ponens
	premises:
	  - (if P Q)
	  - P
	  - (not Q)

ParseYAML reads that form, ParseText reads a bare one-premise-per-line
form, and Problem.Tableau checks every premise and builds the initial tree.
*/
package tableau
