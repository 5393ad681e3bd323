package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/crillab/gophertableau/tableau"
)

// writeTree renders the tree in depth-first order, one statement per line.
// Dashes show how many forks sit above a statement, the origin label ties
// each branch to the statement it forked at, [O] marks expanded statements
// and a trailing [X] line marks a closed branch.
func writeTree(w io.Writer, tree *tableau.Tableau, unicode bool) error {
	return tree.Walk(func(n tableau.NodeInfo) error {
		var b strings.Builder
		if n.Depth > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.Repeat("-", n.Depth))
		if n.Origin > 0 {
			fmt.Fprintf(&b, " %d%s", n.Origin, n.Side)
		}
		form := n.Formula.String()
		if unicode {
			form = n.Formula.Pretty()
		}
		fmt.Fprintf(&b, " [%d] %s", n.ID, form)
		if n.Expanded {
			b.WriteString("\t" + color.GreenString("[O]"))
		}
		b.WriteByte('\n')
		if n.Origin > 0 && n.Closed && n.Leaf {
			fmt.Fprintf(&b, " %s %d%s %s\n", strings.Repeat("-", n.Depth), n.Origin, n.Side, color.RedString("[X]"))
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}
