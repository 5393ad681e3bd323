package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/crillab/gophertableau/tableau"
	"github.com/crillab/gophertableau/tf"
)

// A shell drives the interactive tableau builder: it collects premises, then
// executes build commands until quit or end of input. When tree is set
// before run, premise entry is skipped and the commands work on that tree.
type shell struct {
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
	tree    *tableau.Tableau
	name    string
	unicode bool
}

func newShell(in io.Reader, out io.Writer, log *slog.Logger) *shell {
	return &shell{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// run executes the whole session. It returns nil on quit or end of input
// and an error only when reading the input itself failed.
func (sh *shell) run() error {
	fmt.Fprint(sh.out, "Truth Tree Interface\n\n")
	if sh.tree == nil {
		if !sh.collectPremises() {
			return sh.in.Err()
		}
	} else if sh.name != "" {
		fmt.Fprintf(sh.out, "Problem: %s\n", sh.name)
	}
	fmt.Fprint(sh.out, "Enter commands to build the truth tree. Type help for a list of commands and their descriptions\n")
	for {
		fmt.Fprint(sh.out, "> ")
		line, ok := sh.readLine()
		if !ok || !sh.execute(line) {
			return sh.in.Err()
		}
	}
}

// collectPremises prompts for premises until the user declines to continue,
// then builds the tree from them. Ill-formed premises are rejected and
// prompted for again. It reports false when input ran out first.
func (sh *shell) collectPremises() bool {
	fmt.Fprint(sh.out, "Enter premises for the truth tree using Slate-style prefix syntax:\n")
	var premises []tf.Formula
	for {
		fmt.Fprintf(sh.out, "Premise %d: ", len(premises)+1)
		line, ok := sh.readLine()
		if !ok {
			return false
		}
		if err := tf.Wellformed(line); err != nil {
			fmt.Fprintf(sh.out, "Invalid premise: %v. Try again.\n", err)
			continue
		}
		premises = append(premises, tf.Parse(line))
		sh.log.Debug("premise accepted", "number", len(premises), "statement", line)
		fmt.Fprint(sh.out, "Continue entering premises? (y/n) ")
		more, ok := sh.readYesNo()
		if !ok {
			return false
		}
		if !more {
			break
		}
	}
	sh.tree = tableau.New(premises[0], premises[1:]...)
	return true
}

// execute runs one command line and reports whether the session goes on.
func (sh *shell) execute(line string) bool {
	switch {
	case strings.EqualFold(line, "help"):
		sh.printHelp()
	case strings.EqualFold(line, "print"):
		sh.printTree()
	case strings.EqualFold(line, "quit"):
		return false
	case strings.EqualFold(line, "expand"):
		sh.expand()
	case strings.EqualFold(line, "close"):
		sh.closeBranch()
	case strings.EqualFold(line, "done"):
		sh.done()
	default:
		fmt.Fprintln(sh.out, "Invalid input. Try again.")
	}
	return true
}

func (sh *shell) printHelp() {
	fmt.Fprintln(sh.out, "help - Show this list of commands and descriptions")
	fmt.Fprintln(sh.out, "print - Display the truth tree's current state")
	fmt.Fprintln(sh.out, "quit - Exit the program")
	fmt.Fprintln(sh.out, "expand - Try to expand a statement of the truth tree (you'll be prompted to specify which one)")
	fmt.Fprintln(sh.out, "close - Try to close a branch by specifying a statement and its negation")
	fmt.Fprintln(sh.out, "done - Validate that the truth tree has been completed (this will not quit the program)")
}

func (sh *shell) printTree() {
	fmt.Fprintln(sh.out, "Key: [O] next to a statement indicates that it's already been expanded, and [X] indicates that the branch it's listed next to is closed")
	if err := writeTree(sh.out, sh.tree, sh.unicode); err != nil {
		sh.log.Error("could not print the tree", "error", err)
	}
}

func (sh *shell) expand() {
	fmt.Fprint(sh.out, "Enter the number of the statement to expand (-1 to cancel): ")
	n, ok := sh.readInt()
	if !ok || n == -1 {
		return
	}
	if sh.tree.Expand(n) {
		sh.log.Debug("expanded statement", "id", n)
		return
	}
	fmt.Fprintln(sh.out, "Unable to expand the specified statement.")
	fmt.Fprintln(sh.out, "It may not be expandable, or it may have already been expanded.")
	fmt.Fprintln(sh.out, "Try using the print command to double-check.")
}

func (sh *shell) closeBranch() {
	fmt.Fprint(sh.out, "Enter the number of the first statement (-1 to cancel):  ")
	n1, ok := sh.readInt()
	if !ok {
		return
	}
	fmt.Fprint(sh.out, "Enter the number of the second statement (-1 to cancel): ")
	n2, ok := sh.readInt()
	if !ok {
		return
	}
	if n1 == -1 || n2 == -1 {
		return
	}
	if sh.tree.CloseBranch(n1, n2) {
		sh.log.Debug("closed branch", "first", n1, "second", n2)
		return
	}
	fmt.Fprintln(sh.out, "Unable to close any branches with the specified statements.")
	fmt.Fprintln(sh.out, "Use the print command to verify that the statements are in the same branch and one is the negation of the other.")
}

func (sh *shell) done() {
	if sh.tree.Done() {
		fmt.Fprintln(sh.out, "The tree appears to be complete.")
	} else {
		fmt.Fprintln(sh.out, "There are still some operations to be performed before the tree is done")
	}
}

func (sh *shell) readLine() (string, bool) {
	if !sh.in.Scan() {
		return "", false
	}
	return sh.in.Text(), true
}

// readInt reads one line holding a number. A line that is not a number
// cancels the operation it was read for.
func (sh *shell) readInt() (int, bool) {
	line, ok := sh.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid input. Try again.")
		return 0, false
	}
	return n, true
}

// readYesNo keeps prompting until it reads y or n, in either case.
func (sh *shell) readYesNo() (yes, ok bool) {
	for {
		line, lineOK := sh.readLine()
		if !lineOK {
			return false, false
		}
		switch {
		case strings.EqualFold(line, "y"):
			return true, true
		case strings.EqualFold(line, "n"):
			return false, true
		}
		fmt.Fprint(sh.out, "Invalid input. Type Y/y to continue, N/n to quit: ")
	}
}
