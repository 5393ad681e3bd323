package tf

import (
	"fmt"
	"strings"
)

// Parse builds the Formula written in repr, a fully parenthesized
// prefix-notation statement such as "(and P (not Q))". Any repr that does
// not start with '(' is taken to be an atom.
//
// Parse assumes repr is well formed and performs no syntax checking:
// malformed input is unspecified behavior, typically a panic or a formula
// with surprising operands. Run Wellformed first on input that cannot be
// trusted.
func Parse(repr string) Formula {
	switch {
	case !strings.HasPrefix(repr, "("):
		return atom(repr)
	case strings.HasPrefix(repr, "(not"):
		// The negated statement sits between "(not " and the final ')'.
		return negation{text: repr, sub: Parse(repr[5 : len(repr)-1])}
	case strings.HasPrefix(repr, "(and "):
		return conjunction{parseBinary(repr, 5)}
	case strings.HasPrefix(repr, "(or "):
		return disjunction{parseBinary(repr, 4)}
	case strings.HasPrefix(repr, "(if "):
		return conditional{parseBinary(repr, 4)}
	case strings.HasPrefix(repr, "(iff "):
		return biconditional{parseBinary(repr, 5)}
	}
	panic(fmt.Sprintf("unknown connective in %q", repr))
}

// parseBinary splits the operands of a binary connective and parses them.
// skip is the length of the leading "(<op> " prefix; the right operand
// starts one space after the left one ends.
func parseBinary(repr string, skip int) binary {
	ops := repr[skip : len(repr)-1]
	lop := firstArg(ops)
	rop := firstArg(ops[len(lop)+1:])
	return binary{
		text:  repr,
		lop:   lop,
		rop:   rop,
		left:  Parse(lop),
		right: Parse(rop),
	}
}

// firstArg extracts the first argument of s. A parenthesized argument is the
// shortest prefix with balanced parentheses; a bare argument runs to the
// next space, closing parenthesis or end of string.
func firstArg(s string) string {
	if s[0] != '(' {
		for i := 1; i < len(s); i++ {
			if s[i] == ' ' || s[i] == ')' {
				return s[:i]
			}
		}
		return s
	}
	depth := 1
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return s[:i+1]
		}
	}
	return s
}
