package tf

import (
	"errors"
	"fmt"
	"strings"
)

// Wellformed checks that repr is a single fully parenthesized
// prefix-notation statement over the supported connectives. It is the
// strict counterpart of Parse: Parse trusts its input, Wellformed vets it.
// A nil return guarantees Parse(repr) yields the intended formula.
func Wellformed(repr string) error {
	rest, err := checkStmt(repr)
	if err != nil {
		return err
	}
	if rest != "" {
		return fmt.Errorf("unexpected trailing input %q", rest)
	}
	return nil
}

// checkStmt consumes one statement from the front of s and returns whatever
// follows it.
func checkStmt(s string) (rest string, err error) {
	if s == "" {
		return "", errors.New("empty statement")
	}
	if s[0] != '(' {
		i := 0
		for i < len(s) && s[i] != ' ' && s[i] != '(' && s[i] != ')' {
			i++
		}
		if i == 0 {
			return "", fmt.Errorf("expected statement, found %q", s)
		}
		return s[i:], nil
	}
	var arity int
	switch {
	case strings.HasPrefix(s, "(not "):
		arity, rest = 1, s[5:]
	case strings.HasPrefix(s, "(and "):
		arity, rest = 2, s[5:]
	case strings.HasPrefix(s, "(or "):
		arity, rest = 2, s[4:]
	case strings.HasPrefix(s, "(if "):
		arity, rest = 2, s[4:]
	case strings.HasPrefix(s, "(iff "):
		arity, rest = 2, s[5:]
	default:
		return "", fmt.Errorf("unknown connective in %q", s)
	}
	rest, err = checkStmt(rest)
	if err != nil {
		return "", err
	}
	if arity == 2 {
		if !strings.HasPrefix(rest, " ") {
			return "", fmt.Errorf("missing second operand in %q", s)
		}
		rest, err = checkStmt(rest[1:])
		if err != nil {
			return "", err
		}
	}
	if !strings.HasPrefix(rest, ")") {
		return "", fmt.Errorf("missing closing parenthesis in %q", s)
	}
	return rest[1:], nil
}
