package tf

import (
	"fmt"
	"testing"
)

// To each input, associate whether Wellformed should accept it.
var checkedExprs = map[string]bool{
	"P":                 true,
	"P12":               true,
	"(not P)":           true,
	"(not (not P))":     true,
	"(and P Q)":         true,
	"(or P Q)":          true,
	"(if P Q)":          true,
	"(iff P Q)":         true,
	"(not (if (and P Q) (iff (or A B) R)))": true,
	"":            false,
	"()":          false,
	"(xor P Q)":   false,
	"(AND P Q)":   false,
	"(and P)":     false,
	"(and P Q R)": false,
	"(and  P Q)":  false,
	"(not P":      false,
	"(notP)":      false,
	"not P":       false,
	"P Q":         false,
}

func TestWellformed(t *testing.T) {
	for expr, valid := range checkedExprs {
		err := Wellformed(expr)
		if valid && err != nil {
			t.Errorf("statement %q rejected: %v", expr, err)
		} else if !valid && err == nil {
			t.Errorf("malformed statement %q accepted", expr)
		}
	}
}

func ExampleWellformed() {
	fmt.Println(Wellformed("(and P Q)"))
	fmt.Println(Wellformed("(and P Q"))
	// Output:
	// <nil>
	// missing closing parenthesis in "(and P Q"
}
