// Package tf represents statements in truth-functional logic (propositional
// calculus) and the decomposition rules used to grow semantic tableaux,
// also known as truth trees.
//
// Statements are written in fully parenthesized prefix notation over the
// connectives not, and, or, if and iff; not is unary, the others are binary.
// For example:
//
// (not (if (and P Q) (iff (or A B) R)))
//
// Parse turns such a string into a Formula, an immutable tree in which each
// node keeps the exact substring it was parsed from. That substring is the
// identity of the formula: two formulas are equal exactly when their texts
// match, character for character. Closure of a tableau branch relies on this
// syntactic equality, never on logical equivalence.
//
// A Formula knows its own tableau decomposition. LeftExpansion and
// RightExpansion return the one or two statements produced by decomposing it
// a single step, and Branches tells whether those results belong on separate
// branches. For instance:
//
// f := tf.Parse("(if P Q)")
// f.LeftExpansion() // ~P
// f.RightExpansion() // Q
// f.Branches() // true
//
// String renders a formula in classical infix notation with the ASCII
// connectives ~, ^, v, -> and <->. Pretty does the same with the usual
// Unicode symbols. Both renderings are cosmetic and are not meant to be
// parsed back.
//
// Parse assumes its input is well formed and does not detect syntax errors;
// feeding it anything else is unspecified behavior. Wellformed is a separate
// strict checker for input that cannot be trusted, such as text typed at a
// prompt.
package tf
