package tableau

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemValidate(t *testing.T) {
	pb := &Problem{Premises: []string{"(if P Q)", "P"}}
	assert.NoError(t, pb.Validate())

	pb = &Problem{Premises: []string{"(if P Q)", ""}}
	assert.Error(t, pb.Validate())

	pb = &Problem{Name: "no premises"}
	assert.Error(t, pb.Validate())
}

func TestParseYAML(t *testing.T) {
	const doc = `
name: modus ponens
description: If P then Q; P; therefore Q.
premises:
  - (if P Q)
  - P
  - (not Q)
`
	pb, err := ParseYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "modus ponens", pb.Name)
	assert.Len(t, pb.Premises, 3)

	tree, err := pb.Tableau()
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, "(if P Q)", info(t, tree, 1).Formula.Text())
	assert.Equal(t, "(not Q)", info(t, tree, 3).Formula.Text())
}

func TestParseYAMLErrors(t *testing.T) {
	t.Run("no premises", func(t *testing.T) {
		_, err := ParseYAML(strings.NewReader("name: empty\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Premises")
	})

	t.Run("ill-formed premise", func(t *testing.T) {
		_, err := ParseYAML(strings.NewReader("premises: ['(and P)']\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "premise 1")
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := ParseYAML(strings.NewReader("\t:::"))
		assert.Error(t, err)
	})
}

func TestParseText(t *testing.T) {
	const doc = `
# Modus tollens.
(if P Q)

(not Q)
P
`
	pb, err := ParseText(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"(if P Q)", "(not Q)", "P"}, pb.Premises)

	tree, err := pb.Tableau()
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Size())
}

func TestParseTextErrors(t *testing.T) {
	t.Run("only comments", func(t *testing.T) {
		_, err := ParseText(strings.NewReader("# nothing here\n\n"))
		assert.Error(t, err)
	})

	t.Run("ill-formed premise", func(t *testing.T) {
		_, err := ParseText(strings.NewReader("(if P Q)\n(not P\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "premise 2")
	})
}
