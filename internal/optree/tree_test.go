package optree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rebar-lang/rebar/internal/lexer"
)

func TestTreeString_LeafOperandsOnly(t *testing.T) {
	tree := New(Addition)
	tree.PushOperand(lexer.NewIntegerToken(3))
	tree.PushOperand(lexer.NewIntegerToken(4))

	assert.Equal(t, "addition { INTEGER (3), INTEGER (4), }", tree.String())
}

func TestTreeString_NestedSubtree(t *testing.T) {
	inner := New(Addition)
	inner.PushOperand(lexer.NewIntegerToken(4))
	inner.PushOperand(lexer.NewIntegerToken(5))

	outer := New(Addition)
	outer.PushOperand(lexer.NewIntegerToken(3))
	outer.PushTreeOperand(inner)

	assert.Equal(t, "addition { INTEGER (3), addition { INTEGER (4), INTEGER (5), }, }", outer.String())
}

func TestTreeString_EmptyOperandListStillHasBraces(t *testing.T) {
	tree := New(Scope)
	assert.Equal(t, "scope { }", tree.String())
}

func TestTreeString_NullOperandSlot(t *testing.T) {
	tree := New(Call)
	tree.SetOperand(0, lexer.NewIntegerToken(1))
	tree.SetOperand(1, lexer.NewNullToken())

	assert.Equal(t, "call { INTEGER (1), NULL, }", tree.String())
}

func TestOperandTypeAndAccessors(t *testing.T) {
	sub := New(Addition)
	tree := New(Call)
	tree.SetOperand(0, lexer.NewIntegerToken(1))
	tree.SetTreeOperand(1, sub)

	assert.Equal(t, NodeToken, tree.OperandType(0))
	assert.Equal(t, NodeTree, tree.OperandType(1))
	assert.Equal(t, NodeNull, tree.OperandType(2))
	assert.Equal(t, sub, tree.TreeOperand(1))
}
