package parser

import (
	"github.com/rebar-lang/rebar/internal/lexer"
	"github.com/rebar-lang/rebar/internal/optree"
)

// Shape is the arity shape of an operator descriptor.
type Shape int

const (
	// Unary takes one operand, on either side of the operator
	// depending on Association.
	Unary Shape = iota
	// Binary takes two operands, one on each side of the operator.
	Binary
	// BinaryEnclose takes two operands: an outer left-hand operand
	// and one enclosed between the operator and its Secondary symbol
	// (e.g. `a[b]`, `f(x)`).
	BinaryEnclose
	// Trinary takes three operands, the middle one delimited by the
	// operator and its Secondary symbol (e.g. `a ? b : c`).
	Trinary
	// Variadic takes one or more operands, split at every top-level
	// occurrence of the operator symbol (e.g. comma sequences).
	Variadic
)

// Association is the tie-breaking direction used when two candidate
// pivots share the same precedence.
type Association int

const (
	Left Association = iota
	Right
)

// Descriptor links a symbol to an operation, including its arity
// shape, associativity, and precedence. Multiple descriptors may
// share an Identifier symbol (prefix vs. postfix `++`).
type Descriptor struct {
	Identifier      lexer.Symbol
	HasSecondary    bool
	Secondary       lexer.Symbol
	MappedOperation optree.Operation
	Shape           Shape
	Association     Association
	Precedence      uint
}

// Registry is an ordered list of operator descriptors. Order has no
// semantic meaning beyond iteration order when multiple descriptors
// match the same symbol at the same position; both apply and the
// pivot-selection rules in Parser.parseExpression decide between
// them.
type Registry []Descriptor

// DefaultRegistry returns the built-in operator table: assignment,
// sequence, ternary, addition, multiplication, logical_not, prefix
// and postfix increment, index, call, and dot_index — matching
// precedences are data, not hard-coded parser logic, so embedders may
// extend or replace this table freely (subtraction, division,
// comparisons, bitwise, and compound assignments are all reserved
// with matching precedences but not wired in by default).
func DefaultRegistry() Registry {
	return Registry{
		{
			Identifier:      lexer.Equals,
			MappedOperation: optree.Assignment,
			Shape:           Binary,
			Association:     Right,
			Precedence:      1,
		},
		{
			Identifier:      lexer.Comma,
			MappedOperation: optree.Sequence,
			Shape:           Variadic,
			Association:     Left,
			Precedence:      2,
		},
		{
			Identifier:      lexer.Question,
			HasSecondary:    true,
			Secondary:       lexer.Colon,
			MappedOperation: optree.Ternary,
			Shape:           Trinary,
			Association:     Right,
			Precedence:      3,
		},
		{
			Identifier:      lexer.Plus,
			MappedOperation: optree.Addition,
			Shape:           Binary,
			Association:     Left,
			Precedence:      6,
		},
		{
			Identifier:      lexer.Star,
			MappedOperation: optree.Multiplication,
			Shape:           Binary,
			Association:     Left,
			Precedence:      7,
		},
		{
			Identifier:      lexer.Exclamation,
			MappedOperation: optree.LogicalNot,
			Shape:           Unary,
			Association:     Right,
			Precedence:      10,
		},
		{
			Identifier:      lexer.DoublePlus,
			MappedOperation: optree.PrefixIncrement,
			Shape:           Unary,
			Association:     Right,
			Precedence:      11,
		},
		{
			Identifier:      lexer.DoublePlus,
			MappedOperation: optree.PostfixIncrement,
			Shape:           Unary,
			Association:     Left,
			Precedence:      11,
		},
		{
			Identifier:      lexer.BracketLeft,
			HasSecondary:    true,
			Secondary:       lexer.BracketRight,
			MappedOperation: optree.Index,
			Shape:           BinaryEnclose,
			Association:     Left,
			Precedence:      12,
		},
		{
			Identifier:      lexer.ParenthesisLeft,
			HasSecondary:    true,
			Secondary:       lexer.ParanthesisRight,
			MappedOperation: optree.Call,
			Shape:           BinaryEnclose,
			Association:     Left,
			Precedence:      13,
		},
		{
			Identifier:      lexer.Period,
			MappedOperation: optree.DotIndex,
			Shape:           Binary,
			Association:     Left,
			Precedence:      14,
		},
	}
}

// descriptorsFor returns every descriptor in the registry whose
// Identifier matches sym.
func (r Registry) descriptorsFor(sym lexer.Symbol) []Descriptor {
	var out []Descriptor
	for _, d := range r {
		if d.Identifier == sym {
			out = append(out, d)
		}
	}
	return out
}
