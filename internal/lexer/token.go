package lexer

import (
	"fmt"

	"github.com/rebar-lang/rebar/internal/stringintern"
)

// TokenKind tags the payload a Token carries.
type TokenKind int

const (
	TokenNull TokenKind = iota
	TokenIdentifier
	TokenInteger
	TokenNumber
	TokenString
	TokenSymbol
)

// Token is an immutable tagged-union lexical unit. Exactly one of its
// payload fields is meaningful, selected by Kind.
type Token struct {
	Kind    TokenKind
	handle  stringintern.Handle
	integer int64
	number  float64
	symbol  Symbol
}

// NewNullToken constructs the sentinel null token.
func NewNullToken() Token {
	return Token{Kind: TokenNull}
}

// NewIdentifierToken constructs an identifier token from an interned
// handle.
func NewIdentifierToken(h stringintern.Handle) Token {
	return Token{Kind: TokenIdentifier, handle: h}
}

// NewStringToken constructs a string-literal token from an interned
// handle holding the (already escape-processed) contents.
func NewStringToken(h stringintern.Handle) Token {
	return Token{Kind: TokenString, handle: h}
}

// NewIntegerToken constructs an integer-literal token. Any integer
// width widens to int64 at the call site.
func NewIntegerToken(v int64) Token {
	return Token{Kind: TokenInteger, integer: v}
}

// NewNumberToken constructs a floating-point literal token. Any
// floating width widens to float64 at the call site.
func NewNumberToken(v float64) Token {
	return Token{Kind: TokenNumber, number: v}
}

// NewSymbolToken constructs a symbol token.
func NewSymbolToken(s Symbol) Token {
	return Token{Kind: TokenSymbol, symbol: s}
}

// IsIdentifier reports whether the token carries an identifier.
func (t Token) IsIdentifier() bool { return t.Kind == TokenIdentifier }

// IsString reports whether the token carries a string literal.
func (t Token) IsString() bool { return t.Kind == TokenString }

// IsSymbol reports whether the token carries a symbol.
func (t Token) IsSymbol() bool { return t.Kind == TokenSymbol }

// IsInteger reports whether the token carries an integer literal.
func (t Token) IsInteger() bool { return t.Kind == TokenInteger }

// IsNumber reports whether the token carries a floating literal.
func (t Token) IsNumber() bool { return t.Kind == TokenNumber }

// Handle returns the interned-string handle of an identifier or
// string token. Calling it on any other kind is a programmer error.
func (t Token) Handle() stringintern.Handle { return t.handle }

// Integer returns the payload of an integer token.
func (t Token) Integer() int64 { return t.integer }

// Number returns the payload of a number token.
func (t Token) Number() float64 { return t.number }

// Symbol returns the payload of a symbol token.
func (t Token) Symbol() Symbol { return t.symbol }

// Is reports whether the token is a symbol token matching sym.
func (t Token) Is(sym Symbol) bool {
	return t.Kind == TokenSymbol && t.symbol == sym
}

// Equal compares tags first; numeric and symbol tokens compare
// payloads directly, identifier and string tokens compare handle
// identity (which, by the interning invariant, is content equality).
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TokenNull:
		return true
	case TokenIdentifier, TokenString:
		return t.handle.Equal(other.handle)
	case TokenInteger:
		return t.integer == other.integer
	case TokenNumber:
		return t.number == other.number
	case TokenSymbol:
		return t.symbol == other.symbol
	default:
		return false
	}
}

// String renders the token's fixed external textual form: `NULL`,
// `IDENTIFIER (<text>)`, `INTEGER (<n>)`, `NUMBER (<f>)`,
// `STRING ("<text>")`, or `SYMBOL (<name>)`. This is part of the
// external test contract and must match verbatim.
func (t Token) String() string {
	switch t.Kind {
	case TokenNull:
		return "NULL"
	case TokenIdentifier:
		return fmt.Sprintf("IDENTIFIER (%s)", t.handle.Text())
	case TokenInteger:
		return fmt.Sprintf("INTEGER (%d)", t.integer)
	case TokenNumber:
		return fmt.Sprintf("NUMBER (%s)", formatNumber(t.number))
	case TokenString:
		return fmt.Sprintf("STRING (\"%s\")", t.handle.Text())
	case TokenSymbol:
		return fmt.Sprintf("SYMBOL (%s)", t.symbol)
	default:
		return "NULL"
	}
}

// formatNumber renders a float64 with %g: the shortest round-trip
// digits with no trailing zeros, as plain decimals such as 3.14 or
// 0.123456 for moderate magnitudes, and in exponent form (1e+06,
// 1e-05) once the exponent is below -4 or at least 6.
func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
