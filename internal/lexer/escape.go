package lexer

import "fmt"

// EscapeHandler produces the replacement bytes for one escape
// sequence. It receives the bytes starting at the lead character
// (everything after the backslash) and reports how many of them it
// consumed, the lead byte included. Simple escapes consume 1; the
// shape supports future multi-byte forms such as `\uXXXX`.
type EscapeHandler func(trailing []byte) (replacement []byte, consumed int)

// EscapeTable maps the byte immediately following a backslash to the
// handler that resolves it.
type EscapeTable map[byte]EscapeHandler

// simpleReplacement builds a handler for escapes that always replace
// with the same single byte and consume only the lead byte itself.
func simpleReplacement(b byte) EscapeHandler {
	return func(trailing []byte) (replacement []byte, consumed int) {
		return []byte{b}, 1
	}
}

// DefaultEscapeTable returns the built-in escape handlers: `\"`, `\\`,
// `\n`, and `\t`.
func DefaultEscapeTable() EscapeTable {
	return EscapeTable{
		'"':  simpleReplacement('"'),
		'\\': simpleReplacement('\\'),
		'n':  simpleReplacement('\n'),
		't':  simpleReplacement('\t'),
	}
}

// ErrInvalidEscape reports an unrecognized escape lead byte.
type ErrInvalidEscape struct {
	Lead byte
}

func (e *ErrInvalidEscape) Error() string {
	return fmt.Sprintf("invalid escape sequence: \\%c", e.Lead)
}
