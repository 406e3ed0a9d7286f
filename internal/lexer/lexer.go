package lexer

import (
	"strconv"
	"strings"

	"github.com/rebar-lang/rebar/internal/rebarerr"
	"github.com/rebar-lang/rebar/internal/stringintern"
)

// Lexer converts source bytes into a token stream, using a string
// engine for interning identifiers and string contents plus a
// configurable symbol table and escape table.
type Lexer struct {
	engine       *stringintern.Engine
	symbols      SymbolTable
	escapes      EscapeTable
	maxSymbolLen int
}

// New constructs a Lexer. Supplying nil for symbols or escapes falls
// back to the package defaults.
func New(engine *stringintern.Engine, symbols SymbolTable, escapes EscapeTable) *Lexer {
	if symbols == nil {
		symbols = DefaultSymbolTable()
	}
	if escapes == nil {
		escapes = DefaultEscapeTable()
	}
	return &Lexer{
		engine:       engine,
		symbols:      symbols,
		escapes:      escapes,
		maxSymbolLen: symbols.MaxLength(),
	}
}

// PerformAnalysis scans the lexical unit's source text, pushing
// tokens with their starting byte offsets. Returns the first error
// encountered, if any; on error the unit may hold a partial token
// stream and must be discarded by the caller.
func (l *Lexer) PerformAnalysis(unit *LexicalUnit) error {
	src := unit.Plaintext()
	i := 0
	n := len(src)

	for i < n {
		c := src[i]

		// 1. Whitespace.
		if isWhitespace(c) {
			i++
			continue
		}

		// 2. String literal.
		if c == '"' {
			begin := i
			j := i + 1
			hasEscape := false
			for j < n && src[j] != '"' {
				if src[j] == '\\' {
					hasEscape = true
					j++
					if j < n {
						j++
					}
					continue
				}
				j++
			}
			if j >= n {
				return rebarerr.New(rebarerr.UnterminatedString, begin, "string literal not closed before end of input")
			}
			raw := src[begin+1 : j]
			var final []byte
			if hasEscape {
				processed, err := l.ProcessString(raw)
				if err != nil {
					// ProcessString reports offsets within raw; shift
					// them to source offsets.
					if ae, ok := err.(*rebarerr.AnalysisError); ok && ae.Offset >= 0 {
						ae.Offset += begin + 1
					}
					return err
				}
				final = processed
			} else {
				final = raw
			}
			handle := l.engine.Str(string(final))
			unit.PushToken(NewStringToken(handle), begin)
			i = j + 1
			continue
		}

		// 3. Numeric literal.
		if isDigit(c) {
			begin := i
			j := i + 1
			floatingPoint := false
			for j < n {
				b := src[j]
				if b == '.' {
					floatingPoint = true
					j++
					continue
				}
				if b == '\'' {
					j++
					continue
				}
				if !isDigit(b) {
					break
				}
				j++
			}
			raw := string(src[begin:j])
			if floatingPoint {
				v, err := ParseNumber(raw, true)
				if err != nil {
					return rebarerr.New(rebarerr.MalformedNumericLiteral, begin, err.Error())
				}
				unit.PushToken(NewNumberToken(v), begin)
			} else {
				v, err := ParseInteger(raw, true)
				if err != nil {
					return rebarerr.New(rebarerr.MalformedNumericLiteral, begin, err.Error())
				}
				unit.PushToken(NewIntegerToken(v), begin)
			}
			i = j
			continue
		}

		// 4. Longest-match symbol.
		if entry, length, ok := l.longestSymbolMatch(src, i); ok {
			followingByte := byte(0)
			if i+length < n {
				followingByte = src[i+length]
			}
			interruptsIdentifier := entry.IdentifierSafe && isIdentifierContinuation(followingByte)
			if !interruptsIdentifier {
				unit.PushToken(NewSymbolToken(entry.Symbol), i)
				i += length
				continue
			}
		}

		// 5. Identifier.
		if isIdentifierStart(c) {
			begin := i
			j := i + 1
			for j < n && isIdentifierContinuation(src[j]) {
				j++
			}
			handle := l.engine.Str(string(src[begin:j]))
			unit.PushToken(NewIdentifierToken(handle), begin)
			i = j
			continue
		}

		// 6. Tolerant advance: unrecognized byte, skip it.
		i++
	}

	return nil
}

// longestSymbolMatch probes the symbol table for the longest lexeme
// starting at src[i], returning its entry and byte length.
func (l *Lexer) longestSymbolMatch(src []byte, i int) (SymbolEntry, int, bool) {
	var (
		best       SymbolEntry
		bestLength int
		found      bool
	)
	n := len(src)
	max := l.maxSymbolLen
	if remaining := n - i; remaining < max {
		max = remaining
	}
	for length := 1; length <= max; length++ {
		candidate := string(src[i : i+length])
		if entry, ok := l.symbols[candidate]; ok {
			best = entry
			bestLength = length
			found = true
		}
	}
	return best, bestLength, found
}

// ProcessString walks a raw string literal's bytes (excluding the
// surrounding quotes), copying spans between escapes verbatim and
// invoking the escape table's handler for each `\X` lead byte,
// appending its replacement and advancing past the handler's consumed
// byte count plus one for the backslash itself.
func (l *Lexer) ProcessString(raw []byte) ([]byte, error) {
	var out []byte
	partBegin := 0
	i := 0
	n := len(raw)
	for i < n {
		if raw[i] == '\\' {
			out = append(out, raw[partBegin:i]...)
			i++
			if i >= n {
				return nil, rebarerr.New(rebarerr.InvalidEscape, i, "escape sequence truncated at end of string")
			}
			lead := raw[i]
			handler, ok := l.escapes[lead]
			if !ok {
				return nil, rebarerr.New(rebarerr.InvalidEscape, i, (&ErrInvalidEscape{Lead: lead}).Error())
			}
			replacement, consumed := handler(raw[i:])
			out = append(out, replacement...)
			i += consumed
			partBegin = i
			continue
		}
		i++
	}
	out = append(out, raw[partBegin:]...)
	return out, nil
}

// ParseInteger parses a captured numeric literal slice as a base-10
// i64. When hasSeparators is true, every `'` digit-separator byte is
// stripped before parsing. A leading `-` is accepted whether or not
// the scanner itself would ever produce one directly (the scanner
// always tokenizes a leading minus as its own symbol; this leniency
// exists for callers that parse a numeric literal in isolation).
func ParseInteger(s string, hasSeparators bool) (int64, error) {
	if hasSeparators {
		s = stripSeparators(s)
	}
	if s == "" {
		return 0, rebarerr.New(rebarerr.MalformedNumericLiteral, -1, "empty integer literal")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, rebarerr.New(rebarerr.MalformedNumericLiteral, -1, "cannot parse integer literal: "+s)
	}
	return v, nil
}

// ParseNumber parses a captured numeric literal slice as a float64,
// with the same separator-stripping and leading-minus leniency as
// ParseInteger.
func ParseNumber(s string, hasSeparators bool) (float64, error) {
	if hasSeparators {
		s = stripSeparators(s)
	}
	if s == "" {
		return 0, rebarerr.New(rebarerr.MalformedNumericLiteral, -1, "empty numeric literal")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, rebarerr.New(rebarerr.MalformedNumericLiteral, -1, "cannot parse numeric literal: "+s)
	}
	return v, nil
}

// stripSeparators removes every `'` digit-separator byte from s.
func stripSeparators(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
