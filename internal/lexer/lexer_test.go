package lexer

import (
	"strings"
	"testing"

	"github.com/rebar-lang/rebar/internal/stringintern"
)

// scanSource runs a fresh lexer over source and returns the resulting
// token stream, or the error the scan failed with.
func scanSource(source string) ([]Token, error) {
	engine := stringintern.NewEngine()
	l := New(engine, nil, nil)
	unit := NewLexicalUnit([]byte(source))
	err := l.PerformAnalysis(unit)
	return unit.Tokens(), err
}

func checkTokenStrings(t *testing.T, tokens []Token, expected []string) {
	t.Helper()
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.String() != expected[i] {
			t.Errorf("token %d: expected %s, got %s", i, expected[i], tok.String())
		}
	}
}

func TestLexer_StringLiteralBetweenIdentifiers(t *testing.T) {
	tokens, err := scanSource(`hello"Hello, world!"goodbye`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{
		"IDENTIFIER (hello)",
		`STRING ("Hello, world!")`,
		"IDENTIFIER (goodbye)",
	})
}

func TestLexer_IdentifierSafeSymbolsDoNotSplitIdentifiers(t *testing.T) {
	tokens, err := scanSource("truehello+worldtrueworldfalseworld+=worldfalse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{
		"IDENTIFIER (truehello)",
		"SYMBOL (plus)",
		"IDENTIFIER (worldtrueworldfalseworld)",
		"SYMBOL (plus_equals)",
		"IDENTIFIER (worldfalse)",
	})
}

func TestLexer_BareKeywordsAreStillSymbols(t *testing.T) {
	tokens, err := scanSource("true false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{
		"SYMBOL (boolean_true)",
		"SYMBOL (boolean_false)",
	})
}

func TestLexer_IntegerAndNumberLiterals(t *testing.T) {
	tokens, err := scanSource("100 3.14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{
		"INTEGER (100)",
		"NUMBER (3.14)",
	})
}

func TestLexer_DigitSeparatorsAreStrippedFromIntegerLiterals(t *testing.T) {
	tokens, err := scanSource("100'000'000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{"INTEGER (100000000)"})
}

func TestLexer_DigitSeparatorsAreStrippedFromNumberLiterals(t *testing.T) {
	tokens, err := scanSource("0.123'''45''6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{"NUMBER (0.123456)"})
}

func TestLexer_LeadingDotIsASymbolNotANumber(t *testing.T) {
	// The numeric rule only fires on a digit; a bare leading `.` is
	// the period symbol, and the digits after it form an integer.
	tokens, err := scanSource(".5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{
		"SYMBOL (period)",
		"INTEGER (5)",
	})
}

func TestLexer_EmptyStringLiteral(t *testing.T) {
	tokens, err := scanSource(`""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{`STRING ("")`})
}

func TestLexer_EscapeSequencesResolve(t *testing.T) {
	tokens, err := scanSource(`"a\tb\nc\"d\\e"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected a single token, got %d", len(tokens))
	}
	got := tokens[0].Handle().Text()
	want := "a\tb\nc\"d\\e"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLexer_UnterminatedStringIsAnError(t *testing.T) {
	_, err := scanSource(`"unterminated`)
	if err == nil {
		t.Fatalf("expected an error for an unterminated string literal")
	}
}

func TestLexer_InvalidEscapeIsAnError(t *testing.T) {
	_, err := scanSource(`"bad \q escape"`)
	if err == nil {
		t.Fatalf("expected an error for an unrecognized escape lead byte")
	}
}

func TestLexer_BracketAndPunctuationSymbols(t *testing.T) {
	tokens, err := scanSource("(){}[]<>,;:?.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{
		"SYMBOL (parenthesis_left)",
		"SYMBOL (paranthesis_right)",
		"SYMBOL (brace_left)",
		"SYMBOL (brace_right)",
		"SYMBOL (bracket_left)",
		"SYMBOL (bracket_right)",
		"SYMBOL (carrot_left)",
		"SYMBOL (carrot_right)",
		"SYMBOL (comma)",
		"SYMBOL (semicolon)",
		"SYMBOL (colon)",
		"SYMBOL (question)",
		"SYMBOL (period)",
	})
}

func TestLexer_CompoundOperatorsPreferLongestMatch(t *testing.T) {
	tokens, err := scanSource("+ += ++ == = ! !=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkTokenStrings(t, tokens, []string{
		"SYMBOL (plus)",
		"SYMBOL (plus_equals)",
		"SYMBOL (double_plus)",
		"SYMBOL (double_equal)",
		"SYMBOL (equals)",
		"SYMBOL (exclamation)",
		"SYMBOL (exclamation_equals)",
	})
}

func TestLexer_RoundTripReemittedTokens(t *testing.T) {
	// Re-emitting symbol and identifier tokens with single-space
	// separation must re-lex to an equal token sequence. Both passes
	// share one engine so identifier handles compare equal by
	// interning.
	engine := stringintern.NewEngine()
	l := New(engine, nil, nil)

	first := NewLexicalUnit([]byte("foo + bar != ( baz ) ++ qux"))
	if err := l.PerformAnalysis(first); err != nil {
		t.Fatalf("first pass failed: %v", err)
	}

	lexemes := make(map[Symbol]string)
	for text, entry := range DefaultSymbolTable() {
		lexemes[entry.Symbol] = text
	}
	var parts []string
	for _, tok := range first.Tokens() {
		switch {
		case tok.IsIdentifier():
			parts = append(parts, tok.Handle().Text())
		case tok.IsSymbol():
			parts = append(parts, lexemes[tok.Symbol()])
		}
	}

	second := NewLexicalUnit([]byte(strings.Join(parts, " ")))
	if err := l.PerformAnalysis(second); err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if first.Len() != second.Len() {
		t.Fatalf("token counts differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Tokens() {
		if !first.Tokens()[i].Equal(second.Tokens()[i]) {
			t.Errorf("token %d differs: %s vs %s", i, first.Tokens()[i], second.Tokens()[i])
		}
	}
}

func TestProcessString_TruncatedEscapeIsInvalid(t *testing.T) {
	engine := stringintern.NewEngine()
	l := New(engine, nil, nil)
	if _, err := l.ProcessString([]byte(`abc\`)); err == nil {
		t.Fatalf("expected an error for a backslash at end of input")
	}
}

func TestParseInteger_RejectsEmptyLiteral(t *testing.T) {
	if _, err := ParseInteger("", false); err == nil {
		t.Fatalf("expected an error parsing an empty integer literal")
	}
}

func TestParseInteger_SeparatorOnlyLiteralIsMalformed(t *testing.T) {
	if _, err := ParseInteger("'''", true); err == nil {
		t.Fatalf("expected an error for a literal consisting only of separators")
	}
}

func TestParseInteger_AcceptsLeadingMinus(t *testing.T) {
	v, err := ParseInteger("-42", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -42 {
		t.Errorf("got %d, want -42", v)
	}
}

func TestParseNumber_AcceptsLeadingMinus(t *testing.T) {
	v, err := ParseNumber("-3.5", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -3.5 {
		t.Errorf("got %v, want -3.5", v)
	}
}
