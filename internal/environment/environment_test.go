package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebar-lang/rebar/internal/lexer"
)

// parseScope runs full source through a fresh Environment and returns
// the root scope tree's compact printed form.
func parseScope(t *testing.T, source string) string {
	t.Helper()
	env := New()
	tree, _, err := env.Parse([]byte(source))
	require.NoError(t, err)
	return tree.String()
}

func TestSeedScenario_SimpleAddition(t *testing.T) {
	got := parseScope(t, "3 + 4")
	assert.Equal(t, "scope { addition { INTEGER (3), INTEGER (4), }, }", got)
}

func TestSeedScenario_ChainedAdditionIsLeftAssociative(t *testing.T) {
	got := parseScope(t, "3 + 4 + 5 + 6")
	want := "scope { addition { addition { addition { INTEGER (3), INTEGER (4), }, INTEGER (5), }, INTEGER (6), }, }"
	assert.Equal(t, want, got)
}

func TestSeedScenario_PostfixIncrement(t *testing.T) {
	got := parseScope(t, "some_identifier++")
	assert.Equal(t, "scope { postfix_increment { IDENTIFIER (some_identifier), }, }", got)
}

func TestSeedScenario_NestedPrefixIncrement(t *testing.T) {
	got := parseScope(t, "++++some_identifier")
	want := "scope { prefix_increment { prefix_increment { IDENTIFIER (some_identifier), }, }, }"
	assert.Equal(t, want, got)
}

func TestSeedScenario_ChainedIndexAndGrouping(t *testing.T) {
	got := parseScope(t, "(some_identifier[2 + 3] + 3)[(3+5)][12]")
	want := "scope { index { index { addition { index { IDENTIFIER (some_identifier), addition { INTEGER (2), INTEGER (3), }, }, INTEGER (3), }, addition { INTEGER (3), INTEGER (5), }, }, INTEGER (12), }, }"
	assert.Equal(t, want, got)
}

func TestSeedScenario_CallWithSequenceArguments(t *testing.T) {
	got := parseScope(t, "some_identifier(23, 40 + 4, 10)")
	want := "scope { call { IDENTIFIER (some_identifier), sequence { INTEGER (23), addition { INTEGER (40), INTEGER (4), }, INTEGER (10), }, }, }"
	assert.Equal(t, want, got)
}

func TestSeedScenario_ChainedAssignmentWithDotIndexCall(t *testing.T) {
	got := parseScope(t, "here = somewhere = (some_identifier.id)((23), (40 + 4), (10))")
	want := "scope { assignment { IDENTIFIER (here), assignment { IDENTIFIER (somewhere), call { dot_index { IDENTIFIER (some_identifier), IDENTIFIER (id), }, sequence { INTEGER (23), addition { INTEGER (40), INTEGER (4), }, INTEGER (10), }, }, }, }, }"
	assert.Equal(t, want, got)
}

func TestInvariant_OuterParenStrippingIsIdempotent(t *testing.T) {
	bare := parseScope(t, "3 + 4")
	assert.Equal(t, bare, parseScope(t, "(3 + 4)"))
	assert.Equal(t, bare, parseScope(t, "((3 + 4))"))
}

func TestInvariant_StatementCover(t *testing.T) {
	got := parseScope(t, "1; 2; 3;")
	assert.Equal(t, "scope { INTEGER (1), INTEGER (2), INTEGER (3), }", got)
}

func TestBoundary_EmptyStringLiteral(t *testing.T) {
	env := New()
	unit := lexer.NewLexicalUnit([]byte(`""`))
	require.NoError(t, env.PerformLexicalAnalysis(unit))
	require.Equal(t, 1, unit.Len())
	tok := unit.Tokens()[0]
	assert.True(t, tok.IsString())
	assert.Equal(t, "", tok.Handle().Text())
}

func TestBoundary_TrailingBackslashIsUnterminated(t *testing.T) {
	env := New()
	_, _, err := env.Parse([]byte(`"abc\`))
	require.Error(t, err)
}

func TestBoundary_MissingFinalSemicolonTolerated(t *testing.T) {
	got := parseScope(t, "1; 2")
	assert.Equal(t, "scope { INTEGER (1), INTEGER (2), }", got)
}

func TestBoundary_NestedPostfixIncrement(t *testing.T) {
	got := parseScope(t, "x++++")
	want := "scope { postfix_increment { postfix_increment { IDENTIFIER (x), }, }, }"
	assert.Equal(t, want, got)
}

func TestBoundary_IdentifierSafeSymbolsDoNotSplitIdentifiers(t *testing.T) {
	env := New()
	unit := lexer.NewLexicalUnit([]byte("truehello+worldtrueworldfalseworld+=worldfalse"))
	require.NoError(t, env.PerformLexicalAnalysis(unit))
	toks := unit.Tokens()
	require.Equal(t, 5, len(toks))
	assert.True(t, toks[0].IsIdentifier())
	assert.Equal(t, "truehello", toks[0].Handle().Text())
	assert.True(t, toks[1].Is(lexer.Plus))
	assert.True(t, toks[2].IsIdentifier())
	assert.Equal(t, "worldtrueworldfalseworld", toks[2].Handle().Text())
	assert.True(t, toks[3].Is(lexer.PlusEquals))
	assert.True(t, toks[4].IsIdentifier())
	assert.Equal(t, "worldfalse", toks[4].Handle().Text())
}

func TestParseIntegerAndNumberWithSeparators(t *testing.T) {
	v, err := lexer.ParseInteger(`100'000'000`, true)
	require.NoError(t, err)
	assert.Equal(t, int64(100000000), v)

	f, err := lexer.ParseNumber(`.123'''45''6`, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.123456, f, 1e-9)
}

func TestBoundary_InvalidEscapeIsReported(t *testing.T) {
	env := New()
	_, _, err := env.Parse([]byte(`"bad \q escape"`))
	require.Error(t, err)
}

func TestBoundary_UnbalancedBracketsFail(t *testing.T) {
	env := New()
	_, _, err := env.Parse([]byte("f(1, 2"))
	require.Error(t, err)
}

func TestBoundary_OrphanParenIsParseError(t *testing.T) {
	env := New()
	_, _, err := env.Parse([]byte(") 3 + 4"))
	require.Error(t, err)
}

func TestBoundary_ZeroArgumentCallYieldsNullOperand(t *testing.T) {
	got := parseScope(t, "some_identifier()")
	assert.Equal(t, "scope { call { IDENTIFIER (some_identifier), NULL, }, }", got)
}
