package lexer

// LexicalUnit owns the source text as bytes and the ordered token
// stream produced from it, along with each token's starting byte
// offset. Tokens are append-only: never reordered or removed.
type LexicalUnit struct {
	plaintext      []byte
	tokens         []Token
	tokenPositions []int
}

// NewLexicalUnit wraps source for lexical analysis.
func NewLexicalUnit(source []byte) *LexicalUnit {
	return &LexicalUnit{plaintext: source}
}

// Plaintext returns the owned source bytes.
func (u *LexicalUnit) Plaintext() []byte {
	return u.plaintext
}

// PushToken appends a token and its starting byte offset.
func (u *LexicalUnit) PushToken(t Token, offset int) {
	u.tokens = append(u.tokens, t)
	u.tokenPositions = append(u.tokenPositions, offset)
}

// Tokens returns the accumulated token stream in source order.
func (u *LexicalUnit) Tokens() []Token {
	return u.tokens
}

// TokenPositions returns the byte offset of each token, parallel to
// Tokens.
func (u *LexicalUnit) TokenPositions() []int {
	return u.tokenPositions
}

// Len reports how many tokens have been pushed.
func (u *LexicalUnit) Len() int {
	return len(u.tokens)
}
