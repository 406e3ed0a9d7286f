package parser

import "github.com/rebar-lang/rebar/internal/lexer"

// isOpener reports whether sym is one of the four bracket-opening
// symbols that raise the nesting level.
func isOpener(sym lexer.Symbol) bool {
	switch sym {
	case lexer.BraceLeft, lexer.BracketLeft, lexer.ParenthesisLeft, lexer.CarrotLeft:
		return true
	default:
		return false
	}
}

// isCloser reports whether sym is one of the four bracket-closing
// symbols that lower the nesting level.
func isCloser(sym lexer.Symbol) bool {
	switch sym {
	case lexer.BraceRight, lexer.BracketRight, lexer.ParanthesisRight, lexer.CarrotRight:
		return true
	default:
		return false
	}
}

// findAtLevelZero scans tokens[from:end] left to right tracking a
// single aggregate nesting level (rising on any opener, falling on
// any closer, regardless of bracket kind), and returns the index of
// the first occurrence of the symbol target sitting at level zero. A
// closing bracket's own decrement happens before it is checked
// against target, so the closer of an outermost pair is itself
// visible at level zero — this is the one subtle invariant of the
// whole scan. Returns -1 if target never occurs at level zero before
// end.
func findAtLevelZero(tokens []lexer.Token, from, end int, target lexer.Symbol) int {
	level := 0
	for i := from; i < end; i++ {
		tok := tokens[i]
		if !tok.IsSymbol() {
			continue
		}
		sym := tok.Symbol()
		closing := isCloser(sym)
		if closing {
			level--
		}
		if level == 0 && sym == target {
			return i
		}
		if !closing && isOpener(sym) {
			level++
		}
	}
	return -1
}

// findAllAtLevelZero is findAtLevelZero's counterpart for variadic
// splitting: it returns every index in tokens[from:end] where target
// sits at bracket level zero, in ascending order.
func findAllAtLevelZero(tokens []lexer.Token, from, end int, target lexer.Symbol) []int {
	var out []int
	level := 0
	for i := from; i < end; i++ {
		tok := tokens[i]
		if !tok.IsSymbol() {
			continue
		}
		sym := tok.Symbol()
		closing := isCloser(sym)
		if closing {
			level--
		}
		if level == 0 && sym == target {
			out = append(out, i)
		}
		if !closing && isOpener(sym) {
			level++
		}
	}
	return out
}
