// Package parser implements Rebar's semantic analyzer: a Pratt-style
// recursive-descent parser that converts a token span into an
// operation tree, driven entirely by a data-defined operator
// registry.
package parser

import (
	"github.com/rebar-lang/rebar/internal/lexer"
	"github.com/rebar-lang/rebar/internal/optree"
	"github.com/rebar-lang/rebar/internal/rebardebug"
	"github.com/rebar-lang/rebar/internal/rebarerr"
)

// Parser performs semantic analysis over a token span using a
// supplied operator registry. It holds no per-parse mutable state, so
// one Parser may analyze many token spans.
type Parser struct {
	registry Registry
}

// New constructs a Parser. A nil registry falls back to
// DefaultRegistry.
func New(registry Registry) *Parser {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Parser{registry: registry}
}

// PerformAnalysis splits the lexical unit's token stream into
// top-level statements, parses each into an expression tree, and
// installs the resulting root `scope` tree as su's base scope. This is
// ParseBlockScope applied to the unit's entire token span. On error su
// is left untouched and no partial tree is produced.
func (p *Parser) PerformAnalysis(su *SemanticUnit, unit *lexer.LexicalUnit) error {
	tokens := unit.Tokens()
	if err := checkBracketsBalanced(tokens, 0, len(tokens)); err != nil {
		return err
	}
	scope, err := p.ParseBlockScope(tokens, 0, len(tokens))
	if err != nil {
		return err
	}
	su.applyBaseScope(scope)
	return nil
}

// checkBracketsBalanced verifies the aggregate nesting level returns
// to exactly zero across the whole span, raising an unbalanced-
// brackets error otherwise.
func checkBracketsBalanced(tokens []lexer.Token, begin, end int) error {
	level := 0
	for i := begin; i < end; i++ {
		tok := tokens[i]
		if !tok.IsSymbol() {
			continue
		}
		sym := tok.Symbol()
		if isCloser(sym) {
			level--
			if level < 0 {
				return rebarerr.New(rebarerr.UnbalancedBrackets, i, "unmatched closing bracket")
			}
		} else if isOpener(sym) {
			level++
		}
	}
	if level != 0 {
		return rebarerr.New(rebarerr.UnbalancedBrackets, -1, "unmatched opening bracket")
	}
	return nil
}

// ParseBlockScope walks tokens[begin:end], repeatedly finding the
// next top-level `;`, parsing the span before it as one expression,
// and appending the result as an operand of a root `scope` tree. A
// final statement without a trailing `;` is accepted; a trailing `;`
// with nothing following it contributes no extra operand.
func (p *Parser) ParseBlockScope(tokens []lexer.Token, begin, end int) (*optree.Tree, error) {
	scope := optree.New(optree.Scope)

	segStart := begin
	for {
		semi := findAtLevelZero(tokens, segStart, end, lexer.Semicolon)
		if semi < 0 {
			break
		}
		if semi > segStart {
			result, err := p.parseExpression(tokens, segStart, semi)
			if err != nil {
				return nil, err
			}
			result.appendTo(scope)
		}
		segStart = semi + 1
	}

	if segStart < end {
		result, err := p.parseExpression(tokens, segStart, end)
		if err != nil {
			return nil, err
		}
		result.appendTo(scope)
	}

	return scope, nil
}

// exprResult is either a leaf token or a subtree — the two shapes an
// operand slot or a parsed expression can take.
type exprResult struct {
	isTree bool
	token  lexer.Token
	tree   *optree.Tree
}

func exprToken(t lexer.Token) exprResult { return exprResult{token: t} }
func exprTree(t *optree.Tree) exprResult { return exprResult{isTree: true, tree: t} }

// applyTo places the result into operand slot i of dst.
func (r exprResult) applyTo(dst *optree.Tree, i int) {
	if r.isTree {
		dst.SetTreeOperand(i, r.tree)
	} else {
		dst.SetOperand(i, r.token)
	}
}

// appendTo appends the result as the next operand of dst.
func (r exprResult) appendTo(dst *optree.Tree) {
	if r.isTree {
		dst.PushTreeOperand(r.tree)
	} else {
		dst.PushOperand(r.token)
	}
}

// parseExpression is the core of semantic analysis: strip redundant
// outer parens, shortcut a singleton token, pick a pivot operator, and
// build a tree shaped by that operator's arity.
func (p *Parser) parseExpression(tokens []lexer.Token, begin, end int) (exprResult, error) {
	for end-begin >= 2 && tokens[begin].Is(lexer.ParenthesisLeft) {
		close := findAtLevelZero(tokens, begin, end, lexer.ParanthesisRight)
		if close != end-1 {
			break
		}
		begin++
		end--
	}

	if begin >= end {
		return exprResult{}, rebarerr.New(rebarerr.EmptyExpressionSpan, -1, "expected an expression but found none")
	}

	if end-begin == 1 {
		return exprToken(tokens[begin]), nil
	}

	pivot, err := p.selectPivot(tokens, begin, end)
	if err != nil {
		return exprResult{}, err
	}
	if pivot.index < 0 {
		return exprResult{}, rebarerr.New(rebarerr.EmptyExpressionSpan, -1, "no operator found to split a multi-token expression")
	}

	if rebardebug.PivotSelectionMessagesEnabled() {
		rebardebug.Log("pivot selected", rebardebug.Fields{
			"operation": pivot.desc.MappedOperation.String(),
			"index":     pivot.index,
			"begin":     begin,
			"end":       end,
		})
	}

	tree := optree.New(pivot.desc.MappedOperation)

	switch pivot.desc.Shape {
	case Unary:
		if pivot.desc.Association == Right {
			operand, err := p.parseExpression(tokens, pivot.index+1, end)
			if err != nil {
				return exprResult{}, err
			}
			operand.applyTo(tree, 0)
		} else {
			operand, err := p.parseExpression(tokens, begin, pivot.index)
			if err != nil {
				return exprResult{}, err
			}
			operand.applyTo(tree, 0)
		}

	case Binary:
		left, err := p.parseExpression(tokens, begin, pivot.index)
		if err != nil {
			return exprResult{}, err
		}
		right, err := p.parseExpression(tokens, pivot.index+1, end)
		if err != nil {
			return exprResult{}, err
		}
		left.applyTo(tree, 0)
		right.applyTo(tree, 1)

	case BinaryEnclose:
		left, err := p.parseExpression(tokens, begin, pivot.index)
		if err != nil {
			return exprResult{}, err
		}
		left.applyTo(tree, 0)

		if pivot.index+1 == pivot.secondary {
			tree.SetOperand(1, lexer.NewNullToken())
		} else {
			inner, err := p.parseExpression(tokens, pivot.index+1, pivot.secondary)
			if err != nil {
				return exprResult{}, err
			}
			inner.applyTo(tree, 1)
		}

	case Trinary:
		a, err := p.parseExpression(tokens, begin, pivot.index)
		if err != nil {
			return exprResult{}, err
		}
		b, err := p.parseExpression(tokens, pivot.index+1, pivot.secondary)
		if err != nil {
			return exprResult{}, err
		}
		c, err := p.parseExpression(tokens, pivot.secondary+1, end)
		if err != nil {
			return exprResult{}, err
		}
		a.applyTo(tree, 0)
		b.applyTo(tree, 1)
		c.applyTo(tree, 2)

	case Variadic:
		segStart := begin
		for _, i := range findAllAtLevelZero(tokens, begin, end, pivot.desc.Identifier) {
			segment, err := p.parseExpression(tokens, segStart, i)
			if err != nil {
				return exprResult{}, err
			}
			segment.appendTo(tree)
			segStart = i + 1
		}
		last, err := p.parseExpression(tokens, segStart, end)
		if err != nil {
			return exprResult{}, err
		}
		last.appendTo(tree)
	}

	return exprTree(tree), nil
}

// pivotChoice records a selected (or candidate) pivot operator: its
// token index, the descriptor chosen, and — for binary_enclose and
// trinary shapes — the index of its secondary symbol.
type pivotChoice struct {
	index     int
	desc      Descriptor
	secondary int
}

// selectPivot scans symbol tokens at bracket level zero, skipping
// indices already claimed as someone else's secondary symbol, and
// chooses the operator that should become the root of this span.
func (p *Parser) selectPivot(tokens []lexer.Token, begin, end int) (pivotChoice, error) {
	best := pivotChoice{index: -1}
	haveBest := false
	skip := make(map[int]bool)
	level := 0

	for i := begin; i < end; i++ {
		tok := tokens[i]
		if !tok.IsSymbol() {
			continue
		}
		sym := tok.Symbol()
		closing := isCloser(sym)
		if closing {
			level--
		}
		atLevelZero := level == 0
		if !closing && isOpener(sym) {
			level++
		}
		if !atLevelZero || skip[i] {
			continue
		}

		for _, d := range p.registry.descriptorsFor(sym) {
			atStart := i == begin
			atEnd := i == end-1

			if atStart && (d.Shape == Trinary || d.Shape == BinaryEnclose) && d.Association == Right {
				sec, err := p.locateSecondary(tokens, i, end, d)
				if err != nil {
					return pivotChoice{}, err
				}
				cand := pivotChoice{index: i, desc: d, secondary: sec}
				if preferCandidate(cand, best, haveBest) {
					best, haveBest = cand, true
				}
				skip[sec] = true
				continue
			}

			if atStart && d.Shape == Unary && d.Association == Right {
				return pivotChoice{index: i, desc: d, secondary: -1}, nil
			}

			if atEnd && d.Shape == Unary && d.Association == Left {
				return pivotChoice{index: i, desc: d, secondary: -1}, nil
			}

			sec := -1
			if d.Shape == BinaryEnclose || d.Shape == Trinary {
				var err error
				sec, err = p.locateSecondary(tokens, i, end, d)
				if err != nil {
					return pivotChoice{}, err
				}
				skip[sec] = true
			}
			cand := pivotChoice{index: i, desc: d, secondary: sec}
			if preferCandidate(cand, best, haveBest) {
				best, haveBest = cand, true
			}
		}
	}

	return best, nil
}

// locateSecondary finds the descriptor's secondary symbol following
// index i, scanning forward to end while tracking bracket nesting so
// a secondary nested inside an unrelated bracket pair is not matched
// prematurely. The scan starts at i itself so that when the pivot is
// an opening bracket its own increment is counted, making the
// matching closer visible at level zero.
func (p *Parser) locateSecondary(tokens []lexer.Token, i, end int, d Descriptor) (int, error) {
	sec := findAtLevelZero(tokens, i, end, d.Secondary)
	if sec < 0 {
		return -1, rebarerr.New(rebarerr.UnbalancedBrackets, -1, "no matching "+d.Secondary.String()+" for "+d.Identifier.String())
	}
	return sec, nil
}

// preferCandidate reports whether cand should replace best: a lower
// precedence number always wins (it binds less tightly, so it is the
// better split point); on a tie, left-associative operators prefer
// the later (rightmost) occurrence and right-associative operators
// keep the earlier (leftmost) one already recorded.
func preferCandidate(cand, best pivotChoice, haveBest bool) bool {
	if !haveBest {
		return true
	}
	if cand.desc.Precedence != best.desc.Precedence {
		return cand.desc.Precedence < best.desc.Precedence
	}
	return cand.desc.Association == Left
}
