package parser

import "github.com/rebar-lang/rebar/internal/optree"

// SemanticUnit owns the root operation tree produced by semantic
// analysis, parallel to how a LexicalUnit owns the token stream
// produced by lexical analysis. It is constructed empty and filled by
// Parser.PerformAnalysis.
type SemanticUnit struct {
	baseScope *optree.Tree
}

// NewSemanticUnit constructs an empty unit awaiting analysis.
func NewSemanticUnit() *SemanticUnit {
	return &SemanticUnit{}
}

// BaseScope returns the root `scope` tree, or nil before a successful
// analysis has been applied.
func (u *SemanticUnit) BaseScope() *optree.Tree {
	return u.baseScope
}

// applyBaseScope installs the root tree produced by a completed
// analysis pass.
func (u *SemanticUnit) applyBaseScope(t *optree.Tree) {
	u.baseScope = t
}
