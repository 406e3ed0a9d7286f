// Package environment composes the string engine, lexical analyzer,
// and semantic analyzer behind one façade, the shape embedders are
// expected to hold.
package environment

import (
	"github.com/rebar-lang/rebar/internal/lexer"
	"github.com/rebar-lang/rebar/internal/optree"
	"github.com/rebar-lang/rebar/internal/parser"
	"github.com/rebar-lang/rebar/internal/stringintern"
)

// Environment aggregates one string engine with one lexer and one
// parser configuration. It is not safe for concurrent use — a fresh
// Environment per goroutine keeps every engine independent, per the
// single-threaded resource model.
type Environment struct {
	engine *stringintern.Engine
	lexer  *lexer.Lexer
	parser *parser.Parser
}

// Option configures a new Environment.
type Option func(*config)

type config struct {
	symbols  lexer.SymbolTable
	escapes  lexer.EscapeTable
	registry parser.Registry
}

// WithSymbolTable overrides the default symbol table.
func WithSymbolTable(t lexer.SymbolTable) Option {
	return func(c *config) { c.symbols = t }
}

// WithEscapeTable overrides the default escape-sequence table.
func WithEscapeTable(t lexer.EscapeTable) Option {
	return func(c *config) { c.escapes = t }
}

// WithOperatorRegistry overrides the default operator registry.
func WithOperatorRegistry(r parser.Registry) Option {
	return func(c *config) { c.registry = r }
}

// New constructs an Environment with its own string engine.
func New(opts ...Option) *Environment {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	engine := stringintern.NewEngine()
	return &Environment{
		engine: engine,
		lexer:  lexer.New(engine, c.symbols, c.escapes),
		parser: parser.New(c.registry),
	}
}

// Str interns bytes in the environment's string engine and returns a
// handle.
func (e *Environment) Str(s string) stringintern.Handle {
	return e.engine.Str(s)
}

// PerformLexicalAnalysis scans source into tokens pushed onto unit.
func (e *Environment) PerformLexicalAnalysis(unit *lexer.LexicalUnit) error {
	return e.lexer.PerformAnalysis(unit)
}

// ProcessString resolves escape sequences in a raw string literal's
// interior bytes (excluding the surrounding quotes).
func (e *Environment) ProcessString(raw []byte) ([]byte, error) {
	return e.lexer.ProcessString(raw)
}

// PerformSemanticAnalysis parses a lexical unit's token stream into
// the root `scope` operation tree, installed as su's base scope.
func (e *Environment) PerformSemanticAnalysis(su *parser.SemanticUnit, unit *lexer.LexicalUnit) error {
	return e.parser.PerformAnalysis(su, unit)
}

// Parse is a convenience wrapper running lexical analysis followed by
// semantic analysis over raw source text, returning the semantic
// unit's base scope directly.
func (e *Environment) Parse(source []byte) (*optree.Tree, *lexer.LexicalUnit, error) {
	unit := lexer.NewLexicalUnit(source)
	if err := e.PerformLexicalAnalysis(unit); err != nil {
		return nil, unit, err
	}
	su := parser.NewSemanticUnit()
	if err := e.PerformSemanticAnalysis(su, unit); err != nil {
		return nil, unit, err
	}
	return su.BaseScope(), unit, nil
}
