package playground

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rebar-lang/rebar/internal/diag"
	"github.com/rebar-lang/rebar/internal/environment"
	"github.com/rebar-lang/rebar/internal/lexer"
	"github.com/rebar-lang/rebar/internal/parser"
	"github.com/rebar-lang/rebar/internal/rebarerr"
)

// parseRequest is the JSON body accepted by POST /api/v1/parse.
type parseRequest struct {
	Source string `json:"source"`
}

// tokenView is one token's wire representation: its printed form and
// source byte offset, mirroring the LexicalUnit's parallel sequences.
type tokenView struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

// parseResponse is the JSON body returned on success: the token list
// and the parsed tree's compact printed form. The tree is embedded as
// a plain string, never restructured into nested JSON, so it never
// diverges from the façade's to_string contract.
type parseResponse struct {
	Tokens []tokenView `json:"tokens"`
	Tree   string      `json:"tree"`
}

// parseErrorResponse is the JSON body returned on any of the five
// AnalysisError kinds.
type parseErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Offset  int    `json:"offset"`
	Excerpt string `json:"excerpt,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, int64(s.maxBytes)*2+1024))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	var req parseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.Source) > s.maxBytes {
		http.Error(w, "source exceeds max_source_bytes", http.StatusRequestEntityTooLarge)
		return
	}

	resp, status := runParse(req.Source)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// runParse lexes and parses source with a fresh Environment (and
// therefore a fresh string engine) on every call, so concurrent
// requests never share interning state.
func runParse(source string) (any, int) {
	env := environment.New()
	unit := lexer.NewLexicalUnit([]byte(source))

	if err := env.PerformLexicalAnalysis(unit); err != nil {
		return errorBody(err, []byte(source)), http.StatusUnprocessableEntity
	}

	su := parser.NewSemanticUnit()
	if err := env.PerformSemanticAnalysis(su, unit); err != nil {
		return errorBody(err, []byte(source)), http.StatusUnprocessableEntity
	}

	return parseResponse{
		Tokens: tokenViews(unit),
		Tree:   su.BaseScope().String(),
	}, http.StatusOK
}

func tokenViews(unit *lexer.LexicalUnit) []tokenView {
	tokens := unit.Tokens()
	offsets := unit.TokenPositions()
	views := make([]tokenView, len(tokens))
	for i, t := range tokens {
		views[i] = tokenView{Text: t.String(), Offset: offsets[i]}
	}
	return views
}

func errorBody(err error, source []byte) parseErrorResponse {
	ae, ok := err.(*rebarerr.AnalysisError)
	if !ok {
		return parseErrorResponse{Message: err.Error(), Offset: -1}
	}
	report := diag.FromAnalysisError(ae, source, true)
	return parseErrorResponse{
		Kind:    ae.Kind.String(),
		Message: ae.Message,
		Offset:  ae.Offset,
		Excerpt: report.Excerpt,
	}
}
