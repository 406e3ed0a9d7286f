// Package rebarlsp implements a minimal Language Server Protocol
// server: it republishes diagnostics from the front end's own error
// kinds on every open/change and nothing else — no completion, hover,
// or go-to-definition, since those require type and scope information
// this repository never builds.
package rebarlsp

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/rebar-lang/rebar/internal/environment"
	"github.com/rebar-lang/rebar/internal/rebarerr"
)

// Server speaks just enough JSON-RPC 2.0 to publish diagnostics for
// open documents: initialize, the three textDocument/did* lifecycle
// notifications, and outgoing publishDiagnostics.
type Server struct {
	logger *zap.Logger

	mu        sync.Mutex
	documents map[protocol.DocumentURI]string

	conn   jsonrpc2.Conn
	client protocol.Client
	cancel context.CancelFunc
}

// New constructs a Server. A nil logger falls back to a no-op logger.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{logger: logger, documents: make(map[protocol.DocumentURI]string)}
}

// Run serves the protocol over rwc (typically stdin/stdout) until ctx
// is canceled or the client sends exit.
func (s *Server) Run(ctx context.Context, rwc io.ReadWriteCloser) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn
	s.client = protocol.ClientDispatcher(conn, s.logger)

	conn.Go(ctx, s.handle)
	<-ctx.Done()
	return conn.Close()
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodInitialize:
		return s.onInitialize(ctx, reply, req)
	case protocol.MethodInitialized:
		return reply(ctx, nil, nil)
	case protocol.MethodShutdown:
		return reply(ctx, nil, nil)
	case protocol.MethodExit:
		if s.cancel != nil {
			s.cancel()
		}
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidOpen:
		return s.onDidOpen(ctx, reply, req)
	case protocol.MethodTextDocumentDidChange:
		return s.onDidChange(ctx, reply, req)
	case protocol.MethodTextDocumentDidClose:
		return s.onDidClose(ctx, reply, req)
	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

func (s *Server) onInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}

	result := protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
		},
		ServerInfo: &protocol.ServerInfo{Name: "rebar-lsp"},
	}
	return reply(ctx, result, nil)
}

func (s *Server) onDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	s.setDocument(params.TextDocument.URI, params.TextDocument.Text)
	s.publishDiagnostics(ctx, params.TextDocument.URI)
	return reply(ctx, nil, nil)
}

func (s *Server) onDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}
	// Full document sync only: the last reported change carries the
	// entire new text.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.setDocument(params.TextDocument.URI, text)
	s.publishDiagnostics(ctx, params.TextDocument.URI)
	return reply(ctx, nil, nil)
}

func (s *Server) onDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()
	return reply(ctx, nil, nil)
}

func (s *Server) setDocument(uri protocol.DocumentURI, text string) {
	s.mu.Lock()
	s.documents[uri] = text
	s.mu.Unlock()
}

// publishDiagnostics re-runs lexical and semantic analysis over the
// full document text and maps any surfaced AnalysisError to one
// Diagnostic at its recorded byte offset, converted to a line/column
// by scanning newlines. A clean parse publishes an empty diagnostic
// list, clearing any prior error.
func (s *Server) publishDiagnostics(ctx context.Context, uri protocol.DocumentURI) {
	s.mu.Lock()
	text := s.documents[uri]
	s.mu.Unlock()

	env := environment.New()
	_, unit, err := env.Parse([]byte(text))

	var diagnostics []protocol.Diagnostic
	if err != nil {
		if ae, ok := err.(*rebarerr.AnalysisError); ok {
			diagnostics = append(diagnostics, toDiagnostic(ae, unit.Plaintext()))
		} else {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Severity: protocol.DiagnosticSeverityError,
				Message:  err.Error(),
			})
		}
	}

	params := &protocol.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics}
	if s.client != nil {
		s.client.PublishDiagnostics(ctx, params)
	}
}

func toDiagnostic(ae *rebarerr.AnalysisError, source []byte) protocol.Diagnostic {
	pos := offsetToPosition(source, ae.Offset)
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "rebar",
		Message:  ae.Kind.String() + ": " + ae.Message,
	}
}

// offsetToPosition converts a byte offset into a 0-based LSP
// line/character position by counting newlines up to offset.
func offsetToPosition(source []byte, offset int) protocol.Position {
	if offset < 0 {
		return protocol.Position{}
	}
	if offset > len(source) {
		offset = len(source)
	}
	head := source[:offset]
	line := uint32(strings.Count(string(head), "\n"))
	lastNL := strings.LastIndexByte(string(head), '\n')
	char := uint32(len(head) - lastNL - 1)
	return protocol.Position{Line: line, Character: char}
}
