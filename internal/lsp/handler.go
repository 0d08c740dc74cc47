package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"stant/internal/arena"
	"stant/internal/lexer"
	"stant/token"
)

const Name = "stant" // Name identifier for the language server

var Version = "0.0.1"

// Semantic token types advertised in the legend; indices into this list are sent to the client
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"operator",
	"modifier",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
}

// document is the server's view of an open file.
type document struct {
	text    string
	version protocol.Integer
	tokens  *arena.Arena[token.Token]
	errors  []lexer.ScanError
}

// StantHandler implements the LSP server handlers for stant sources
type StantHandler struct {
	mu    sync.RWMutex
	docs  map[protocol.DocumentUri]*document
	trace protocol.TraceValue
	log   commonlog.Logger
}

// NewStantHandler creates and returns a new StantHandler instance
func NewStantHandler() *StantHandler {
	return &StantHandler{
		docs:  make(map[protocol.DocumentUri]*document),
		trace: protocol.TraceValueOff,
		log:   commonlog.GetLogger("stant.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *StantHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: ptrString(Version),
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *StantHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *StantHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")

	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.docs)

	return nil
}

// SetTrace records the trace level requested by the client
func (h *StantHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	h.mu.Lock()
	h.trace = params.Value
	h.mu.Unlock()

	h.log.Debugf("trace set to %s", params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *StantHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)

	doc := &document{tokens: arena.New[token.Token](0)}
	h.update(params.TextDocument.URI, doc, params.TextDocument.Text, params.TextDocument.Version)
	h.publish(ctx, params.TextDocument.URI)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *StantHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("changed %s", uri)

	h.mu.RLock()
	doc, ok := h.docs[uri]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("change for unopened document %s", uri)
	}

	text := doc.text
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			// Range characters are UTF-16 code units; glsp maps them to byte offsets.
			start, end := c.Range.IndexesIn(text)
			end = max(start, end)
			text = text[:start] + c.Text + text[end:]
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	h.update(uri, doc, text, params.TextDocument.Version)
	h.publish(ctx, uri)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *StantHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	// Clear stale diagnostics in the editor.
	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})

	return nil
}

// TextDocumentCompletion offers every recognized keyword
func (h *StantHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywords := token.Spellings()

	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label:  kw,
			Kind:   &kind,
			Detail: ptrString(token.Lookup(kw).String()),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *StantHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI

	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[uri]
	if !ok {
		return nil, fmt.Errorf("semantic tokens for unopened document %s", uri)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.text, doc.tokens)),
	}, nil
}

// update re-lexes text into doc, reusing its token arena.
func (h *StantHandler) update(uri protocol.DocumentUri, doc *document, text string, version protocol.Integer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	doc.tokens.Reset()
	l := lexer.New(text,
		lexer.WithArena(doc.tokens),
		lexer.WithFilename(string(uri)),
		lexer.WithDebug(h.trace == protocol.TraceValueVerbose),
	)
	l.Drain()

	doc.text = text
	doc.version = version
	doc.errors = l.Errors()
	h.docs[uri] = doc
}

func (h *StantHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri) {
	h.mu.RLock()
	doc, ok := h.docs[uri]
	var diagnostics []protocol.Diagnostic
	if ok {
		diagnostics = ConvertScanErrors(doc.text, doc.errors)
	}
	h.mu.RUnlock()

	if ok {
		sendDiagnosticNotification(ctx, uri, diagnostics)
	}
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
