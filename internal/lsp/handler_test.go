package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"stant/internal/errors"
	"stant/internal/lsp"
)

const testURI = "file:///tmp/main.swift"

type notification struct {
	method string
	params *protocol.PublishDiagnosticsParams
}

func newContext(sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			p, _ := params.(*protocol.PublishDiagnosticsParams)
			*sent = append(*sent, notification{method: method, params: p})
		},
	}
}

func open(t *testing.T, h *lsp.StantHandler, ctx *glsp.Context, text string) {
	t.Helper()

	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "swift", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

type decodedToken struct {
	line, char, length uint32
	tokenType          string
}

func decode(data []uint32) []decodedToken {
	var tokens []decodedToken
	var line, char uint32
	for i := 0; i+4 < len(data); i += 5 {
		if data[i] != 0 {
			char = 0
		}
		line += data[i]
		char += data[i+1]
		tokens = append(tokens, decodedToken{line, char, data[i+2], lsp.SemanticTokenTypes[data[i+3]]})
	}
	return tokens
}

func TestInitialize(t *testing.T) {
	h := lsp.NewStantHandler()

	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	res, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, lsp.Name, res.ServerInfo.Name)

	options, ok := res.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, options.Legend.TokenTypes)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	open(t, h, ctx, "await As\n  total += `await`")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	assert.Equal(t, []decodedToken{
		{0, 0, 5, "keyword"},
		{0, 6, 2, "keyword"},
		{1, 2, 5, "variable"},
		{1, 8, 2, "operator"},
		{1, 11, 7, "variable"},
	}, decode(tokens.Data))
}

func TestDiagnosticsPublished(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	open(t, h, ctx, "a ; b\n`c")

	require.Len(t, sent, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, sent[0].method)

	diagnostics := sent[0].params.Diagnostics
	require.Len(t, diagnostics, 2)

	assert.Equal(t, errors.ErrorUnrecognizedByte, diagnostics[0].Code.Value)
	assert.Equal(t, protocol.Position{Line: 0, Character: 2}, diagnostics[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 3}, diagnostics[0].Range.End)

	assert.Equal(t, errors.ErrorUnterminatedQuotedIdentifier, diagnostics[1].Code.Value)
	assert.Equal(t, protocol.Position{Line: 1, Character: 0}, diagnostics[1].Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 2}, diagnostics[1].Range.End)
}

func TestDidChange(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	open(t, h, ctx, "a ; b")

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 2},
					End:   protocol.Position{Line: 0, Character: 3},
				},
				Text: "+",
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].params.Diagnostics, "the bad byte was replaced")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Len(t, decode(tokens.Data), 3)

	err = h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                3,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "await"}},
	})
	require.NoError(t, err)

	tokens, err = h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Equal(t, []decodedToken{{0, 0, 5, "keyword"}}, decode(tokens.Data))
}

func TestDidClose(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	open(t, h, ctx, "a")
	require.NoError(t, h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))

	_, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	assert.Error(t, err)
	assert.Empty(t, sent[len(sent)-1].params.Diagnostics)
}

func TestCompletion(t *testing.T) {
	h := lsp.NewStantHandler()

	result, err := h.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)

	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"As", "await"}, labels)
}

func TestSetTrace(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	require.NoError(t, h.SetTrace(ctx, &protocol.SetTraceParams{Value: protocol.TraceValueVerbose}))
	open(t, h, ctx, "await x")
	require.Len(t, sent, 1)
}

func TestSemanticTokensCountUTF16(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	// é is one UTF-16 unit in two bytes, 𝄞 is two units in four bytes.
	open(t, h, ctx, "é x\n𝄞 await")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	assert.Equal(t, []decodedToken{
		{0, 2, 1, "variable"},
		{1, 3, 5, "keyword"},
	}, decode(tokens.Data))
}

func TestDiagnosticsCountUTF16(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	open(t, h, ctx, "é;")

	require.Len(t, sent, 1)
	diagnostics := sent[0].params.Diagnostics
	require.Len(t, diagnostics, 2)

	assert.Equal(t, errors.ErrorUnsupportedCharacter, diagnostics[0].Code.Value)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}, diagnostics[0].Range)

	assert.Equal(t, errors.ErrorUnrecognizedByte, diagnostics[1].Code.Value)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 1},
		End:   protocol.Position{Line: 0, Character: 2},
	}, diagnostics[1].Range)
}

func TestDidChangeRangeAfterNonASCII(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	h := lsp.NewStantHandler()

	open(t, h, ctx, "é ; b")

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 2},
					End:   protocol.Position{Line: 0, Character: 3},
				},
				Text: "+",
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, sent, 2)
	require.Len(t, sent[1].params.Diagnostics, 1, "only the é remains")
	assert.Equal(t, errors.ErrorUnsupportedCharacter, sent[1].params.Diagnostics[0].Code.Value)

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Equal(t, []decodedToken{
		{0, 2, 1, "operator"},
		{0, 4, 1, "variable"},
	}, decode(tokens.Data))
}
