package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"namedargs"
	"namedargs/internal/parser"
)

var log = commonlog.GetLogger("namedargs.lsp")

// Define the set of supported semantic token types (indexes are part of the LSP wire format)
var SemanticTokenTypes = []string{
	"property",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

// NamedArgsHandler implements the LSP server handlers for argument list
// files. Documents are kept in memory from the text the client sends.
type NamedArgsHandler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
}

func NewNamedArgsHandler() *NamedArgsHandler {
	return &NamedArgsHandler{
		content: make(map[protocol.DocumentUri]string),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *NamedArgsHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

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
	}, nil
}

func (h *NamedArgsHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *NamedArgsHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *NamedArgsHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (h *NamedArgsHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)

	h.store(uri, params.TextDocument.Text)
	publishDiagnostics(ctx, uri, CollectDiagnostics(params.TextDocument.Text))
	return nil
}

func (h *NamedArgsHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.content, uri)
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentDidChange applies the client's edits in order. Whole-document
// changes replace the text; ranged changes are spliced in.
func (h *NamedArgsHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.RLock()
	text := h.content[uri]
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			updated, err := applyChange(text, c)
			if err != nil {
				return fmt.Errorf("failed to apply change to %s: %w", uri, err)
			}
			text = updated
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	h.store(uri, text)
	publishDiagnostics(ctx, uri, CollectDiagnostics(text))
	return nil
}

// TextDocumentCompletion offers keys bound in other open documents that
// the current document does not bind yet.
func (h *NamedArgsHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := params.TextDocument.URI

	h.mu.RLock()
	defer h.mu.RUnlock()

	bound := documentKeys(h.content[uri])
	candidates := map[string]namedargs.ValueKind{}
	for other, text := range h.content {
		if other == uri {
			continue
		}
		args, err := namedargs.ParseArgs(text)
		if err != nil {
			continue
		}
		for _, b := range args.Bindings() {
			if _, ok := bound[b.Key]; !ok {
				candidates[b.Key] = b.Value.Kind()
			}
		}
	}

	keys := make([]string, 0, len(candidates))
	for k := range candidates {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	items := make([]protocol.CompletionItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, protocol.CompletionItem{
			Label:      k,
			Kind:       ptrCompletionKind(protocol.CompletionItemKindProperty),
			Detail:     ptrString(candidates[k].String()),
			InsertText: ptrString(k + " = "),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *NamedArgsHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	text, err := h.text(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(text)),
	}, nil
}

func (h *NamedArgsHandler) store(uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	h.content[uri] = text
	h.mu.Unlock()
}

// text returns the open document, or reads it from disk for clients that
// ask for tokens before opening.
func (h *NamedArgsHandler) text(uri protocol.DocumentUri) (string, error) {
	h.mu.RLock()
	text, ok := h.content[uri]
	h.mu.RUnlock()
	if ok {
		return text, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// documentKeys collects the keys of text from its tokens, so a document
// that does not parse still reports the keys before the error.
func documentKeys(text string) map[string]struct{} {
	keys := map[string]struct{}{}
	for _, tok := range parser.ParseSourceWithTokens(text).Tokens {
		if tok.Type == parser.IDENTIFIER {
			keys[tok.Lexeme] = struct{}{}
		}
	}
	return keys
}

// applyChange splices a ranged edit into text. Range columns are UTF-16
// code units.
func applyChange(text string, change protocol.TextDocumentContentChangeEvent) (string, error) {
	start, err := byteOffset(text, change.Range.Start.Line, change.Range.Start.Character)
	if err != nil {
		return "", err
	}
	end, err := byteOffset(text, change.Range.End.Line, change.Range.End.Character)
	if err != nil {
		return "", err
	}
	if end < start {
		return "", fmt.Errorf("range end %d before start %d", end, start)
	}
	return text[:start] + change.Text + text[end:], nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
