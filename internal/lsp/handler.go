package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"rangelink/internal/document"
	"rangelink/internal/link"
)

func (ls *LanguageServer) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	if params.RootPath != nil {
		ls.rootPath = *params.RootPath
	}
	if params.RootURI != nil {
		if path, err := uriToPath(*params.RootURI); err == nil {
			ls.rootPath = path
		}
	}

	// Workspace-specific delimiter overrides arrive here. A bad
	// override keeps the configured delimiters instead of failing the
	// whole session.
	merged := *ls.cfg
	if err := merged.ApplyOptions(params.InitializationOptions); err != nil {
		ls.log.Errorf("ignoring initialization options: %s", err.Error())
	} else {
		ls.cfg = &merged
		ls.delims = merged.Delims()
		ls.docs = document.NewManager(link.NewPattern(ls.delims))
	}

	capabilities := ls.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *LanguageServer) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	ls.log.Info("server initialized")
	return nil
}

func (ls *LanguageServer) shutdown(context *glsp.Context) error {
	ls.log.Info("server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	ls.docs.CloseAll()
	return nil
}

func (ls *LanguageServer) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LanguageServer) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	doc, err := ls.docs.Open(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	publishDiagnostics(context, params.TextDocument.URI, doc.Links())
	return nil
}

func (ls *LanguageServer) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	doc, ok := ls.docs.Get(params.TextDocument.URI)
	if !ok {
		return fmt.Errorf("document not open: %s", params.TextDocument.URI)
	}

	var changes []document.Change
	for _, change := range params.ContentChanges {
		switch contentChange := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, document.Change{NewText: contentChange.Text})

		case protocol.TextDocumentContentChangeEvent:
			c := document.Change{NewText: contentChange.Text}
			if contentChange.Range != nil {
				c.Range = &document.Range{
					Start: document.Position{
						Line:      contentChange.Range.Start.Line,
						Character: contentChange.Range.Start.Character,
					},
					End: document.Position{
						Line:      contentChange.Range.End.Line,
						Character: contentChange.Range.End.Character,
					},
				}
			}
			changes = append(changes, c)
		}
	}

	if err := doc.ApplyChanges(changes); err != nil {
		return fmt.Errorf("failed to apply changes: %w", err)
	}

	publishDiagnostics(context, params.TextDocument.URI, doc.Links())
	return nil
}

func (ls *LanguageServer) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	if err := ls.docs.Close(params.TextDocument.URI); err != nil {
		ls.log.Warningf("close: %s", err.Error())
	}
	return nil
}

// publishDiagnostics reports occurrences that matched the link grammar
// but failed range validation, so broken links show up inline while
// the user types them.
func publishDiagnostics(context *glsp.Context, uri string, occs []document.Occurrence) {
	diagnostics := []protocol.Diagnostic{}
	severity := protocol.DiagnosticSeverityWarning
	source := lsName

	for _, occ := range occs {
		if occ.Err == nil {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(occ.Range),
			Severity: &severity,
			Source:   &source,
			Message:  occ.Err.Error(),
		})
	}

	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}
