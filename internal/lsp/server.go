// Package lsp exposes the RangeLink codec to editors over the
// Language Server Protocol: document links for every RangeLink found
// in an open document, hovers showing a link's display text, and
// diagnostics for links whose range is inverted.
package lsp

import (
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"rangelink/internal/config"
	"rangelink/internal/document"
	"rangelink/internal/link"
)

const lsName = "rangelink"

var version = "0.1.0"

type LanguageServer struct {
	cfg      *config.Config
	delims   link.Delimiters
	docs     *document.Manager
	handler  *protocol.Handler
	rootPath string
	log      commonlog.Logger
}

func NewServer(cfg *config.Config) (*server.Server, error) {
	ls := &LanguageServer{
		cfg:    cfg,
		delims: cfg.Delims(),
		log:    commonlog.GetLogger("rangelink.lsp"),
	}
	ls.docs = document.NewManager(link.NewPattern(ls.delims))

	ls.handler = &protocol.Handler{
		Initialize:               ls.initialize,
		Initialized:              ls.initialized,
		Shutdown:                 ls.shutdown,
		SetTrace:                 ls.setTrace,
		TextDocumentDidOpen:      ls.textDocumentDidOpen,
		TextDocumentDidChange:    ls.textDocumentDidChange,
		TextDocumentDidClose:     ls.textDocumentDidClose,
		TextDocumentDocumentLink: ls.textDocumentDocumentLink,
		TextDocumentHover:        ls.textDocumentHover,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}
