package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"rangelink/internal/document"
	"rangelink/internal/link"
)

func (ls *LanguageServer) textDocumentDocumentLink(
	context *glsp.Context,
	params *protocol.DocumentLinkParams,
) ([]protocol.DocumentLink, error) {
	doc, ok := ls.docs.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	var links []protocol.DocumentLink
	for _, occ := range doc.Links() {
		if occ.Link == nil {
			continue
		}

		target := ls.targetURI(params.TextDocument.URI, *occ.Link)
		tooltip := link.Tooltip(*occ.Link)
		links = append(links, protocol.DocumentLink{
			Range:   toProtocolRange(occ.Range),
			Target:  &target,
			Tooltip: &tooltip,
		})
	}
	return links, nil
}

func (ls *LanguageServer) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	doc, ok := ls.docs.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	occ, ok := doc.LinkAt(document.Position{
		Line:      params.Position.Line,
		Character: params.Position.Character,
	})
	if !ok || occ.Link == nil {
		return nil, nil
	}

	rng := toProtocolRange(occ.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: link.Tooltip(*occ.Link) + "\n" + occ.Link.Path,
		},
		Range: &rng,
	}, nil
}
