package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"rangelink/internal/document"
	"rangelink/internal/link"
)

// targetURI resolves a parsed link's path to a file URI. Relative
// paths resolve against the workspace root when one is known, falling
// back to the linking document's directory. The fragment carries the
// 1-based start line so editors that honor fragments land on the
// right line.
func (ls *LanguageServer) targetURI(docURI string, parsed link.ParsedLink) string {
	path := parsed.Path
	if !filepath.IsAbs(path) {
		base := ls.rootPath
		if base == "" {
			if docPath, err := uriToPath(docURI); err == nil {
				base = filepath.Dir(docPath)
			}
		}
		path = filepath.Join(base, path)
	}
	return "file://" + path + "#L" + strconv.Itoa(parsed.Start.Line+1)
}

// uriToPath extracts the filesystem path from a file URI.
func uriToPath(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if parsed.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme: %s", parsed.Scheme)
	}
	return parsed.Path, nil
}

func toProtocolRange(r document.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: r.Start.Line, Character: r.Start.Character},
		End:   protocol.Position{Line: r.End.Line, Character: r.End.Character},
	}
}
