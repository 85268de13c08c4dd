// Package tools defines the MCP tools that expose the RangeLink codec
// to chat assistants: parsing a link, minting one, and scanning a blob
// of text for links.
package tools

import "rangelink/internal/link"

// Config carries the delimiter set the tools operate with, resolved by
// the caller before the server starts.
type Config struct {
	Delims link.Delimiters
}
