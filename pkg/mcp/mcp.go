// Package mcp exposes the pager of a running doodles UI over the Model
// Context Protocol.
package mcp

import (
	"github.com/macropower/doodles/pkg/paging"
)

const (
	name         = "doodles"
	instructions = `MCP Server 'doodles' lets you observe and drive the pager that a user is looking at in the doodles terminal UI.

REQUIRED workflow:
1. Use 'get_pager_state' first to see whether a pager is open, its pages, and the page on screen
2. Use 'goto_page' with a zero-based index from the 'get_pager_state' output to show a page
3. Use 'get_pager_state' again to confirm the page changed

IMPORTANT: Requests made while the user is dragging are ignored by the UI. If 'get_pager_state' reports dragging, wait and try again.
`
)

// Controller reads and drives the pager of a running UI.
type Controller interface {
	Status() paging.Status
	GoTo(i int) error
}
