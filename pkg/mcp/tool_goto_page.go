package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/doodles/pkg/paging"
)

// GotoPageParams defines parameters for the goto_page tool.
type GotoPageParams struct {
	Index int `json:"index"`
}

// GotoPageResult reports what the UI was asked to do.
type GotoPageResult struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	// Target is the requested index after clamping.
	Target int  `json:"target"`
	Sent   bool `json:"sent"`
}

func (s *Server) handleGotoPage(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[GotoPageParams],
) (*mcp.CallToolResultFor[GotoPageResult], error) {
	i := params.Arguments.Index
	st := s.ctrl.Status()

	result := GotoPageResult{
		Target: paging.ClampIndex(i, st.Count),
	}

	err := s.ctrl.GoTo(i)

	switch {
	case err != nil:
		result.Error = err.Error()
		result.Message = fmt.Sprintf("INVALID STATE ERROR: %v. Use get_pager_state to check that a pager with pages is open.", err)

	case st.Dragging:
		result.Sent = true
		result.Message = fmt.Sprintf("Requested page %d, but the user is dragging and the request will be ignored.", result.Target)

	default:
		result.Sent = true
		result.Message = fmt.Sprintf("Requested page %d of %q.", result.Target, st.Title)
		if result.Target != i {
			result.Message += fmt.Sprintf(" Index %d was clamped to %d.", i, result.Target)
		}
	}

	return &mcp.CallToolResultFor[GotoPageResult]{
		Content:           []mcp.Content{&mcp.TextContent{Text: result.Message}},
		StructuredContent: result,
	}, nil
}
