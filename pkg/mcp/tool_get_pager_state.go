package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	xstrings "github.com/charmbracelet/x/exp/strings"
)

// GetPagerStateParams defines parameters for the get_pager_state tool.
type GetPagerStateParams struct{}

// GetPagerStateResult describes the pager on screen.
type GetPagerStateResult struct {
	Title      string   `json:"title,omitempty"`
	Message    string   `json:"message"`
	Pages      []string `json:"pages,omitempty"`
	Index      int      `json:"index"`
	Count      int      `json:"count"`
	DragOffset float64  `json:"dragOffset"`
	Open       bool     `json:"open"`
	Dragging   bool     `json:"dragging"`
}

func (s *Server) handleGetPagerState(
	_ context.Context,
	_ *mcp.ServerSession,
	_ *mcp.CallToolParamsFor[GetPagerStateParams],
) (*mcp.CallToolResultFor[GetPagerStateResult], error) {
	st := s.ctrl.Status()

	result := GetPagerStateResult{
		Open:       st.Open,
		Title:      st.Title,
		Pages:      st.Pages,
		Index:      st.Index,
		Count:      st.Count,
		DragOffset: st.DragOffset,
		Dragging:   st.Dragging,
	}
	result.Message = pagerStateMessage(result)

	return &mcp.CallToolResultFor[GetPagerStateResult]{
		Content:           []mcp.Content{&mcp.TextContent{Text: result.Message}},
		StructuredContent: result,
	}, nil
}

func pagerStateMessage(r GetPagerStateResult) string {
	switch {
	case !r.Open:
		return "No pager is open. The user is browsing the gallery."
	case r.Count == 0:
		return fmt.Sprintf("Pager %q has no pages.", r.Title)
	}

	msg := fmt.Sprintf("Pager %q is showing page %d of %d", r.Title, r.Index+1, r.Count)
	if r.Index < len(r.Pages) && r.Pages[r.Index] != "" {
		msg += fmt.Sprintf(" (%s)", r.Pages[r.Index])
	}

	msg += "."

	if len(r.Pages) > 0 {
		msg += " Pages: " + xstrings.EnglishJoin(r.Pages, true) + "."
	}

	if r.Dragging {
		msg += " The user is dragging."
	}

	return msg
}
