package mcp_test

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type recorder struct {
	msgs []tea.Msg
	mu   sync.Mutex
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.msgs = append(r.msgs, msg)
}
