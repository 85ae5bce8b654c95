package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/doodles/pkg/paging"
	"github.com/macropower/doodles/pkg/ui/pager"
)

var (
	// ErrNoPager is returned when no doodle is open.
	ErrNoPager = errors.New("no pager is open")
	// ErrNoPages is returned when the open pager has no pages.
	ErrNoPages = errors.New("pager has no pages")
)

// Sender delivers messages to a running program, like [tea.Program].
type Sender interface {
	Send(msg tea.Msg)
}

// Remote controls the pager of a running UI from other goroutines.
type Remote struct {
	sender Sender
	store  *paging.Store
}

// NewRemote creates a [Remote] that reads status from store and sends
// commands through sender. The store must also be given to the UI with
// [WithStore].
func NewRemote(sender Sender, store *paging.Store) *Remote {
	return &Remote{sender: sender, store: store}
}

// Status returns the latest published pager status.
func (r *Remote) Status() paging.Status {
	return r.store.Load()
}

// GoTo asks the open pager to show page i. The UI clamps i, and ignores the
// request while the user is dragging.
func (r *Remote) GoTo(i int) error {
	st := r.store.Load()
	if !st.Open {
		return ErrNoPager
	}

	if st.Count == 0 {
		return fmt.Errorf("%q: %w", st.Title, ErrNoPages)
	}

	r.sender.Send(pager.JumpMsg{Index: i})

	return nil
}
