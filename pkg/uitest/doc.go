// Package uitest provides testing utilities for Bubble Tea TUI components.
//
// Models whose Update returns their concrete type can be run under teatest
// with [NewTestModel]:
//
//	tm := uitest.NewTestModel(t, m, uitest.Compact)
//	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
//	out := uitest.WaitForCapture(t, tm.Output(), func(b []byte) bool {
//	    return bytes.Contains(b, []byte("2/3"))
//	})
//
// Models can also be driven without a program. [Drain] runs a command returned
// by Update and collects its messages, so they can be fed back in:
//
//	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
//	for _, msg := range uitest.Drain(cmd, 50*time.Millisecond) {
//	    m, _ = m.Update(msg)
//	}
package uitest
