// Package children builds the ordered list of items shown by a paged
// container.
//
// Items are opaque to the container. Identity is positional: the container
// only ever asks for the item at an index and its size.
package children

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
)

// Item is a renderable unit. Render must return a block that fits in
// width x height cells; the container pads or truncates anything else.
type Item interface {
	Render(width, height int) string
}

// Titled is implemented by items that have a short human readable name.
type Titled interface {
	Title() string
}

// Func adapts a function to [Item].
type Func func(width, height int) string

// Render implements [Item].
func (f Func) Render(width, height int) string {
	return f(width, height)
}

// Text is an [Item] that word wraps a string and centers it on the page.
type Text string

// Render implements [Item].
func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		wordwrap.String(string(t), width))
}

// List is an ordered, immutable sequence of items.
type List struct {
	items []Item
}

// New builds a [List] from a fixed set of items. Nil items are dropped.
func New(items ...Item) List {
	return List{items: lo.Filter(items, func(item Item, _ int) bool {
		return item != nil
	})}
}

// ForEach builds a [List] with one item per element of data, in order.
//
// id identifies each element. Duplicate identities are kept, since the
// container addresses items by position, but they are logged because they
// usually point at a bug in the caller.
func ForEach[T any, K comparable](data []T, id func(T) K, content func(T) Item) List {
	if dups := lo.FindDuplicates(lo.Map(data, func(v T, _ int) K { return id(v) })); len(dups) > 0 {
		slog.Warn("duplicate child identities",
			slog.Any("ids", dups),
		)
	}

	return List{items: lo.Map(data, func(v T, _ int) Item {
		item := content(v)
		if item == nil {
			return Text("")
		}

		return item
	})}
}

// Range builds a [List] of n items produced by fn.
func Range(n int, fn func(i int) Item) List {
	return ForEach(lo.Range(max(0, n)), func(i int) int { return i }, fn)
}

// Len returns the number of items.
func (l List) Len() int {
	return len(l.items)
}

// At returns the item at index i, or nil when i is out of range.
func (l List) At(i int) Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}

	return l.items[i]
}

// Items returns a copy of the items.
func (l List) Items() []Item {
	return append([]Item(nil), l.items...)
}

// Title returns the title of item i, or a positional name when the item has
// none.
func (l List) Title(i int) string {
	if t, ok := l.At(i).(Titled); ok && t.Title() != "" {
		return t.Title()
	}

	return fmt.Sprintf("page %d", i+1)
}

// Titles returns the title of every item.
func (l List) Titles() []string {
	return lo.Map(l.items, func(_ Item, i int) string {
		return l.Title(i)
	})
}
