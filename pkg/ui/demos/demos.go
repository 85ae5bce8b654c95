// Package demos holds the doodles listed in the gallery.
package demos

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/macropower/doodles/pkg/children"
	"github.com/macropower/doodles/pkg/ui/gallery"
	"github.com/macropower/doodles/pkg/ui/theme"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor " +
	"incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud " +
	"exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure " +
	"dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. " +
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt " +
	"mollit anim id est laborum."

// Doodle is a pager demo. Pages is only called when the doodle is opened.
type Doodle struct {
	Pages func(t *theme.Theme) children.List
	ID    string
	Title string
	Desc  string
}

// Entry returns the gallery entry for d.
func (d Doodle) Entry() gallery.Entry {
	return gallery.Entry{ID: d.ID, Title: d.Title, Desc: d.Desc}
}

// All returns every doodle, in gallery order.
func All() []Doodle {
	return []Doodle{
		{
			ID:    "pager",
			Title: "Pager",
			Desc:  "Ten cards, drag or click the dots to page",
			Pages: pageItems,
		},
		{
			ID:    "band",
			Title: "Band",
			Desc:  "One page per member, built from a collection",
			Pages: band,
		},
		{
			ID:    "single",
			Title: "Single Page",
			Desc:  "A pager with nowhere to go",
			Pages: single,
		},
	}
}

// Find returns the doodle with the given ID.
func Find(id string) (Doodle, bool) {
	for _, d := range All() {
		if d.ID == id {
			return d, true
		}
	}

	return Doodle{}, false
}

// Entries returns the gallery entries of every doodle.
func Entries() []gallery.Entry {
	all := All()

	entries := make([]gallery.Entry, len(all))
	for i, d := range all {
		entries[i] = d.Entry()
	}

	return entries
}

func card(t *theme.Theme, heading, body string) children.Card {
	return children.Card{
		Heading:      heading,
		Body:         body,
		Border:       &t.CardBorderStyle,
		HeadingStyle: &t.CardTitleStyle,
	}
}

func pageItems(t *theme.Theme) children.List {
	return children.Range(10, func(i int) children.Item {
		return card(t, fmt.Sprintf("Page Item %d", i), lorem)
	})
}

type member struct {
	name       string
	instrument string
}

var members = []member{
	{name: "john", instrument: "rhythm guitar"},
	{name: "paul", instrument: "bass"},
	{name: "george", instrument: "lead guitar"},
	{name: "ringo", instrument: "drums"},
}

func band(t *theme.Theme) children.List {
	caser := cases.Title(language.English)

	return children.ForEach(members,
		func(m member) string { return m.name },
		func(m member) children.Item {
			name := caser.String(m.name)

			return card(t, name, fmt.Sprintf("%s plays %s.", name, m.instrument))
		},
	)
}

func single(t *theme.Theme) children.List {
	return children.New(
		card(t, "Only Page", "Dragging snaps back here, and the indicator has a single marker."),
	)
}
