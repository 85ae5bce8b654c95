package pager

import (
	"github.com/macropower/doodles/pkg/keys"
)

type KeyBinds struct {
	First *keys.KeyBind `json:"first,omitempty"`
	Last  *keys.KeyBind `json:"last,omitempty"`
	Copy  *keys.KeyBind `json:"copy,omitempty"`
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.First,
		keys.NewBind("first page",
			keys.New("home"),
			keys.New("g"),
		))
	keys.SetDefaultBind(&kb.Last,
		keys.NewBind("last page",
			keys.New("end"),
			keys.New("G"),
		))
	keys.SetDefaultBind(&kb.Copy,
		keys.NewBind("copy page",
			keys.New("c"),
		))
}

func (kb *KeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.First,
		*kb.Last,
		*kb.Copy,
	}
}
