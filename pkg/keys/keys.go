// Package keys describes configurable key bindings and renders them as help
// columns.
package keys

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/macropower/doodles/pkg/ui/theme"
)

// ErrDuplicateKey is returned by [ValidateBinds] when two bindings share a key.
var ErrDuplicateKey = errors.New("duplicate key binding")

// Key represents a keyboard key with optional alias and visibility settings.
type Key struct {
	// Code is the key code identifier, as reported by Bubble Tea.
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias is an alternative display name for the key.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden determines if the key should be hidden from help.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := Key{Code: code}
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

func WithAlias(alias string) KeyOpt {
	return func(k *Key) {
		k.Alias = alias
	}
}

func Hidden() KeyOpt {
	return func(k *Key) {
		k.Hidden = true
	}
}

func (k Key) String() string {
	if k.Alias != "" {
		return k.Alias
	}

	return k.Code
}

// KeyBind represents a key binding with its description and associated keys.
type KeyBind struct {
	// Description is shown next to the keys in help.
	Description string `json:"description,omitempty" jsonschema:"title=Description"`
	// Keys contains the list of keys that trigger this binding.
	Keys []Key `json:"keys" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{
		Description: description,
		Keys:        keys,
	}
}

// String joins the visible keys with slashes.
func (kb *KeyBind) String() string {
	visible := make([]string, 0, len(kb.Keys))
	for _, k := range kb.Keys {
		if !k.Hidden {
			visible = append(visible, k.String())
		}
	}

	return strings.Join(visible, "/")
}

// StringRow renders one help row. keyWidth should be the widest key string
// in the column.
func (kb *KeyBind) StringRow(keyWidth, descWidth int) string {
	keys := kb.String()
	if keys == "" {
		return ""
	}

	desc := truncateWithEllipsis(kb.Description, descWidth-2)

	keySpaces := strings.Repeat(" ", max(0, keyWidth-ansi.StringWidth(keys)))
	descSpaces := strings.Repeat(" ", max(0, descWidth-ansi.StringWidth(desc)-2))

	return keys + keySpaces + "  " + desc + descSpaces
}

// Match checks if key matches any of the keys in the binding. A nil binding
// never matches.
func (kb *KeyBind) Match(key string) bool {
	if kb == nil {
		return false
	}

	return slices.ContainsFunc(kb.Keys, func(k Key) bool {
		return k.Code == key
	})
}

// IsTextInputAction reports whether key should be forwarded to a focused
// text input instead of being handled as a binding.
func IsTextInputAction(key string) bool {
	return !slices.Contains([]string{"esc", "enter", "up", "down", "pgup", "pgdown"}, key)
}

// AddKey appends key unless a key with the same code is already bound.
func (kb *KeyBind) AddKey(key Key) {
	if kb == nil || kb.Match(key.Code) {
		return
	}

	kb.Keys = append(kb.Keys, key)
}

// KeyBindRenderer lays key bindings out in columns for help views.
type KeyBindRenderer struct {
	columns [][]KeyBind
}

func (kbr *KeyBindRenderer) AddColumn(kbs ...KeyBind) {
	if len(kbs) == 0 {
		return
	}

	kbr.columns = append(kbr.columns, kbs)
}

func (kbr *KeyBindRenderer) Render(width int) string {
	numCols := len(kbr.columns)
	if numCols == 0 {
		return ""
	}

	colWidth := max(6, width/numCols-2)
	colRemainder := 0
	if numCols > 1 {
		colRemainder = max(0, width%numCols)
	}

	colRows := make([][]string, numCols)
	maxRows := 0

	for i, col := range kbr.columns {
		colRows[i] = stringColumn(colWidth, col...)
		maxRows = max(maxRows, len(colRows[i]))
	}

	var sb strings.Builder
	for row := range maxRows {
		for _, rows := range colRows {
			content := strings.Repeat(" ", colWidth)
			if row < len(rows) {
				content = rows[row]
			}

			sb.WriteString(" " + content + " ")
		}

		sb.WriteString(strings.Repeat(" ", colRemainder))

		if row < maxRows-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func stringColumn(width int, kbs ...KeyBind) []string {
	maxKeyWidth := 0
	for _, kb := range kbs {
		maxKeyWidth = max(maxKeyWidth, ansi.StringWidth(kb.String()))
	}

	rows := []string{}
	for _, kb := range kbs {
		if row := kb.StringRow(maxKeyWidth, width-maxKeyWidth); row != "" {
			rows = append(rows, row)
		}
	}

	return rows
}

// ValidateBinds reports every key that is bound more than once across all
// given sets.
func ValidateBinds(kbs ...[]KeyBind) error {
	var errs []error

	seen := map[string]string{}
	for _, ks := range kbs {
		for _, kb := range ks {
			for _, key := range kb.Keys {
				if prev, ok := seen[key.Code]; ok {
					errs = append(errs, fmt.Errorf("%w: %q used by %q and %q",
						ErrDuplicateKey, key.Code, prev, kb.Description))
				}

				seen[key.Code] = kb.Description
			}
		}
	}

	return errors.Join(errs...)
}

// SetDefaultBind fills in a nil binding, or the empty fields of a partially
// configured one.
func SetDefaultBind(kb **KeyBind, defaultKb KeyBind) {
	if *kb == nil {
		*kb = &defaultKb

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = defaultKb.Keys
	}

	if (*kb).Description == "" {
		(*kb).Description = defaultKb.Description
	}
}

func truncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		if s == "" {
			return ""
		}

		return theme.Ellipsis
	}

	return ansi.Truncate(s, maxWidth, theme.Ellipsis)
}
