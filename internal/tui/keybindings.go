package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/tui/components"
)

const keyCtrlC = "ctrl+c"

// KeyMap holds the shell's global bindings.
type KeyMap struct {
	Palette       key.Binding
	Tour          key.Binding
	Admin         key.Binding
	Theme         key.Binding
	Notifications key.Binding
	Help          key.Binding
	Quit          key.Binding
	DismissToast  key.Binding
	ToastAction   key.Binding
	Up            key.Binding
	Down          key.Binding
	Open          key.Binding

	// Shortcuts maps ctrl+<n> to the nth configured view.
	Shortcuts []Shortcut
}

// Shortcut is a ctrl+<digit> binding to a view.
type Shortcut struct {
	Binding key.Binding
	View    navigation.View
}

// NewKeyMap builds the bindings. shortcuts is truncated to nine entries.
func NewKeyMap(shortcuts []navigation.View) KeyMap {
	km := KeyMap{
		Palette:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "command palette")),
		Tour:          key.NewBinding(key.WithKeys("f1", "ctrl+/", "ctrl+_"), key.WithHelp("f1", "onboarding tour")),
		Admin:         key.NewBinding(key.WithKeys("ctrl+alt+a"), key.WithHelp("ctrl+alt+a", "admin access")),
		Theme:         key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "toggle dark/light")),
		Notifications: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "notifications")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", keyCtrlC), key.WithHelp("q", "quit")),
		DismissToast:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss toast")),
		ToastAction:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "run toast action")),
		Up:            key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:          key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Open:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open view")),
	}

	for i, v := range shortcuts {
		if i >= 9 {
			break
		}
		k := fmt.Sprintf("ctrl+%d", i+1)
		km.Shortcuts = append(km.Shortcuts, Shortcut{
			Binding: key.NewBinding(key.WithKeys(k), key.WithHelp(k, v.Label())),
			View:    v,
		})
	}

	return km
}

// ShortcutFor returns the view bound to keyStr.
func (km KeyMap) ShortcutFor(keyStr string) (navigation.View, bool) {
	for _, s := range km.Shortcuts {
		for _, k := range s.Binding.Keys() {
			if k == keyStr {
				return s.View, true
			}
		}
	}
	return "", false
}

// ShortcutHint returns the short "^N" hint for v, or "".
func (km KeyMap) ShortcutHint(v navigation.View) string {
	for _, s := range km.Shortcuts {
		if s.View == v {
			return "^" + strings.TrimPrefix(s.Binding.Help().Key, "ctrl+")
		}
	}
	return ""
}

func helpEntries(bindings ...key.Binding) []components.HelpEntry {
	entries := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

// HelpSections groups the bindings for the help dialog. viewKeys are the
// bindings of the mounted screen.
func (km KeyMap) HelpSections(viewKeys []key.Binding) []components.HelpDialogSection {
	sections := []components.HelpDialogSection{
		{
			Title: "Global",
			Entries: helpEntries(
				km.Palette, km.Notifications, km.Tour, km.Admin,
				km.Theme, km.Help, km.Quit,
			),
		},
		{
			Title:   "Sidebar",
			Entries: helpEntries(km.Up, km.Down, km.Open),
		},
		{
			Title:   "Toasts",
			Entries: helpEntries(km.DismissToast, km.ToastAction),
		},
	}

	if len(km.Shortcuts) > 0 {
		bindings := make([]key.Binding, len(km.Shortcuts))
		for i, s := range km.Shortcuts {
			bindings[i] = s.Binding
		}
		sections = append(sections, components.HelpDialogSection{
			Title:   "Shortcuts",
			Entries: helpEntries(bindings...),
		})
	}

	if len(viewKeys) > 0 {
		sections = append(sections, components.HelpDialogSection{
			Title:   "This View",
			Entries: helpEntries(viewKeys...),
		})
	}

	return sections
}
