// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/passgen/internal/i18n"
)

// keyMap holds every binding. Help texts are translated when the map is
// built, so it is rebuilt after a language change.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Inc      key.Binding
	Dec      key.Binding
	Open     key.Binding
	Length   key.Binding
	Generate key.Binding
	Copy     key.Binding
	All      key.Binding
	None     key.Binding
	Filter   key.Binding
	Language key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", i18n.T("tui.help.up"))),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", i18n.T("tui.help.down"))),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", i18n.T("tui.help.toggle"))),
		Inc:      key.NewBinding(key.WithKeys("+", "right"), key.WithHelp("+", i18n.T("tui.help.inc"))),
		Dec:      key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-", i18n.T("tui.help.dec"))),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("tui.help.open"))),
		Length:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", i18n.T("tui.help.length"))),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", i18n.T("tui.help.generate"))),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("tui.help.copy"))),
		All:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", i18n.T("tui.help.all"))),
		None:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", i18n.T("tui.help.none"))),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", i18n.T("tui.help.filter"))),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", i18n.T("tui.help.language"))),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", i18n.T("tui.help.back"))),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", i18n.T("tui.help.help"))),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", i18n.T("tui.help.quit"))),
	}
}

// categoryHelp is the help.KeyMap of the category list.
type categoryHelp struct{ keyMap }

func (k categoryHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Inc, k.Dec, k.Generate, k.Copy, k.Help, k.Quit}
}

func (k categoryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Inc, k.Dec},
		{k.Open, k.Length, k.Language},
		{k.Generate, k.Copy, k.Help, k.Quit},
	}
}

// symbolHelp is the help.KeyMap of the code point view.
type symbolHelp struct{ keyMap }

func (k symbolHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.All, k.None, k.Filter, k.Back}
}

func (k symbolHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.All, k.None, k.Filter},
		{k.Back, k.Help},
	}
}
