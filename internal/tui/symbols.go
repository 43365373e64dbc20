// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passgen/internal/core"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/util/slicest"
)

// symbolsModel browses and toggles the members of one category.
type symbolsModel struct {
	session  *core.Session
	category int
	name     string

	all     []core.SymbolInfo
	visible []int // indexes into all
	cursor  int

	filter    textinput.Model
	filtering bool
	viewport  viewport.Model
}

func newSymbolsModel(s *core.Session, cat, width, height int) (*symbolsModel, error) {
	info, err := s.Category(cat)
	if err != nil {
		return nil, err
	}
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 64
	sm := &symbolsModel{
		session:  s,
		category: cat,
		name:     info.Name,
		filter:   ti,
		viewport: viewport.New(width, 1),
	}
	sm.resize(width, height)
	if err := sm.reload(); err != nil {
		return nil, err
	}
	return sm, nil
}

func (sm *symbolsModel) resize(width, height int) {
	sm.viewport.Width = max(20, width-4)
	// title, filter line, status, help and padding
	sm.viewport.Height = max(3, height-8)
	sm.render()
}

func (sm *symbolsModel) reload() error {
	syms, err := sm.session.Symbols(sm.category)
	if err != nil {
		return err
	}
	sm.all = syms
	sm.applyFilter()
	return nil
}

// applyFilter matches the filter text against the code point label, so both
// "U+00E9" and "ACUTE" narrow the list.
func (sm *symbolsModel) applyFilter() {
	needle := strings.ToUpper(strings.TrimSpace(sm.filter.Value()))
	sm.visible = sm.visible[:0]
	for i, s := range sm.all {
		if needle == "" || strings.Contains(strings.ToUpper(s.Label), needle) {
			sm.visible = append(sm.visible, i)
		}
	}
	if sm.cursor >= len(sm.visible) {
		sm.cursor = max(0, len(sm.visible)-1)
	}
	sm.render()
}

func (sm *symbolsModel) render() {
	if len(sm.visible) == 0 {
		sm.viewport.SetContent(helpStyle.Render(i18n.T("tui.symbols.empty")))
		return
	}
	lines := make([]string, len(sm.visible))
	for row, idx := range sm.visible {
		s := sm.all[idx]
		box := "[ ]"
		if s.Enabled {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, s.Label)
		switch {
		case row == sm.cursor:
			lines[row] = selectedItemStyle.Render("▸ " + line)
		case !s.Enabled:
			lines[row] = inactiveItemStyle.Render("  " + line)
		default:
			lines[row] = itemStyle.Render("  " + line)
		}
	}
	sm.viewport.SetContent(strings.Join(lines, "\n"))
	if sm.cursor < sm.viewport.YOffset {
		sm.viewport.SetYOffset(sm.cursor)
	} else if sm.cursor >= sm.viewport.YOffset+sm.viewport.Height {
		sm.viewport.SetYOffset(sm.cursor - sm.viewport.Height + 1)
	}
}

// update handles one message. back reports that the user left the view.
func (sm *symbolsModel) update(msg tea.Msg, keys keyMap) (back bool, cmd tea.Cmd, err error) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		sm.viewport, cmd = sm.viewport.Update(msg)
		return false, cmd, nil
	}

	if sm.filtering {
		switch keyMsg.Type {
		case tea.KeyEnter:
			sm.filtering = false
			sm.filter.Blur()
			return false, nil, nil
		case tea.KeyEsc:
			sm.filtering = false
			sm.filter.Blur()
			sm.filter.SetValue("")
			sm.applyFilter()
			return false, nil, nil
		}
		sm.filter, cmd = sm.filter.Update(msg)
		sm.applyFilter()
		return false, cmd, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Back), key.Matches(keyMsg, keys.Quit):
		if keyMsg.String() == "esc" && sm.filter.Value() != "" {
			sm.filter.SetValue("")
			sm.applyFilter()
			return false, nil, nil
		}
		return true, nil, nil
	case key.Matches(keyMsg, keys.Up):
		if sm.cursor > 0 {
			sm.cursor--
			sm.render()
		}
	case key.Matches(keyMsg, keys.Down):
		if sm.cursor < len(sm.visible)-1 {
			sm.cursor++
			sm.render()
		}
	case key.Matches(keyMsg, keys.Toggle):
		if len(sm.visible) == 0 {
			return false, nil, nil
		}
		idx := sm.visible[sm.cursor]
		enabled, err := sm.session.ToggleSymbol(sm.category, sm.all[idx].Index)
		if err != nil {
			return false, nil, err
		}
		sm.all[idx].Enabled = enabled
		sm.render()
	case key.Matches(keyMsg, keys.All), key.Matches(keyMsg, keys.None):
		on := key.Matches(keyMsg, keys.All)
		if err := sm.session.SetAllSymbols(sm.category, on); err != nil {
			return false, nil, err
		}
		return false, nil, sm.reload()
	case key.Matches(keyMsg, keys.Filter):
		sm.filtering = true
		return false, sm.filter.Focus(), nil
	}
	return false, nil, nil
}

func (sm *symbolsModel) view() string {
	enabled := len(slicest.Filter(sm.all, func(s core.SymbolInfo) bool { return s.Enabled }))
	title := titleStyle.Render(i18n.T("tui.symbols.title", sm.name, enabled, len(sm.all)))
	var filterLine string
	if sm.filtering {
		filterLine = sm.filter.View()
	} else {
		filterLine = helpStyle.Render(filterStatusLine(false, sm.filter.Value()))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		filterLine,
		paneStyle.Render(sm.viewport.View()),
	)
}
