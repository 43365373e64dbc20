// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/passgen/internal/i18n"
)

// languageModel lists the embedded locales.
type languageModel struct {
	codes  []string
	names  map[string]string
	cursor int
}

func newLanguageModel() languageModel {
	lm := languageModel{codes: i18n.Locales(), names: i18n.GetAvailableLocales()}
	current := i18n.GetLang()
	for i, c := range lm.codes {
		if c == current {
			lm.cursor = i
		}
	}
	return lm
}

func (m mainModel) updateLanguage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Quit):
		m.state = categoriesView
	case key.Matches(keyMsg, m.keys.Up):
		if m.language.cursor > 0 {
			m.language.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.language.cursor < len(m.language.codes)-1 {
			m.language.cursor++
		}
	case key.Matches(keyMsg, m.keys.Open):
		if len(m.language.codes) == 0 {
			return m, nil
		}
		lang := m.language.codes[m.language.cursor]
		save := m.opts.SaveLanguage
		return m, func() tea.Msg {
			i18n.SetLang(lang)
			if save != nil {
				if err := save(lang); err != nil {
					return copiedMsg{err: err}
				}
			}
			return languageChangedMsg{}
		}
	}
	return m, nil
}

func (lm languageModel) view(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.language.title")))
	b.WriteString("\n")
	for i, code := range lm.codes {
		line := code + "  " + lm.names[code]
		if i == lm.cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(AlignFooter(helpStyle.Render(i18n.T("tui.language.select")), "", width-4))
	return b.String()
}
