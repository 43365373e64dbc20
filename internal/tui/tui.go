// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive terminal interface: a category list
// with per-category switches and minimums, a code point browser per
// category, a length editor and a language picker.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passgen/internal/core"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/random"
	"github.com/toeirei/passgen/internal/security"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	categoriesView viewState = iota
	symbolsView
	lengthView
	languageView
)

// Options wires the side effects the UI cannot perform itself.
type Options struct {
	// Copy places text on the system clipboard.
	Copy func(string) error
	// SaveLanguage persists a language choice. Nil skips persisting.
	SaveLanguage func(string) error
}

type generatedMsg struct {
	password security.Secret
	err      error
}

type copiedMsg struct{ err error }

type languageChangedMsg struct{}

// mainModel is the top-level model. It routes messages to the active view.
type mainModel struct {
	session *core.Session
	opts    Options

	state    viewState
	keys     keyMap
	help     help.Model
	cursor   int
	symbols  *symbolsModel
	length   textinput.Model
	language languageModel

	password  security.Secret
	status    string
	statusErr bool
	fatal     error

	width  int
	height int
}

func newModel(s *core.Session, opts Options) mainModel {
	return mainModel{
		session:  s,
		opts:     opts,
		keys:     newKeyMap(),
		help:     help.New(),
		language: newLanguageModel(),
		width:    80,
		height:   24,
	}
}

// Run starts the program and blocks until the user quits. An entropy
// failure ends the program and is returned.
func Run(s *core.Session, opts Options) error {
	final, err := tea.NewProgram(newModel(s, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI run error: %w", err)
	}
	if m, ok := final.(mainModel); ok {
		m.password.Zero()
		if m.fatal != nil {
			return m.fatal
		}
	}
	return nil
}

func (m mainModel) Init() tea.Cmd { return nil }

func (m *mainModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func generateCmd(s *core.Session) tea.Cmd {
	return func() tea.Msg {
		pw, err := s.GeneratePassword(context.Background())
		return generatedMsg{password: pw, err: err}
	}
}

func copyCmd(copyFn func(string) error, pw security.Secret) tea.Cmd {
	text := pw.Reveal()
	return func() tea.Msg {
		if copyFn == nil {
			return copiedMsg{err: errors.New(i18n.T("tui.copy_unavailable"))}
		}
		return copiedMsg{err: copyFn(text)}
	}
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.symbols != nil {
			m.symbols.resize(m.width, m.height)
		}
		return m, nil
	case generatedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, random.ErrEntropy) {
				m.fatal = msg.err
				return m, tea.Quit
			}
			m.setStatus(i18n.T("tui.error", msg.err), true)
			return m, nil
		}
		m.password.Zero()
		m.password = msg.password
		m.setStatus("", false)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.setStatus(i18n.T("tui.error", msg.err), true)
		} else {
			m.setStatus(i18n.T("tui.copied"), false)
		}
		return m, nil
	case languageChangedMsg:
		m.keys = newKeyMap()
		m.language = newLanguageModel()
		m.state = categoriesView
		return m, nil
	}

	switch m.state {
	case symbolsView:
		return m.updateSymbols(msg)
	case lengthView:
		return m.updateLength(msg)
	case languageView:
		return m.updateLanguage(msg)
	default:
		return m.updateCategories(msg)
	}
}

func (m mainModel) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(m.session.Categories())
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleCategory()
	case key.Matches(keyMsg, m.keys.Inc):
		m.changeMinimum(1)
	case key.Matches(keyMsg, m.keys.Dec):
		m.changeMinimum(-1)
	case key.Matches(keyMsg, m.keys.Open):
		sm, err := newSymbolsModel(m.session, m.cursor, m.width, m.height)
		if err != nil {
			m.setStatus(i18n.T("tui.error", err), true)
			return m, nil
		}
		m.symbols = sm
		m.state = symbolsView
	case key.Matches(keyMsg, m.keys.Length):
		m.length = newLengthInput(m.session.Length())
		m.state = lengthView
		return m, textinput.Blink
	case key.Matches(keyMsg, m.keys.Language):
		m.state = languageView
	case key.Matches(keyMsg, m.keys.Generate):
		if err := m.session.Validate(); err != nil {
			m.setStatus(i18n.T("tui.error", err), true)
			return m, nil
		}
		return m, generateCmd(m.session)
	case key.Matches(keyMsg, m.keys.Copy):
		if len(m.password) == 0 {
			m.setStatus(i18n.T("tui.nothing_to_copy"), true)
			return m, nil
		}
		return m, copyCmd(m.opts.Copy, m.password)
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// toggleCategory disables freely but only enables when the minimums still
// fit the length.
func (m *mainModel) toggleCategory() {
	c, err := m.session.Category(m.cursor)
	if err != nil {
		m.setStatus(i18n.T("tui.error", err), true)
		return
	}
	if !c.Enabled {
		ok, err := m.session.CanEnable(m.cursor)
		if err != nil {
			m.setStatus(i18n.T("tui.error", err), true)
			return
		}
		if !ok {
			m.setStatus(i18n.T("tui.guard.enable", c.Name), true)
			return
		}
	}
	if _, err := m.session.ToggleCategory(m.cursor); err != nil {
		m.setStatus(i18n.T("tui.error", err), true)
		return
	}
	m.setStatus("", false)
}

func (m *mainModel) changeMinimum(delta int) {
	c, err := m.session.Category(m.cursor)
	if err != nil {
		m.setStatus(i18n.T("tui.error", err), true)
		return
	}
	next := c.Minimum + delta
	if next < 0 {
		return
	}
	if delta > 0 {
		ceiling, err := m.session.MaxMinimum(m.cursor)
		if err != nil {
			m.setStatus(i18n.T("tui.error", err), true)
			return
		}
		if next > ceiling {
			m.setStatus(i18n.T("tui.guard.minimum", c.Name, ceiling), true)
			return
		}
	}
	if err := m.session.SetMinimum(m.cursor, next); err != nil {
		m.setStatus(i18n.T("tui.error", err), true)
		return
	}
	m.setStatus("", false)
}

func newLengthInput(current int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(current)
	ti.SetValue(strconv.Itoa(current))
	ti.CharLimit = 7
	ti.Width = 10
	ti.Prompt = i18n.T("tui.length.prompt") + ": "
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("not a number")
			}
		}
		return nil
	}
	ti.Focus()
	return ti
}

func (m mainModel) updateLength(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = categoriesView
			return m, nil
		case tea.KeyEnter:
			value := strings.TrimSpace(m.length.Value())
			n, err := strconv.Atoi(value)
			if err == nil {
				if total := m.session.TotalMinimum(); n < total {
					m.setStatus(i18n.T("tui.length.minimum", n, total), true)
					return m, nil
				}
				err = m.session.SetLength(n)
			}
			if err != nil {
				m.setStatus(i18n.T("tui.length.invalid", value), true)
				return m, nil
			}
			m.setStatus("", false)
			m.state = categoriesView
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.length, cmd = m.length.Update(msg)
	return m, cmd
}

func (m mainModel) updateSymbols(msg tea.Msg) (tea.Model, tea.Cmd) {
	back, cmd, err := m.symbols.update(msg, m.keys)
	if err != nil {
		m.setStatus(i18n.T("tui.error", err), true)
	}
	if back {
		m.symbols = nil
		m.state = categoriesView
	}
	return m, cmd
}

func (m mainModel) View() string {
	switch m.state {
	case symbolsView:
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.symbols.view(),
			m.statusLine(),
			m.help.View(symbolHelp{m.keys}),
		))
	case languageView:
		return docStyle.Render(m.language.view(m.width))
	}

	header := mainTitleStyle.Render(i18n.T("tui.title"))
	summary := helpStyle.Render(i18n.T("tui.summary", m.session.Length(), m.session.TotalMinimum()))

	var rows []string
	for _, c := range m.session.Categories() {
		line := c.Label
		switch {
		case c.Index == m.cursor:
			rows = append(rows, selectedItemStyle.Render("▸ "+line))
			if c.Preview != "" {
				rows = append(rows, helpStyle.Render("    "+c.Preview))
			}
		case !c.Enabled || c.Active == 0:
			rows = append(rows, inactiveItemStyle.Render("  "+line))
		default:
			rows = append(rows, itemStyle.Render("  "+line))
		}
	}
	list := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	var bottom string
	if m.state == lengthView {
		bottom = m.length.View()
	} else if len(m.password) > 0 {
		width := max(20, m.width-8)
		bottom = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(i18n.T("tui.password")),
			passwordBoxStyle.Width(width).Render(m.password.Reveal()),
		)
	} else {
		bottom = helpStyle.Render(i18n.T("tui.no_password"))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		AlignFooter(header, summary, m.width-4),
		list,
		bottom,
		m.statusLine(),
		m.help.View(categoryHelp{m.keys}),
	))
}

func (m mainModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return statusMessageStyle.Render(m.status)
}
