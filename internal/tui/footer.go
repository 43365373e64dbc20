// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passgen/internal/i18n"
)

// AlignFooter returns a single-line string where `right` is right-aligned
// within `width` columns and `left` is at the start. If width is too small
// a single space separates the tokens.
func AlignFooter(left, right string, width int) string {
	spaces := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

// filterStatusLine renders the filter state shown in the code point view.
func filterStatusLine(isFiltering bool, filterText string) string {
	if isFiltering {
		return i18n.T("tui.filter.filtering", filterText)
	}
	if filterText != "" {
		return i18n.T("tui.filter.active", filterText)
	}
	return i18n.T("tui.filter.hint")
}
