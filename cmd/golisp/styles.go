/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Prompt/result/error styling replaces the teacher's hand-rolled ANSI
// escapes (scm/prompt.go) with lipgloss.
var (
	stylePrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleResult = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func renderPrompt(cfg config, prompt string) string {
	if !cfg.Color {
		return prompt
	}
	return stylePrompt.Render(prompt)
}

// fuzzyFind ranks candidates against word using sahilm/fuzzy and
// returns the matched strings best-first.
func fuzzyFind(word string, candidates []string) []string {
	matches := fuzzy.Find(word, candidates)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
