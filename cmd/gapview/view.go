package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/gapbuffer/buffer"
	"github.com/iw2rmb/gapbuffer/internal/grapheme"
)

type styles struct {
	Cursor lipgloss.Style
	Gap    lipgloss.Style
	Cells  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Cursor: lipgloss.NewStyle().Reverse(true),
		Gap:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cells:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status: lipgloss.NewStyle().Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

const (
	gapCell     = "·"
	newlineCell = "⏎"
)

// renderText draws the content with the cursor cell highlighted.
func (m model) renderText() string {
	c, at := m.content, m.cursor.Offset()
	before, _ := c.Text(0, at)

	cell := " "
	after := ""
	if at < c.Len() {
		_, end, _ := c.GraphemeBounds(at)
		cell, _ = c.Text(at, end-at)
		after, _ = c.Text(end, c.Len()-end)
		if cell == "\n" {
			cell, after = " ", "\n"+after
		}
	}
	return before + m.styles.Cursor.Render(cell) + after
}

// renderChrome draws the backing array strip, the status line and the help.
func (m model) renderChrome() string {
	lines := []string{
		m.renderStrip(m.width),
		m.styles.Status.Render(m.statusLine()),
		m.styles.Help.Render(m.helpLine()),
	}
	if m.errMsg != "" {
		lines[2] = m.styles.Error.Render(m.errMsg)
	}
	return strings.Join(lines, "\n")
}

// renderStrip draws the physical layout: content before the gap, the gap and
// content after it, truncated to width cells.
func (m model) renderStrip(width int) string {
	l := m.content.Layout()
	before, _ := m.content.Text(0, l.GapStart)
	after, _ := m.content.Text(l.GapStart, m.content.Len()-l.GapStart)

	budget := max(width, 1)
	head, budget := fit(cells(before), budget)
	gapPart, budget := fit(strings.Repeat(gapCell, l.GapEnd-l.GapStart), budget)
	tail, _ := fit(cells(after), budget)
	return m.styles.Cells.Render(head) + m.styles.Gap.Render(gapPart) + m.styles.Cells.Render(tail)
}

func (m model) statusLine() string {
	l := m.content.Layout()
	st := m.content.Stats()
	p, _ := m.content.PosFromOffset(m.cursor.Offset(), buffer.OffsetClamp)
	return fmt.Sprintf("len %d (%d graphemes)  cap %d  gap [%d,%d)  cursor %d:%d  copies %d moved %d grows %d  v%d",
		m.content.Len(), grapheme.Count(m.content.String()), l.Capacity, l.GapStart, l.GapEnd,
		p.Line+1, p.Col+1, st.Copies, st.Moved, st.Grows, m.content.Version())
}

func (m model) helpLine() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// cells renders text one display cell per rune, making line feeds visible.
func cells(s string) string {
	return strings.ReplaceAll(s, "\n", newlineCell)
}

// fit truncates s to budget display cells and returns the remaining budget.
func fit(s string, budget int) (string, int) {
	if budget <= 0 {
		return "", 0
	}
	w := runewidth.StringWidth(s)
	if w <= budget {
		return s, budget - w
	}
	out := runewidth.Truncate(s, budget, "…")
	return out, budget - runewidth.StringWidth(out)
}
