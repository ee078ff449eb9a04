package main

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapbuffer/buffer"
)

// chromeHeight is the number of lines below the text view.
const chromeHeight = 4

type model struct {
	content *buffer.Content
	cursor  *buffer.Mark

	keys   keyMap
	styles styles
	view   viewport.Model

	width  int
	errMsg string
}

func newModel(text string, opt buffer.Options) model {
	c := buffer.New(text, opt)
	cursor, _ := c.CreatePosition(c.Len(), buffer.BiasForward)

	m := model{
		content: c,
		cursor:  cursor,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
		view:    viewport.New(80, 20),
		width:   80,
	}
	m.view.SetContent(m.renderText())
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-chromeHeight, 1)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.errMsg = ""
		if err := m.handleKey(msg); err != nil {
			m.errMsg = err.Error()
			log.Printf("edit failed: %v", err)
		}
	}
	m.view.SetContent(m.renderText())
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) error {
	c, at := m.content, m.cursor.Offset()

	switch {
	case key.Matches(msg, m.keys.Left):
		if at == 0 {
			return nil
		}
		start, _, err := c.GraphemeBounds(at - 1)
		if err != nil {
			return err
		}
		return c.MovePosition(m.cursor, start)
	case key.Matches(msg, m.keys.Right):
		_, end, err := c.GraphemeBounds(at)
		if err != nil {
			return err
		}
		return c.MovePosition(m.cursor, end)
	case key.Matches(msg, m.keys.Home), key.Matches(msg, m.keys.End):
		p, _ := c.PosFromOffset(at, buffer.OffsetClamp)
		p.Col = 0
		if key.Matches(msg, m.keys.End) {
			p.Col = c.Len()
		}
		off, _ := c.OffsetFromPos(p, buffer.OffsetClamp)
		return c.MovePosition(m.cursor, off)
	case key.Matches(msg, m.keys.Backspace):
		_, err := c.DeleteGraphemeBefore(at)
		return err
	case key.Matches(msg, m.keys.Delete):
		_, err := c.DeleteGraphemeAfter(at)
		return err
	case key.Matches(msg, m.keys.Enter):
		return m.insert("\n")
	case key.Matches(msg, m.keys.Undo):
		c.Undo()
	case key.Matches(msg, m.keys.Redo):
		c.Redo()
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		return m.insert(string(msg.Runes))
	case msg.Type == tea.KeyTab:
		return m.insert("\t")
	}
	return nil
}

func (m model) insert(s string) error {
	e, err := m.content.InsertString(m.cursor.Offset(), s)
	if err != nil {
		return err
	}
	log.Printf("insert %q at %d, layout %+v", e.Inserted, e.Offset, m.content.Layout())
	return nil
}

func (m model) View() string {
	return m.view.View() + "\n" + m.renderChrome()
}
