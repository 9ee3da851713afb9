package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lines taken by everything on the browse screen except the card grid
const browseChrome = 14

// updateBrowse handles input on the collection grid
func (m AppModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Mouse wheel and the like scroll the grid
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	n := len(m.State.Collections())
	cols, _ := gridLayout(m.Width)

	switch {
	case key.Matches(keyMsg, m.BrowseKeys.Up):
		if m.browseCursor-cols >= 0 {
			m.browseCursor -= cols
		}

	case key.Matches(keyMsg, m.BrowseKeys.Down):
		if m.browseCursor+cols < n {
			m.browseCursor += cols
		}

	case key.Matches(keyMsg, m.BrowseKeys.Left):
		if m.browseCursor > 0 {
			m.browseCursor--
		}

	case key.Matches(keyMsg, m.BrowseKeys.Right):
		if m.browseCursor < n-1 {
			m.browseCursor++
		}

	case key.Matches(keyMsg, m.BrowseKeys.Toggle):
		m.State.ToggleSelectAt(m.browseCursor)

	case key.Matches(keyMsg, m.BrowseKeys.Create):
		if err := m.State.BeginCompose(); err == nil {
			return m.transitionTo(ScreenCompose)
		}
	}

	m.syncViewport()
	return m, nil
}

func (m *AppModel) clampBrowseCursor() {
	n := len(m.State.Collections())
	if m.browseCursor >= n {
		m.browseCursor = n - 1
	}
	if m.browseCursor < 0 {
		m.browseCursor = 0
	}
}

// browseRows renders the card grid one row at a time
func (m AppModel) browseRows() []string {
	collections := m.State.Collections()
	cols, cardWidth := gridLayout(m.Width)

	rows := make([]string, 0, (len(collections)+cols-1)/cols)
	for start := 0; start < len(collections); start += cols {
		end := start + cols
		if end > len(collections) {
			end = len(collections)
		}

		cards := make([]string, 0, cols*2)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, " ")
			}
			cards = append(cards, renderCollectionCard(cardProps{
				Collection:     collections[i],
				Width:          cardWidth,
				Focused:        i == m.browseCursor,
				Browsing:       true,
				Cursor:         -1,
				ShowScientific: m.opts.ShowScientificNames,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return rows
}

// syncViewport refreshes the grid content and keeps the focused card visible
func (m *AppModel) syncViewport() {
	m.Viewport.Width = contentWidth(m.Width)
	h := m.Height - browseChrome
	if h < 3 {
		h = 3
	}
	m.Viewport.Height = h

	rows := m.browseRows()
	if len(rows) == 0 {
		m.Viewport.SetContent(EmptyStyle.Render("No lists"))
		m.Viewport.GotoTop()
		return
	}
	m.Viewport.SetContent(strings.Join(rows, "\n\n"))

	cols, _ := gridLayout(m.Width)
	row := m.browseCursor / cols
	if row >= len(rows) {
		row = len(rows) - 1
	}

	top := 0
	for _, r := range rows[:row] {
		top += lipgloss.Height(r) + 1
	}
	bottom := top + lipgloss.Height(rows[row])

	switch {
	case top < m.Viewport.YOffset:
		m.Viewport.SetYOffset(top)
	case bottom > m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(bottom - m.Viewport.Height)
	}
}

// viewBrowse renders the browse screen content
func (m AppModel) viewBrowse() string {
	var b strings.Builder

	b.WriteString(renderHeader(PageName))
	b.WriteString("\n")
	b.WriteString(renderButton("Create a new list", false))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d selected", m.State.SelectedCount())))
	b.WriteString("\n\n")

	if msg := m.State.PendingMessage(); msg != "" {
		b.WriteString(RenderError(msg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.Viewport.View())
	return b.String()
}
