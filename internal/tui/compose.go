package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/listcraft/listcraft/internal/lists"
	"github.com/listcraft/listcraft/internal/logging"
)

const composeColumns = 3

// updateCompose handles input on the three-column compose view
func (m AppModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.ComposeKeys.NextColumn):
		m.composeFocus = (m.composeFocus + 1) % composeColumns

	case key.Matches(keyMsg, m.ComposeKeys.PrevColumn):
		m.composeFocus = (m.composeFocus + composeColumns - 1) % composeColumns

	case key.Matches(keyMsg, m.ComposeKeys.Up):
		if m.composeCursor[m.composeFocus] > 0 {
			m.composeCursor[m.composeFocus]--
		}

	case key.Matches(keyMsg, m.ComposeKeys.Down):
		m.composeCursor[m.composeFocus]++
		m.clampComposeCursor(m.composeFocus)

	case key.Matches(keyMsg, m.ComposeKeys.MoveRight):
		m.moveFocused(lists.Forward)

	case key.Matches(keyMsg, m.ComposeKeys.MoveLeft):
		m.moveFocused(lists.Backward)

	case key.Matches(keyMsg, m.ComposeKeys.Cancel):
		m.State.Cancel()
		return m.transitionTo(ScreenBrowse)

	case key.Matches(keyMsg, m.ComposeKeys.Update):
		m.State.Commit()
		return m.transitionTo(ScreenBrowse)
	}

	return m, nil
}

// moveFocused moves the highlighted item of the focused column to its
// neighbour in dir, if the column's role allows that direction
func (m *AppModel) moveFocused(dir lists.Direction) {
	columns := m.State.Collections()
	if m.composeFocus >= len(columns) {
		return
	}
	col := columns[m.composeFocus]
	cur := m.composeCursor[m.composeFocus]
	if cur < 0 || cur >= len(col.Items) {
		return
	}

	target, ok := m.State.Neighbor(col.ID, dir)
	if !ok {
		logging.Debug("No neighbour in that direction",
			zap.Int("collection", col.ID),
			zap.Int("direction", int(dir)),
		)
		return
	}

	if m.State.MoveItem(col.Items[cur].ID, col.ID, target) {
		m.clampComposeCursor(m.composeFocus)
	}
}

func (m *AppModel) clampComposeCursor(column int) {
	columns := m.State.Collections()
	if column >= len(columns) {
		return
	}
	n := len(columns[column].Items)
	if m.composeCursor[column] >= n {
		m.composeCursor[column] = n - 1
	}
	if m.composeCursor[column] < 0 {
		m.composeCursor[column] = 0
	}
}

// viewCompose renders the compose screen content
func (m AppModel) viewCompose() string {
	columns := m.State.Collections()
	width := composeColumnWidth(m.Width)

	cards := make([]string, 0, len(columns)*2)
	for i, c := range columns {
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, renderCollectionCard(cardProps{
			Collection:     c,
			Width:          width,
			Focused:        i == m.composeFocus,
			Role:           m.State.Role(c.ID),
			Cursor:         m.composeCursor[i],
			ShowScientific: m.opts.ShowScientificNames,
		}))
	}

	var b strings.Builder
	b.WriteString(renderHeader(PageName))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	b.WriteString(renderButton("Cancel", false))
	b.WriteString("  ")
	b.WriteString(renderButton("Update", true))
	return b.String()
}
