package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/listcraft/listcraft/internal/lists"
)

// cardProps drives renderCollectionCard
type cardProps struct {
	Collection     lists.Collection
	Width          int
	Focused        bool       // card (or column) has keyboard focus
	Browsing       bool       // show a checkbox instead of the item count
	Role           lists.Role // compose position, RoleNone while browsing
	Cursor         int        // highlighted item, -1 for none
	ShowScientific bool
}

// itemProps drives renderItemRow
type itemProps struct {
	Item           lists.Item
	Width          int
	Highlighted    bool
	Arrows         string
	ShowScientific bool
}

// arrowsFor returns the move affordance for a compose role
func arrowsFor(role lists.Role) string {
	switch role {
	case lists.RoleLeft:
		return "→"
	case lists.RoleMiddle:
		return "← →"
	case lists.RoleRight:
		return "←"
	default:
		return ""
	}
}

// truncate shortens s to fit width terminal cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func renderHeader(title string) string {
	return RenderTitle(title)
}

func renderButton(label string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

func renderLoading(spinnerView string, endpoint string) string {
	var b strings.Builder
	b.WriteString(spinnerView)
	b.WriteString(" Loading lists...")
	if endpoint != "" {
		b.WriteString("\n\n")
		b.WriteString(SubtitleStyle.Render(endpoint))
	}
	return b.String()
}

func renderErrorView(message string, detail string) string {
	body := message
	if detail != "" {
		body += "\n\n" + SubtitleStyle.Render(detail)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		ErrorBoxStyle.Render(body),
		"",
		renderButton("Try Again", true),
	)
}

func renderItemRow(p itemProps) string {
	marker := "  "
	nameStyle := ItemNameStyle
	if p.Highlighted {
		marker = ItemCursorStyle.Render("▸ ")
		nameStyle = ItemCursorStyle
	}

	arrows := ""
	arrowWidth := 0
	if p.Arrows != "" {
		arrows = " " + ArrowStyle.Render(p.Arrows)
		arrowWidth = ansi.StringWidth(p.Arrows) + 1
	}

	textWidth := p.Width - 2 - arrowWidth
	line := marker + nameStyle.Render(truncate(p.Item.Name, textWidth))

	if arrows != "" {
		pad := textWidth - ansi.StringWidth(truncate(p.Item.Name, textWidth))
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		line += arrows
	}

	if p.ShowScientific && p.Item.ScientificName != "" {
		line += "\n  " + ScientificNameStyle.Render(truncate(p.Item.ScientificName, p.Width-2))
	}
	return line
}

func renderCollectionCard(p cardProps) string {
	inner := p.Width - 4 // border + padding
	if inner < 8 {
		inner = 8
	}

	var title string
	if p.Browsing {
		box := "[ ]"
		if p.Collection.IsSelected {
			box = "[x]"
		}
		title = box + " " + p.Collection.Name
	} else {
		title = fmt.Sprintf("%s (%d)", p.Collection.Name, len(p.Collection.Items))
	}

	var b strings.Builder
	b.WriteString(CardTitleStyle.Render(truncate(title, inner)))
	b.WriteString("\n")

	if len(p.Collection.Items) == 0 {
		b.WriteString(EmptyStyle.Render("No items"))
	}

	arrows := arrowsFor(p.Role)
	for i, it := range p.Collection.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderItemRow(itemProps{
			Item:           it,
			Width:          inner,
			Highlighted:    p.Focused && i == p.Cursor,
			Arrows:         arrows,
			ShowScientific: p.ShowScientific,
		}))
	}

	style := CardStyle
	switch {
	case p.Focused:
		style = FocusedCardStyle
	case p.Browsing && p.Collection.IsSelected:
		style = SelectedCardStyle
	}
	return style.Width(p.Width - 2).Render(b.String())
}
