package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/listcraft/listcraft/internal/urls"
	"github.com/listcraft/listcraft/internal/version"
)

// Application branding constants
const (
	AppName  = "LISTCRAFT"
	PageName = "List Creation"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 160 // Maximum content width before capping
	MinCardWidth     = 28  // Narrowest collection card
	MaxCardWidth     = 44  // Widest collection card
	MaxGridColumns   = 3   // Cards per row while browsing
	DefaultWidth     = 80  // Used until the first WindowSizeMsg arrives
	DefaultHeight    = 24
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	ErrorColor     = lipgloss.Color("#FF5F5F") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style - page heading
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0, 0, 0).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Inline validation message
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Full-screen fetch failure
	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	FocusedButtonStyle = ButtonStyle.
				Background(HighlightColor)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	FocusedCardStyle = CardStyle.
				BorderForeground(PrimaryColor)

	SelectedCardStyle = CardStyle.
				BorderForeground(HighlightColor)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	ItemNameStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	ItemCursorStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	ScientificNameStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderError renders an inline error message
func RenderError(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

// BuildHeaderContent creates header content with app name and project URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(urls.ProjectURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps every screen: header with name and version,
// the screen content, and a footer with context-sensitive help, inside a
// border that fills the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Padding(0, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// contentWidth returns the usable width inside the application container
func contentWidth(terminalWidth int) int {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalWidth > MaxContentWidth {
		terminalWidth = MaxContentWidth
	}
	return terminalWidth - 6 // outer border, inner padding
}

// gridLayout returns how many cards fit per row and how wide each is
func gridLayout(terminalWidth int) (columns int, cardWidth int) {
	avail := contentWidth(terminalWidth)

	columns = avail / (MinCardWidth + 1)
	if columns < 1 {
		columns = 1
	}
	if columns > MaxGridColumns {
		columns = MaxGridColumns
	}

	cardWidth = avail/columns - 1
	if cardWidth > MaxCardWidth {
		cardWidth = MaxCardWidth
	}
	if cardWidth < MinCardWidth {
		cardWidth = MinCardWidth
	}
	return columns, cardWidth
}

// composeColumnWidth returns the width of each of the three compose columns
func composeColumnWidth(terminalWidth int) int {
	w := contentWidth(terminalWidth)/3 - 1
	if w < 20 {
		w = 20
	}
	if w > MaxCardWidth {
		w = MaxCardWidth
	}
	return w
}
