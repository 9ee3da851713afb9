package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/listcraft/listcraft/internal/lists"
)

// Format selects how `listcraft show` prints collections.
type Format string

const (
	FormatDetailed Format = "detailed"
	FormatCompact  Format = "compact"
	FormatJSON     Format = "json"
)

// Formats lists every supported output format, for flag help.
var Formats = []Format{FormatDetailed, FormatCompact, FormatJSON}

// ParseFormat validates a format name. Empty means detailed.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatDetailed:
		return FormatDetailed, nil
	case FormatCompact:
		return FormatCompact, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want detailed, compact or json)", s)
	}
}

func pluralItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// RenderCollectionBox renders one collection as a bordered box with one
// line per item.
func RenderCollectionBox(c lists.Collection, showScientific bool, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	inner := width - 6 // border plus padding

	title := CollectionTitleStyle.Render(c.Name) + " " +
		CollectionCountStyle.Render("("+pluralItems(len(c.Items))+")")

	lines := []string{title}
	if len(c.Items) == 0 {
		lines = append(lines, EmptyStyle.Render("No items"))
	}
	for _, item := range c.Items {
		line := ItemMarker + " " + ItemNameStyle.Render(item.Name)
		if showScientific && item.ScientificName != "" {
			line += " " + ItemDetailStyle.Render(item.ScientificName)
		}
		lines = append(lines, ansi.Truncate(line, inner, "…"))
	}

	return CollectionBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderCollectionLine renders one collection on a single unstyled line:
//
//	List 1 (2 items): Cat, Dog
func RenderCollectionLine(c lists.Collection, showScientific bool) string {
	names := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		name := item.Name
		if showScientific && item.ScientificName != "" {
			name += " (" + item.ScientificName + ")"
		}
		names = append(names, name)
	}
	line := fmt.Sprintf("%s (%s)", c.Name, pluralItems(len(c.Items)))
	if len(names) > 0 {
		line += ": " + strings.Join(names, ", ")
	}
	return line
}
