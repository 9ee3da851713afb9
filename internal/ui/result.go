package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/listcraft/listcraft/internal/listapi"
	"github.com/listcraft/listcraft/internal/urls"
)

// ResultType indicates success, failure, or warning
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box
type Result struct {
	Type            ResultType
	Title           string   // e.g., "Fetched 3 lists"
	Details         []Param  // Key-value details to display
	Error           error    // Error (for failure results)
	Troubleshooting []string // Tips (for failure results)
	Width           int      // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	switch r.Type {
	case ResultFailure:
		return r.renderFailure(width)
	case ResultWarning:
		return r.renderDetails(width, WarningTitleStyle, WarningMarker, "WARNING", WarningColor)
	default:
		return r.renderDetails(width, SuccessTitleStyle, SuccessMarker, "SUCCESS", SuccessColor)
	}
}

func (r *Result) renderDetails(width int, titleStyle lipgloss.Style, marker, label string, color lipgloss.Color) string {
	lines := []string{
		"",
		titleStyle.Render(fmt.Sprintf("   %s  %s  ─  %s", marker, label, r.Title)),
		"",
	}

	for _, d := range r.Details {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", d.Key))
		valueStyled := ResultValueStyle.Render(d.Value)
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	return resultBoxStyle(width, color).Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure(width int) string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width), "")
	}

	return resultBoxStyle(width, ErrorColor).Render(strings.Join(lines, "\n"))
}

// renderTroubleshootingBox renders the inner troubleshooting box
func (r *Result) renderTroubleshootingBox(width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}

	innerWidth := width - 12 // Indent within outer box
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// FetchTroubleshooting returns user-facing tips for a failed list fetch.
// The tips depend on how the failure was classified.
func FetchTroubleshooting(err error, endpoint string) []string {
	apiErr, ok := listapi.AsAPIError(err)
	if !ok {
		return []string{
			"Run again with LISTCRAFT_LOG_LEVEL=debug for details",
			"Report persistent failures at " + urls.IssuesURL,
		}
	}

	switch apiErr.Type {
	case listapi.ErrTypeTimeout:
		return []string{
			"The service may be slow; raise --timeout and try again",
			"Check your network connection",
		}
	case listapi.ErrTypeDNS:
		return []string{
			"Check the hostname in " + endpoint,
			"Check your DNS settings or network connection",
		}
	case listapi.ErrTypeConnectionRefused:
		return []string{
			"Make sure the list service is running",
			"Check the port in " + endpoint,
		}
	case listapi.ErrTypeHTTP:
		if apiErr.Retryable {
			return []string{"The service reported a temporary problem; try again shortly"}
		}
		return []string{
			"Check the endpoint path: " + endpoint,
			"Use --endpoint or `listcraft config init` to point at another service",
		}
	case listapi.ErrTypeParse:
		return []string{
			"The endpoint did not return grouped list JSON",
			"Confirm " + endpoint + " is a list service",
		}
	default:
		return []string{
			"Check your network connection and try again",
			"Report persistent failures at " + urls.IssuesURL,
		}
	}
}
