package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/tranvictor/addrcard/l10n"
)

var (
	cardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	linkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
)

// visibleWidth measures the printable width of s, ignoring ANSI sequences.
// Same approach as the table renderer in ui.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// center pads line on both sides to width.
func center(line string, width int) string {
	gap := width - visibleWidth(line)
	if gap <= 0 {
		return line
	}
	left := gap / 2
	right := gap - left
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
}

// Render draws c as a bordered terminal card: network chrome on top, the
// scannable code in the middle, the truncated address below it, and the
// explorer hint at the bottom. A disabled explorer link renders dimmed with
// no URL line.
func Render(c Card) string {
	var lines []string

	title := c.NetworkName
	if c.NativeToken != "" {
		title += " (" + c.NativeToken + ")"
	}
	lines = append(lines, titleStyle.Render(title))

	if c.AccountName != "" {
		lines = append(lines, c.AccountName)
	}
	lines = append(lines, "")

	if c.QR != "" {
		for _, qrLine := range strings.Split(strings.TrimRight(c.QR, "\n"), "\n") {
			lines = append(lines, qrLine)
		}
		lines = append(lines, dimStyle.Render(l10n.Sprintf(l10n.KeyScanToReceive)))
		lines = append(lines, "")
	}

	short := c.Segments.Prefix + c.Segments.Suffix
	if c.Segments.Middle != "" {
		short = c.Segments.Prefix + dimStyle.Render("…") + c.Segments.Suffix
	}
	lines = append(lines,
		short,
		dimStyle.Render(c.Address),
		"",
	)

	if c.ExplorerLink.URL == "" {
		lines = append(lines, dimStyle.Render(c.ExplorerLink.Label))
	} else {
		lines = append(lines,
			c.ExplorerLink.Label,
			linkStyle.Render(c.ExplorerLink.URL),
		)
	}

	width := 0
	for _, line := range lines {
		if w := visibleWidth(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		lines[i] = center(line, width)
	}
	return cardBorder.Render(strings.Join(lines, "\n"))
}
