// Package output provides terminal output utilities for streamlens.
//
// Table rendering uses ASCII characters with ANSI color codes for the
// header row; colors are only emitted when stdout is a TTY and NO_COLOR
// is unset.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGray  = "\033[90m"
)

// maxColWidth caps a single column so one long description cell cannot
// push the rest of the table off screen.
const maxColWidth = 60

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// RenderTable renders result rows as a fixed-width table with a header
// rule. Column widths are derived from the content. Empty input renders a
// placeholder line instead of a bare header.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return "No matching records.\n"
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColWidth {
			widths[i] = maxColWidth
		}
	}

	var sb strings.Builder

	for i, h := range headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(pad(colorize(colorBold, h), h, widths[i]))
	}
	sb.WriteString("\n")

	total := 0
	for i, w := range widths {
		if i > 0 {
			total += 2
		}
		total += w
	}
	sb.WriteString(strings.Repeat("─", total))
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				sb.WriteString("  ")
			}
			cell = truncate(cell, widths[i])
			sb.WriteString(pad(cell, cell, widths[i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderSectionHeader renders the title line printed above each report in
// combined output.
func RenderSectionHeader(title string) string {
	return fmt.Sprintf("\n%s\n%s\n", colorize(colorBold, title), colorize(colorGray, strings.Repeat("=", len(title))))
}

// FormatCount formats a record count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// pad right-pads colored text to width based on the visible (uncolored)
// length, since ANSI escapes take no columns.
func pad(colored, visible string, width int) string {
	gap := width - len([]rune(visible))
	if gap <= 0 {
		return colored
	}
	return colored + strings.Repeat(" ", gap)
}

// truncate shortens a string to maxLen runes, appending "..." when cut.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
