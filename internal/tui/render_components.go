package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/mireldan/crystalquest/internal/config"
	"github.com/mireldan/crystalquest/internal/util"
)

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// renderCard draws a bordered card with an optional title line.
func renderCard(title, body string, width int) string {
	theme := CurrentTheme
	content := body
	if title != "" {
		content = theme.Title.Render(title) + "\n" + body
	}
	card := theme.Card
	if width > 0 {
		card = card.Width(width)
	}
	return card.Render(content)
}

// renderBadge draws a filled badge.
func renderBadge(label string) string {
	return CurrentTheme.Badge.Render(label)
}

// renderTag draws a bracketed inline tag, cheaper than a bordered badge.
func renderTag(label string) string {
	return CurrentTheme.Accent.Render("[" + label + "]")
}

// renderBar draws a fixed-width progress bar for a ratio in [0,1].
func renderBar(ratio float64, width int) string {
	if width <= 0 {
		width = config.ProgressBarWidth
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	theme := CurrentTheme
	return theme.Accent.Render(strings.Repeat("█", filled)) +
		theme.Dim.Render(strings.Repeat("░", width-filled))
}

// renderMeter draws a labelled bar with an x/y count, as used for task progress.
func renderMeter(label string, cur, max, width int) string {
	ratio := 0.0
	if max > 0 {
		ratio = float64(cur) / float64(max)
	}
	theme := CurrentTheme
	counts := fmt.Sprintf("%d/%d", cur, max)
	return theme.Dim.Render(label) + " " + renderBar(ratio, width) + " " + theme.Text.Render(counts)
}

// renderCrystals renders a crystal amount with the sparkle glyph.
func renderCrystals(amount int64) string {
	return CurrentTheme.Accent.Render("✦ " + util.FormatCrystals(amount))
}

// renderKeyHelp renders a footer help line from key/action pairs.
func renderKeyHelp(pairs ...string) string {
	theme := CurrentTheme
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, theme.Selected.Render(pairs[i])+theme.Help.Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, theme.Help.Render("  ·  "))
}
