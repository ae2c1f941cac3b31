package display

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/duelist/internal/card"
)

// CardInfo returns the labelled detail lines for a card, with the
// description wrapped to width.
func CardInfo(c *card.Card, width int) []string {
	label := colorize.New(colorize.FgCyan).SprintFunc()
	value := colorize.New(colorize.FgHiWhite).SprintFunc()

	lines := []string{
		label("Card:      ") + value(c.Name),
		label("ID:        ") + value(c.ID),
		label("Type:      ") + value(c.Type),
		label("Race:      ") + value(c.Race),
	}
	if c.Archetype != "" {
		lines = append(lines, label("Archetype: ")+value(c.Archetype))
	}
	lines = append(lines, label("Price:     ")+value(FormatPrice(c.Price)))

	if c.Description != "" {
		lines = append(lines, "")
		lines = append(lines, label("Description:"))
		lines = append(lines, WrapText(c.Description, width)...)
	}
	return lines
}

// SideBySide prints art on the left and info on the right, padding the art
// column to its widest visible line plus spacing.
func SideBySide(w io.Writer, art string, info []string, spacing int) {
	artLines := []string{}
	if art != "" {
		artLines = strings.Split(strings.TrimRight(art, "\n"), "\n")
	}

	artWidth := 0
	for _, line := range artLines {
		artWidth = max(artWidth, len([]rune(StripAnsi(line))))
	}
	infoCol := artWidth + spacing
	if artWidth == 0 {
		infoCol = 0
	}

	fmt.Fprintln(w)
	for i := 0; i < max(len(artLines), len(info)); i++ {
		// 2-character left padding
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			fmt.Fprint(w, strings.Repeat(" ", infoCol-len([]rune(StripAnsi(artLines[i])))))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoCol))
		}
		if i < len(info) {
			fmt.Fprint(w, info[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// WrapText wraps text to a specified width
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
