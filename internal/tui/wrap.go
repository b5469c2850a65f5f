package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText wraps text at the given width, preserving existing newlines.
// Uses runewidth for proper CJK character width handling.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for i, paragraph := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapParagraph(paragraph, width))
	}
	return result.String()
}

// wrapParagraph wraps a single paragraph (no newlines) at the given width.
// ASCII words are kept together when they fit on a line of their own.
func wrapParagraph(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}

	var result strings.Builder
	var lineWidth int

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		rw := runewidth.RuneWidth(r)

		if lineWidth+rw > width && lineWidth > 0 {
			result.WriteString("\n")
			lineWidth = 0
		}

		if isASCIIWordChar(r) && lineWidth > 0 && !isASCIIWordChar(runes[i-1]) {
			wordWidth := 0
			for j := i; j < len(runes) && isASCIIWordChar(runes[j]); j++ {
				wordWidth += runewidth.RuneWidth(runes[j])
			}

			if lineWidth+wordWidth > width && wordWidth <= width {
				result.WriteString("\n")
				lineWidth = 0
			}
		}

		// Drop the space a break landed on
		if r == ' ' && lineWidth == 0 && result.Len() > 0 {
			continue
		}

		result.WriteRune(r)
		lineWidth += rw
	}

	return result.String()
}

// isASCIIWordChar returns true if the rune is an ASCII letter, digit, or common punctuation.
func isASCIIWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}
