package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderASCII creates a text representation of the board.
// This is used for debugging, testing (golden outputs), and the CLI.
//
// Format:
//   - Header with dimensions
//   - Column indices across the top, row indices down the left
//   - Cells padded to the widest tile value
func RenderASCII[T comparable](b *Board[T]) string {
	var sb strings.Builder

	// Widest rendered value decides the cell width
	labels := make([]string, len(b.cells))
	cellW := len(fmt.Sprint(b.width - 1))
	for i, v := range b.cells {
		labels[i] = fmt.Sprint(v)
		if n := utf8.RuneCountInString(labels[i]); n > cellW {
			cellW = n
		}
	}
	rowW := len(fmt.Sprint(b.height - 1))

	sb.WriteString(fmt.Sprintf("Board %dx%d\n", b.width, b.height))

	// Column header
	sb.WriteString(strings.Repeat(" ", rowW+1))
	for col := 0; col < b.width; col++ {
		sb.WriteString(" ")
		sb.WriteString(pad(fmt.Sprint(col), cellW))
	}
	sb.WriteString("\n")

	for row := 0; row < b.height; row++ {
		sb.WriteString(pad(fmt.Sprint(row), rowW))
		sb.WriteString(" |")
		for col := 0; col < b.width; col++ {
			sb.WriteString(" ")
			sb.WriteString(pad(labels[row*b.width+col], cellW))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderEffects lists effects one per line.
func RenderEffects[T comparable](effects []Effect[T]) string {
	var sb strings.Builder
	for i, e := range effects {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, e))
	}
	return sb.String()
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
