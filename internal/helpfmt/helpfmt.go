// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package helpfmt contains the column layout primitives used to render command help.
// Output is plain text; the only decoration is an optional bold heading, applied
// when the terminal supports it.
package helpfmt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/clif/internal/color"
)

const (
	firstColumnWidth  = 30
	secondColumnWidth = 56

	// maxFirstColumn leaves room for the two leading spaces and the ellipsis.
	maxFirstColumn = 26
	lineWidth      = 88
	maxCellLines   = 4

	ellipsis = "..."
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// sanitize collapses all whitespace runs, including newlines, to single spaces.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// OneColumn word-wraps text to the full line width.
func OneColumn(text string) string {
	var (
		out strings.Builder
		buf string
	)

	for _, word := range strings.Fields(text) {
		switch {
		case len(buf)+len(word) > lineWidth:
			out.WriteString(buf)
			out.WriteString("\n")

			buf = word
		case len(buf) == 0:
			buf = word
		default:
			buf += " " + word
		}
	}

	out.WriteString(buf)

	return out.String()
}

// TwoColumn renders one two-column row: a short left cell (a command name or
// argument forms) and a wrapped right cell (its help text). The left cell is
// truncated with an ellipsis when it does not fit; the right cell wraps onto
// continuation lines aligned with the column, up to maxCellLines lines.
func TwoColumn(first, second string) string {
	firstOut := "  " + sanitize(first)
	if len(firstOut) > maxFirstColumn {
		firstOut = "  " + firstOut[2:maxFirstColumn-len(ellipsis)] + ellipsis
	}

	out := strings.Builder{}
	out.WriteString(firstOut)

	if second == "" {
		return out.String()
	}

	out.WriteString(strings.Repeat(" ", firstColumnWidth-len(firstOut)))

	var (
		buf     string
		wrapped bool
	)

	lines := 1

	for _, word := range strings.Fields(second) {
		switch {
		case len(buf)+len(word) > secondColumnWidth:
			wrapped = true

			out.WriteString(buf)
			out.WriteString("\n")
			out.WriteString(strings.Repeat(" ", firstColumnWidth))

			buf = word

			lines++
			if lines >= maxCellLines {
				buf += ellipsis

				out.WriteString(buf)

				return out.String()
			}
		case len(buf) == 0:
			buf = word
		default:
			buf += " " + word
		}
	}

	out.WriteString(buf)

	// A wrapped row gets a separating newline so the next row does not
	// visually run into the continuation lines.
	if wrapped {
		out.WriteString("\n")
	}

	return out.String()
}

// Summary reduces a help text to a single bounded line: the first line of the
// text with whitespace collapsed, truncated with an ellipsis when it exceeds
// the second column width. It is used for child command listings.
func Summary(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}

	text = sanitize(text)
	if len(text) > secondColumnWidth {
		text = text[:secondColumnWidth-len(ellipsis)] + ellipsis
	}

	return text
}

// Heading renders a help section heading, bold when color output is enabled.
func Heading(text string) string {
	if !color.Enabled() {
		return text
	}

	return headingStyle.Render(text)
}
