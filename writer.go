// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import "strings"

// lineBuffer accumulates markdown lines during one render pass.
type lineBuffer struct {
	lines []string
}

// writeLine appends one line of text.
func (buffer *lineBuffer) writeLine(line string) {
	buffer.lines = append(buffer.lines, line)
}

// writeBlankLine appends one empty line.
func (buffer *lineBuffer) writeBlankLine() {
	buffer.lines = append(buffer.lines, "")
}

// writeHeading appends ATX heading of selected level.
func (buffer *lineBuffer) writeHeading(level int, title string) {
	buffer.writeLine(strings.Repeat("#", level) + " " + title)
}

// writeKeyValue appends "- **label**: value" bullet when value is not blank.
func (buffer *lineBuffer) writeKeyValue(label, value string) {
	if isBlank(value) {
		return
	}

	buffer.writeLine("- **" + label + "**: " + normalizeText(trimText(value)))
}

// writeBullets appends one bullet per non-blank item and a blank line after the list.
// Lists without non-blank items write nothing.
func (buffer *lineBuffer) writeBullets(items []string) int {
	written := 0
	for _, item := range items {
		if isBlank(item) {
			continue
		}

		buffer.writeLine("- " + normalizeText(trimText(item)))
		written++
	}

	if written > 0 {
		buffer.writeBlankLine()
	}

	return written
}

// String serializes buffer with trailing whitespace stripped from every line
// and exactly one trailing newline.
func (buffer *lineBuffer) String() string {
	var out strings.Builder
	for index, line := range buffer.lines {
		if index > 0 {
			out.WriteByte('\n')
		}

		for lineIndex, part := range strings.Split(line, "\n") {
			if lineIndex > 0 {
				out.WriteByte('\n')
			}

			out.WriteString(trimTrailingSpace(part))
		}
	}

	return ensureTrailingNewline(out.String())
}
