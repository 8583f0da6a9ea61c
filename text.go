// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"strings"
	"unicode"
)

const (
	// rangeArrow separates start and end dates in experience sections.
	rangeArrow = " → "
	// rangeHyphen separates start and end dates in education section.
	rangeHyphen = " - "
	// titleDash joins paired values such as name and label.
	titleDash = " — "
)

// byteOrderMark is trimmed together with unicode whitespace.
const byteOrderMark = '\ufeff'

// trimText strips unicode whitespace and byte order marks from both ends.
func trimText(text string) string {
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == byteOrderMark
	})
}

// isBlank reports whether text is empty after trimText.
func isBlank(text string) bool {
	return trimText(text) == ""
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeText unifies line endings and squashes tab and no-break space runs into one space.
// Markdown syntax characters are passed through untouched.
func normalizeText(text string) string {
	text = normalizeLineEndings(text)
	if !strings.ContainsAny(text, "\t\u00a0") {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))

	inRun := false
	for _, r := range text {
		if r == '\t' || r == '\u00a0' {
			if !inRun {
				out.WriteByte(' ')
			}

			inRun = true
			continue
		}

		inRun = false
		out.WriteRune(r)
	}

	return out.String()
}

// joinNonBlank trims parts, drops blank ones and joins the rest with separator.
func joinNonBlank(separator string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = trimText(part)
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return strings.Join(out, separator)
}

// displayURL strips http(s) scheme and one trailing slash for link labels.
func displayURL(url string) string {
	url = trimText(url)
	lower := strings.ToLower(url)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, scheme) {
			url = url[len(scheme):]
			break
		}
	}

	return strings.TrimSuffix(url, "/")
}

// linkLabel renders markdown link when url is set, bare label otherwise.
func linkLabel(label, url string) string {
	label = trimText(label)
	if label == "" {
		return ""
	}

	url = trimText(url)
	if url == "" {
		return label
	}

	return "[" + label + "](" + url + ")"
}

// formatDateRange joins start and end dates, substituting present label for missing end.
// Missing start yields empty range.
func formatDateRange(start, end, separator, present string) string {
	start = trimText(start)
	if start == "" {
		return ""
	}

	end = trimText(end)
	if end == "" {
		end = present
	}

	return joinNonBlank(separator, start, end)
}

// trimTrailingSpace strips trailing unicode whitespace from one line.
func trimTrailingSpace(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRightFunc(value, unicode.IsSpace)
	return value + "\n"
}
