// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"strings"
	"unicode"
)

const (
	markerLocation = "📍"
	markerEmail    = "✉️"
	markerPhone    = "📞"
	markerURL      = "🔗"
	markerProfile  = "👤"
)

// renderBasics writes document title, summary and contact bullets.
// Title is always written, falling back to "Resume".
func (r *renderer) renderBasics(doc resume) {
	b := doc.Basics

	title := joinNonBlank(titleDash, b.Name, b.Label)
	if title == "" {
		title = defaultTitle
	}

	r.out.writeHeading(1, normalizeText(title))
	r.paragraph(b.Summary)

	contacts := r.contactLines(b)
	if len(contacts) == 0 {
		return
	}

	r.out.writeBlankLine()
	r.out.writeBullets(contacts)
}

// contactLines builds emoji-prefixed contact items in fixed order.
func (r *renderer) contactLines(b basics) []string {
	var out []string

	country := resolveCountryName(r.countries, r.locale, b.Location.CountryCode)
	place := joinNonBlank(", ",
		b.Location.Address,
		b.Location.PostalCode,
		b.Location.City,
		b.Location.Region,
		country,
	)
	if place != "" {
		out = append(out, markerLocation+" "+normalizeText(place))
	}

	if b.Email != "" {
		out = append(out, markerEmail+" ["+normalizeText(b.Email)+"](mailto:"+b.Email+")")
	}

	if b.Phone != "" {
		out = append(out, markerPhone+" ["+normalizeText(b.Phone)+"](tel:"+telTarget(b.Phone)+")")
	}

	if b.URL != "" {
		out = append(out, markerURL+" ["+normalizeText(urlLabel(b.URL))+"]("+b.URL+")")
	}

	for _, p := range b.Profiles {
		if text := profileText(p); text != "" {
			out = append(out, markerProfile+" "+text)
		}
	}

	return out
}

// urlLabel returns shortened url for link text, or url itself when nothing remains.
func urlLabel(url string) string {
	if label := displayURL(url); label != "" {
		return label
	}

	return url
}

// profileText renders one social profile as link or plain text.
func profileText(p profile) string {
	switch {
	case p.URL != "":
		text := "[" + normalizeText(urlLabel(p.URL)) + "](" + p.URL + ")"
		if p.Network != "" {
			text += " (" + normalizeText(p.Network) + ")"
		}

		return text
	case p.Username != "" && p.Network != "":
		return normalizeText(p.Username) + " (" + normalizeText(p.Network) + ")"
	case p.Username != "":
		return normalizeText(p.Username)
	default:
		return normalizeText(p.Network)
	}
}

// telTarget strips whitespace from phone number for tel link destination.
func telTarget(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, phone)
}
