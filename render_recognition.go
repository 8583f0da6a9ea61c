// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

// renderAwards writes "title — awarder" headings with date and summary.
func (r *renderer) renderAwards(doc resume) {
	if len(doc.Awards) == 0 {
		return
	}

	r.sectionHeading("Awards")
	for _, item := range doc.Awards {
		if header := joinNonBlank(titleDash, item.Title, item.Awarder); header != "" {
			r.out.writeHeading(3, normalizeText(header))
		}

		if item.Date != "" {
			r.out.writeLine(normalizeText(item.Date))
		}

		r.paragraph(item.Summary)
		r.out.writeBlankLine()
	}
}

// renderCertificates writes one bullet per certificate with date as nested bullet.
func (r *renderer) renderCertificates(doc resume) {
	if len(doc.Certificates) == 0 {
		return
	}

	r.sectionHeading("Certificates")
	for _, item := range doc.Certificates {
		header := joinNonBlank(titleDash, linkLabel(item.Name, item.URL), item.Issuer)
		if item.Name == "" && item.URL != "" {
			header = appendURL(header, item.URL)
		}

		if header == "" {
			continue
		}

		r.out.writeLine("- " + normalizeText(header))
		if item.Date != "" {
			r.out.writeLine("  - " + normalizeText(item.Date))
		}
	}

	r.out.writeBlankLine()
}

// renderPublications writes "name — publisher" headings with optional url suffix.
func (r *renderer) renderPublications(doc resume) {
	if len(doc.Publications) == 0 {
		return
	}

	r.sectionHeading("Publications")
	for _, item := range doc.Publications {
		header := joinNonBlank(titleDash, item.Name, item.Publisher)
		if item.URL != "" {
			header = appendURL(header, item.URL)
		}

		if header != "" {
			r.out.writeHeading(3, normalizeText(header))
		}

		if item.ReleaseDate != "" {
			r.out.writeLine(normalizeText(item.ReleaseDate))
		}

		r.paragraph(item.Summary)
		r.out.writeBlankLine()
	}
}

// renderReferences writes referee name headings with reference text.
func (r *renderer) renderReferences(doc resume) {
	if len(doc.References) == 0 {
		return
	}

	r.sectionHeading("References")
	for _, item := range doc.References {
		if item.Name != "" {
			r.out.writeHeading(3, normalizeText(item.Name))
		}

		r.paragraph(item.Reference)
		r.out.writeBlankLine()
	}
}
