// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

// renderWork writes work history. Heading prefers position; company name moves
// to a bold line when both are present.
func (r *renderer) renderWork(doc resume) {
	if len(doc.Work) == 0 {
		return
	}

	r.sectionHeading("Work Experience")
	for _, item := range doc.Work {
		var header string
		switch {
		case item.Position != "":
			header = item.Position
		case item.Name != "":
			header = linkLabel(item.Name, item.URL)
		default:
			header = item.URL
		}

		if header != "" {
			r.out.writeHeading(3, normalizeText(header))
		}

		if item.Position != "" && item.Name != "" {
			r.out.writeLine("**" + normalizeText(linkLabel(item.Name, item.URL)) + "**")
		}

		if dates := r.dateRange(item.StartDate, item.EndDate, rangeArrow); dates != "" {
			r.out.writeBlankLine()
			r.out.writeLine("*" + normalizeText(dates) + "*")
		}

		if item.Location != "" {
			r.out.writeLine(normalizeText(item.Location))
		}

		r.paragraph(item.Summary)
		r.out.writeBlankLine()
		r.out.writeBullets(item.Highlights)
	}
}

// renderProjects writes projects with linked names and plain date lines.
func (r *renderer) renderProjects(doc resume) {
	if len(doc.Projects) == 0 {
		return
	}

	r.sectionHeading("Projects")
	for _, item := range doc.Projects {
		header := "Project"
		switch {
		case item.Name != "":
			header = linkLabel(item.Name, item.URL)
		case item.URL != "":
			header = appendURL(header, item.URL)
		}

		r.out.writeHeading(3, normalizeText(header))

		if dates := r.dateRange(item.StartDate, item.EndDate, rangeArrow); dates != "" {
			r.out.writeLine(normalizeText(dates))
		}

		r.paragraph(item.Description)
		r.out.writeBlankLine()
		r.out.writeBullets(item.Highlights)
	}
}

// renderVolunteer writes volunteer roles as "position @ organization" headings.
func (r *renderer) renderVolunteer(doc resume) {
	if len(doc.Volunteer) == 0 {
		return
	}

	r.sectionHeading("Volunteer")
	for _, item := range doc.Volunteer {
		header := joinNonBlank(" @ ", item.Position, linkLabel(item.Organization, item.URL))
		if item.Organization == "" && item.URL != "" {
			header = appendURL(header, item.URL)
		}

		if header != "" {
			r.out.writeHeading(3, normalizeText(header))
		}

		if dates := r.dateRange(item.StartDate, item.EndDate, rangeArrow); dates != "" {
			r.out.writeLine(normalizeText(dates))
		}

		r.paragraph(item.Summary)
		r.out.writeBlankLine()
		r.out.writeBullets(item.Highlights)
	}
}
