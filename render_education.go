// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import "strings"

// renderEducation writes institutions with bold area, italic dates, study type and courses.
func (r *renderer) renderEducation(doc resume) {
	if len(doc.Education) == 0 {
		return
	}

	r.sectionHeading("Education")
	for _, item := range doc.Education {
		if item.Institution != "" {
			r.out.writeHeading(3, normalizeText(item.Institution))
		}

		if item.Area != "" {
			r.out.writeLine("**" + normalizeText(item.Area) + "**")
		}

		if dates := r.dateRange(item.StartDate, item.EndDate, rangeHyphen); dates != "" {
			r.out.writeLine("*" + normalizeText(dates) + "*")
		}

		if item.StudyType != "" {
			r.out.writeLine(normalizeText(item.StudyType))
		}

		if courses := joinNormalized(item.Courses); courses != "" {
			r.out.writeLine(courses)
		}

		if item.GPA != "" {
			r.out.writeBlankLine()
			r.out.writeKeyValue("GPA", item.GPA)
		}

		r.out.writeBlankLine()
	}
}

// renderSkills writes skill headings with one comma-separated keyword line.
func (r *renderer) renderSkills(doc resume) {
	if len(doc.Skills) == 0 {
		return
	}

	r.sectionHeading("Skills")
	for _, item := range doc.Skills {
		if header := joinNonBlank(titleDash, item.Name, item.Level); header != "" {
			r.out.writeHeading(3, normalizeText(header))
		}

		if keywords := joinNormalized(item.Keywords); keywords != "" {
			r.out.writeLine(keywords)
		}

		r.out.writeBlankLine()
	}
}

// renderLanguages writes one "language — fluency" bullet per entry.
func (r *renderer) renderLanguages(doc resume) {
	if len(doc.Languages) == 0 {
		return
	}

	r.sectionHeading("Languages")
	for _, item := range doc.Languages {
		if value := joinNonBlank(titleDash, item.Language, item.Fluency); value != "" {
			r.out.writeLine("- " + normalizeText(value))
		}
	}

	r.out.writeBlankLine()
}

// renderInterests writes one bullet per interest with optional keyword list.
func (r *renderer) renderInterests(doc resume) {
	if len(doc.Interests) == 0 {
		return
	}

	r.sectionHeading("Interests")
	for _, item := range doc.Interests {
		if item.Name == "" {
			continue
		}

		if keywords := joinNormalized(item.Keywords); keywords != "" {
			r.out.writeLine("- **" + normalizeText(item.Name) + "**: " + keywords)
			continue
		}

		r.out.writeLine("- " + normalizeText(item.Name))
	}

	r.out.writeBlankLine()
}

// joinNormalized joins non-blank items with comma after text normalization.
func joinNormalized(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if isBlank(item) {
			continue
		}

		out = append(out, normalizeText(trimText(item)))
	}

	return strings.Join(out, ", ")
}
