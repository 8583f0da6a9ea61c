// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"fmt"
	"os"
)

// defaultTitle is used when basics carry neither name nor label.
const defaultTitle = "Resume"

// renderer carries shared state of one render pass.
type renderer struct {
	out       lineBuffer
	locale    Locale
	countries CountryNamer
}

// section renders one top-level resume section into the shared buffer.
type section func(r *renderer, doc resume)

// sections lists section renderers in document order.
var sections = []section{
	(*renderer).renderBasics,
	(*renderer).renderWork,
	(*renderer).renderProjects,
	(*renderer).renderVolunteer,
	(*renderer).renderEducation,
	(*renderer).renderSkills,
	(*renderer).renderLanguages,
	(*renderer).renderInterests,
	(*renderer).renderAwards,
	(*renderer).renderCertificates,
	(*renderer).renderPublications,
	(*renderer).renderReferences,
}

// RenderFile reads resume JSON or YAML from file and renders markdown.
func RenderFile(path string, opt Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadResumeFile, err)
	}

	opt.Format = FormatForPath(path, opt.Format)
	return RenderBytes(data, opt)
}

// RenderBytes decodes resume JSON or YAML bytes and renders markdown.
func RenderBytes(data []byte, opt Options) (string, error) {
	document, err := ParseDocument(data, opt.Format)
	if err != nil {
		return "", err
	}

	return Render(document, opt), nil
}

// Render converts decoded resume document into markdown.
// Missing, blank or mistyped fields are skipped; nil document renders as empty resume.
// Nil opt.CountryNames resolves names with TextCountryNamer.
func Render(document any, opt Options) string {
	countries := opt.CountryNames
	if countries == nil {
		countries = TextCountryNamer{}
	}

	r := renderer{
		locale:    ParseLocale(string(opt.Locale)),
		countries: countries,
	}

	doc := parseResume(document)
	for _, render := range sections {
		render(&r, doc)
	}

	return r.out.String()
}

// presentLabel returns open-ended date range label for current locale.
func (r *renderer) presentLabel() string {
	return r.locale.presentLabel()
}

// dateRange formats start/end dates with selected separator.
func (r *renderer) dateRange(start, end, separator string) string {
	return formatDateRange(start, end, separator, r.presentLabel())
}

// sectionHeading writes level-2 section title followed by blank line.
func (r *renderer) sectionHeading(title string) {
	r.out.writeHeading(2, title)
	r.out.writeBlankLine()
}

// paragraph writes blank line and normalized text when text is not blank.
func (r *renderer) paragraph(text string) {
	if isBlank(text) {
		return
	}

	r.out.writeBlankLine()
	r.out.writeLine(normalizeText(text))
}

// appendURL suffixes header with bare url, or uses url alone when header is empty.
func appendURL(header, url string) string {
	if header == "" {
		return url
	}

	return header + " (" + url + ")"
}
