// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

/*
Package resumemd renders JSON Resume documents as Markdown.

Rendering is a pure function of the decoded document and Options. Every
field is optional: missing, blank or mistyped values are skipped, and
sections without entries are omitted. Output uses ATX headings of levels
1 to 3, ends with exactly one newline and never carries trailing spaces.

Render from file (JSON or YAML by extension):

	md, err := resumemd.RenderFile("resume.json", resumemd.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Print(md)

Render already decoded document with German labels:

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	md := resumemd.Render(doc, resumemd.Options{Locale: resumemd.LocaleGerman})

Keep the legacy JSONRESUME_THEME_MARKDOWN_COUNTRY_LANG behavior:

	md := resumemd.Render(doc, resumemd.Options{Locale: resumemd.LocaleFromEnv()})

Disable country name lookup and keep raw region codes:

	md := resumemd.Render(doc, resumemd.Options{CountryNames: resumemd.RawCountryCodes{}})

Print built-in sample resume as YAML:

	data, err := resumemd.SampleResume(resumemd.InputFormatYAML)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
*/
package resumemd
