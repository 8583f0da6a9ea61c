// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"basics": map[string]any{
			"location": map[string]any{"countryCode": "DE"},
			"name":     "Alex",
		},
	}

	if got := lookup(doc, "basics", "location", "countryCode"); got != "DE" {
		t.Fatalf("lookup countryCode = %#v", got)
	}

	if got := lookup(doc, "basics", "name", "first"); got != nil {
		t.Fatalf("lookup through string = %#v, want nil", got)
	}

	if got := lookup(nil, "basics"); got != nil {
		t.Fatalf("lookup on nil = %#v, want nil", got)
	}

	if got := lookup(doc); !reflect.DeepEqual(got, doc) {
		t.Fatalf("lookup without path must return root")
	}
}

func TestParseDocumentYAMLScalars(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(`
basics:
  name: Alex Doe
  phone: 0301234567
education:
  - startDate: 2016
    endDate: 2020-06-30
    gpa: 1.7
    courses: [Go, 42, true, ~]
meta: &shared
  visible: true
copy: *shared
`), InputFormatAuto)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if got := lookup(doc, "basics", "phone"); got != "0301234567" {
		t.Fatalf("phone = %#v, want source text", got)
	}

	education, ok := lookup(doc, "education").([]any)
	if !ok || len(education) != 1 {
		t.Fatalf("education = %#v", lookup(doc, "education"))
	}

	entry := education[0].(map[string]any)
	want := map[string]any{
		"startDate": "2016",
		"endDate":   "2020-06-30",
		"gpa":       "1.7",
		"courses":   []any{"Go", "42", true, nil},
	}

	if !reflect.DeepEqual(entry, want) {
		t.Fatalf("education entry mismatch\ngot:  %#v\nwant: %#v", entry, want)
	}

	if got := lookup(doc, "copy", "visible"); got != true {
		t.Fatalf("alias value = %#v, want true", got)
	}
}

func TestParseDocumentSniffsJSON(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte("\xef\xbb\xbf  {\"basics\": {\"name\": \"Alex\"}, \"n\": 3}"), "")
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if got := lookup(doc, "n"); got != float64(3) {
		t.Fatalf("json number = %#v, want float64", got)
	}
}

func TestParseDocumentEmptyYAML(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte("# only a comment\n"), InputFormatYAML)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if doc != nil {
		t.Fatalf("empty yaml = %#v, want nil", doc)
	}
}

func TestParseDocumentYAMLMergeKey(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(`
company: &company
  name: ACME
  url: https://acme.example
remote: &remote
  location: Remote
  name: Ignored
work:
  - <<: *company
    position: Engineer
  - <<: [*company, *remote]
    url: https://acme.example/jobs
`), InputFormatYAML)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	work, ok := lookup(doc, "work").([]any)
	if !ok || len(work) != 2 {
		t.Fatalf("work = %#v", lookup(doc, "work"))
	}

	want := []any{
		map[string]any{
			"name":     "ACME",
			"url":      "https://acme.example",
			"position": "Engineer",
		},
		map[string]any{
			"name":     "ACME",
			"url":      "https://acme.example/jobs",
			"location": "Remote",
		},
	}

	if !reflect.DeepEqual(work, want) {
		t.Fatalf("merged work mismatch\ngot:  %#v\nwant: %#v", work, want)
	}

	md, err := RenderBytes([]byte("base: &b\n  name: ACME\nwork:\n  - <<: *b\n    position: Eng\n"), Options{})
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}

	assertContains(t, md, "### Eng\n**ACME**\n")
}

func TestParseDocumentYAMLMergeKeyRejectsScalar(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte("work:\n  - <<: plain\n    position: Eng\n"), InputFormatYAML)
	if !errors.Is(err, ErrDecodeResume) || !errors.Is(err, errYAMLMergeValue) {
		t.Fatalf("ParseDocument error = %v, want merge value error", err)
	}
}

func TestParseDocumentYAMLAliasBomb(t *testing.T) {
	t.Parallel()

	var data strings.Builder
	data.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
	for level := 1; level <= 8; level++ {
		prev := "*a" + string(rune('0'+level-1))
		name := "a" + string(rune('0'+level))
		data.WriteString(name + ": &" + name + " [")
		for index := 0; index < 10; index++ {
			if index > 0 {
				data.WriteString(", ")
			}

			data.WriteString(prev)
		}

		data.WriteString("]\n")
	}

	_, err := ParseDocument([]byte(data.String()), InputFormatYAML)
	if !errors.Is(err, ErrDecodeResume) {
		t.Fatalf("ParseDocument error = %v, want ErrDecodeResume", err)
	}
}

func TestParseResumeCoercesSequences(t *testing.T) {
	t.Parallel()

	doc := parseResume(map[string]any{
		"work": []any{
			map[string]any{
				"position":   " Engineer ",
				"highlights": []any{"  a  ", 2.5, false, nil, map[string]any{}, []any{"x"}, ""},
			},
			"skip me",
		},
	})

	if len(doc.Work) != 1 {
		t.Fatalf("work entries = %d, want 1", len(doc.Work))
	}

	if doc.Work[0].Position != "Engineer" {
		t.Fatalf("position = %q, want trimmed", doc.Work[0].Position)
	}

	want := []string{"a", "2.5", "false"}
	if !reflect.DeepEqual(doc.Work[0].Highlights, want) {
		t.Fatalf("highlights = %#v, want %#v", doc.Work[0].Highlights, want)
	}
}

func TestParseResumePrefersGPAOverScore(t *testing.T) {
	t.Parallel()

	doc := parseResume(map[string]any{
		"education": []any{
			map[string]any{"gpa": "3.9", "score": "1.0"},
			map[string]any{"gpa": " ", "score": "1.3"},
		},
	})

	if doc.Education[0].GPA != "3.9" || doc.Education[1].GPA != "1.3" {
		t.Fatalf("gpa = %q, %q", doc.Education[0].GPA, doc.Education[1].GPA)
	}
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path   string
		format InputFormat
		want   InputFormat
	}{
		{path: "resume.json", format: "", want: InputFormatJSON},
		{path: "resume.YAML", format: InputFormatAuto, want: InputFormatYAML},
		{path: "resume.yml", format: "", want: InputFormatYAML},
		{path: "resume.txt", format: "", want: InputFormatAuto},
		{path: "resume.json", format: InputFormatYAML, want: InputFormatYAML},
	}

	for _, tc := range cases {
		if got := FormatForPath(tc.path, tc.format); got != tc.want {
			t.Fatalf("FormatForPath(%q, %q) = %q, want %q", tc.path, tc.format, got, tc.want)
		}
	}
}
