// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"testing"
)

// BenchmarkParseDocument measures resume JSON decoding cost.
func BenchmarkParseDocument(b *testing.B) {
	data := readBenchmarkSample(b, InputFormatJSON)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseDocument(data, InputFormatJSON); err != nil {
			b.Fatalf("ParseDocument: %v", err)
		}
	}
}

// BenchmarkParseDocumentYAML measures resume YAML decoding cost.
func BenchmarkParseDocumentYAML(b *testing.B) {
	data := readBenchmarkSample(b, InputFormatYAML)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseDocument(data, InputFormatYAML); err != nil {
			b.Fatalf("ParseDocument: %v", err)
		}
	}
}

// BenchmarkRender measures in-memory render of decoded sample document.
func BenchmarkRender(b *testing.B) {
	doc, err := ParseDocument(readBenchmarkSample(b, InputFormatJSON), InputFormatJSON)
	if err != nil {
		b.Fatalf("ParseDocument: %v", err)
	}

	opt := DefaultOptions()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if out := Render(doc, opt); out == "" {
			b.Fatal("empty render output")
		}
	}
}

// BenchmarkRenderRawCountryCodes measures render flow without CLDR lookups.
func BenchmarkRenderRawCountryCodes(b *testing.B) {
	doc, err := ParseDocument(readBenchmarkSample(b, InputFormatJSON), InputFormatJSON)
	if err != nil {
		b.Fatalf("ParseDocument: %v", err)
	}

	opt := Options{CountryNames: RawCountryCodes{}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if out := Render(doc, opt); out == "" {
			b.Fatal("empty render output")
		}
	}
}

func readBenchmarkSample(b *testing.B, format InputFormat) []byte {
	b.Helper()

	data, err := SampleResume(format)
	if err != nil {
		b.Fatalf("SampleResume: %v", err)
	}

	return data
}
