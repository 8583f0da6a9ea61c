// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"errors"
	"strings"
	"testing"
)

func TestSampleResumeJSON(t *testing.T) {
	t.Parallel()

	data, err := SampleResume("")
	if err != nil {
		t.Fatalf("SampleResume: %v", err)
	}

	if !strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		t.Fatalf("default sample should be JSON: %s", data)
	}
}

func TestSampleResumeYAMLKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	data, err := SampleResume(InputFormatYAML)
	if err != nil {
		t.Fatalf("SampleResume: %v", err)
	}

	text := string(data)
	assertContains(t, text, "basics:\n  name: Alex Doe\n")
	assertNotContains(t, text, "{")

	basics := strings.Index(text, "basics:")
	references := strings.Index(text, "references:")
	if basics == -1 || references == -1 || basics > references {
		t.Fatalf("yaml sample must keep document key order:\n%s", text)
	}
}

func TestSampleResumeUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := SampleResume("toml"); !errors.Is(err, ErrUnknownSampleFormat) {
		t.Fatalf("SampleResume error = %v, want ErrUnknownSampleFormat", err)
	}

	if got := len(SampleFormats()); got != 2 {
		t.Fatalf("SampleFormats = %d, want 2", got)
	}
}
