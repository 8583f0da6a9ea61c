// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"fmt"
	"os"
	"strings"
)

// LocaleEnvVar is the environment variable consulted by LocaleFromEnv.
const LocaleEnvVar = "JSONRESUME_THEME_MARKDOWN_COUNTRY_LANG"

const (
	// LocaleEnglish renders "present" and English country names.
	LocaleEnglish Locale = "en"
	// LocaleGerman renders "heute" and German country names.
	LocaleGerman Locale = "de"
)

// Locale selects localized labels used while rendering.
type Locale string

const (
	// InputFormatAuto detects JSON or YAML from content or file extension.
	InputFormatAuto InputFormat = "auto"
	// InputFormatJSON decodes input as JSON.
	InputFormatJSON InputFormat = "json"
	// InputFormatYAML decodes input as YAML.
	InputFormatYAML InputFormat = "yaml"
)

// InputFormat selects resume document decoder.
type InputFormat string

// Options configures resume rendering.
type Options struct {
	// Locale selects present label and country name language.
	// Empty or unknown values render as English.
	Locale Locale

	// Format selects decoder for RenderBytes and RenderFile.
	// Empty value means InputFormatAuto.
	Format InputFormat

	// CountryNames resolves region codes into display names.
	// Nil uses TextCountryNamer; RawCountryCodes keeps uppercased codes.
	CountryNames CountryNamer
}

// DefaultOptions returns options with English locale and x/text country names.
func DefaultOptions() Options {
	return Options{
		Locale:       LocaleEnglish,
		Format:       InputFormatAuto,
		CountryNames: TextCountryNamer{},
	}
}

// ParseLocale maps free-form locale value into supported Locale.
// Only "de" selects German; anything else is English.
func ParseLocale(value string) Locale {
	if strings.ToLower(strings.TrimSpace(value)) == string(LocaleGerman) {
		return LocaleGerman
	}

	return LocaleEnglish
}

// IsKnownLocale reports whether value names a supported locale without fallback.
func IsKnownLocale(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(LocaleEnglish), string(LocaleGerman):
		return true
	default:
		return false
	}
}

// LocaleFromEnv reads LocaleEnvVar and maps it with ParseLocale.
func LocaleFromEnv() Locale {
	return ParseLocale(os.Getenv(LocaleEnvVar))
}

// presentLabel returns text used for open-ended date ranges.
func (locale Locale) presentLabel() string {
	if ParseLocale(string(locale)) == LocaleGerman {
		return "heute"
	}

	return "present"
}

// normalizeInputFormat validates input format and falls back to auto.
func normalizeInputFormat(format InputFormat) (InputFormat, error) {
	switch InputFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", InputFormatAuto:
		return InputFormatAuto, nil
	case InputFormatJSON:
		return InputFormatJSON, nil
	case InputFormatYAML, "yml":
		return InputFormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownInputFormat, format)
	}
}
