// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	// errNoRegionName is returned when locale data has no display name for region.
	errNoRegionName = errors.New("no region display name")
	// errRegionCodeFormat is returned for codes other than two ASCII letters.
	errRegionCodeFormat = errors.New("region code must be two ASCII letters")
)

// CountryNamer resolves ISO 3166-1 region codes into localized display names.
type CountryNamer interface {
	CountryName(locale Locale, code string) (string, error)
}

// TextCountryNamer resolves region names from golang.org/x/text CLDR tables.
type TextCountryNamer struct{}

// CountryName returns region display name in selected locale.
// Only ISO 3166-1 alpha-2 codes are accepted; alpha-3 and numeric codes are rejected.
func (TextCountryNamer) CountryName(locale Locale, code string) (string, error) {
	code = trimText(code)
	if !isAlpha2Code(code) {
		return "", fmt.Errorf("%w: %q", errRegionCodeFormat, code)
	}

	region, err := language.ParseRegion(code)
	if err != nil {
		return "", err
	}

	namer := display.Regions(localeTag(locale))
	if namer == nil {
		return "", fmt.Errorf("%w: locale %q", errNoRegionName, locale)
	}

	name := namer.Name(region)
	if name == "" {
		return "", fmt.Errorf("%w: %s", errNoRegionName, region)
	}

	return name, nil
}

// isAlpha2Code reports whether code is exactly two ASCII letters.
func isAlpha2Code(code string) bool {
	if len(code) != 2 {
		return false
	}

	for index := 0; index < len(code); index++ {
		c := code[index]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}

	return true
}

// RawCountryCodes disables name resolution; every code renders as-is.
type RawCountryCodes struct{}

// CountryName always fails so callers keep raw region code.
func (RawCountryCodes) CountryName(_ Locale, code string) (string, error) {
	return "", fmt.Errorf("%w: %s", errNoRegionName, code)
}

// localeTag maps supported locale into x/text language tag.
func localeTag(locale Locale) language.Tag {
	if ParseLocale(string(locale)) == LocaleGerman {
		return language.German
	}

	return language.English
}

// resolveCountryName returns display name for region code or uppercased code on any failure.
func resolveCountryName(namer CountryNamer, locale Locale, code string) (name string) {
	region := strings.ToUpper(trimText(code))
	if region == "" || namer == nil {
		return region
	}

	defer func() {
		if recover() != nil {
			name = region
		}
	}()

	resolved, err := namer.CountryName(locale, region)
	if err != nil {
		return region
	}

	resolved = trimText(resolved)
	if resolved == "" || resolved == region {
		return region
	}

	return resolved
}
