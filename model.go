// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import "strconv"

// resume is the fully-optional typed view of one resume document.
// Every string is trimmed; blank or mistyped values are empty.
type resume struct {
	Basics       basics
	Work         []workEntry
	Projects     []projectEntry
	Volunteer    []volunteerEntry
	Education    []educationEntry
	Skills       []skillEntry
	Languages    []languageEntry
	Interests    []interestEntry
	Awards       []awardEntry
	Certificates []certificateEntry
	Publications []publicationEntry
	References   []referenceEntry
}

type basics struct {
	Name     string
	Label    string
	Summary  string
	Email    string
	Phone    string
	URL      string
	Location location
	Profiles []profile
}

type location struct {
	Address     string
	PostalCode  string
	City        string
	Region      string
	CountryCode string
}

type profile struct {
	Network  string
	Username string
	URL      string
}

type workEntry struct {
	Name       string
	Position   string
	URL        string
	StartDate  string
	EndDate    string
	Location   string
	Summary    string
	Highlights []string
}

type projectEntry struct {
	Name        string
	Description string
	URL         string
	StartDate   string
	EndDate     string
	Highlights  []string
}

type volunteerEntry struct {
	Organization string
	Position     string
	URL          string
	StartDate    string
	EndDate      string
	Summary      string
	Highlights   []string
}

type educationEntry struct {
	Institution string
	Area        string
	StudyType   string
	StartDate   string
	EndDate     string
	GPA         string
	Courses     []string
}

type skillEntry struct {
	Name     string
	Level    string
	Keywords []string
}

type languageEntry struct {
	Language string
	Fluency  string
}

type interestEntry struct {
	Name     string
	Keywords []string
}

type awardEntry struct {
	Title   string
	Date    string
	Awarder string
	Summary string
}

type certificateEntry struct {
	Name   string
	Date   string
	Issuer string
	URL    string
}

type publicationEntry struct {
	Name        string
	Publisher   string
	ReleaseDate string
	URL         string
	Summary     string
}

type referenceEntry struct {
	Name      string
	Reference string
}

// fields reads string values from one decoded object.
type fields map[string]any

// text returns trimmed string value or empty for missing, blank and non-string values.
func (object fields) text(key string) string {
	value, ok := object[key].(string)
	if !ok {
		return ""
	}

	return trimText(value)
}

// texts coerces sequence elements to trimmed strings, dropping blank and non-scalar items.
func (object fields) texts(key string) []string {
	items, ok := object[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		value, ok := scalarText(item)
		if !ok {
			continue
		}

		value = trimText(value)
		if value == "" {
			continue
		}

		out = append(out, value)
	}

	return out
}

// scalarText converts scalar values into their text form.
func scalarText(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case uint64:
		return strconv.FormatUint(typed, 10), true
	default:
		return "", false
	}
}

// asObjects returns object entries of one top-level collection, skipping other values.
func asObjects(value any) []fields {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	out := make([]fields, 0, len(items))
	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			continue
		}

		out = append(out, fields(object))
	}

	return out
}

// asObject returns decoded object at value or nil.
func asObject(value any) fields {
	typed, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	return fields(typed)
}

// parseResume maps loosely-typed document into typed resume model.
func parseResume(document any) resume {
	var out resume

	out.Basics = parseBasics(asObject(lookup(document, "basics")))

	for _, item := range asObjects(lookup(document, "work")) {
		out.Work = append(out.Work, workEntry{
			Name:       item.text("name"),
			Position:   item.text("position"),
			URL:        item.text("url"),
			StartDate:  item.text("startDate"),
			EndDate:    item.text("endDate"),
			Location:   item.text("location"),
			Summary:    item.text("summary"),
			Highlights: item.texts("highlights"),
		})
	}

	for _, item := range asObjects(lookup(document, "projects")) {
		out.Projects = append(out.Projects, projectEntry{
			Name:        item.text("name"),
			Description: item.text("description"),
			URL:         item.text("url"),
			StartDate:   item.text("startDate"),
			EndDate:     item.text("endDate"),
			Highlights:  item.texts("highlights"),
		})
	}

	for _, item := range asObjects(lookup(document, "volunteer")) {
		out.Volunteer = append(out.Volunteer, volunteerEntry{
			Organization: item.text("organization"),
			Position:     item.text("position"),
			URL:          item.text("url"),
			StartDate:    item.text("startDate"),
			EndDate:      item.text("endDate"),
			Summary:      item.text("summary"),
			Highlights:   item.texts("highlights"),
		})
	}

	for _, item := range asObjects(lookup(document, "education")) {
		gpa := item.text("gpa")
		if gpa == "" {
			gpa = item.text("score")
		}

		out.Education = append(out.Education, educationEntry{
			Institution: item.text("institution"),
			Area:        item.text("area"),
			StudyType:   item.text("studyType"),
			StartDate:   item.text("startDate"),
			EndDate:     item.text("endDate"),
			GPA:         gpa,
			Courses:     item.texts("courses"),
		})
	}

	for _, item := range asObjects(lookup(document, "skills")) {
		out.Skills = append(out.Skills, skillEntry{
			Name:     item.text("name"),
			Level:    item.text("level"),
			Keywords: item.texts("keywords"),
		})
	}

	for _, item := range asObjects(lookup(document, "languages")) {
		out.Languages = append(out.Languages, languageEntry{
			Language: item.text("language"),
			Fluency:  item.text("fluency"),
		})
	}

	for _, item := range asObjects(lookup(document, "interests")) {
		out.Interests = append(out.Interests, interestEntry{
			Name:     item.text("name"),
			Keywords: item.texts("keywords"),
		})
	}

	for _, item := range asObjects(lookup(document, "awards")) {
		out.Awards = append(out.Awards, awardEntry{
			Title:   item.text("title"),
			Date:    item.text("date"),
			Awarder: item.text("awarder"),
			Summary: item.text("summary"),
		})
	}

	for _, item := range asObjects(lookup(document, "certificates")) {
		out.Certificates = append(out.Certificates, certificateEntry{
			Name:   item.text("name"),
			Date:   item.text("date"),
			Issuer: item.text("issuer"),
			URL:    item.text("url"),
		})
	}

	for _, item := range asObjects(lookup(document, "publications")) {
		out.Publications = append(out.Publications, publicationEntry{
			Name:        item.text("name"),
			Publisher:   item.text("publisher"),
			ReleaseDate: item.text("releaseDate"),
			URL:         item.text("url"),
			Summary:     item.text("summary"),
		})
	}

	for _, item := range asObjects(lookup(document, "references")) {
		out.References = append(out.References, referenceEntry{
			Name:      item.text("name"),
			Reference: item.text("reference"),
		})
	}

	return out
}

// parseBasics maps basics object into typed model.
func parseBasics(item fields) basics {
	if item == nil {
		return basics{}
	}

	out := basics{
		Name:    item.text("name"),
		Label:   item.text("label"),
		Summary: item.text("summary"),
		Email:   item.text("email"),
		Phone:   item.text("phone"),
		URL:     item.text("url"),
	}

	if loc := asObject(item["location"]); loc != nil {
		out.Location = location{
			Address:     loc.text("address"),
			PostalCode:  loc.text("postalCode"),
			City:        loc.text("city"),
			Region:      loc.text("region"),
			CountryCode: loc.text("countryCode"),
		}
	}

	for _, entry := range asObjects(item["profiles"]) {
		out.Profiles = append(out.Profiles, profile{
			Network:  entry.text("network"),
			Username: entry.text("username"),
			URL:      entry.text("url"),
		})
	}

	return out
}
