// Package profile holds the user profile model and lays it out as box rows.
package profile

import "strings"

// ProductName is the header used when a profile carries no name at all.
const ProductName = "profilebox"

// Profile is a read-only snapshot of the fetched user profile. Every field is
// optional.
type Profile struct {
	DisplayName string `json:"displayName,omitempty"`
	Username    string `json:"username,omitempty"`
	Pronouns    string `json:"pronouns,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	JobTitle    string `json:"jobTitle,omitempty"`
	TimeZone    string `json:"timeZone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	About       string `json:"about,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// FromMap picks the known profile fields out of a decoded JSON object.
// Values that are not strings are treated as absent.
func FromMap(obj map[string]any) Profile {
	return Profile{
		DisplayName: firstString(obj, "displayName"),
		Username:    firstString(obj, "username"),
		Pronouns:    firstString(obj, "pronouns"),
		FirstName:   firstString(obj, "firstName"),
		LastName:    firstString(obj, "lastName"),
		JobTitle:    firstString(obj, "jobTitle"),
		TimeZone:    firstString(obj, "timeZone"),
		Email:       firstString(obj, "email"),
		Website:     firstString(obj, "website"),
		About:       firstString(obj, "about"),
		Bio:         firstString(obj, "bio"),
	}
}

// Name returns the display name, then the username, then ProductName.
func (p Profile) Name() string {
	return firstNonEmpty(p.DisplayName, p.Username, ProductName)
}

// FullName joins first and last name. It is empty when both are.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// AboutText returns the raw about text, falling back to the bio.
func (p Profile) AboutText() string {
	return firstNonEmpty(p.About, p.Bio)
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := obj[key]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmpty returns the first value that is not blank, trimmed.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
