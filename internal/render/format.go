package render

import (
	"regexp"
	"strings"

	"chamber/sites/internal/domain"
)

var nonDialable = regexp.MustCompile(`[^+\d]`)

// PhoneHref returns a tel: link target keeping only digits and '+'
func PhoneHref(phone string) string {
	return "tel:" + nonDialable.ReplaceAllString(phone, "")
}

var scheme = regexp.MustCompile(`^https?://`)

// DisplayURL strips the http(s) scheme for link text
func DisplayURL(url string) string {
	return scheme.ReplaceAllString(url, "")
}

// JoinPresent joins the non-empty parts with sep
func JoinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

// LevelLabel is the badge text for a membership tier
func LevelLabel(level domain.MembershipLevel) string {
	return level.Label()
}

// Capitalize upper-cases the first letter
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
