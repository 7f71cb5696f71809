package shared

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const MaxErrorLen = 200

func GetHostName(instanceUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(instanceUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse instance URL '%s': %v", instanceUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

// NormalizeUrl forces https and strips trailing slashes: "mastodon.social/" => "https://mastodon.social"
func NormalizeUrl(instance string) string {
	instance = strings.TrimSpace(instance)
	if strings.HasPrefix(instance, "http://") {
		instance = "https://" + strings.TrimPrefix(instance, "http://")
	} else if !strings.HasPrefix(instance, "https://") {
		instance = "https://" + instance
	}
	return strings.TrimRight(instance, "/")
}

// StripScheme returns the instance URL without its scheme, as shown in chat names.
func StripScheme(instanceUrl string) string {
	if ix := strings.Index(instanceUrl, "://"); ix != -1 {
		return instanceUrl[ix+3:]
	}
	return instanceUrl
}

// NormalizeAcct lower-cases a user reference and drops the leading @.
func NormalizeAcct(acct string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(acct), "@"))
}

func IsNumeric(str string) bool {
	if str == "" {
		return false
	}
	for _, c := range str {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CompareIds orders Mastodon IDs, which are decimal strings of varying length.
// Returns -1, 0 or 1. Non-numeric IDs fall back to plain string order.
func CompareIds(a, b string) int {
	if IsNumeric(a) && IsNumeric(b) {
		a = strings.TrimLeft(a, "0")
		b = strings.TrimLeft(b, "0")
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}

// IsNewerId tells if candidate is past the watermark. Everything is newer than an empty watermark.
func IsNewerId(candidate, watermark string) bool {
	if candidate == "" {
		return false
	}
	if watermark == "" {
		return true
	}
	return CompareIds(candidate, watermark) > 0
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := -1
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			if lastSpaceIx == -1 {
				return text[:i] + "…"
			}
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
