package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var groupSlugRegex = regexp.MustCompile(`^[a-z0-9-]{3,50}$`)

var reservedGroupSlugs = map[string]struct{}{
	"admin":    {},
	"api":      {},
	"auth":     {},
	"feed":     {},
	"groups":   {},
	"posts":    {},
	"comments": {},
	"users":    {},
	"follow":   {},
	"settings": {},
	"metrics":  {},
	"login":    {},
	"signup":   {},
}

// ValidateGroupSlug validates group slug format and reserved names.
func ValidateGroupSlug(slug string) error {
	if !groupSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 3-50 characters and contain only lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	if _, exists := reservedGroupSlugs[slug]; exists {
		return fmt.Errorf("slug is reserved")
	}

	return nil
}

// Slugify derives a slug from a group title the way the admin screen
// prepopulates it: lowercase, non-alphanumerics collapsed to hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
