package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"leo", "mira_42", "a.b-c", strings.Repeat("x", 150)}
	for _, username := range valid {
		assert.NoError(t, ValidateUsername(username), username)
	}

	invalid := []string{"", "ab", "has space", "emoji🙂", strings.Repeat("x", 151)}
	for _, username := range invalid {
		assert.Error(t, ValidateUsername(username), username)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("leo@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("two@@example.com"))
	assert.Error(t, ValidateEmail(strings.Repeat("x", 250)+"@e.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3r-Secret-Pass!"))

	cases := map[string]string{
		"too short":  "Ab1!",
		"no upper":   "sup3r-secret-pass!",
		"no lower":   "SUP3R-SECRET-PASS!",
		"no digit":   "Super-Secret-Pass!",
		"no special": "Sup3rSecretPass123",
	}
	for name, password := range cases {
		assert.Error(t, ValidatePassword(password), name)
	}
}

func TestValidateGroupSlug(t *testing.T) {
	assert.NoError(t, ValidateGroupSlug("cooking-baking"))

	invalid := []string{"", "ab", "Has-Upper", "trailing-", "-leading", "admin", "feed"}
	for _, slug := range invalid {
		assert.Error(t, ValidateGroupSlug(slug), slug)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Cooking & Baking":  "cooking-baking",
		"  Travel  ":        "travel",
		"C++ Programming!!": "c-programming",
		"already-a-slug":    "already-a-slug",
	}
	for title, want := range cases {
		assert.Equal(t, want, Slugify(title), title)
	}
}
