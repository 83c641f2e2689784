package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	t.Run("hashes lowercased trimmed email", func(t *testing.T) {
		// md5("test@example.com")
		url := URL("  Test@Example.COM ", 100)
		assert.Equal(t, "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=100&d=retro&r=g", url)
	})

	t.Run("same address yields same URL regardless of case", func(t *testing.T) {
		assert.Equal(t, URL("user@site.org", 100), URL("USER@SITE.ORG", 100))
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		assert.Contains(t, URL("a@b.c", 0), "?s=100&")
		assert.Contains(t, URL("a@b.c", -5), "?s=100&")
	})

	t.Run("custom size", func(t *testing.T) {
		assert.Contains(t, URL("a@b.c", 64), "?s=64&")
	})
}
