// Package gravatar builds Gravatar image URLs for commenter avatars.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// DefaultSize is the pixel size comment avatars render at.
const DefaultSize = 100

const (
	baseURL       = "https://www.gravatar.com/avatar/"
	defaultImage  = "retro"
	contentRating = "g"
)

// URL returns the Gravatar URL for an email address. The hash is the
// MD5 of the lowercased, trimmed address, per the Gravatar spec.
func URL(email string, size int) string {
	if size <= 0 {
		size = DefaultSize
	}
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%s%s?s=%d&d=%s&r=%s", baseURL, hex.EncodeToString(sum[:]), size, defaultImage, contentRating)
}
