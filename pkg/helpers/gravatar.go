package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL builds a gravatar image URL for an email address: 200px,
// pg-rated, "mm" silhouette when the address has no gravatar. The URL is
// stored on the user at registration and denormalized into posts and
// comments.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
