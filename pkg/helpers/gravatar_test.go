package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	// md5("a@x.com") is stable; the URL pins size, rating and default image.
	got := GravatarURL("a@x.com")
	assert.Contains(t, got, "https://gravatar.com/avatar/")
	assert.Contains(t, got, "?s=200&r=pg&d=mm")
}

func TestGravatarURLNormalizesEmail(t *testing.T) {
	assert.Equal(t, GravatarURL("a@x.com"), GravatarURL("  A@X.COM  "))
}
