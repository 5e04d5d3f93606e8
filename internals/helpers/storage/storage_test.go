package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".jpg", SafeExt("photo.jpg"))
	assert.Equal(t, ".jpeg", SafeExt("photo.JPEG"))
	assert.Equal(t, ".png", SafeExt("photo.png"))
	assert.Equal(t, ".webp", SafeExt("photo.webp"))
	assert.Equal(t, ".png", SafeExt("archive.zip"))
	assert.Equal(t, ".png", SafeExt("noext"))
	assert.Equal(t, ".png", SafeExt("script.pHp"))
}

func TestProfileImageKey(t *testing.T) {
	key := ProfileImageKey("instructor", "abc-123", "avatar.JPG")
	assert.True(t, strings.HasPrefix(key, "staff/instructor/abc-123/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	parts := strings.Split(key, "/")
	assert.Len(t, parts, 4)
	assert.NotContains(t, parts[3], "-", "random segment uses bare hex")

	other := ProfileImageKey("instructor", "abc-123", "avatar.JPG")
	assert.NotEqual(t, key, other, "each upload gets a fresh key")
}
