package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateCode()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q has non-digit", code)
		}
	}
}

func TestGenerateTempPassword(t *testing.T) {
	a := GenerateTempPassword()
	b := GenerateTempPassword()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
