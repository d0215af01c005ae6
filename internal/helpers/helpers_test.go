package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, IsPasswordStrong("Password123!"))
	assert.True(t, IsPasswordStrong("aB3$efgh"))

	assert.False(t, IsPasswordStrong("Ab3$efg"), "too short")
	assert.False(t, IsPasswordStrong("password123!"), "no upper")
	assert.False(t, IsPasswordStrong("PASSWORD123!"), "no lower")
	assert.False(t, IsPasswordStrong("Password!!!!"), "no digit")
	assert.False(t, IsPasswordStrong("Password1234"), "no special")
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, CheckPassword(hash, "Password123!"))
	assert.False(t, CheckPassword(hash, "WrongPassword!"))
	assert.False(t, CheckPassword("not-a-hash", "Password123!"))
}

func TestRandomPassword(t *testing.T) {
	a := RandomPassword()
	b := RandomPassword()
	assert.Len(t, a, 48)
	assert.NotEqual(t, a, b)
}

func TestGenerateUsername(t *testing.T) {
	name := GenerateUsername("Google User")
	assert.True(t, strings.HasPrefix(name, "googleuser"), name)
	assert.Len(t, name, len("googleuser")+8)

	// two sign-ins with the same display name get distinct usernames
	assert.NotEqual(t, GenerateUsername("Google User"), GenerateUsername("Google User"))

	// non-latin names fall back to a generic base
	fallback := GenerateUsername("محمد")
	assert.True(t, strings.HasPrefix(fallback, "user"), fallback)

	long := GenerateUsername("averyveryverylongdisplayname")
	assert.Len(t, long, 16+8)
}

func TestCloudinaryPublicID(t *testing.T) {
	assert.Equal(t, "listings/abc",
		CloudinaryPublicID("https://res.cloudinary.com/demo/image/upload/v12345/listings/abc.jpg"))
	assert.Equal(t, "listings/abc",
		CloudinaryPublicID("https://res.cloudinary.com/demo/image/upload/listings/abc.png"))
	assert.Equal(t, "avatar",
		CloudinaryPublicID("https://res.cloudinary.com/demo/image/upload/avatar.webp"))

	// non-Cloudinary URLs and placeholders yield nothing
	assert.Equal(t, "", CloudinaryPublicID("/placeholder.jpg"))
	assert.Equal(t, "", CloudinaryPublicID("https://example.com/image/upload/v1/x.jpg"))
	assert.Equal(t, "", CloudinaryPublicID("https://res.cloudinary.com/demo/image/upload/"))
	assert.Equal(t, "", CloudinaryPublicID(""))
}

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "abc", StringTrim(`  "abc"  `))
	assert.Equal(t, "abc", StringTrim("'abc'"))
	assert.Equal(t, "abc", StringTrim("abc"))
}
