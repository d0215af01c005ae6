package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyEmailBodyDirections(t *testing.T) {
	en := VerifyEmailBody("en", "https://api.example.com/verify?token=abc")
	assert.Contains(t, en, `dir="ltr"`)
	assert.Contains(t, en, "https://api.example.com/verify?token=abc")
	assert.Contains(t, en, "Verify Email")

	ar := VerifyEmailBody("ar", "https://api.example.com/verify?token=abc")
	assert.Contains(t, ar, `dir="rtl"`)
	assert.Contains(t, ar, "https://api.example.com/verify?token=abc")
}

func TestResetPasswordBody(t *testing.T) {
	body := ResetPasswordBody("en", "https://app.example.com/reset-password?token=xyz")
	assert.Contains(t, body, "Reset Password")
	// action url appears as both the button href and the fallback link
	assert.Equal(t, 3, strings.Count(body, "https://app.example.com/reset-password?token=xyz"))
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "Verify your email - AqarDot", VerifySubject("en"))
	assert.Equal(t, "Reset your password - AqarDot", ResetSubject("en"))
	assert.NotEqual(t, VerifySubject("en"), VerifySubject("ar"))
}
