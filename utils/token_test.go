package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Regexp(t, `^[0-9a-f]+$`, token)

	other, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
	_, err = GenerateSecureToken(-1)
	assert.Error(t, err)
}

func TestGenerateAccessCode(t *testing.T) {
	code, err := GenerateAccessCode(8)
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z0-9]{8}$`, code)

	_, err = GenerateAccessCode(0)
	assert.Error(t, err)
}

func TestFormatAndNormalizeAccessCode(t *testing.T) {
	formatted, err := FormatAccessCode("ab4d93kf")
	require.NoError(t, err)
	assert.Equal(t, "AB4D-93KF", formatted)

	// formatting an already formatted code is stable
	again, err := FormatAccessCode(formatted)
	require.NoError(t, err)
	assert.Equal(t, formatted, again)

	_, err = FormatAccessCode("short")
	assert.Error(t, err)

	assert.Equal(t, "AB4D93KF", NormalizeAccessCode(" ab4d-93kf "))

	assert.True(t, IsValidAccessCodeFormat("AB4D93KF"))
	assert.True(t, IsValidAccessCodeFormat("AB4D-93KF"))
	assert.False(t, IsValidAccessCodeFormat(""))
	assert.False(t, IsValidAccessCodeFormat("AB4D 93KF"))
	assert.False(t, IsValidAccessCodeFormat("TOO-LONG-CODE"))
}

func TestBuildLinks(t *testing.T) {
	link := BuildRSVPLink("https://app.example.com/", 7, 42, "tok")
	assert.Equal(t, "https://app.example.com/rsvp/7/42?token=tok", link)

	link = BuildRSVPLink("", 1, 2, "tok")
	assert.Equal(t, "http://localhost:3000/rsvp/1/2?token=tok", link)

	share := BuildShareLink("https://app.example.com", 7, "nonce")
	assert.Equal(t, "https://app.example.com/invite/7?ref=nonce", share)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a****e@e******.com", MaskEmail("aliice@example.com"))
	assert.Equal(t, "a*@e******.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
