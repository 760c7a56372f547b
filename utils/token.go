package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strings"
)

//
// ===========================================================
//  ENV UTILITIES
// ===========================================================
//

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

//
// ===========================================================
//  TOKEN & CODE GENERATORS
// ===========================================================
//

const accessCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSecureToken returns a hex token (length = random bytes).
// Guest secret tokens are created once with this and never rotated.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateAccessCode returns an A-Z0-9 code like "AB4D93KF".
// Uses crypto/rand + rand.Int (math/big) to avoid modulo bias.
func GenerateAccessCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(accessCodeCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(accessCodeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// FormatAccessCode → "XXXX-XXXX"
func FormatAccessCode(raw string) (string, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	raw = strings.ReplaceAll(raw, "-", "")
	if len(raw) != 8 {
		return "", errors.New("raw must be length 8")
	}
	return raw[:4] + "-" + raw[4:], nil
}

// NormalizeAccessCode → remove hyphens/non-alnum
func NormalizeAccessCode(code string) string {
	s := strings.ToUpper(strings.TrimSpace(code))
	re := regexp.MustCompile(`[^A-Z0-9]`)
	return re.ReplaceAllString(s, "")
}

// IsValidAccessCodeFormat accepts "ABCDEFGH" or "ABCD-EFGH".
func IsValidAccessCodeFormat(code string) bool {
	if code == "" {
		return false
	}
	c := strings.TrimSpace(code)
	match1, _ := regexp.MatchString(`^[A-Za-z0-9]{8}$`, c)
	match2, _ := regexp.MatchString(`^[A-Za-z0-9]{4}-[A-Za-z0-9]{4}$`, c)
	return match1 || match2
}

//
// ===========================================================
//  LINK BUILDERS
// ===========================================================
//

// BuildRSVPLink builds the guest-facing invitation link carrying the token.
func BuildRSVPLink(frontendURL string, eventID, guestID uint, token string) string {
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	frontendURL = strings.TrimRight(frontendURL, "/")
	return fmt.Sprintf("%s/rsvp/%d/%d?token=%s", frontendURL, eventID, guestID, token)
}

// BuildShareLink builds a public event invitation link by nonce.
func BuildShareLink(frontendURL string, eventID uint, nonce string) string {
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	frontendURL = strings.TrimRight(frontendURL, "/")
	return fmt.Sprintf("%s/invite/%d?ref=%s", frontendURL, eventID, nonce)
}

//
// ===========================================================
//  EMAIL MASKING
// ===========================================================
//

// MaskEmail returns masked email for safe display
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local := parts[0]
	domain := parts[1]

	maskedLocal := local
	if len(local) > 2 {
		maskedLocal = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	} else if len(local) == 2 {
		maskedLocal = local[:1] + "*"
	}

	domainParts := strings.Split(domain, ".")
	if len(domainParts) >= 2 {
		if len(domainParts[0]) > 1 {
			domainParts[0] = domainParts[0][:1] + strings.Repeat("*", len(domainParts[0])-1)
		}
	}

	return maskedLocal + "@" + strings.Join(domainParts, ".")
}
