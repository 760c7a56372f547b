package utils

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// QR images are rendered at a fixed width with go-qrcode's default quiet
// zone, black on white.
const qrImageSize = 512

// BuildRSVPPayload builds the deterministic QR payload binding an event, a
// guest and the guest's current secret token.
func BuildRSVPPayload(eventID, guestID uint, secret string) string {
	return fmt.Sprintf("evt:%d:gst:%d:%s", eventID, guestID, secret)
}

// BuildSharePayload builds a pre-RSVP share payload. No confirmed guest
// identity exists yet, so a random nonce stands in for the token.
func BuildSharePayload(eventID uint, nonce string) string {
	return fmt.Sprintf("evt:%d:share:%s", eventID, nonce)
}

// RenderQRCode encodes payload into a PNG under destDir and returns the
// written file path.
func RenderQRCode(payload, destDir string) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("empty payload")
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("mkdir failed: %v", err)
	}

	// timestamp + random hex filename, same scheme as uploaded images
	randBytes := make([]byte, 6)
	if _, err := rand.Read(randBytes); err != nil {
		randBytes = []byte(fmt.Sprintf("%d", time.Now().UnixNano()))
	}
	name := fmt.Sprintf("qr_%d_%x.png", time.Now().UnixNano(), randBytes)
	fullpath := filepath.Join(destDir, name)

	if err := qrcode.WriteFile(payload, qrcode.Medium, qrImageSize, fullpath); err != nil {
		return "", fmt.Errorf("qr render failed: %v", err)
	}
	return fullpath, nil
}
