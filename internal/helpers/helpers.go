package helpers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[@$!%*?&#]`).MatchString(password)
	return hasLower && hasUpper && hasNumber && hasSpecial
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RandomPassword returns an unusable placeholder credential for accounts
// provisioned through OAuth; it satisfies the hash column but can never be
// guessed for a password sign-in.
func RandomPassword() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

var usernameStrip = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateUsername derives a username from a display name plus a random
// suffix so first-time OAuth sign-ins never collide.
func GenerateUsername(displayName string) string {
	base := usernameStrip.ReplaceAllString(strings.ToLower(displayName), "")
	if base == "" {
		base = "user"
	}
	if len(base) > 16 {
		base = base[:16]
	}
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return base + hex.EncodeToString(buf)
}

/* --------------------------- storage cleanup ------------------------------ */

// CloudinaryPublicID extracts the public id from a Cloudinary delivery URL,
// e.g. .../image/upload/v12345/listings/abc.jpg -> listings/abc.
// Returns "" for URLs that are not Cloudinary uploads (placeholders etc.).
func CloudinaryPublicID(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return ""
	}
	if !strings.Contains(parsed.Host, "cloudinary.com") {
		return ""
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx+1 >= len(parts) {
		return ""
	}
	rest := parts[uploadIdx+1:]
	// skip the version segment when present
	if len(rest) > 1 && regexp.MustCompile(`^v\d+$`).MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return ""
	}
	publicID := strings.Join(rest, "/")
	if dot := strings.LastIndex(publicID, "."); dot > 0 {
		publicID = publicID[:dot]
	}
	return publicID
}

// DeleteImagesByURL is best-effort cleanup of stored images: unparseable and
// already-deleted files are skipped, failures are logged and never returned.
func DeleteImagesByURL(ctx context.Context, cld *cloudinary.Cloudinary, logger *slog.Logger, urls []string) {
	if cld == nil || len(urls) == 0 {
		return
	}
	seen := make(map[string]bool, len(urls))
	for _, raw := range urls {
		publicID := CloudinaryPublicID(raw)
		if publicID == "" || seen[publicID] {
			continue
		}
		seen[publicID] = true
		_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
		if err != nil {
			logger.Warn("storage cleanup failed", "public_id", publicID, "error", err)
		}
	}
}

func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}
