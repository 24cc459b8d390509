package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
)

const (
	// Access codes avoid visually ambiguous glyphs (0/O, 1/I/l).
	accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	passwordAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

	DefaultCodeLength = 8
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

type SlugChecker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type IdentifierService struct {
	log  *slog.Logger
	repo SlugChecker
}

func NewIdentifierService(log *slog.Logger, repo SlugChecker) *IdentifierService {
	return &IdentifierService{
		log:  log,
		repo: repo,
	}
}

// GenerateUniqueSlug derives a URL slug from the couple's names and
// resolves collisions with a numeric suffix. The existence check is
// best-effort: it is not atomic with the eventual insert, and the
// UNIQUE index on gallery_slug remains the real constraint.
func (s *IdentifierService) GenerateUniqueSlug(ctx context.Context, brideName, groomName string) (string, error) {
	const op = "service.IdentifierService.GenerateUniqueSlug"

	base := Slugify(brideName + "-" + groomName)
	if base == "" {
		return "", fmt.Errorf("%s: names produce an empty slug", op)
	}

	slug := base
	for counter := 1; ; counter++ {
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// Slugify lower-cases the input, collapses runs of non-alphanumeric
// characters to single dashes and trims dashes from both ends.
func Slugify(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// GenerateAccessCode draws length characters from the unambiguous
// alphabet using crypto/rand. Access codes are credentials; a
// predictable source here would be a security defect.
func GenerateAccessCode(length int) (string, error) {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return randomString(length, accessCodeAlphabet)
}

// GenerateRandomPassword is the fallback default password generator.
// Same draw, larger alphabet.
func GenerateRandomPassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return randomString(length, passwordAlphabet)
}

// ClientName formats the display name shown on the gallery.
func ClientName(brideName, groomName string) string {
	return brideName + " & " + groomName
}

func randomString(length int, alphabet string) (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}
