package expiry

import (
	"time"

	"evermore_gallery/internal/domain/models"
)

// IsExpired reports whether the gallery's expiration date has passed.
// A gallery expiring exactly now is expired: access requires
// expiration_date strictly in the future.
func IsExpired(gallery models.ClientGallery, now time.Time) bool {
	return !gallery.ExpirationDate.After(now)
}

// DaysUntil returns the number of whole or partial days until the
// gallery expires, floored at zero. A gallery expiring in one second
// still has one day left.
func DaysUntil(gallery models.ClientGallery, now time.Time) int {
	remaining := gallery.ExpirationDate.Sub(now)
	if remaining <= 0 {
		return 0
	}

	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}

	return days
}
