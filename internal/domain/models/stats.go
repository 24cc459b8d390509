package models

import "time"

// GalleryStats is a derived engagement snapshot. It is computed on
// demand and never persisted; failed sub-counts degrade to zero.
type GalleryStats struct {
	TotalViews          int64      `json:"totalViews"`
	UniqueVisitors      int64      `json:"uniqueVisitors"`
	TotalDownloads      int64      `json:"totalDownloads"`
	TotalFavorites      int64      `json:"totalFavorites"`
	LastAccessed        *time.Time `json:"lastAccessed"`
	DaysUntilExpiration int        `json:"daysUntilExpiration"`
}
