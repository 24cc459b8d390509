package dto

import "time"

type FavoriteRequest struct {
	ImageID string `json:"image_id" validate:"required"`
}

type DownloadRequest struct {
	ImageID string `json:"image_id"`
}

type StartAnalyticsRequest struct {
	SessionStart *time.Time `json:"session_start"`
	ImagesViewed int        `json:"images_viewed"`
	UserAgent    string     `json:"user_agent"`
}

type CloseAnalyticsRequest struct {
	SessionEnd      *time.Time `json:"session_end"`
	DurationSeconds *int64     `json:"session_duration_seconds"`
	ImagesViewed    *int       `json:"images_viewed"`
}
