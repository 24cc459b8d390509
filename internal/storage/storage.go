package storage

import "errors"

var (
	ErrGalleryNotFound  = errors.New("gallery not found")
	ErrSlugExists       = errors.New("gallery slug already exists")
	ErrSessionNotFound  = errors.New("analytics session not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
