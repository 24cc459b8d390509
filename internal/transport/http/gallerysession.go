package http

import (
	"encoding/json"
	"net/http"

	"evermore_gallery/internal/domain/models"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "evermore_session"

	// gallerySessionKey is the fixed slot for the client gallery
	// session inside the cookie store. Saving overwrites the previous
	// value wholesale: one active gallery session per browser.
	gallerySessionKey = "gallery_session"
)

func saveGallerySession(c echo.Context, gs models.GallerySession) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(gs)
	if err != nil {
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(gs.ExpiresAt.Sub(gs.AccessedAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[gallerySessionKey] = string(payload)

	return sess.Save(c.Request(), c.Response())
}

func loadGallerySession(c echo.Context) (models.GallerySession, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return models.GallerySession{}, false
	}

	raw, ok := sess.Values[gallerySessionKey].(string)
	if !ok || raw == "" {
		return models.GallerySession{}, false
	}

	var gs models.GallerySession
	if err := json.Unmarshal([]byte(raw), &gs); err != nil {
		return models.GallerySession{}, false
	}

	return gs, true
}

func clearGallerySession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	delete(sess.Values, gallerySessionKey)
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return sess.Save(c.Request(), c.Response())
}
