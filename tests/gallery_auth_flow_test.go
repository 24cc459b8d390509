package tests

import (
	"strings"
	"testing"
	"time"

	"evermore_gallery/tests/suite"

	access "evermore_gallery/internal/services/access_service"
	"evermore_gallery/internal/transport/http/dto"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryAccess_HappyPath(t *testing.T) {
	ctx, st := suite.New(t)

	email := strings.ToLower(gofakeit.Email())

	created, err := st.GalleryService.CreateGallery(ctx, dto.CreateGalleryRequest{
		ClientEmail:    email,
		BrideName:      gofakeit.FirstName(),
		GroomName:      gofakeit.FirstName(),
		ExpirationDate: time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.AccessCode)
	require.NotEmpty(t, created.GallerySlug)

	gallery, gs, err := st.AccessService.Authenticate(ctx, access.Credentials{
		Email: email,
		Code:  created.AccessCode,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, gallery.ID)
	assert.Equal(t, created.GallerySlug, gs.GallerySlug)
	assert.Equal(t, st.Cfg.SessionTTL, gs.ExpiresAt.Sub(gs.AccessedAt))
	assert.True(t, st.SessionService.Valid(gs))

	stored, err := st.Galleries.GetGalleryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
	require.NotNil(t, stored.LastAccessedAt)
}

func TestGalleryAccess_SlugAndLowercaseCode(t *testing.T) {
	ctx, st := suite.New(t)

	created, err := st.GalleryService.CreateGallery(ctx, dto.CreateGalleryRequest{
		ClientEmail:    strings.ToLower(gofakeit.Email()),
		BrideName:      gofakeit.FirstName(),
		GroomName:      gofakeit.FirstName(),
		ExpirationDate: time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	// code is normalized to upper case before the lookup
	gallery, _, err := st.AccessService.Authenticate(ctx, access.Credentials{
		Slug: created.GallerySlug,
		Code: strings.ToLower(created.AccessCode),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, gallery.ID)
}

func TestGalleryAccess_CollapsedFailures(t *testing.T) {
	ctx, st := suite.New(t)

	email := strings.ToLower(gofakeit.Email())

	created, err := st.GalleryService.CreateGallery(ctx, dto.CreateGalleryRequest{
		ClientEmail:    email,
		BrideName:      gofakeit.FirstName(),
		GroomName:      gofakeit.FirstName(),
		ExpirationDate: time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	t.Run("wrong code", func(t *testing.T) {
		_, _, err := st.AccessService.Authenticate(ctx, access.Credentials{
			Email: email,
			Code:  "WRONGCOD",
		})
		assert.ErrorIs(t, err, access.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := st.AccessService.Authenticate(ctx, access.Credentials{
			Email: "nobody@example.com",
			Code:  created.AccessCode,
		})
		assert.ErrorIs(t, err, access.ErrInvalidCredentials)
	})

	t.Run("archived gallery fails on next attempt", func(t *testing.T) {
		require.NoError(t, st.GalleryService.UpdateGalleryStatus(ctx, created.ID, "archived"))

		_, _, err := st.AccessService.Authenticate(ctx, access.Credentials{
			Email: email,
			Code:  created.AccessCode,
		})
		assert.ErrorIs(t, err, access.ErrInvalidCredentials)
	})

	t.Run("missing credentials rejected before lookup", func(t *testing.T) {
		_, _, err := st.AccessService.Authenticate(ctx, access.Credentials{Code: created.AccessCode})
		assert.ErrorIs(t, err, access.ErrMissingCredentials)
	})
}

func TestGalleryAccess_ExpirationAndExtension(t *testing.T) {
	ctx, st := suite.New(t)

	email := strings.ToLower(gofakeit.Email())

	created, err := st.GalleryService.CreateGallery(ctx, dto.CreateGalleryRequest{
		ClientEmail:    email,
		BrideName:      gofakeit.FirstName(),
		GroomName:      gofakeit.FirstName(),
		ExpirationDate: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	// Force the gallery past its expiration through the store, then
	// verify the gate rejects it and an extension lets the client back in.
	_, err = st.Galleries.UpdateExpiration(ctx, created.ID, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, _, err = st.AccessService.Authenticate(ctx, access.Credentials{
		Email: email,
		Code:  created.AccessCode,
	})
	assert.ErrorIs(t, err, access.ErrInvalidCredentials)

	extended, err := st.GalleryService.ExtendExpiration(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.True(t, extended.ExpirationDate.After(time.Now()))

	_, _, err = st.AccessService.Authenticate(ctx, access.Credentials{
		Email: email,
		Code:  created.AccessCode,
	})
	assert.NoError(t, err)
}
