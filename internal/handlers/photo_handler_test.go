package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPhotoTest(t *testing.T) (*PhotoHandler, *fakePhotoRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	photoRepo := &fakePhotoRepo{}
	h := NewPhotoHandler(photoRepo, userRepo)

	require.NoError(t, userRepo.CreateUser(&models.User{FullName: "Alice Smith", Username: "alice", Email: "alice@example.com"}))
	require.NoError(t, userRepo.CreateUser(&models.User{FullName: "Bob Jones", Username: "bob", Email: "bob@example.com"}))

	ctx := context.Background()
	require.NoError(t, photoRepo.CreatePhoto(ctx, &models.Photo{UserID: 1, Title: "Sunset", Description: "Golden hour", ImageURLs: []string{"https://img.example.com/sunset.jpg"}}))
	require.NoError(t, photoRepo.CreatePhoto(ctx, &models.Photo{UserID: 2, Title: "Mountain", Description: "High peaks", ImageURLs: []string{"https://img.example.com/mountain.jpg"}}))
	return h, photoRepo
}

func listPhotos(t *testing.T, h *PhotoHandler, query string) []EnrichedPhoto {
	t.Helper()
	target := "/photos"
	if query != "" {
		target += "?q=" + query
	}
	c, rec := newTestContext(http.MethodGet, target, "")
	require.NoError(t, h.GetPhotos(c))

	var photos []EnrichedPhoto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &photos))
	return photos
}

func TestGetPhotosFilter(t *testing.T) {
	h, _ := setupPhotoTest(t)

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{name: "empty query returns all", query: "", wantTitles: []string{"Sunset", "Mountain"}},
		{name: "title match", query: "sun", wantTitles: []string{"Sunset"}},
		{name: "uploader username match", query: "alice", wantTitles: []string{"Sunset"}},
		{name: "description match", query: "peaks", wantTitles: []string{"Mountain"}},
		{name: "no match", query: "nothing", wantTitles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos := listPhotos(t, h, tt.query)
			titles := make([]string, 0, len(photos))
			for _, p := range photos {
				titles = append(titles, p.Title)
			}
			assert.ElementsMatch(t, tt.wantTitles, titles)
		})
	}
}

func TestCreatePhoto(t *testing.T) {
	h, photoRepo := setupPhotoTest(t)

	c, rec := newTestContext(http.MethodPost, "/photos", `{"title":"Lake","imageUrls":["https://img.example.com/lake.jpg"]}`)
	authenticate(c, 1)
	require.NoError(t, h.CreatePhoto(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, photoRepo.photos, 3)
	assert.Equal(t, uint(1), photoRepo.photos[2].UserID)
}

func TestCreatePhotoRequiresImage(t *testing.T) {
	h, _ := setupPhotoTest(t)

	c, _ := newTestContext(http.MethodPost, "/photos", `{"title":"Lake","imageUrls":[]}`)
	authenticate(c, 1)
	err := h.CreatePhoto(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestDeletePhotoOwnerOnly(t *testing.T) {
	h, photoRepo := setupPhotoTest(t)
	photoID := photoRepo.photos[0].ID.Hex()

	c, _ := newTestContext(http.MethodDelete, "/photos/"+photoID, "")
	c.SetParamNames("id")
	c.SetParamValues(photoID)
	authenticate(c, 2)
	err := h.DeletePhoto(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)

	c, rec := newTestContext(http.MethodDelete, "/photos/"+photoID, "")
	c.SetParamNames("id")
	c.SetParamValues(photoID)
	authenticate(c, 1)
	require.NoError(t, h.DeletePhoto(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, photoRepo.photos, 1)
}

func TestGetPhotoNotFound(t *testing.T) {
	h, _ := setupPhotoTest(t)

	c, _ := newTestContext(http.MethodGet, "/photos/ffffffffffffffffffffffff", "")
	c.SetParamNames("id")
	c.SetParamValues("ffffffffffffffffffffffff")
	err := h.GetPhoto(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
