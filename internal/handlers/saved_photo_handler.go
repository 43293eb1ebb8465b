package handlers

import (
	"net/http"

	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/Jannadolf/LookNest/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SavedPhotoHandler handles photo bookmark HTTP requests
type SavedPhotoHandler struct {
	savedPhotoRepository repositories.SavedPhotoRepository
	photoRepository      repositories.PhotoRepository
	userRepository       repositories.UserRepository
}

// NewSavedPhotoHandler creates a new SavedPhotoHandler
func NewSavedPhotoHandler(savedPhotoRepo repositories.SavedPhotoRepository, photoRepo repositories.PhotoRepository, userRepo repositories.UserRepository) *SavedPhotoHandler {
	return &SavedPhotoHandler{
		savedPhotoRepository: savedPhotoRepo,
		photoRepository:      photoRepo,
		userRepository:       userRepo,
	}
}

// RegisterSavedPhotoRoutes registers saved photo routes
func (h *SavedPhotoHandler) RegisterSavedPhotoRoutes(g *echo.Group) {
	g.GET("/photos/saved", h.GetSavedPhotos)
	g.POST("/photos/:id/save", h.SavePhoto)
	g.DELETE("/photos/:id/save", h.UnsavePhoto)
}

// SavePhoto bookmarks a photo
func (h *SavedPhotoHandler) SavePhoto(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	photoID := c.Param("id")

	// Verify photo exists
	if _, err := h.photoRepository.GetPhotoByID(c.Request().Context(), photoID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Photo not found")
	}

	// Check if already saved
	isSaved, _ := h.savedPhotoRepository.IsPhotoSaved(currentUserID, photoID)
	if isSaved {
		return echo.NewHTTPError(http.StatusConflict, "Photo already saved")
	}

	savedPhoto := &models.SavedPhoto{
		UserID:  currentUserID,
		PhotoID: photoID,
	}

	if err := h.savedPhotoRepository.SavePhoto(savedPhoto); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"saved": true})
}

// UnsavePhoto removes a photo bookmark
func (h *SavedPhotoHandler) UnsavePhoto(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	photoID := c.Param("id")

	if err := h.savedPhotoRepository.UnsavePhoto(currentUserID, photoID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"saved": false})
}

// GetSavedPhotos returns the current user's saved photos
func (h *SavedPhotoHandler) GetSavedPhotos(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	saved, err := h.savedPhotoRepository.GetSavedPhotosByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	ids := make([]string, len(saved))
	for i, s := range saved {
		ids[i] = s.PhotoID
	}

	photos, err := h.photoRepository.GetPhotosByIDs(c.Request().Context(), ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	userCache := make(map[uint]models.UserCompact)
	enriched := make([]EnrichedPhoto, len(photos))
	for i, p := range photos {
		enriched[i] = EnrichedPhoto{Photo: p}
		if user, ok := userCache[p.UserID]; ok {
			enriched[i].User = user
		} else if owner, err := h.userRepository.GetUserByID(p.UserID); err == nil {
			compact := owner.ToCompact()
			userCache[p.UserID] = compact
			enriched[i].User = compact
		}
	}

	return c.JSON(http.StatusOK, enriched)
}
