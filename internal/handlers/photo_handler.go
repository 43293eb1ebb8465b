package handlers

import (
	"net/http"
	"strconv"

	"github.com/Jannadolf/LookNest/internal/gallery"
	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/Jannadolf/LookNest/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PhotoHandler handles photo catalog HTTP requests
type PhotoHandler struct {
	photoRepository repositories.PhotoRepository
	userRepository  repositories.UserRepository
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photoRepo repositories.PhotoRepository, userRepo repositories.UserRepository) *PhotoHandler {
	return &PhotoHandler{
		photoRepository: photoRepo,
		userRepository:  userRepo,
	}
}

// RegisterPublicRoutes registers the read-only photo routes
func (h *PhotoHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/photos", h.GetPhotos)
	g.GET("/photos/:id", h.GetPhoto)
}

// RegisterPhotoRoutes registers the authenticated photo routes
func (h *PhotoHandler) RegisterPhotoRoutes(g *echo.Group) {
	g.POST("/photos", h.CreatePhoto)
	g.DELETE("/photos/:id", h.DeletePhoto)
}

// EnrichedPhoto is a photo with its uploader's display fields
type EnrichedPhoto struct {
	models.Photo
	User models.UserCompact `json:"user"`
}

// SearchFields exposes the fields the gallery free-text filter matches on.
func (p EnrichedPhoto) SearchFields() []string {
	return []string{p.Title, p.Description, p.User.FullName, p.User.Username}
}

func (h *PhotoHandler) enrichPhotos(photos []models.Photo) []EnrichedPhoto {
	enriched := make([]EnrichedPhoto, len(photos))
	userCache := make(map[uint]models.UserCompact)

	for i, p := range photos {
		enriched[i] = EnrichedPhoto{Photo: p}
		if user, ok := userCache[p.UserID]; ok {
			enriched[i].User = user
		} else {
			owner, err := h.userRepository.GetUserByID(p.UserID)
			if err == nil {
				compact := owner.ToCompact()
				userCache[p.UserID] = compact
				enriched[i].User = compact
			}
		}
	}
	return enriched
}

// GetPhotos returns photos newest first. An optional `q` parameter applies
// the gallery filter: a case-insensitive substring match over title,
// description and the uploader's display name or username.
func (h *PhotoHandler) GetPhotos(c echo.Context) error {
	query := c.QueryParam("q")

	var skip, limit int64
	if query == "" {
		page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
		limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 50
		}
		skip = (page - 1) * limit
	}
	// A filtered request scans the full catalog; skip/limit stay zero.

	photos, err := h.photoRepository.GetAllPhotos(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched := h.enrichPhotos(photos)
	return c.JSON(http.StatusOK, gallery.Filter(enriched, query))
}

// GetPhoto retrieves a single photo by ID
func (h *PhotoHandler) GetPhoto(c echo.Context) error {
	photo, err := h.photoRepository.GetPhotoByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrPhotoNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Photo not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enriched := h.enrichPhotos([]models.Photo{*photo})
	return c.JSON(http.StatusOK, enriched[0])
}

// CreatePhoto uploads a new photo record
func (h *PhotoHandler) CreatePhoto(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	photo := &models.Photo{
		UserID:      currentUserID,
		Title:       req.Title,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
	}

	if err := h.photoRepository.CreatePhoto(c.Request().Context(), photo); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, photo)
}

// DeletePhoto deletes a photo. Only the uploader may delete it.
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	photoID := c.Param("id")
	photo, err := h.photoRepository.GetPhotoByID(c.Request().Context(), photoID)
	if err != nil {
		if err == repositories.ErrPhotoNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Photo not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if photo.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Access denied")
	}

	if err := h.photoRepository.DeletePhoto(c.Request().Context(), photoID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
