package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/Jannadolf/LookNest/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// profileViewDedupWindow is how long a repeat visit by the same viewer goes
// unrecorded.
const profileViewDedupWindow = time.Hour

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository        repositories.UserRepository
	profileViewRepository repositories.ProfileViewRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, profileViewRepo repositories.ProfileViewRepository) *UserHandler {
	return &UserHandler{
		userRepository:        userRepo,
		profileViewRepository: profileViewRepo,
	}
}

// RegisterProfileRoutes registers the authenticated profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)    // Get own profile
	g.PUT("/profile", h.UpdateProfile) // Update own profile
	g.GET("/users/:id/views", h.GetProfileViews)
}

// RegisterPublicRoutes registers routes that work without authentication
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetUser) // Get other user's profile by ID
}

// GetUser retrieves a user profile by ID. When the request carries a valid
// bearer token for a different account, the visit is recorded as a profile
// view; an invalid or missing token means an anonymous viewer, not an error.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.recordProfileView(user.ID, getUserIDFromContext(c))

	return c.JSON(http.StatusOK, user)
}

// recordProfileView appends a view entry unless the viewer is anonymous, the
// owner themselves, or has already viewed within the dedup window. Tracking
// failures never fail the profile fetch.
func (h *UserHandler) recordProfileView(ownerID, viewerID uint) {
	if viewerID == 0 || viewerID == ownerID {
		return
	}

	since := time.Now().Add(-profileViewDedupWindow)
	recent, err := h.profileViewRepository.HasRecentView(ownerID, viewerID, since)
	if err != nil {
		log.Printf("Failed to check recent profile views: %v", err)
		return
	}
	if recent {
		return
	}

	view := &models.ProfileView{
		OwnerID:  ownerID,
		ViewerID: viewerID,
		ViewedAt: time.Now(),
	}
	if err := h.profileViewRepository.CreateView(view); err != nil {
		log.Printf("Failed to record profile view: %v", err)
	}
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Check if the requested username belongs to a different account
	if req.Username != "" && req.Username != user.Username {
		existing, err := h.userRepository.GetUserByUsername(req.Username)
		if err == nil && existing.ID != currentUserID {
			return echo.NewHTTPError(http.StatusBadRequest, "Username already taken")
		}
		user.Username = req.Username
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Birthday != "" {
		user.Birthday = req.Birthday
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Profile updated successfully", "user": user})
}

// ProfileViewEntry is a view record with the viewer resolved to display fields
type ProfileViewEntry struct {
	Viewer   models.UserCompact `json:"viewer"`
	ViewedAt time.Time          `json:"viewedAt"`
}

// GetProfileViews returns the owner's profile view list, newest first. Only
// the profile owner may read it.
func (h *UserHandler) GetProfileViews(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ownerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if currentUserID != uint(ownerID) {
		return echo.NewHTTPError(http.StatusForbidden, "Access denied")
	}

	views, err := h.profileViewRepository.GetViewsByOwner(uint(ownerID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	entries := make([]ProfileViewEntry, len(views))
	viewerCache := make(map[uint]models.UserCompact)
	for i, v := range views {
		entries[i] = ProfileViewEntry{ViewedAt: v.ViewedAt}
		if viewer, ok := viewerCache[v.ViewerID]; ok {
			entries[i].Viewer = viewer
		} else {
			user, err := h.userRepository.GetUserByID(v.ViewerID)
			if err == nil {
				compact := user.ToCompact()
				viewerCache[v.ViewerID] = compact
				entries[i].Viewer = compact
			}
		}
	}

	return c.JSON(http.StatusOK, entries)
}
