package handlers

import (
	"net/http"
	"strconv"

	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/Jannadolf/LookNest/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// NotificationPusher delivers a notification to a user's open connections.
type NotificationPusher interface {
	Push(userID uint, data any)
}

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	pusher           NotificationPusher
}

// NewFollowHandler creates a new FollowHandler. The pusher may be nil when no
// live channel is wired.
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, pusher NotificationPusher) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		pusher:           pusher,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow-status", h.GetFollowStatus)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
	g.DELETE("/users/:id/followers/:followerId", h.RemoveFollower)
}

// FollowUser follows a user and notifies them. The follow edge and its
// notification are written in one transaction.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if currentUserID == uint(targetID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	// Target must exist
	if _, err := h.userRepository.GetUserByID(uint(targetID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Check if already following
	isFollowing, err := h.followRepository.IsFollowing(currentUserID, uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return echo.NewHTTPError(http.StatusConflict, "Already following this user")
	}

	actor, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	follow := &models.Follow{
		FollowerID:  currentUserID,
		FollowingID: uint(targetID),
	}
	notif := &models.Notification{
		Type:        "follow",
		SenderID:    currentUserID,
		RecipientID: uint(targetID),
		Message:     actor.FullName + " started following you",
	}

	if err := h.followRepository.CreateFollow(follow, notif); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if h.pusher != nil {
		h.pusher.Push(uint(targetID), EnrichedNotification{
			Notification: *notif,
			Sender:       actor.ToCompact(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User followed successfully", "following": true})
}

// UnfollowUser unfollows a user. Unfollowing someone who was never followed
// succeeds silently.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if _, err := h.userRepository.GetUserByID(uint(targetID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.followRepository.DeleteFollow(currentUserID, uint(targetID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User unfollowed successfully", "following": false})
}

// GetFollowStatus reports whether the current user follows the target
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	isFollowing, err := h.followRepository.IsFollowing(currentUserID, uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"isFollowing": isFollowing})
}

// GetFollowers returns the user's followers as compact profiles
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	return h.listRelated(c, h.followRepository.GetFollowers)
}

// GetFollowing returns the users this user follows as compact profiles
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	return h.listRelated(c, h.followRepository.GetFollowing)
}

func (h *FollowHandler) listRelated(c echo.Context, fetch func(uint) ([]models.User, error)) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if _, err := h.userRepository.GetUserByID(uint(userID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	users, err := fetch(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	compacts := make([]models.UserCompact, len(users))
	for i, u := range users {
		compacts[i] = u.ToCompact()
	}
	return c.JSON(http.StatusOK, compacts)
}

// RemoveFollower removes a follower from the current user's follower list.
// Only the profile owner may do this.
func (h *FollowHandler) RemoveFollower(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ownerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	followerID, err := strconv.ParseUint(c.Param("followerId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid follower ID")
	}

	if currentUserID != uint(ownerID) {
		return echo.NewHTTPError(http.StatusForbidden, "Access denied")
	}

	if _, err := h.userRepository.GetUserByID(uint(followerID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// The follower follows the owner, so the edge runs follower -> owner.
	if err := h.followRepository.DeleteFollow(uint(followerID), uint(ownerID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Follower removed successfully"})
}
