package handlers

import (
	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 when the
// request carries no valid claims.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}
