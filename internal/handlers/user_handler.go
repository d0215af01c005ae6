package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aqardot/aqardot-api/internal/config"
	"github.com/aqardot/aqardot-api/internal/middleware"
	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/aqardot/aqardot-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	return middleware.CurrentUser(c)
}

func parseObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetPublicUser exposes the safe subset of a profile: username, avatar,
// createdAt. No auth required.
func GetPublicUser(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID format"})
			return
		}

		user, err := us.GetPublicUser(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func UpdateUser(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if user.ID.Hex() != strings.TrimSpace(c.Param("id")) {
			c.JSON(http.StatusForbidden, gin.H{"message": "You can update only your account!"})
			return
		}

		var update models.UserUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
			return
		}

		updated, err := us.UpdateProfile(c.Request.Context(), user.ID, update)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWeakPassword),
				errors.Is(err, services.ErrInvalidEmail),
				errors.Is(err, services.ErrInvalidUsername):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteUser removes the account with all its listings, favorites, and
// stored images, then clears the session cookie.
func DeleteUser(us *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if user.ID.Hex() != strings.TrimSpace(c.Param("id")) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You can delete only your account!"})
			return
		}

		if err := us.DeleteAccount(c.Request.Context(), user.ID); err != nil {
			c.Error(err)
			return
		}

		clearSessionCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{"message": "User and related data deleted successfully."})
	}
}

// GetUserListings returns the caller's own listings. The optional :id param
// must match the session user.
func GetUserListings(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		requested := strings.TrimSpace(c.Param("id"))
		if requested != "" && requested != user.ID.Hex() {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You can access only your listings!"})
			return
		}

		listings, err := us.GetUserListings(c.Request.Context(), user.ID.Hex())
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, listings)
	}
}
