package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/aqardot/aqardot-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func favoriteListingID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("listingId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid listing id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// AddFavorite saves (or keeps) a listing in the caller's favorites. Adding
// twice is a no-op and still succeeds.
func AddFavorite(fs *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		listingID, ok := favoriteListingID(c)
		if !ok {
			return
		}

		if err := fs.AddFavorite(c.Request.Context(), user.ID, listingID); err != nil {
			if errors.Is(err, models.ErrListingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Listing not found"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func RemoveFavorite(fs *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		listingID, ok := favoriteListingID(c)
		if !ok {
			return
		}

		if err := fs.RemoveFavorite(c.Request.Context(), user.ID, listingID); err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ListFavoriteIDs returns only the favorited listing ids, for quick client
// store hydration.
func ListFavoriteIDs(fs *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		ids, err := fs.ListFavoriteIDs(c.Request.Context(), user.ID)
		if err != nil {
			c.Error(err)
			return
		}
		if ids == nil {
			ids = []string{}
		}

		c.JSON(http.StatusOK, ids)
	}
}

func ListFavorites(fs *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		page := queryInt(c, "page", 1)
		limit := queryInt(c, "limit", services.DefaultFavoritesLimit)

		results, total, page, limit, err := fs.ListFavorites(c.Request.Context(), user.ID, page, limit)
		if err != nil {
			c.Error(err)
			return
		}
		if results == nil {
			results = []*models.Listing{}
		}

		c.JSON(http.StatusOK, gin.H{
			"results": results,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}
