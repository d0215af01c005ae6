package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/aqardot/aqardot-api/internal/services"
	"github.com/gin-gonic/gin"
)

// isListingValidationErr separates client mistakes from infrastructure
// failures; only the former surface with their message, the rest go through
// the terminal error handler.
func isListingValidationErr(err error) bool {
	return errors.Is(err, services.ErrMissingFields) ||
		errors.Is(err, services.ErrInvalidPurpose) ||
		errors.Is(err, services.ErrInvalidCategory) ||
		errors.Is(err, models.ErrGovernorateRequired) ||
		errors.Is(err, models.ErrCityRequired)
}

func CreateListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
			return
		}

		listing, err := ls.CreateListing(c.Request.Context(), user.ID.Hex(), body)
		if err != nil {
			if isListingValidationErr(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"listing": listing})
	}
}

func UpdateListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		id, ok := parseObjectID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid listing ID format"})
			return
		}

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
			return
		}

		updated, err := ls.UpdateListing(c.Request.Context(), id, user.ID.Hex(), body)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrListingNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
			case errors.Is(err, services.ErrNotOwner):
				c.JSON(http.StatusForbidden, gin.H{"message": "You are not allowed to update this listing"})
			case isListingValidationErr(err):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"updatedListing": updated})
	}
}

func DeleteListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		id, ok := parseObjectID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid listing ID format"})
			return
		}

		if err := ls.DeleteListing(c.Request.Context(), id, user.ID.Hex()); err != nil {
			switch {
			case errors.Is(err, models.ErrListingNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
			case errors.Is(err, services.ErrNotOwner):
				c.JSON(http.StatusForbidden, gin.H{"message": "You are not allowed to delete this listing"})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
	}
}

func GetListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid listing ID format"})
			return
		}

		listing, err := ls.GetListing(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrListingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, listing)
	}
}

// SearchListings decodes the filter surface from the query string. Every
// param is optional; absent means unfiltered.
func SearchListings(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.SearchParams{
			Term:       strings.TrimSpace(c.Query("searchTerm")),
			Purpose:    c.Query("purpose"),
			Category:   c.Query("category"),
			GovSlug:    strings.ToLower(c.Query("gov")),
			CitySlug:   strings.ToLower(c.Query("city")),
			MinPrice:   queryFloat(c, "min"),
			MaxPrice:   queryFloat(c, "max"),
			Bedrooms:   queryFloat(c, "bedrooms"),
			Bathrooms:  queryFloat(c, "bathrooms"),
			MinSize:    queryFloat(c, "minSize"),
			MaxSize:    queryFloat(c, "maxSize"),
			Furnished:  c.Query("furnished") == "true",
			Parking:    c.Query("parking") == "true",
			Limit:      queryInt(c, "limit", models.DefaultSearchLimit),
			StartIndex: queryInt(c, "startIndex", 0),
			Sort:       c.DefaultQuery("sort", "createdAt"),
			Order:      -1,
		}
		if strings.ToLower(c.DefaultQuery("order", "desc")) == "asc" {
			params.Order = 1
		}

		listings, err := ls.SearchListings(c.Request.Context(), params)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, listings)
	}
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
