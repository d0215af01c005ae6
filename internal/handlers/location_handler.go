package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/aqardot/aqardot-api/internal/services"
	"github.com/gin-gonic/gin"
)

func queryLang(c *gin.Context) models.Lang {
	return models.ParseLang(c.Query("lang"))
}

func locationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrGovernorateNotFound),
		errors.Is(err, models.ErrCityNotFound),
		errors.Is(err, models.ErrAreaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.Error(err)
	}
}

func GetGovernorates(ls *services.LocationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		govs, err := ls.Governorates(c.Request.Context(), queryLang(c), strings.TrimSpace(c.Query("q")))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, govs)
	}
}

func GetGovernorateCities(ls *services.LocationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := ls.Cities(c.Request.Context(), queryLang(c), c.Param("govSlug"))
		if err != nil {
			locationError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func GetCityAreas(ls *services.LocationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := ls.Areas(c.Request.Context(), queryLang(c), c.Param("govSlug"), c.Param("citySlug"))
		if err != nil {
			locationError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func GetAreaSubareas(ls *services.LocationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := ls.Subareas(c.Request.Context(), queryLang(c),
			c.Param("govSlug"), c.Param("citySlug"), c.Param("areaSlug"))
		if err != nil {
			locationError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func GetGovernorateTree(ls *services.LocationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := ls.Tree(c.Request.Context(), queryLang(c), c.Param("govSlug"))
		if err != nil {
			locationError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
