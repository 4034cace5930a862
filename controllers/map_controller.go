package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services/geo"
)

// @Summary Lists venues and games near a coordinate
// @Description Serves the map feature. Results come from the short-lived geo cache when fresh; a thin result set advances the search radius for the next fetch.
// @Tags map
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param sport query string false "Sport filter"
// @Param window query string false "Schedule window (now/today/next24h/thisWeek)"
// @Success 200 {object} object{venues=[]object,games=[]object,radius_miles=integer,broadened=boolean}
// @Failure 400 {object} object{error=string}
// @Failure 502 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/nearby [get]
func GetNearby(geoService *geo.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
			return
		}
		lng, err := strconv.ParseFloat(c.Query("lng"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
			return
		}

		window := geo.GameWindow(c.DefaultQuery("window", string(geo.WindowThisWeek)))

		result, err := geoService.Nearby(c.Request.Context(), lat, lng, c.Query("sport"), window)
		if err != nil {
			if errors.Is(err, geo.ErrFetchTimeout) {
				c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Nearby lookup timed out"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Nearby lookup failed"})
			return
		}

		// Uniform pin list: the mobile map renders venues and games the
		// same way, dispatching on the pin type
		pins := make([]gin.H, 0)
		for _, pin := range geo.Pins(result) {
			coord := pin.PinCoordinate()
			entry := gin.H{
				"id":        pin.PinID(),
				"latitude":  coord.Latitude,
				"longitude": coord.Longitude,
			}
			switch p := pin.(type) {
			case models.Venue:
				entry["kind"] = "venue"
				entry["name"] = p.Name
			case models.MapGame:
				entry["kind"] = "game"
				entry["title"] = p.Title
			}
			pins = append(pins, entry)
		}

		c.JSON(http.StatusOK, gin.H{
			"venues":       result.Venues,
			"games":        result.Games,
			"pins":         pins,
			"radius_miles": int(result.Radius),
			"broadened":    result.Broadened,
		})
	}
}
