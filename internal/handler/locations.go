package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightbooking/internal/locations"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/provider"
)

type LocationsHandler struct {
	provider provider.Provider
	log      *logrus.Entry
}

func NewLocationsHandler(p provider.Provider, log *logrus.Logger) *LocationsHandler {
	return &LocationsHandler{
		provider: p,
		log:      log.WithField("component", "locations_handler"),
	}
}

// Search suggests airports and cities for an autocomplete keyword. A
// remote lookup failure is not an error for the caller: the local
// catalog still answers.
func (h *LocationsHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if len(keyword) < 2 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Keyword must be at least 2 characters",
			Code:    http.StatusBadRequest,
		})
	}

	remote, err := h.provider.SearchLocations(c.Request().Context(), keyword)
	if err != nil {
		h.log.WithError(err).Warn("remote location lookup degraded")
		remote = nil
	}

	return c.JSON(http.StatusOK, models.LocationsResponse{
		Keyword:   keyword,
		Locations: locations.Resolve(keyword, remote),
	})
}
