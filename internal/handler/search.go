package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightbooking/internal/cache"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/provider"
	"github.com/dharmasatrya/flightbooking/internal/ranking"
)

type SearchHandler struct {
	provider provider.Provider
	cache    cache.Cache
	log      *logrus.Entry
}

func NewSearchHandler(p provider.Provider, c cache.Cache, log *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		provider: p,
		cache:    c,
		log:      log.WithField("component", "search_handler"),
	}
}

func criteriaFromQuery(c echo.Context) models.SearchCriteria {
	adults, _ := strconv.Atoi(c.QueryParam("adults"))

	criteria := models.SearchCriteria{
		Origin:        c.QueryParam("origin"),
		Destination:   c.QueryParam("destination"),
		DepartureDate: c.QueryParam("departureDate"),
		ReturnDate:    c.QueryParam("returnDate"),
		Adults:        adults,
	}
	if criteria.ReturnDate != "" {
		criteria.TripType = models.TripRoundTrip
	} else {
		criteria.TripType = models.TripOneWay
	}
	return criteria
}

func viewFromQuery(c echo.Context) (ranking.SortKey, ranking.StopFilter) {
	key := ranking.SortKey(c.QueryParam("sortBy"))
	if key == "" {
		key = ranking.DefaultSortKey
	}
	stops := ranking.StopFilter(c.QueryParam("stops"))
	if stops == "" {
		stops = ranking.DefaultStopFilter
	}
	return key, stops
}

// searchLeg loads one direction's offers, through the cache.
func (h *SearchHandler) searchLeg(c echo.Context, criteria models.SearchCriteria) ([]models.Offer, map[string]string, bool, error) {
	ctx := c.Request().Context()

	if offers, found := h.cache.Get(ctx, criteria); found {
		return offers, nil, true, nil
	}

	result, err := h.provider.SearchFlights(ctx, criteria)
	if err != nil {
		return nil, nil, false, err
	}

	if err := h.cache.Set(ctx, criteria, result.Offers); err != nil {
		h.log.WithError(err).Warn("cache set failed")
	}

	return result.Offers, result.Carriers, false, nil
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()

	criteria := criteriaFromQuery(c)
	if err := criteria.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	sortKey, stopFilter := viewFromQuery(c)

	outbound, carriers, cacheHit, err := h.searchLeg(c, criteria)
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	if criteria.TripType == models.TripRoundTrip {
		return h.respondRoundTrip(c, criteria, outbound, carriers, sortKey, stopFilter, cacheHit, startTime)
	}

	ranked := ranking.Rank(outbound, sortKey, stopFilter)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: criteria,
		Metadata: models.SearchMetadata{
			TotalResults: len(ranked),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		Offers:   ranked,
		Carriers: carriers,
	})
}

func (h *SearchHandler) respondRoundTrip(c echo.Context, criteria models.SearchCriteria, outbound []models.Offer, carriers map[string]string, sortKey ranking.SortKey, stopFilter ranking.StopFilter, cacheHit bool, startTime time.Time) error {
	returnOffers, returnCarriers, returnHit, err := h.searchLeg(c, criteria.Swapped())
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search return flights: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	merged := make(map[string]string, len(carriers)+len(returnCarriers))
	for code, name := range carriers {
		merged[code] = name
	}
	for code, name := range returnCarriers {
		merged[code] = name
	}

	rankedOut := ranking.Rank(outbound, sortKey, stopFilter)
	rankedRet := ranking.Rank(returnOffers, sortKey, stopFilter)

	return c.JSON(http.StatusOK, models.RoundTripResponse{
		SearchCriteria: criteria,
		Metadata: models.SearchMetadata{
			TotalResults: len(rankedOut) + len(rankedRet),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit && returnHit,
		},
		OutboundOffers: rankedOut,
		ReturnOffers:   rankedRet,
		Carriers:       merged,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Flight Booking API is running",
	})
}
