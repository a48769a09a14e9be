package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/provider"
)

type BookingHandler struct {
	provider  provider.Provider
	submitter *booking.Submitter
	log       *logrus.Entry
}

func NewBookingHandler(p provider.Provider, log *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		provider:  p,
		submitter: booking.NewSubmitter(p, log),
		log:       log.WithField("component", "booking_handler"),
	}
}

type confirmPriceRequest struct {
	Offer models.Offer `json:"offer"`
}

func (h *BookingHandler) ConfirmPrice(c echo.Context) error {
	var req confirmPriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "Malformed request body",
			Code:    http.StatusBadRequest,
		})
	}
	if len(req.Offer.Itinerary.Segments) == 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "Missing flight offer data",
			Code:    http.StatusBadRequest,
		})
	}

	confirmed, err := h.provider.ConfirmPrice(c.Request().Context(), req.Offer)
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "pricing_error",
			Message: "Failed to confirm flight price: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusOK, confirmed)
}

// Create validates a complete booking selection and submits it. A
// rule violation comes back as 422 with the rule id and passenger
// index; a provider refusal as 502 with its message. The caller stays
// on the form either way and may resubmit.
func (h *BookingHandler) Create(c echo.Context) error {
	var selection models.BookingSelection
	if err := c.Bind(&selection); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "Malformed request body",
			Code:    http.StatusBadRequest,
		})
	}

	// Reaching booking without a selected itinerary is a dead end,
	// not a crash; the client recovers by returning to search.
	if len(selection.Outbound.Itinerary.Segments) == 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no_selection",
			Message: "No flight selected; return to search",
			Code:    http.StatusBadRequest,
		})
	}

	if result := booking.Validate(selection.Contact, selection.Passengers); !result.OK {
		resp := models.RejectionResponse{
			Error:   "validation_error",
			Rule:    string(result.Rule),
			Message: result.Message,
		}
		if result.PassengerIndex >= 0 {
			idx := result.PassengerIndex
			resp.PassengerIndex = &idx
		}
		if result.OtherIndex >= 0 {
			idx := result.OtherIndex
			resp.OtherIndex = &idx
		}
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}

	confirmation, failure := h.submitter.Submit(c.Request().Context(), selection)
	if failure != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "booking_error",
			Message: failure.Message,
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusOK, models.BookingResponse{
		Reference: confirmation.Reference,
	})
}
