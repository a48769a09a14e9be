package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/ratelimit"
	"github.com/dharmasatrya/flightbooking/pkg/currency"
)

const (
	defaultBaseURL = "https://test.api.amadeus.com"
	defaultMax     = 50

	// Refresh the token slightly before the provider expires it.
	tokenExpiryMargin = 30 * time.Second
)

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	Timeout      time.Duration
	MaxResults   int
}

// Amadeus talks to the Amadeus self-service APIs: flight offers
// search, location reference data, offer pricing and flight orders.
type Amadeus struct {
	client     *resty.Client
	cfg        AmadeusConfig
	limiter    *ratelimit.OperationLimiter
	log        *logrus.Entry
	mu         sync.Mutex
	token      string
	tokenUntil time.Time
}

func NewAmadeus(cfg AmadeusConfig, limiter *ratelimit.OperationLimiter, log *logrus.Logger) *Amadeus {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = defaultMax
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &Amadeus{
		client:  client,
		cfg:     cfg,
		limiter: limiter,
		log:     log.WithField("component", "amadeus"),
	}
}

// ─── OAuth2 token ─────────────────────────────────────────────────────

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (a *Amadeus) accessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Now().Before(a.tokenUntil) {
		return a.token, nil
	}

	var body tokenResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     a.cfg.ClientID,
			"client_secret": a.cfg.ClientSecret,
		}).
		SetResult(&body).
		Post("/v1/security/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("token request failed (%d): %s", resp.StatusCode(), resp.String())
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	a.token = body.AccessToken
	a.tokenUntil = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - tokenExpiryMargin)
	return a.token, nil
}

func (a *Amadeus) request(ctx context.Context, op string) (*resty.Request, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx, op); err != nil {
			return nil, err
		}
	}

	token, err := a.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	return a.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// errorBody is the provider's error envelope.
type errorBody struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

func apiError(resp *resty.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && len(body.Errors) > 0 {
		apiErr.Detail = body.Errors[0].Detail
	}
	return apiErr
}

// ─── Flight search ────────────────────────────────────────────────────

type wireSegment struct {
	Departure   models.Endpoint `json:"departure"`
	Arrival     models.Endpoint `json:"arrival"`
	CarrierCode string          `json:"carrierCode"`
	Number      string          `json:"number"`
}

type wireItinerary struct {
	Duration string        `json:"duration"`
	Segments []wireSegment `json:"segments"`
}

type wirePrice struct {
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

type wireOffer struct {
	ID          string          `json:"id"`
	Itineraries []wireItinerary `json:"itineraries"`
	Price       wirePrice       `json:"price"`
}

type wireOffersResponse struct {
	Data         []wireOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

// decodeOffer validates the required fields instead of letting missing
// JSON collapse into zero values.
func decodeOffer(w wireOffer) (models.Offer, error) {
	if len(w.Itineraries) == 0 {
		return models.Offer{}, fmt.Errorf("offer %q has no itineraries: %w", w.ID, ErrMalformedOffer)
	}

	it := w.Itineraries[0]
	if len(it.Segments) == 0 {
		return models.Offer{}, fmt.Errorf("offer %q has no segments: %w", w.ID, ErrMalformedOffer)
	}
	if it.Duration == "" {
		return models.Offer{}, fmt.Errorf("offer %q has no duration: %w", w.ID, ErrMalformedOffer)
	}

	total := w.Price.Total
	if total == "" {
		total = w.Price.GrandTotal
	}
	if total == "" {
		return models.Offer{}, fmt.Errorf("offer %q has no price total: %w", w.ID, ErrMalformedOffer)
	}

	segments := make([]models.Segment, len(it.Segments))
	for i, s := range it.Segments {
		segments[i] = models.Segment{
			CarrierCode: s.CarrierCode,
			Number:      s.Number,
			Departure:   s.Departure,
			Arrival:     s.Arrival,
		}
	}

	return models.Offer{
		ID: w.ID,
		Itinerary: models.Itinerary{
			Duration: it.Duration,
			Segments: segments,
		},
		Price: models.Price{
			Total:     total,
			Currency:  w.Price.Currency,
			Formatted: currency.FormatTotal(total),
		},
	}, nil
}

// SearchFlights queries one direction. Round trips call this twice
// with swapped criteria.
func (a *Amadeus) SearchFlights(ctx context.Context, criteria models.SearchCriteria) (*SearchResult, error) {
	req, err := a.request(ctx, OpSearchFlights)
	if err != nil {
		return nil, NewProviderError(OpSearchFlights, err)
	}

	var body wireOffersResponse
	resp, err := req.
		SetQueryParams(map[string]string{
			"originLocationCode":      criteria.Origin,
			"destinationLocationCode": criteria.Destination,
			"departureDate":           criteria.DepartureDate,
			"adults":                  strconv.Itoa(criteria.Adults),
			"max":                     strconv.Itoa(a.cfg.MaxResults),
			"currencyCode":            "IDR",
		}).
		SetResult(&body).
		Get("/v2/shopping/flight-offers")
	if err != nil {
		return nil, NewProviderError(OpSearchFlights, err)
	}
	if !resp.IsSuccess() {
		return nil, NewProviderError(OpSearchFlights, apiError(resp))
	}

	offers := make([]models.Offer, 0, len(body.Data))
	for _, w := range body.Data {
		offer, err := decodeOffer(w)
		if err != nil {
			return nil, NewProviderError(OpSearchFlights, err)
		}
		offers = append(offers, offer)
	}

	carriers := body.Dictionaries.Carriers
	if carriers == nil {
		carriers = map[string]string{}
	}

	a.log.WithFields(logrus.Fields{
		"origin":      criteria.Origin,
		"destination": criteria.Destination,
		"offers":      len(offers),
	}).Debug("flight search completed")

	return &SearchResult{Offers: offers, Carriers: carriers}, nil
}

// ─── Location search ──────────────────────────────────────────────────

type wireLocationsResponse struct {
	Data []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		IataCode string `json:"iataCode"`
		Address  struct {
			CityName    string `json:"cityName"`
			CountryName string `json:"countryName"`
		} `json:"address"`
	} `json:"data"`
}

func (a *Amadeus) SearchLocations(ctx context.Context, keyword string) ([]models.Location, error) {
	req, err := a.request(ctx, OpSearchLocations)
	if err != nil {
		return nil, NewProviderError(OpSearchLocations, err)
	}

	var body wireLocationsResponse
	resp, err := req.
		SetQueryParams(map[string]string{
			"keyword": keyword,
			"subType": "CITY,AIRPORT",
		}).
		SetResult(&body).
		Get("/v1/reference-data/locations")
	if err != nil {
		return nil, NewProviderError(OpSearchLocations, err)
	}
	if !resp.IsSuccess() {
		return nil, NewProviderError(OpSearchLocations, apiError(resp))
	}

	locations := make([]models.Location, 0, len(body.Data))
	for _, d := range body.Data {
		if d.IataCode == "" {
			continue
		}
		locations = append(locations, models.Location{
			ID:          d.ID,
			Name:        d.Name,
			IATACode:    d.IataCode,
			CityName:    d.Address.CityName,
			CountryName: d.Address.CountryName,
		})
	}

	return locations, nil
}

// ─── Price confirmation ───────────────────────────────────────────────

type pricingRequest struct {
	Data struct {
		Type         string         `json:"type"`
		FlightOffers []models.Offer `json:"flightOffers"`
	} `json:"data"`
}

type pricingResponse struct {
	Data struct {
		FlightOffers []struct {
			Price wirePrice `json:"price"`
		} `json:"flightOffers"`
	} `json:"data"`
}

func (a *Amadeus) ConfirmPrice(ctx context.Context, offer models.Offer) (models.Offer, error) {
	req, err := a.request(ctx, OpConfirmPrice)
	if err != nil {
		return models.Offer{}, NewProviderError(OpConfirmPrice, err)
	}

	var payload pricingRequest
	payload.Data.Type = "flight-offers-pricing"
	payload.Data.FlightOffers = []models.Offer{offer}

	var body pricingResponse
	resp, err := req.
		SetBody(payload).
		SetResult(&body).
		Post("/v2/shopping/flight-offers/pricing")
	if err != nil {
		return models.Offer{}, NewProviderError(OpConfirmPrice, err)
	}
	if !resp.IsSuccess() {
		return models.Offer{}, NewProviderError(OpConfirmPrice, apiError(resp))
	}

	if len(body.Data.FlightOffers) == 0 {
		return models.Offer{}, NewProviderError(OpConfirmPrice,
			fmt.Errorf("pricing response has no offers: %w", ErrMalformedOffer))
	}

	confirmed := body.Data.FlightOffers[0].Price
	total := confirmed.Total
	if total == "" {
		total = confirmed.GrandTotal
	}
	if total == "" {
		return models.Offer{}, NewProviderError(OpConfirmPrice,
			fmt.Errorf("pricing response has no price total: %w", ErrMalformedOffer))
	}

	offer.Price.Total = total
	offer.Price.Formatted = currency.FormatTotal(total)
	if confirmed.Currency != "" {
		offer.Price.Currency = confirmed.Currency
	}
	return offer, nil
}

// ─── Booking ──────────────────────────────────────────────────────────

type wireTraveler struct {
	ID          string `json:"id"`
	DateOfBirth string `json:"dateOfBirth"`
	Name        struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"name"`
	Gender  string `json:"gender"`
	Contact struct {
		EmailAddress string `json:"emailAddress"`
		Phones       []struct {
			DeviceType         string `json:"deviceType"`
			CountryCallingCode string `json:"countryCallingCode"`
			Number             string `json:"number"`
		} `json:"phones"`
	} `json:"contact"`
	Documents []struct {
		DocumentType    string `json:"documentType"`
		Number          string `json:"number"`
		Nationality     string `json:"nationality"`
		IssuanceCountry string `json:"issuanceCountry"`
		Holder          bool   `json:"holder"`
	} `json:"documents"`
}

type orderPayload struct {
	Data struct {
		Type         string         `json:"type"`
		FlightOffers []models.Offer `json:"flightOffers"`
		Travelers    []wireTraveler `json:"travelers"`
	} `json:"data"`
}

type orderResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func toWireTraveler(t Traveler) wireTraveler {
	var w wireTraveler
	w.ID = t.ID
	w.DateOfBirth = t.DateOfBirth
	w.Name.FirstName = t.FirstName
	w.Name.LastName = t.LastName
	w.Gender = t.Gender
	w.Contact.EmailAddress = t.Email
	w.Contact.Phones = []struct {
		DeviceType         string `json:"deviceType"`
		CountryCallingCode string `json:"countryCallingCode"`
		Number             string `json:"number"`
	}{{
		DeviceType:         "MOBILE",
		CountryCallingCode: "62",
		Number:             t.Phone,
	}}
	w.Documents = []struct {
		DocumentType    string `json:"documentType"`
		Number          string `json:"number"`
		Nationality     string `json:"nationality"`
		IssuanceCountry string `json:"issuanceCountry"`
		Holder          bool   `json:"holder"`
	}{{
		DocumentType:    "PASSPORT",
		Number:          t.Document.Number,
		Nationality:     t.Document.Nationality,
		IssuanceCountry: t.Document.IssuanceCountry,
		Holder:          true,
	}}
	return w
}

func (a *Amadeus) CreateBooking(ctx context.Context, order OrderRequest) (Order, error) {
	req, err := a.request(ctx, OpCreateBooking)
	if err != nil {
		return Order{}, NewProviderError(OpCreateBooking, err)
	}

	var payload orderPayload
	payload.Data.Type = "flight-order"
	payload.Data.FlightOffers = order.Offers
	payload.Data.Travelers = make([]wireTraveler, len(order.Travelers))
	for i, t := range order.Travelers {
		payload.Data.Travelers[i] = toWireTraveler(t)
	}

	var body orderResponse
	resp, err := req.
		SetBody(payload).
		SetResult(&body).
		Post("/v1/booking/flight-orders")
	if err != nil {
		return Order{}, NewProviderError(OpCreateBooking, err)
	}
	if !resp.IsSuccess() {
		return Order{}, NewProviderError(OpCreateBooking, apiError(resp))
	}

	if body.Data.ID == "" {
		return Order{}, NewProviderError(OpCreateBooking,
			fmt.Errorf("order response missing id"))
	}

	a.log.WithField("order_id", body.Data.ID).Info("booking created")
	return Order{ID: body.Data.ID}, nil
}
