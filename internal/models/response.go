package models

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type SearchResponse struct {
	SearchCriteria SearchCriteria    `json:"search_criteria"`
	Metadata       SearchMetadata    `json:"metadata"`
	Offers         []Offer           `json:"offers"`
	Carriers       map[string]string `json:"carriers,omitempty"`
}

type RoundTripResponse struct {
	SearchCriteria SearchCriteria    `json:"search_criteria"`
	Metadata       SearchMetadata    `json:"metadata"`
	OutboundOffers []Offer           `json:"outbound_offers"`
	ReturnOffers   []Offer           `json:"return_offers"`
	Carriers       map[string]string `json:"carriers,omitempty"`
}

type LocationsResponse struct {
	Keyword   string     `json:"keyword"`
	Locations []Location `json:"locations"`
}

type BookingResponse struct {
	Reference string `json:"reference"`
}

type RejectionResponse struct {
	Error          string `json:"error"`
	Rule           string `json:"rule"`
	Message        string `json:"message"`
	PassengerIndex *int   `json:"passenger_index,omitempty"`
	OtherIndex     *int   `json:"other_index,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
