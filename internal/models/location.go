package models

// Location is an airport or city reference entry. Identity is the
// IATA code; everything else is display data.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IATACode    string `json:"iataCode"`
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}
