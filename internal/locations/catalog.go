package locations

import "github.com/dharmasatrya/flightbooking/internal/models"

// Catalog is the local airport/city reference list used for
// autocomplete suggestions when the remote lookup is degraded or has
// nothing to say. Indonesian airports first, then the routes people
// actually fly from here.
var Catalog = []models.Location{
	{ID: "JKT1", Name: "Jakarta - Semua Bandara", IATACode: "JKT", CityName: "Jakarta", CountryName: "Indonesia"},
	{ID: "CGK1", Name: "Jakarta - Soekarno-Hatta International Airport", IATACode: "CGK", CityName: "Jakarta", CountryName: "Indonesia"},
	{ID: "HLP1", Name: "Jakarta - Halim Perdanakusuma Airport", IATACode: "HLP", CityName: "Jakarta", CountryName: "Indonesia"},
	{ID: "DPS1", Name: "Denpasar - Ngurah Rai International Airport", IATACode: "DPS", CityName: "Denpasar", CountryName: "Indonesia"},
	{ID: "SUB1", Name: "Surabaya - Juanda International Airport", IATACode: "SUB", CityName: "Surabaya", CountryName: "Indonesia"},
	{ID: "BTH1", Name: "Batam - Hang Nadim International Airport", IATACode: "BTH", CityName: "Batam", CountryName: "Indonesia"},
	{ID: "UPG1", Name: "Makassar - Sultan Hasanuddin Airport", IATACode: "UPG", CityName: "Makassar", CountryName: "Indonesia"},
	{ID: "KNO1", Name: "Medan - Kualanamu International Airport", IATACode: "KNO", CityName: "Medan", CountryName: "Indonesia"},
	{ID: "JOG1", Name: "Yogyakarta - Adisucipto International Airport", IATACode: "JOG", CityName: "Yogyakarta", CountryName: "Indonesia"},
	{ID: "YIA1", Name: "Yogyakarta - Yogyakarta International Airport", IATACode: "YIA", CityName: "Yogyakarta", CountryName: "Indonesia"},
	{ID: "BPN1", Name: "Balikpapan - Sultan Aji Muhammad Sulaiman Airport", IATACode: "BPN", CityName: "Balikpapan", CountryName: "Indonesia"},
	{ID: "PLM1", Name: "Palembang - Sultan Mahmud Badaruddin II Airport", IATACode: "PLM", CityName: "Palembang", CountryName: "Indonesia"},
	{ID: "BDO1", Name: "Bandung - Husein Sastranegara Airport", IATACode: "BDO", CityName: "Bandung", CountryName: "Indonesia"},
	{ID: "SRG1", Name: "Semarang - Ahmad Yani International Airport", IATACode: "SRG", CityName: "Semarang", CountryName: "Indonesia"},
	{ID: "MDC1", Name: "Manado - Sam Ratulangi International Airport", IATACode: "MDC", CityName: "Manado", CountryName: "Indonesia"},
	{ID: "PKU1", Name: "Pekanbaru - Sultan Syarif Kasim II Airport", IATACode: "PKU", CityName: "Pekanbaru", CountryName: "Indonesia"},
	{ID: "LOP1", Name: "Lombok - Lombok International Airport", IATACode: "LOP", CityName: "Lombok", CountryName: "Indonesia"},
	{ID: "SOC1", Name: "Solo - Adisumarmo International Airport", IATACode: "SOC", CityName: "Solo", CountryName: "Indonesia"},
	{ID: "PNK1", Name: "Pontianak - Supadio International Airport", IATACode: "PNK", CityName: "Pontianak", CountryName: "Indonesia"},
	{ID: "AMQ1", Name: "Ambon - Pattimura Airport", IATACode: "AMQ", CityName: "Ambon", CountryName: "Indonesia"},
	{ID: "SIN1", Name: "Singapore - Changi Airport", IATACode: "SIN", CityName: "Singapore", CountryName: "Singapore"},
	{ID: "KUL1", Name: "Kuala Lumpur - International Airport", IATACode: "KUL", CityName: "Kuala Lumpur", CountryName: "Malaysia"},
	{ID: "BKK1", Name: "Bangkok - Suvarnabhumi Airport", IATACode: "BKK", CityName: "Bangkok", CountryName: "Thailand"},
	{ID: "DMK1", Name: "Bangkok - Don Mueang Airport", IATACode: "DMK", CityName: "Bangkok", CountryName: "Thailand"},
	{ID: "MNL1", Name: "Manila - Ninoy Aquino Airport", IATACode: "MNL", CityName: "Manila", CountryName: "Philippines"},
	{ID: "HAN1", Name: "Hanoi - Noi Bai Airport", IATACode: "HAN", CityName: "Hanoi", CountryName: "Vietnam"},
	{ID: "SGN1", Name: "Ho Chi Minh - Tan Son Nhat Airport", IATACode: "SGN", CityName: "Ho Chi Minh", CountryName: "Vietnam"},
	{ID: "PNH1", Name: "Phnom Penh - International Airport", IATACode: "PNH", CityName: "Phnom Penh", CountryName: "Cambodia"},
	{ID: "RGN1", Name: "Yangon - International Airport", IATACode: "RGN", CityName: "Yangon", CountryName: "Myanmar"},
	{ID: "HKG1", Name: "Hong Kong - International Airport", IATACode: "HKG", CityName: "Hong Kong", CountryName: "Hong Kong"},
	{ID: "TPE1", Name: "Taipei - Taoyuan Airport", IATACode: "TPE", CityName: "Taipei", CountryName: "Taiwan"},
	{ID: "ICN1", Name: "Seoul - Incheon Airport", IATACode: "ICN", CityName: "Seoul", CountryName: "South Korea"},
	{ID: "NRT1", Name: "Tokyo - Narita Airport", IATACode: "NRT", CityName: "Tokyo", CountryName: "Japan"},
	{ID: "HND1", Name: "Tokyo - Haneda Airport", IATACode: "HND", CityName: "Tokyo", CountryName: "Japan"},
	{ID: "PEK1", Name: "Beijing - Capital Airport", IATACode: "PEK", CityName: "Beijing", CountryName: "China"},
	{ID: "PVG1", Name: "Shanghai - Pudong Airport", IATACode: "PVG", CityName: "Shanghai", CountryName: "China"},
	{ID: "DXB1", Name: "Dubai - International Airport", IATACode: "DXB", CityName: "Dubai", CountryName: "UAE"},
	{ID: "DOH1", Name: "Doha - Hamad Airport", IATACode: "DOH", CityName: "Doha", CountryName: "Qatar"},
	{ID: "AUH1", Name: "Abu Dhabi - International Airport", IATACode: "AUH", CityName: "Abu Dhabi", CountryName: "UAE"},
	{ID: "JED1", Name: "Jeddah - King Abdulaziz Airport", IATACode: "JED", CityName: "Jeddah", CountryName: "Saudi Arabia"},
	{ID: "SYD1", Name: "Sydney - Kingsford Smith Airport", IATACode: "SYD", CityName: "Sydney", CountryName: "Australia"},
	{ID: "MEL1", Name: "Melbourne - Tullamarine Airport", IATACode: "MEL", CityName: "Melbourne", CountryName: "Australia"},
	{ID: "PER1", Name: "Perth - Airport", IATACode: "PER", CityName: "Perth", CountryName: "Australia"},
	{ID: "AKL1", Name: "Auckland - Airport", IATACode: "AKL", CityName: "Auckland", CountryName: "New Zealand"},
	{ID: "LHR1", Name: "London - Heathrow Airport", IATACode: "LHR", CityName: "London", CountryName: "United Kingdom"},
	{ID: "CDG1", Name: "Paris - Charles de Gaulle Airport", IATACode: "CDG", CityName: "Paris", CountryName: "France"},
	{ID: "AMS1", Name: "Amsterdam - Schiphol Airport", IATACode: "AMS", CityName: "Amsterdam", CountryName: "Netherlands"},
	{ID: "FRA1", Name: "Frankfurt - Airport", IATACode: "FRA", CityName: "Frankfurt", CountryName: "Germany"},
	{ID: "IST1", Name: "Istanbul - Airport", IATACode: "IST", CityName: "Istanbul", CountryName: "Turkey"},
	{ID: "LAX1", Name: "Los Angeles - International Airport", IATACode: "LAX", CityName: "Los Angeles", CountryName: "USA"},
	{ID: "JFK1", Name: "New York - JFK Airport", IATACode: "JFK", CityName: "New York", CountryName: "USA"},
	{ID: "SFO1", Name: "San Francisco - International Airport", IATACode: "SFO", CityName: "San Francisco", CountryName: "USA"},
}
