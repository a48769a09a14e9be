package locations

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

// Resolve merges remote lookup results with local catalog matches.
// Remote entries are trusted primary and are never dropped; local
// matches are appended unless the remote set already has the same IATA
// code. The combined list is re-ranked so entries whose IATA code
// starts with the query come first, ties keeping their input order.
func Resolve(query string, remote []models.Location) []models.Location {
	q := strings.ToLower(strings.TrimSpace(query))

	combined := make([]models.Location, 0, len(remote))
	combined = append(combined, remote...)

	if q == "" {
		return combined
	}

	for _, loc := range Catalog {
		if !matches(loc, q) {
			continue
		}

		duplicate := lo.ContainsBy(remote, func(r models.Location) bool {
			return r.IATACode == loc.IATACode
		})
		if !duplicate {
			combined = append(combined, loc)
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return codeMatch(combined[i], q) && !codeMatch(combined[j], q)
	})

	return combined
}

func matches(loc models.Location, q string) bool {
	return strings.Contains(strings.ToLower(loc.Name), q) ||
		strings.Contains(strings.ToLower(loc.IATACode), q) ||
		strings.Contains(strings.ToLower(loc.CityName), q) ||
		strings.Contains(strings.ToLower(loc.CountryName), q)
}

func codeMatch(loc models.Location, q string) bool {
	return strings.HasPrefix(strings.ToLower(loc.IATACode), q)
}
