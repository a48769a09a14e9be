package ranking

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

type SortKey string

const (
	SortPrice     SortKey = "price"
	SortDuration  SortKey = "duration"
	SortDeparture SortKey = "departure"
)

type StopFilter string

const (
	StopsAll     StopFilter = "all"
	StopsDirect  StopFilter = "direct"
	StopsOneStop StopFilter = "oneStop"
)

// DefaultSortKey and DefaultStopFilter are what the results view
// resets to between selection phases.
const (
	DefaultSortKey    = SortPrice
	DefaultStopFilter = StopsAll
)

// Rank filters offers by stop count, then stable-sorts by the given
// key. The input is never mutated; equal keys keep their input order.
func Rank(offers []models.Offer, key SortKey, stops StopFilter) []models.Offer {
	filtered := applyStopFilter(offers, stops)

	result := make([]models.Offer, len(filtered))
	copy(result, filtered)

	switch key {
	case SortDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return durationMinutes(result[i]) < durationMinutes(result[j])
		})

	case SortDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Itinerary.DepartureAt() < result[j].Itinerary.DepartureAt()
		})

	case SortPrice:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return priceAmount(result[i]).LessThan(priceAmount(result[j]))
		})
	}

	return result
}

func applyStopFilter(offers []models.Offer, stops StopFilter) []models.Offer {
	if stops == StopsAll || stops == "" {
		return offers
	}

	result := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		switch stops {
		case StopsDirect:
			if o.Stops() == 0 {
				result = append(result, o)
			}
		case StopsOneStop:
			if o.Stops() == 1 {
				result = append(result, o)
			}
		}
	}
	return result
}

// Offers with unparseable prices or durations sort last.

func priceAmount(o models.Offer) decimal.Decimal {
	amount, ok := o.Price.Amount()
	if !ok {
		return decimal.NewFromFloat(math.MaxFloat64)
	}
	return amount
}

func durationMinutes(o models.Offer) int {
	minutes, err := ParseISODuration(o.Itinerary.Duration)
	if err != nil {
		return math.MaxInt
	}
	return minutes
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseISODuration converts a provider duration like "PT2H30M" to
// total minutes. Comparing the raw strings only works while every
// value has the same digit widths, so durations are always compared
// through this.
func ParseISODuration(s string) (int, error) {
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, &ParseError{Input: s}
	}

	minutes := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
	}
	if m[2] != "" {
		mins, _ := strconv.Atoi(m[2])
		minutes += mins
	}
	return minutes, nil
}

type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "invalid ISO-8601 duration: " + e.Input
}
