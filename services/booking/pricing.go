// File: services/booking/pricing.go
package booking

import (
	"math"

	"chaletbook/models"
	"chaletbook/utils"
)

// Quote is a display-only price projection. The authoritative total is
// computed at booking creation from the catalog rate; a Quote is never an
// input to the submission payload.
type Quote struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// Nights returns the number of nights between two display dates, zero when
// either date is missing or malformed.
func Nights(checkInDisplay, checkOutDisplay string) int {
	in, okIn := utils.ParseISODate(utils.ToISODate(checkInDisplay))
	out, okOut := utils.ParseISODate(utils.ToISODate(checkOutDisplay))
	if !okIn || !okOut || !out.After(in) {
		return 0
	}
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// QuoteStay computes the informative nights/total projection for a chalet and
// date range.
func QuoteStay(chalet *models.Chalet, checkInDisplay, checkOutDisplay string) Quote {
	nights := Nights(checkInDisplay, checkOutDisplay)
	return Quote{
		Nights: nights,
		Total:  float64(nights) * chalet.PricePerNight,
	}
}
