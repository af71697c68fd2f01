package models

// SearchParams captures the last-used search form values for a browsing
// session, so the form can be re-populated across navigation. Session-scoped
// and disposable.
type SearchParams struct {
	SkiArea        string `json:"skiArea,omitempty"`
	CheckInDisplay string `json:"checkInDisplay,omitempty"`
	Nights         int    `json:"nights,omitempty"`
	Guests         int    `json:"guests,omitempty"`
}
