package models

// TherapistCard is the list-view projection of a therapist.
type TherapistCard struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Qualification     string  `json:"qualification"`
	Specialization    string  `json:"specialization,omitempty"`
	PricePerSession   float64 `json:"pricePerSession,omitempty"`
	ProfilePictureURL string  `json:"profilePictureUrl,omitempty"`
	Rating            float64 `json:"rating,omitempty"`
	ReviewsCount      int     `json:"reviewsCount,omitempty"`
}

// TherapistProfile is the detail view: the card plus the canonical
// availability snapshot.
type TherapistProfile struct {
	TherapistCard
	Availability CanonicalAvailability `json:"availability"`
}

// UpdateTherapistSettingsRequest updates a therapist's own price and weekly
// availability. The availability value is a day→times map; invalid or
// duplicate entries are dropped during normalization.
type UpdateTherapistSettingsRequest struct {
	PricePerSession float64             `json:"pricePerSession" binding:"required"`
	Availability    map[string][]string `json:"availability"`
}
