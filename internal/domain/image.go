package domain

import "time"

// SpotImage is an image attached to a spot. At most one image per spot
// carries the preview flag; the flagged one represents the spot in
// list views.
type SpotImage struct {
	ID        int64     `json:"id"`
	SpotID    int64     `json:"spotId"`
	URL       string    `json:"url"`
	Preview   bool      `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
