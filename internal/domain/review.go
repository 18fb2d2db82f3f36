package domain

import "time"

// Review holds a single user's rating of a spot. A user may review a
// spot at most once.
type Review struct {
	ID        int64     `json:"id"`
	SpotID    int64     `json:"spotId"`
	UserID    int64     `json:"userId"`
	Review    string    `json:"review"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
