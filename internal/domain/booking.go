package domain

import "time"

// Booking reserves a spot for an inclusive range of calendar dates.
// StartDate and EndDate are stored at UTC midnight; two bookings for
// the same spot may never overlap, touching endpoints included.
type Booking struct {
	ID        int64     `json:"id"`
	SpotID    int64     `json:"spotId"`
	UserID    int64     `json:"userId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
