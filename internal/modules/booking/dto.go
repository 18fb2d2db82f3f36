package booking

import "time"

type CreateBookingRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// BookingResponse is the full booking row with calendar dates on the
// wire as YYYY-MM-DD.
type BookingResponse struct {
	ID        int64     `json:"id"`
	SpotID    int64     `json:"spotId"`
	UserID    int64     `json:"userId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerBooking is the spot owner's view of a booking, including the
// renter's identity.
type OwnerBooking struct {
	BookingResponse
	User RenterSummary `json:"User"`
}

type RenterSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RenterBooking is the restricted view shown to anyone but the spot
// owner: reserved date ranges only.
type RenterBooking struct {
	SpotID    int64  `json:"spotId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SpotBookings carries exactly one of the two projections, depending
// on whether the requesting actor owns the spot.
type SpotBookings struct {
	Full      []OwnerBooking
	DatesOnly []RenterBooking
}
