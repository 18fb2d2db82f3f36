package domain

import "time"

// Spot is a rentable listing owned by a single user.
type Spot struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Spot) OwnedBy() int64 { return s.OwnerID }
