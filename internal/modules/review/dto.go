package review

import "time"

const maxReviewLen = 255

type CreateReviewRequest struct {
	Review string `json:"review" binding:"required"`
	Stars  int    `json:"stars" binding:"required"`
}

type ReviewResponse struct {
	ID        int64          `json:"id"`
	SpotID    int64          `json:"spotId"`
	UserID    int64          `json:"userId"`
	Review    string         `json:"review"`
	Stars     int            `json:"stars"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	User      *AuthorSummary `json:"User,omitempty"`
}

type AuthorSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
