package spot

import "time"

type CreateSpotRequest struct {
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	State       string  `json:"state" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	Lat         float64 `json:"lat" binding:"required"`
	Lng         float64 `json:"lng" binding:"required"`
	Name        string  `json:"name" binding:"required,max=50"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateSpotRequest = CreateSpotRequest

// SpotSummary is the list-view projection: the persisted spot fields
// plus the aggregated rating and the preview image. AvgRating and
// PreviewImage are omitted when the spot has no reviews or no preview.
type SpotSummary struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	AvgRating    *string   `json:"avgRating,omitempty"`
	PreviewImage *string   `json:"previewImage,omitempty"`
}

// SpotDetail is the single-spot projection with review stats, the
// full image list, and the owning user.
type SpotDetail struct {
	ID            int64          `json:"id"`
	OwnerID       int64          `json:"ownerId"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	Country       string         `json:"country"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	NumReviews    int64          `json:"numReviews"`
	AvgStarRating *string        `json:"avgStarRating,omitempty"`
	Images        []ImageSummary `json:"Images"`
	Owner         OwnerSummary   `json:"Owner"`
}

type ImageSummary struct {
	ID          int64  `json:"id"`
	ImageableID int64  `json:"imageableId"`
	URL         string `json:"url"`
}

type OwnerSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
