package image

// MaxImagesPerSpot caps how many images a spot may carry.
const MaxImagesPerSpot = 10

type AttachImageRequest struct {
	URL     string `json:"url" binding:"required,url"`
	Preview bool   `json:"preview"`
}

type ImageResponse struct {
	ID          int64  `json:"id"`
	ImageableID int64  `json:"imageableId"`
	URL         string `json:"url"`
}
