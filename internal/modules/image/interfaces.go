package image

import (
	"context"

	"spotrent/internal/domain"
)

type ImageRepository interface {
	Create(ctx context.Context, img *domain.SpotImage) error
	CountBySpot(ctx context.Context, spotID int64) (int64, error)
}

type SpotGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Spot, error)
}
