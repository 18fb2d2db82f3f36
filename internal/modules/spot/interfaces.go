package spot

import (
	"context"

	"spotrent/internal/domain"
	"spotrent/internal/repository"
)

type SpotRepository interface {
	Create(ctx context.Context, s *domain.Spot) error
	GetByID(ctx context.Context, id int64) (*domain.Spot, error)
	GetAll(ctx context.Context) ([]domain.Spot, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Spot, error)
	Update(ctx context.Context, s *domain.Spot) error
	Delete(ctx context.Context, id int64) error
}

// ReviewStats supplies the aggregated review figures per spot.
type ReviewStats interface {
	AggregateForSpot(ctx context.Context, spotID int64) (repository.ReviewAggregate, error)
}

// ImageSource supplies the preview url and the full image list per spot.
type ImageSource interface {
	GetPreviewURL(ctx context.Context, spotID int64) (string, bool, error)
	GetBySpot(ctx context.Context, spotID int64) ([]domain.SpotImage, error)
}

type UserSource interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
