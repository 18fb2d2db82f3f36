package review

import (
	"context"

	"spotrent/internal/domain"
	"spotrent/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetBySpotWithAuthors(ctx context.Context, spotID int64) ([]repository.ReviewWithAuthor, error)
}

type SpotGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Spot, error)
}
