package booking

import (
	"context"
	"time"

	"spotrent/internal/domain"
	"spotrent/internal/repository"
)

type BookingRepository interface {
	HasConflict(ctx context.Context, spotID int64, start, end time.Time) (bool, error)
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	GetBySpot(ctx context.Context, spotID int64) ([]domain.Booking, error)
	GetBySpotWithRenters(ctx context.Context, spotID int64) ([]repository.BookingWithRenter, error)
}

type SpotGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Spot, error)
}
