package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"spotrent/internal/domain"
	"spotrent/internal/repository"
)

type Service struct {
	reviews ReviewRepository
	spots   SpotGate
}

func NewService(reviews ReviewRepository, spots SpotGate) *Service {
	return &Service{reviews: reviews, spots: spots}
}

// Create stores the actor's review of a spot. Stars must be 1..5, the
// text at most 255 characters, and a user may review a spot only once;
// the second attempt fails on the unique index and creates no row.
func (s *Service) Create(ctx context.Context, actorID, spotID int64, req CreateReviewRequest) (*domain.Review, error) {
	if actorID <= 0 || req.Stars < 1 || req.Stars > 5 {
		return nil, ErrInvalidRequest
	}
	if req.Review == "" || len(req.Review) > maxReviewLen {
		return nil, ErrInvalidRequest
	}

	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		SpotID: spotID,
		UserID: actorID,
		Review: req.Review,
		Stars:  req.Stars,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

// ListForSpot returns the spot's reviews, each with the reviewing
// user's identity attached.
func (s *Service) ListForSpot(ctx context.Context, spotID int64) ([]ReviewResponse, error) {
	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.reviews.GetBySpotWithAuthors(ctx, spotID)
	if err != nil {
		return nil, err
	}

	out := make([]ReviewResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReviewResponse{
			ID:        row.Review.ID,
			SpotID:    row.Review.SpotID,
			UserID:    row.Review.UserID,
			Review:    row.Review.Review,
			Stars:     row.Review.Stars,
			CreatedAt: row.Review.CreatedAt,
			UpdatedAt: row.Review.UpdatedAt,
			User: &AuthorSummary{
				ID:        row.Author.ID,
				FirstName: row.Author.FirstName,
				LastName:  row.Author.LastName,
			},
		})
	}
	return out, nil
}
