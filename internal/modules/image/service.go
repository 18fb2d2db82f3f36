package image

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"spotrent/internal/domain"
	"spotrent/internal/pkg/authz"
)

type Service struct {
	images ImageRepository
	spots  SpotGate
}

func NewService(images ImageRepository, spots SpotGate) *Service {
	return &Service{images: images, spots: spots}
}

// Attach adds an image url to a spot. Only the spot's owner may
// attach, a spot holds at most MaxImagesPerSpot images, and when the
// new image is the preview any previous preview flag is cleared by the
// repository in the same transaction.
func (s *Service) Attach(ctx context.Context, actorID, spotID int64, req AttachImageRequest) (*domain.SpotImage, error) {
	sp, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := authz.RequireOwner(actorID, sp); err != nil {
		return nil, ErrForbidden
	}

	cnt, err := s.images.CountBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if cnt >= MaxImagesPerSpot {
		return nil, ErrCapacityExceeded
	}

	img := &domain.SpotImage{
		SpotID:  spotID,
		URL:     req.URL,
		Preview: req.Preview,
	}

	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}
