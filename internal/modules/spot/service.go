package spot

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"spotrent/internal/domain"
	"spotrent/internal/pkg/authz"
)

type Service struct {
	spots   SpotRepository
	reviews ReviewStats
	images  ImageSource
	users   UserSource
}

func NewService(spots SpotRepository, reviews ReviewStats, images ImageSource, users UserSource) *Service {
	return &Service{spots: spots, reviews: reviews, images: images, users: users}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateSpotRequest) (*domain.Spot, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidRequest
	}

	sp := &domain.Spot{
		OwnerID:     ownerID,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.spots.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *Service) Update(ctx context.Context, actorID, spotID int64, req UpdateSpotRequest) (*domain.Spot, error) {
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

	sp.Address = req.Address
	sp.City = req.City
	sp.State = req.State
	sp.Country = req.Country
	sp.Lat = req.Lat
	sp.Lng = req.Lng
	sp.Name = req.Name
	sp.Description = req.Description
	sp.Price = req.Price

	if err := s.spots.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *Service) Delete(ctx context.Context, actorID, spotID int64) error {
	sp, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := authz.RequireOwner(actorID, sp); err != nil {
		return ErrForbidden
	}

	return s.spots.Delete(ctx, spotID)
}

// List returns every spot decorated with its average rating and
// preview image.
func (s *Service) List(ctx context.Context) ([]SpotSummary, error) {
	spots, err := s.spots.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, spots)
}

// ListByOwner returns the actor's own spots with the same decoration
// as List.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]SpotSummary, error) {
	spots, err := s.spots.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, spots)
}

// Get returns the detail view for one spot: persisted fields plus
// review count, average rating, images, and owner identity.
func (s *Service) Get(ctx context.Context, spotID int64) (*SpotDetail, error) {
	sp, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	agg, err := s.reviews.AggregateForSpot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	images, err := s.images.GetBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, sp.OwnerID)
	if err != nil {
		return nil, err
	}

	detail := &SpotDetail{
		ID:            sp.ID,
		OwnerID:       sp.OwnerID,
		Address:       sp.Address,
		City:          sp.City,
		State:         sp.State,
		Country:       sp.Country,
		Lat:           sp.Lat,
		Lng:           sp.Lng,
		Name:          sp.Name,
		Description:   sp.Description,
		Price:         sp.Price,
		CreatedAt:     sp.CreatedAt,
		UpdatedAt:     sp.UpdatedAt,
		NumReviews:    agg.Count,
		AvgStarRating: formatRating(agg.Avg),
		Images:        make([]ImageSummary, 0, len(images)),
		Owner: OwnerSummary{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
		},
	}
	for _, img := range images {
		detail.Images = append(detail.Images, ImageSummary{
			ID:          img.ID,
			ImageableID: img.SpotID,
			URL:         img.URL,
		})
	}
	return detail, nil
}

// decorate merges the aggregated rating and preview image into the
// spot's outward representation. Slight staleness between the two
// sub-queries is acceptable for this listing view.
func (s *Service) decorate(ctx context.Context, sp *domain.Spot) (SpotSummary, error) {
	out := SpotSummary{
		ID:          sp.ID,
		OwnerID:     sp.OwnerID,
		Address:     sp.Address,
		City:        sp.City,
		State:       sp.State,
		Country:     sp.Country,
		Lat:         sp.Lat,
		Lng:         sp.Lng,
		Name:        sp.Name,
		Description: sp.Description,
		Price:       sp.Price,
		CreatedAt:   sp.CreatedAt,
		UpdatedAt:   sp.UpdatedAt,
	}

	agg, err := s.reviews.AggregateForSpot(ctx, sp.ID)
	if err != nil {
		return out, err
	}
	out.AvgRating = formatRating(agg.Avg)

	url, ok, err := s.images.GetPreviewURL(ctx, sp.ID)
	if err != nil {
		return out, err
	}
	if ok {
		out.PreviewImage = &url
	}
	return out, nil
}

func (s *Service) decorateAll(ctx context.Context, spots []domain.Spot) ([]SpotSummary, error) {
	out := make([]SpotSummary, 0, len(spots))
	for i := range spots {
		summary, err := s.decorate(ctx, &spots[i])
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

// formatRating renders the mean star rating with one decimal place.
// Spots with no reviews get no rating field at all.
func formatRating(avg *float64) *string {
	if avg == nil {
		return nil
	}
	v := fmt.Sprintf("%.1f", *avg)
	return &v
}
