package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"spotrent/internal/domain"
	"spotrent/internal/pkg/authz"
	"spotrent/internal/repository"
)

type Service struct {
	bookings BookingRepository
	spots    SpotGate
}

func NewService(bookings BookingRepository, spots SpotGate) *Service {
	return &Service{bookings: bookings, spots: spots}
}

// Create books the spot for the actor over an inclusive date range.
// The spot's owner may not book their own spot, and the range may not
// overlap any existing booking; the check and the insert run in one
// transaction at the repository so racing requests cannot both pass.
func (s *Service) Create(ctx context.Context, actorID, spotID int64, req CreateBookingRequest) (*BookingResponse, error) {
	sp, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if authz.IsOwner(actorID, sp) {
		return nil, ErrForbidden
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		SpotID:    spotID,
		UserID:    actorID,
		StartDate: start,
		EndDate:   end,
	}

	if err := s.bookings.CreateIfFree(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return toBookingResponse(b), nil
}

// HasConflict exposes the read-only overlap check: true when any
// existing booking for the spot overlaps [start, end], both ends
// inclusive.
func (s *Service) HasConflict(ctx context.Context, spotID int64, start, end time.Time) (bool, error) {
	return s.bookings.HasConflict(ctx, spotID, start, end)
}

// ListForSpot returns the spot's bookings shaped for the actor: the
// owner sees full rows including renter identity, everyone else sees
// only the reserved date ranges.
func (s *Service) ListForSpot(ctx context.Context, actorID, spotID int64) (*SpotBookings, error) {
	sp, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if authz.IsOwner(actorID, sp) {
		rows, err := s.bookings.GetBySpotWithRenters(ctx, spotID)
		if err != nil {
			return nil, err
		}
		full := make([]OwnerBooking, 0, len(rows))
		for _, row := range rows {
			full = append(full, OwnerBooking{
				BookingResponse: *toBookingResponse(&row.Booking),
				User: RenterSummary{
					ID:        row.Renter.ID,
					FirstName: row.Renter.FirstName,
					LastName:  row.Renter.LastName,
				},
			})
		}
		return &SpotBookings{Full: full}, nil
	}

	rows, err := s.bookings.GetBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}
	datesOnly := make([]RenterBooking, 0, len(rows))
	for _, b := range rows {
		datesOnly = append(datesOnly, RenterBooking{
			SpotID:    b.SpotID,
			StartDate: b.StartDate.Format(time.DateOnly),
			EndDate:   b.EndDate.Format(time.DateOnly),
		})
	}
	return &SpotBookings{DatesOnly: datesOnly}, nil
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(time.DateOnly, startStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(time.DateOnly, endStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, errors.New("startDate after endDate")
	}
	return start, end, nil
}

func toBookingResponse(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
