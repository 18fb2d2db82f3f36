package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"spotrent/internal/domain"
	"spotrent/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) HasConflict(ctx context.Context, spotID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, spotID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetBySpot(ctx context.Context, spotID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBySpotWithRenters(ctx context.Context, spotID int64) ([]repository.BookingWithRenter, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingWithRenter), args.Error(1)
}

type MockSpotGate struct {
	mock.Mock
}

func (m *MockSpotGate) GetByID(ctx context.Context, id int64) (*domain.Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)
	mockBookings.On("CreateIfFree", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockSpots)

	res, err := service.Create(context.Background(), 2, 7, CreateBookingRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
	})

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, int64(7), res.SpotID)
	assert.Equal(t, int64(2), res.UserID)
	assert.Equal(t, "2024-06-01", res.StartDate)
	assert.Equal(t, "2024-06-05", res.EndDate)
}

func TestService_Create_Conflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)
	mockBookings.On("CreateIfFree", mock.Anything, mock.Anything).Return(repository.ErrOverlap)

	service := NewService(mockBookings, mockSpots)

	_, err := service.Create(context.Background(), 2, 7, CreateBookingRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Create_OwnerCannotBookOwnSpot(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)

	service := NewService(mockBookings, mockSpots)

	// valid dates, still forbidden for the owner
	_, err := service.Create(context.Background(), 1, 7, CreateBookingRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	mockBookings.AssertNotCalled(t, "CreateIfFree", mock.Anything, mock.Anything)
}

func TestService_Create_SpotNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockSpots)

	_, err := service.Create(context.Background(), 2, 99, CreateBookingRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_InvertedRange(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)

	service := NewService(mockBookings, mockSpots)

	_, err := service.Create(context.Background(), 2, 7, CreateBookingRequest{
		StartDate: "2024-06-05",
		EndDate:   "2024-06-01",
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "CreateIfFree", mock.Anything, mock.Anything)
}

func TestService_Create_MalformedDate(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)

	service := NewService(mockBookings, mockSpots)

	_, err := service.Create(context.Background(), 2, 7, CreateBookingRequest{
		StartDate: "June 1st",
		EndDate:   "2024-06-05",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListForSpot_OwnerSeesRenterIdentity(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mockBookings.On("GetBySpotWithRenters", mock.Anything, int64(7)).Return([]repository.BookingWithRenter{
		{
			Booking: domain.Booking{ID: 5, SpotID: 7, UserID: 2, StartDate: start, EndDate: start.AddDate(0, 0, 4)},
			Renter:  domain.User{ID: 2, FirstName: "Gabe", LastName: "Ortiz"},
		},
	}, nil)

	service := NewService(mockBookings, mockSpots)

	res, err := service.ListForSpot(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.Nil(t, res.DatesOnly)
	assert.Len(t, res.Full, 1)
	assert.Equal(t, "Gabe", res.Full[0].User.FirstName)
	assert.Equal(t, "2024-06-01", res.Full[0].StartDate)
}

func TestService_ListForSpot_NonOwnerSeesDatesOnly(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mockBookings.On("GetBySpot", mock.Anything, int64(7)).Return([]domain.Booking{
		{ID: 5, SpotID: 7, UserID: 2, StartDate: start, EndDate: start.AddDate(0, 0, 4)},
	}, nil)

	service := NewService(mockBookings, mockSpots)

	res, err := service.ListForSpot(context.Background(), 3, 7)

	assert.NoError(t, err)
	assert.Nil(t, res.Full)
	assert.Len(t, res.DatesOnly, 1)
	assert.Equal(t, int64(7), res.DatesOnly[0].SpotID)
	assert.Equal(t, "2024-06-01", res.DatesOnly[0].StartDate)
	assert.Equal(t, "2024-06-05", res.DatesOnly[0].EndDate)
	mockBookings.AssertNotCalled(t, "GetBySpotWithRenters", mock.Anything, mock.Anything)
}
