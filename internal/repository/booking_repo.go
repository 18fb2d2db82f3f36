package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"spotrent/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	SpotID    int64     `gorm:"column:spot_id;index"`
	UserID    int64     `gorm:"column:user_id;index"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		SpotID:    m.SpotID,
		UserID:    m.UserID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BookingWithRenter pairs a booking row with the renting user's name,
// for the spot owner's view.
type BookingWithRenter struct {
	Booking domain.Booking
	Renter  domain.User
}

type bookingRenterRow struct {
	bookingModel
	RenterFirstName string `gorm:"column:renter_first_name"`
	RenterLastName  string `gorm:"column:renter_last_name"`
}

// HasConflict reports whether any existing booking for the spot
// overlaps [start, end]. Both ends are inclusive: a candidate range
// [s, e] conflicts with an existing [s', e'] iff s' <= e AND e' >= s,
// so touching endpoints count as a conflict.
func (r *BookingRepository) HasConflict(ctx context.Context, spotID int64, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("spot_id = ? AND start_date <= ? AND end_date >= ?", spotID, end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// CreateIfFree runs the overlap check and the insert in one
// transaction so two racing requests cannot both pass the check. On
// postgres the bookings_no_overlap exclusion constraint backs the same
// invariant at the store level; a violation of it is also reported as
// ErrOverlap.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("spot_id = ? AND start_date <= ? AND end_date >= ?", m.SpotID, m.EndDate, m.StartDate).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		if errors.Is(err, ErrOverlap) || isOverlapViolation(err) {
			return ErrOverlap
		}
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetBySpot(ctx context.Context, spotID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	if tx := r.db.WithContext(ctx).Where("spot_id = ?", spotID).Order("start_date").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetBySpotWithRenters(ctx context.Context, spotID int64) ([]BookingWithRenter, error) {
	var rows []bookingRenterRow
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, users.first_name AS renter_first_name, users.last_name AS renter_last_name").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.spot_id = ?", spotID).
		Order("bookings.start_date").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]BookingWithRenter, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingWithRenter{
			Booking: *toDomainBooking(row.bookingModel),
			Renter: domain.User{
				ID:        row.UserID,
				FirstName: row.RenterFirstName,
				LastName:  row.RenterLastName,
			},
		})
	}
	return out, nil
}

func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code == "23P01" {
		return true
	}
	return pgErr.Code == "23505" && pgErr.ConstraintName == "bookings_no_overlap"
}
