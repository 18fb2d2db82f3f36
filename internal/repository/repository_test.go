package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"spotrent/internal/database"
	"spotrent/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{FirstName: "Test", LastName: "User", Email: email, PasswordHash: "x"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedSpot(t *testing.T, db *gorm.DB, ownerID int64) *domain.Spot {
	t.Helper()
	s := &domain.Spot{
		OwnerID: ownerID,
		Address: "1 Test St", City: "Testville", State: "TS", Country: "USA",
		Lat: 1, Lng: 2, Name: "Test Spot", Description: "d", Price: 100,
	}
	require.NoError(t, NewSpotRepository(db).Create(context.Background(), s))
	return s
}

func TestBookingRepository_HasConflict_Boundaries(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	renter := seedUser(t, db, "renter@test.dev")
	spot := seedSpot(t, db, owner.ID)

	bookings := NewBookingRepository(db)
	require.NoError(t, bookings.CreateIfFree(ctx, &domain.Booking{
		SpotID:    spot.ID,
		UserID:    renter.ID,
		StartDate: mustDate(t, "2024-06-03"),
		EndDate:   mustDate(t, "2024-06-10"),
	}))

	// overlapping range
	got, err := bookings.HasConflict(ctx, spot.ID, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-05"))
	require.NoError(t, err)
	assert.True(t, got)

	// adjacent range, no overlap
	got, err = bookings.HasConflict(ctx, spot.ID, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-02"))
	require.NoError(t, err)
	assert.False(t, got)

	// touching endpoint counts as conflict (both ends inclusive)
	got, err = bookings.HasConflict(ctx, spot.ID, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	require.NoError(t, err)
	assert.True(t, got)

	// other spots are unaffected
	other := seedSpot(t, db, owner.ID)
	got, err = bookings.HasConflict(ctx, other.ID, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-05"))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestBookingRepository_CreateIfFree(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	renter := seedUser(t, db, "renter@test.dev")
	spot := seedSpot(t, db, owner.ID)

	bookings := NewBookingRepository(db)
	require.NoError(t, bookings.CreateIfFree(ctx, &domain.Booking{
		SpotID:    spot.ID,
		UserID:    renter.ID,
		StartDate: mustDate(t, "2024-06-03"),
		EndDate:   mustDate(t, "2024-06-10"),
	}))

	err := bookings.CreateIfFree(ctx, &domain.Booking{
		SpotID:    spot.ID,
		UserID:    renter.ID,
		StartDate: mustDate(t, "2024-06-01"),
		EndDate:   mustDate(t, "2024-06-05"),
	})
	assert.ErrorIs(t, err, ErrOverlap)

	rows, err := bookings.GetBySpot(ctx, spot.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// a disjoint range is still accepted
	require.NoError(t, bookings.CreateIfFree(ctx, &domain.Booking{
		SpotID:    spot.ID,
		UserID:    renter.ID,
		StartDate: mustDate(t, "2024-06-11"),
		EndDate:   mustDate(t, "2024-06-14"),
	}))
}

// Two racing inserts for overlapping ranges may not both commit; the
// check and insert share one transaction.
func TestBookingRepository_CreateIfFree_Race(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	renter := seedUser(t, db, "renter@test.dev")
	spot := seedSpot(t, db, owner.ID)

	bookings := NewBookingRepository(db)
	start := mustDate(t, "2024-06-01")
	end := mustDate(t, "2024-06-05")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = bookings.CreateIfFree(ctx, &domain.Booking{
				SpotID:    spot.ID,
				UserID:    renter.ID,
				StartDate: start,
				EndDate:   end,
			})
		}()
	}
	wg.Wait()

	rows, err := bookings.GetBySpot(ctx, spot.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(rows), 1)
	// no committed pair may overlap
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			b1, b2 := rows[i], rows[j]
			overlap := !b1.StartDate.After(b2.EndDate) && !b2.StartDate.After(b1.EndDate)
			assert.False(t, overlap)
		}
	}
}

func TestReviewRepository_DuplicatePerSpotUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	renter := seedUser(t, db, "renter@test.dev")
	spot := seedSpot(t, db, owner.ID)

	reviews := NewReviewRepository(db)
	require.NoError(t, reviews.Create(ctx, &domain.Review{
		SpotID: spot.ID, UserID: renter.ID, Review: "Nice", Stars: 5,
	}))

	err := reviews.Create(ctx, &domain.Review{
		SpotID: spot.ID, UserID: renter.ID, Review: "Again", Stars: 1,
	})
	assert.ErrorIs(t, err, ErrDuplicateReview)

	rows, err := reviews.GetBySpotWithAuthors(ctx, spot.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Test", rows[0].Author.FirstName)

	// same user may review a different spot
	other := seedSpot(t, db, owner.ID)
	assert.NoError(t, reviews.Create(ctx, &domain.Review{
		SpotID: other.ID, UserID: renter.ID, Review: "Other", Stars: 3,
	}))
}

func TestReviewRepository_AggregateForSpot(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	spot := seedSpot(t, db, owner.ID)

	reviews := NewReviewRepository(db)
	for i, stars := range []int{5, 3, 4} {
		u := seedUser(t, db, []string{"a@t.dev", "b@t.dev", "c@t.dev"}[i])
		require.NoError(t, reviews.Create(ctx, &domain.Review{
			SpotID: spot.ID, UserID: u.ID, Review: "r", Stars: stars,
		}))
	}

	agg, err := reviews.AggregateForSpot(ctx, spot.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), agg.Count)
	require.NotNil(t, agg.Avg)
	assert.InDelta(t, 4.0, *agg.Avg, 0.001)

	// empty spot: zero count, nil average
	empty := seedSpot(t, db, owner.ID)
	agg, err = reviews.AggregateForSpot(ctx, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), agg.Count)
	assert.Nil(t, agg.Avg)
}

func TestImageRepository_SinglePreviewPerSpot(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	spot := seedSpot(t, db, owner.ID)

	images := NewImageRepository(db)
	require.NoError(t, images.Create(ctx, &domain.SpotImage{SpotID: spot.ID, URL: "https://img/a.jpg", Preview: true}))
	require.NoError(t, images.Create(ctx, &domain.SpotImage{SpotID: spot.ID, URL: "https://img/b.jpg", Preview: true}))

	url, ok, err := images.GetPreviewURL(ctx, spot.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://img/b.jpg", url)

	var previews int64
	require.NoError(t, db.Model(&spotImageModel{}).
		Where("spot_id = ? AND preview = ?", spot.ID, true).
		Count(&previews).Error)
	assert.Equal(t, int64(1), previews)
}

func TestImageRepository_NoPreview(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	spot := seedSpot(t, db, owner.ID)

	images := NewImageRepository(db)
	require.NoError(t, images.Create(ctx, &domain.SpotImage{SpotID: spot.ID, URL: "https://img/a.jpg"}))

	_, ok, err := images.GetPreviewURL(ctx, spot.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSpotRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.dev")
	renter := seedUser(t, db, "renter@test.dev")
	spot := seedSpot(t, db, owner.ID)

	require.NoError(t, NewImageRepository(db).Create(ctx, &domain.SpotImage{SpotID: spot.ID, URL: "https://img/a.jpg"}))
	require.NoError(t, NewReviewRepository(db).Create(ctx, &domain.Review{SpotID: spot.ID, UserID: renter.ID, Review: "r", Stars: 4}))
	require.NoError(t, NewBookingRepository(db).CreateIfFree(ctx, &domain.Booking{
		SpotID: spot.ID, UserID: renter.ID,
		StartDate: mustDate(t, "2024-06-01"), EndDate: mustDate(t, "2024-06-05"),
	}))

	spots := NewSpotRepository(db)
	require.NoError(t, spots.Delete(ctx, spot.ID))

	_, err := spots.GetByID(ctx, spot.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	for table, model := range map[string]any{
		"spot_images": &spotImageModel{},
		"reviews":     &reviewModel{},
		"bookings":    &bookingModel{},
	} {
		var cnt int64
		require.NoError(t, db.Model(model).Where("spot_id = ?", spot.ID).Count(&cnt).Error, table)
		assert.Zero(t, cnt, table)
	}
}
