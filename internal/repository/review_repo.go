package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"spotrent/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	SpotID    int64     `gorm:"column:spot_id;uniqueIndex:idx_one_review_per_spot_user"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_one_review_per_spot_user"`
	Review    string    `gorm:"column:review;size:255"`
	Stars     int       `gorm:"column:stars"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		SpotID:    m.SpotID,
		UserID:    m.UserID,
		Review:    m.Review,
		Stars:     m.Stars,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	return reviewModel{
		ID:        rv.ID,
		SpotID:    rv.SpotID,
		UserID:    rv.UserID,
		Review:    rv.Review,
		Stars:     rv.Stars,
		CreatedAt: rv.CreatedAt,
		UpdatedAt: rv.UpdatedAt,
	}
}

// ReviewWithAuthor pairs a review row with the reviewing user's name.
type ReviewWithAuthor struct {
	Review domain.Review
	Author domain.User
}

type reviewAuthorRow struct {
	reviewModel
	AuthorFirstName string `gorm:"column:author_first_name"`
	AuthorLastName  string `gorm:"column:author_last_name"`
}

// ReviewAggregate holds the computed review stats for one spot.
// Avg is nil when the spot has no reviews.
type ReviewAggregate struct {
	Count int64
	Avg   *float64
}

// Create inserts the review; a violation of the one-review-per-
// (spot, user) unique index is surfaced as ErrDuplicateReview.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateReview
		}
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetBySpotWithAuthors(ctx context.Context, spotID int64) ([]ReviewWithAuthor, error) {
	var rows []reviewAuthorRow
	tx := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, users.first_name AS author_first_name, users.last_name AS author_last_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.spot_id = ?", spotID).
		Order("reviews.id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]ReviewWithAuthor, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReviewWithAuthor{
			Review: *toDomainReview(row.reviewModel),
			Author: domain.User{
				ID:        row.UserID,
				FirstName: row.AuthorFirstName,
				LastName:  row.AuthorLastName,
			},
		})
	}
	return out, nil
}

// AggregateForSpot computes the review count and mean star rating for
// a spot in a single scan.
func (r *ReviewRepository) AggregateForSpot(ctx context.Context, spotID int64) (ReviewAggregate, error) {
	var row struct {
		Count int64    `gorm:"column:num_reviews"`
		Avg   *float64 `gorm:"column:avg_stars"`
	}
	tx := r.db.WithContext(ctx).
		Table("reviews").
		Select("COUNT(id) AS num_reviews, AVG(stars) AS avg_stars").
		Where("spot_id = ?", spotID).
		Scan(&row)
	if tx.Error != nil {
		return ReviewAggregate{}, tx.Error
	}
	return ReviewAggregate{Count: row.Count, Avg: row.Avg}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite (local dev and tests) reports unique violations by message
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "constraint failed") && strings.Contains(s, "unique")
}
