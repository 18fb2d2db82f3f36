package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"spotrent/internal/domain"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

type spotImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	SpotID    int64     `gorm:"column:spot_id;index"`
	URL       string    `gorm:"column:url;type:text"`
	Preview   bool      `gorm:"column:preview"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (spotImageModel) TableName() string { return "spot_images" }

func toDomainImage(m spotImageModel) *domain.SpotImage {
	return &domain.SpotImage{
		ID:        m.ID,
		SpotID:    m.SpotID,
		URL:       m.URL,
		Preview:   m.Preview,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toImageModel(img *domain.SpotImage) spotImageModel {
	return spotImageModel{
		ID:        img.ID,
		SpotID:    img.SpotID,
		URL:       img.URL,
		Preview:   img.Preview,
		CreatedAt: img.CreatedAt,
		UpdatedAt: img.UpdatedAt,
	}
}

// Create inserts the image. When the new image is flagged as preview,
// any previous preview for the same spot loses the flag in the same
// transaction, keeping at most one preview per spot.
func (r *ImageRepository) Create(ctx context.Context, img *domain.SpotImage) error {
	m := toImageModel(img)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.Preview {
			if err := tx.Model(&spotImageModel{}).
				Where("spot_id = ? AND preview = ?", m.SpotID, true).
				Update("preview", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}
	*img = *toDomainImage(m)
	return nil
}

func (r *ImageRepository) CountBySpot(ctx context.Context, spotID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&spotImageModel{}).Where("spot_id = ?", spotID).Count(&cnt)
	return cnt, tx.Error
}

func (r *ImageRepository) GetBySpot(ctx context.Context, spotID int64) ([]domain.SpotImage, error) {
	var rows []spotImageModel
	if tx := r.db.WithContext(ctx).Where("spot_id = ?", spotID).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.SpotImage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainImage(m))
	}
	return out, nil
}

// GetPreviewURL returns the url of the preview-flagged image for the
// spot, or ok=false when the spot has none.
func (r *ImageRepository) GetPreviewURL(ctx context.Context, spotID int64) (string, bool, error) {
	var m spotImageModel
	tx := r.db.WithContext(ctx).
		Where("spot_id = ? AND preview = ?", spotID, true).
		First(&m)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, tx.Error
	}
	return m.URL, true, nil
}
