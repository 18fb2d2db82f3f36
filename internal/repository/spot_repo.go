package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"spotrent/internal/domain"
)

type SpotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

type spotModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	Address     string    `gorm:"column:address"`
	City        string    `gorm:"column:city"`
	State       string    `gorm:"column:state"`
	Country     string    `gorm:"column:country"`
	Lat         float64   `gorm:"column:lat"`
	Lng         float64   `gorm:"column:lng"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description;type:text"`
	Price       float64   `gorm:"column:price"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (spotModel) TableName() string { return "spots" }

func toDomainSpot(m spotModel) *domain.Spot {
	return &domain.Spot{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Address:     m.Address,
		City:        m.City,
		State:       m.State,
		Country:     m.Country,
		Lat:         m.Lat,
		Lng:         m.Lng,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSpotModel(s *domain.Spot) spotModel {
	return spotModel{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Country:     s.Country,
		Lat:         s.Lat,
		Lng:         s.Lng,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SpotRepository) Create(ctx context.Context, s *domain.Spot) error {
	m := toSpotModel(s)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSpot(m)
	return nil
}

func (r *SpotRepository) GetByID(ctx context.Context, id int64) (*domain.Spot, error) {
	var m spotModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSpot(m), nil
}

func (r *SpotRepository) GetAll(ctx context.Context) ([]domain.Spot, error) {
	var rows []spotModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Spot, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSpot(m))
	}
	return out, nil
}

func (r *SpotRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Spot, error) {
	var rows []spotModel
	if tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Spot, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSpot(m))
	}
	return out, nil
}

func (r *SpotRepository) Update(ctx context.Context, s *domain.Spot) error {
	m := toSpotModel(s)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSpot(m)
	return nil
}

// Delete removes the spot and its dependent rows in one transaction.
// SQLite runs without foreign_keys by default, so the cascade is done
// explicitly rather than left to the schema.
func (r *SpotRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("spot_id = ?", id).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", id).Delete(&reviewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", id).Delete(&spotImageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&spotModel{}, id).Error
	})
}
