package repository

import (
	"context"

	"festivalapi/internal/domain"

	"gorm.io/gorm"
)

type FestivalFilters struct {
	Search string
	Limit  int
	Offset int
}

type FestivalRepository struct {
	db *gorm.DB
}

func NewFestivalRepository(db *gorm.DB) *FestivalRepository {
	return &FestivalRepository{db: db}
}

// GetAll returns festivals with an optional name/discipline/commune search.
func (r *FestivalRepository) GetAll(
	ctx context.Context,
	f FestivalFilters,
) ([]domain.Festival, int64, error) {

	var festivals []domain.Festival
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Festival{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR discipline LIKE ? OR commune LIKE ?", like, like, like)
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Order("id").Find(&festivals).Error

	return festivals, total, err
}

func (r *FestivalRepository) GetByID(ctx context.Context, id string) (*domain.Festival, error) {
	var festival domain.Festival
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&festival).Error; err != nil {
		return nil, err
	}
	return &festival, nil
}

func (r *FestivalRepository) Create(ctx context.Context, festival *domain.Festival) error {
	return r.db.WithContext(ctx).Create(festival).Error
}

func (r *FestivalRepository) Update(ctx context.Context, festival *domain.Festival) error {
	return r.db.WithContext(ctx).Save(festival).Error
}

func (r *FestivalRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Festival{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
