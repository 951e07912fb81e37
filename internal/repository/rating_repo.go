package repository

import (
	"context"

	"festivalapi/internal/domain"

	"gorm.io/gorm"
)

type RatingFilters struct {
	FestivalID string
	Ordering   string // rating or -rating
	Limit      int
	Offset     int
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

var ratingOrderings = map[string]string{
	"rating":  "rating ASC",
	"-rating": "rating DESC",
}

func (r *RatingRepository) List(
	ctx context.Context,
	f RatingFilters,
) ([]domain.Rating, int64, error) {

	var ratings []domain.Rating
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Rating{})

	if f.FestivalID != "" {
		q = q.Where("festival_id = ?", f.FestivalID)
	}

	q.Count(&total)

	if order, ok := ratingOrderings[f.Ordering]; ok {
		q = q.Order(order)
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Find(&ratings).Error
	return ratings, total, err
}

func (r *RatingRepository) GetByID(ctx context.Context, id string) (*domain.Rating, error) {
	var rating domain.Rating
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *RatingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *RatingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AverageForFestival returns nil when the festival has no ratings.
func (r *RatingRepository) AverageForFestival(ctx context.Context, festivalID string) (*float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Where("festival_id = ?", festivalID).
		Select("AVG(rating)").
		Scan(&avg).Error
	return avg, err
}
