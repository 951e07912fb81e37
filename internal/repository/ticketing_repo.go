package repository

import (
	"context"

	"festivalapi/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketingRepository struct {
	db *gorm.DB
}

func NewTicketingRepository(db *gorm.DB) *TicketingRepository {
	return &TicketingRepository{db: db}
}

func (r *TicketingRepository) Create(ctx context.Context, t *domain.Ticketing) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TicketingRepository) GetByName(ctx context.Context, name string) (*domain.Ticketing, error) {
	var t domain.Ticketing
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketingRepository) ListByFestival(ctx context.Context, festivalID string) ([]domain.Ticketing, error) {
	var batches []domain.Ticketing
	err := r.db.WithContext(ctx).
		Where("festival_id = ?", festivalID).
		Order("opened_at").
		Find(&batches).Error
	return batches, err
}

// Book decrements availability inside a row-locked transaction and returns
// the updated batch. The status hook closes the batch when it sells out.
func (r *TicketingRepository) Book(ctx context.Context, name string, count uint) (*domain.Ticketing, error) {
	var booked *domain.Ticketing

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t domain.Ticketing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&t).Error; err != nil {
			return err
		}

		if t.Status == domain.TicketingClosed || t.AvailableTickets < count {
			return ErrNotEnoughTickets
		}

		t.AvailableTickets -= count
		if err := tx.Save(&t).Error; err != nil {
			return err
		}

		booked = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booked, nil
}
