package ticketing

import (
	"context"
	"errors"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"

	"gorm.io/gorm"
)

// Service owns the ticket batch lifecycle. Booking is deliberately not
// exposed over HTTP; it exists for offline tooling until a checkout flow
// ships.
type Service struct {
	batches *repository.TicketingRepository
}

func NewService(batches *repository.TicketingRepository) *Service {
	return &Service{batches: batches}
}

func (s *Service) Create(ctx context.Context, batch *domain.Ticketing) error {
	if batch.Name == "" || batch.FestivalID == "" || batch.TotalTickets == 0 {
		return ErrInvalidRequest
	}
	return s.batches.Create(ctx, batch)
}

func (s *Service) Get(ctx context.Context, name string) (*domain.Ticketing, error) {
	batch, err := s.batches.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return batch, nil
}

func (s *Service) ListByFestival(ctx context.Context, festivalID string) ([]domain.Ticketing, error) {
	return s.batches.ListByFestival(ctx, festivalID)
}

// Book reserves count tickets from a batch. The batch closes itself when the
// last ticket goes.
func (s *Service) Book(ctx context.Context, name string, count uint) (*domain.Ticketing, error) {
	if count == 0 {
		return nil, ErrInvalidRequest
	}

	batch, err := s.batches.Book(ctx, name, count)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrNotEnoughTickets):
			return nil, ErrSoldOut
		}
		return nil, err
	}
	return batch, nil
}
