package rating

import (
	"context"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"
)

type RatingRepositoryInterface interface {
	List(ctx context.Context, f repository.RatingFilters) ([]domain.Rating, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Rating, error)
	Create(ctx context.Context, rating *domain.Rating) error
	Update(ctx context.Context, rating *domain.Rating) error
	Delete(ctx context.Context, id string) error
}

// FestivalGate verifies the festival a rating points at exists.
type FestivalGate interface {
	GetByID(ctx context.Context, id string) (*domain.Festival, error)
}
