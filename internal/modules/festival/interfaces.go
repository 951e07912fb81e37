package festival

import (
	"context"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"
)

type FestivalRepositoryInterface interface {
	GetAll(ctx context.Context, f repository.FestivalFilters) ([]domain.Festival, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Festival, error)
	Create(ctx context.Context, festival *domain.Festival) error
	Update(ctx context.Context, festival *domain.Festival) error
	Delete(ctx context.Context, id string) error
}

// RatingReader exposes the aggregate the rating module owns.
type RatingReader interface {
	AverageForFestival(ctx context.Context, festivalID string) (*float64, error)
}

// CommentReader exposes the comment listing the comment module owns.
type CommentReader interface {
	List(ctx context.Context, f repository.CommentFilters) ([]domain.Comment, int64, error)
}
