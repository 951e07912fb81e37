package comment

import (
	"context"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"
)

type CommentRepositoryInterface interface {
	List(ctx context.Context, f repository.CommentFilters) ([]domain.Comment, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, commentID string, userID int64) error
	Unlike(ctx context.Context, commentID string, userID int64) error
	CountLikes(ctx context.Context, commentID string) (int64, error)
}

// FestivalGate verifies the festival a comment points at exists.
type FestivalGate interface {
	GetByID(ctx context.Context, id string) (*domain.Festival, error)
}
