package comment

import (
	"context"
	"errors"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	comments  CommentRepositoryInterface
	festivals FestivalGate
}

func NewService(comments CommentRepositoryInterface, festivals FestivalGate) *Service {
	return &Service{comments: comments, festivals: festivals}
}

// ListParams mirrors the supported query parameters. SearchSet distinguishes
// "search given but empty" from "no search at all": an empty term yields no
// results instead of an unfiltered dump.
type ListParams struct {
	FestivalID string
	Search     string
	SearchSet  bool
	Ordering   string
	Limit      int
	Offset     int
}

func (s *Service) List(ctx context.Context, p ListParams) ([]domain.Comment, int64, error) {
	if p.SearchSet && p.Search == "" {
		return []domain.Comment{}, 0, nil
	}

	return s.comments.List(ctx, repository.CommentFilters{
		FestivalID: p.FestivalID,
		Search:     p.Search,
		Ordering:   p.Ordering,
		Limit:      p.Limit,
		Offset:     p.Offset,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

// Create stores a new comment authored by authorID, whatever the request
// body claimed.
func (s *Service) Create(ctx context.Context, authorID int64, req CreateCommentRequest) (*domain.Comment, error) {
	if _, err := s.festivals.GetByID(ctx, req.Festival); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFestivalNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		AuthorID:   authorID,
		FestivalID: req.Festival,
		Content:    req.Content,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) Update(ctx context.Context, id string, userID int64, req UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) PartialUpdate(ctx context.Context, id string, userID int64, req PatchCommentRequest) (*domain.Comment, error) {
	comment, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, id)
}

// Like adds the user to the comment's likers and returns the new total.
// Liking twice is a no-op.
func (s *Service) Like(ctx context.Context, id string, userID int64) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}

	if err := s.comments.Like(ctx, id, userID); err != nil {
		return 0, err
	}
	return s.comments.CountLikes(ctx, id)
}

// Unlike removes the user from the comment's likers and returns the new
// total. Unliking a non-liked comment is a no-op.
func (s *Service) Unlike(ctx context.Context, id string, userID int64) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}

	if err := s.comments.Unlike(ctx, id, userID); err != nil {
		return 0, err
	}
	return s.comments.CountLikes(ctx, id)
}

func (s *Service) Likes(ctx context.Context, id string) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}
	return s.comments.CountLikes(ctx, id)
}

func (s *Service) getOwned(ctx context.Context, id string, userID int64) (*domain.Comment, error) {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, ErrForbidden
	}
	return comment, nil
}
