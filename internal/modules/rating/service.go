package rating

import (
	"context"
	"errors"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	ratings   RatingRepositoryInterface
	festivals FestivalGate
}

func NewService(ratings RatingRepositoryInterface, festivals FestivalGate) *Service {
	return &Service{ratings: ratings, festivals: festivals}
}

func (s *Service) List(ctx context.Context, festivalID, ordering string, limit, offset int) ([]domain.Rating, int64, error) {
	return s.ratings.List(ctx, repository.RatingFilters{
		FestivalID: festivalID,
		Ordering:   ordering,
		Limit:      limit,
		Offset:     offset,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Rating, error) {
	rating, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rating, nil
}

// Create stores a new rating owned by userID. A second rating for the same
// (user, festival) pair fails on the composite unique index.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRatingRequest) (*domain.Rating, error) {
	if err := s.checkFestival(ctx, req.Festival); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		UserID:     userID,
		FestivalID: req.Festival,
		Rating:     *req.Rating,
	}

	if err := s.ratings.Create(ctx, rating); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}
	return rating, nil
}

func (s *Service) Update(ctx context.Context, id string, userID int64, req UpdateRatingRequest) (*domain.Rating, error) {
	rating, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.checkFestival(ctx, req.Festival); err != nil {
		return nil, err
	}

	rating.FestivalID = req.Festival
	rating.Rating = *req.Rating

	if err := s.ratings.Update(ctx, rating); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}
	return rating, nil
}

func (s *Service) PartialUpdate(ctx context.Context, id string, userID int64, req PatchRatingRequest) (*domain.Rating, error) {
	rating, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Festival != nil {
		if err := s.checkFestival(ctx, *req.Festival); err != nil {
			return nil, err
		}
		rating.FestivalID = *req.Festival
	}
	if req.Rating != nil {
		rating.Rating = *req.Rating
	}

	if err := s.ratings.Update(ctx, rating); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}
	return rating, nil
}

func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.ratings.Delete(ctx, id)
}

func (s *Service) getOwned(ctx context.Context, id string, userID int64) (*domain.Rating, error) {
	rating, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating.UserID != userID {
		return nil, ErrForbidden
	}
	return rating, nil
}

func (s *Service) checkFestival(ctx context.Context, festivalID string) error {
	if _, err := s.festivals.GetByID(ctx, festivalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFestivalNotFound
		}
		return err
	}
	return nil
}
