package festival

import (
	"context"
	"errors"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	festivals FestivalRepositoryInterface
	ratings   RatingReader
	comments  CommentReader
}

func NewService(festivals FestivalRepositoryInterface, ratings RatingReader, comments CommentReader) *Service {
	return &Service{festivals: festivals, ratings: ratings, comments: comments}
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]domain.Festival, int64, error) {
	return s.festivals.GetAll(ctx, repository.FestivalFilters{
		Search: search,
		Limit:  limit,
		Offset: offset,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Festival, error) {
	festival, err := s.festivals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return festival, nil
}

func (s *Service) Create(ctx context.Context, req CreateFestivalRequest) (*domain.Festival, error) {
	festival := &domain.Festival{
		ID:          req.ID,
		Name:        req.Name,
		Discipline:  req.Discipline,
		Description: req.Description,
		Website:     req.Website,
		Period:      req.Period,
		Region:      req.Region,
		Department:  req.Department,
		Commune:     req.Commune,
		Postcode:    req.Postcode,
	}

	if err := s.festivals.Create(ctx, festival); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return festival, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateFestivalRequest) (*domain.Festival, error) {
	festival, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	festival.Name = req.Name
	festival.Discipline = req.Discipline
	festival.Description = req.Description
	festival.Website = req.Website
	festival.Period = req.Period
	festival.Region = req.Region
	festival.Department = req.Department
	festival.Commune = req.Commune
	festival.Postcode = req.Postcode

	if err := s.festivals.Update(ctx, festival); err != nil {
		return nil, err
	}
	return festival, nil
}

func (s *Service) PartialUpdate(ctx context.Context, id string, req PatchFestivalRequest) (*domain.Festival, error) {
	festival, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		festival.Name = *req.Name
	}
	if req.Discipline != nil {
		festival.Discipline = *req.Discipline
	}
	if req.Description != nil {
		festival.Description = req.Description
	}
	if req.Website != nil {
		festival.Website = req.Website
	}
	if req.Period != nil {
		festival.Period = req.Period
	}
	if req.Region != nil {
		festival.Region = req.Region
	}
	if req.Department != nil {
		festival.Department = req.Department
	}
	if req.Commune != nil {
		festival.Commune = req.Commune
	}
	if req.Postcode != nil {
		festival.Postcode = req.Postcode
	}

	if err := s.festivals.Update(ctx, festival); err != nil {
		return nil, err
	}
	return festival, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.festivals.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AverageRating returns ErrNoRatings when nobody has rated the festival yet.
func (s *Service) AverageRating(ctx context.Context, id string) (float64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}

	avg, err := s.ratings.AverageForFestival(ctx, id)
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, ErrNoRatings
	}
	return *avg, nil
}

// Comments returns the festival's comments, newest first.
func (s *Service) Comments(ctx context.Context, id string) ([]domain.Comment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	comments, _, err := s.comments.List(ctx, repository.CommentFilters{FestivalID: id})
	return comments, err
}
