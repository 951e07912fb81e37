package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"
)

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) List(ctx context.Context, f repository.RatingFilters) ([]domain.Rating, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Rating), args.Get(1).(int64), args.Error(2)
}

func (m *mockRatingRepo) GetByID(ctx context.Context, id string) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepo) Update(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFestivalGate struct {
	mock.Mock
}

func (m *mockFestivalGate) GetByID(ctx context.Context, id string) (*domain.Festival, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Festival), args.Error(1)
}

func intPtr(v int) *int { return &v }

func TestService_Create_ForcesOwner(t *testing.T) {
	ratings := new(mockRatingRepo)
	festivals := new(mockFestivalGate)

	festivals.On("GetByID", mock.Anything, "FEST-1").Return(&domain.Festival{ID: "FEST-1"}, nil)
	ratings.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.UserID == 42 && r.FestivalID == "FEST-1" && r.Rating == 4
	})).Return(nil)

	service := NewService(ratings, festivals)

	rating, err := service.Create(context.Background(), 42, CreateRatingRequest{
		Festival: "FEST-1",
		Rating:   intPtr(4),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), rating.UserID)

	ratings.AssertExpectations(t)
	festivals.AssertExpectations(t)
}

func TestService_Create_DuplicatePair(t *testing.T) {
	ratings := new(mockRatingRepo)
	festivals := new(mockFestivalGate)

	festivals.On("GetByID", mock.Anything, "FEST-1").Return(&domain.Festival{ID: "FEST-1"}, nil)
	ratings.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: rating.user_id, rating.festival_id"))

	service := NewService(ratings, festivals)

	_, err := service.Create(context.Background(), 42, CreateRatingRequest{
		Festival: "FEST-1",
		Rating:   intPtr(4),
	})

	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func TestService_Create_UnknownFestival(t *testing.T) {
	ratings := new(mockRatingRepo)
	festivals := new(mockFestivalGate)

	festivals.On("GetByID", mock.Anything, "NOPE").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(ratings, festivals)

	_, err := service.Create(context.Background(), 42, CreateRatingRequest{
		Festival: "NOPE",
		Rating:   intPtr(4),
	})

	assert.ErrorIs(t, err, ErrFestivalNotFound)
	ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_OnlyOwner(t *testing.T) {
	ratings := new(mockRatingRepo)

	ratings.On("GetByID", mock.Anything, "r1").Return(&domain.Rating{ID: "r1", UserID: 7}, nil)

	service := NewService(ratings, new(mockFestivalGate))

	_, err := service.Update(context.Background(), "r1", 42, UpdateRatingRequest{
		Festival: "FEST-1",
		Rating:   intPtr(5),
	})

	assert.ErrorIs(t, err, ErrForbidden)
	ratings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_Success(t *testing.T) {
	ratings := new(mockRatingRepo)
	festivals := new(mockFestivalGate)

	ratings.On("GetByID", mock.Anything, "r1").
		Return(&domain.Rating{ID: "r1", UserID: 42, FestivalID: "FEST-1", Rating: 2}, nil)
	festivals.On("GetByID", mock.Anything, "FEST-2").Return(&domain.Festival{ID: "FEST-2"}, nil)
	ratings.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.FestivalID == "FEST-2" && r.Rating == 5
	})).Return(nil)

	service := NewService(ratings, festivals)

	rating, err := service.Update(context.Background(), "r1", 42, UpdateRatingRequest{
		Festival: "FEST-2",
		Rating:   intPtr(5),
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, rating.Rating)
	ratings.AssertExpectations(t)
}

func TestService_PartialUpdate_RatingOnly(t *testing.T) {
	ratings := new(mockRatingRepo)
	festivals := new(mockFestivalGate)

	ratings.On("GetByID", mock.Anything, "r1").
		Return(&domain.Rating{ID: "r1", UserID: 42, FestivalID: "FEST-1", Rating: 2}, nil)
	ratings.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.FestivalID == "FEST-1" && r.Rating == 3
	})).Return(nil)

	service := NewService(ratings, festivals)

	rating, err := service.PartialUpdate(context.Background(), "r1", 42, PatchRatingRequest{
		Rating: intPtr(3),
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, rating.Rating)
	festivals.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	ratings.AssertExpectations(t)
}

func TestService_Delete_OnlyOwner(t *testing.T) {
	ratings := new(mockRatingRepo)

	ratings.On("GetByID", mock.Anything, "r1").Return(&domain.Rating{ID: "r1", UserID: 7}, nil)

	service := NewService(ratings, new(mockFestivalGate))

	err := service.Delete(context.Background(), "r1", 42)

	assert.ErrorIs(t, err, ErrForbidden)
	ratings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Get_NotFound(t *testing.T) {
	ratings := new(mockRatingRepo)

	ratings.On("GetByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(ratings, new(mockFestivalGate))

	_, err := service.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}
