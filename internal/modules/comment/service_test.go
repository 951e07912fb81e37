package comment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) List(ctx context.Context, f repository.CommentFilters) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepo) Update(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepo) Like(ctx context.Context, commentID string, userID int64) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *mockCommentRepo) Unlike(ctx context.Context, commentID string, userID int64) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *mockCommentRepo) CountLikes(ctx context.Context, commentID string) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
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

func TestService_Create_ForcesAuthor(t *testing.T) {
	comments := new(mockCommentRepo)
	festivals := new(mockFestivalGate)

	festivals.On("GetByID", mock.Anything, "FEST-1").Return(&domain.Festival{ID: "FEST-1"}, nil)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.AuthorID == 42 && c.FestivalID == "FEST-1" && c.Content == "great lineup"
	})).Return(nil)

	service := NewService(comments, festivals)

	comment, err := service.Create(context.Background(), 42, CreateCommentRequest{
		Festival: "FEST-1",
		Content:  "great lineup",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), comment.AuthorID)

	comments.AssertExpectations(t)
	festivals.AssertExpectations(t)
}

func TestService_Create_UnknownFestival(t *testing.T) {
	comments := new(mockCommentRepo)
	festivals := new(mockFestivalGate)

	festivals.On("GetByID", mock.Anything, "NOPE").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(comments, festivals)

	_, err := service.Create(context.Background(), 42, CreateCommentRequest{
		Festival: "NOPE",
		Content:  "great lineup",
	})

	assert.ErrorIs(t, err, ErrFestivalNotFound)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_List_EmptySearchShortCircuits(t *testing.T) {
	comments := new(mockCommentRepo)

	service := NewService(comments, new(mockFestivalGate))

	result, total, err := service.List(context.Background(), ListParams{Search: "", SearchSet: true})

	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.Zero(t, total)
	comments.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_List_PassesFilters(t *testing.T) {
	comments := new(mockCommentRepo)

	comments.On("List", mock.Anything, repository.CommentFilters{
		FestivalID: "FEST-1",
		Search:     "lineup",
		Ordering:   "-created_at",
		Limit:      10,
	}).Return([]domain.Comment{{ID: "c1"}}, int64(1), nil)

	service := NewService(comments, new(mockFestivalGate))

	result, total, err := service.List(context.Background(), ListParams{
		FestivalID: "FEST-1",
		Search:     "lineup",
		SearchSet:  true,
		Ordering:   "-created_at",
		Limit:      10,
	})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(1), total)
	comments.AssertExpectations(t)
}

func TestService_Update_OnlyAuthor(t *testing.T) {
	comments := new(mockCommentRepo)

	comments.On("GetByID", mock.Anything, "c1").Return(&domain.Comment{ID: "c1", AuthorID: 7}, nil)

	service := NewService(comments, new(mockFestivalGate))

	_, err := service.Update(context.Background(), "c1", 42, UpdateCommentRequest{Content: "edited"})

	assert.ErrorIs(t, err, ErrForbidden)
	comments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_Success(t *testing.T) {
	comments := new(mockCommentRepo)

	comments.On("GetByID", mock.Anything, "c1").Return(&domain.Comment{ID: "c1", AuthorID: 42, Content: "old"}, nil)
	comments.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.Content == "edited"
	})).Return(nil)

	service := NewService(comments, new(mockFestivalGate))

	comment, err := service.Update(context.Background(), "c1", 42, UpdateCommentRequest{Content: "edited"})

	assert.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)
	comments.AssertExpectations(t)
}

func TestService_Delete_OnlyAuthor(t *testing.T) {
	comments := new(mockCommentRepo)

	comments.On("GetByID", mock.Anything, "c1").Return(&domain.Comment{ID: "c1", AuthorID: 7}, nil)

	service := NewService(comments, new(mockFestivalGate))

	err := service.Delete(context.Background(), "c1", 42)

	assert.ErrorIs(t, err, ErrForbidden)
	comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Like_ReturnsTotal(t *testing.T) {
	comments := new(mockCommentRepo)

	comments.On("GetByID", mock.Anything, "c1").Return(&domain.Comment{ID: "c1"}, nil)
	comments.On("Like", mock.Anything, "c1", int64(42)).Return(nil)
	comments.On("CountLikes", mock.Anything, "c1").Return(int64(3), nil)

	service := NewService(comments, new(mockFestivalGate))

	total, err := service.Like(context.Background(), "c1", 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	comments.AssertExpectations(t)
}

func TestService_Like_UnknownComment(t *testing.T) {
	comments := new(mockCommentRepo)

	comments.On("GetByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(comments, new(mockFestivalGate))

	_, err := service.Like(context.Background(), "nope", 42)

	assert.ErrorIs(t, err, ErrNotFound)
	comments.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Unlike_ReturnsTotal(t *testing.T) {
	comments := new(mockCommentRepo)

	comments.On("GetByID", mock.Anything, "c1").Return(&domain.Comment{ID: "c1"}, nil)
	comments.On("Unlike", mock.Anything, "c1", int64(42)).Return(nil)
	comments.On("CountLikes", mock.Anything, "c1").Return(int64(2), nil)

	service := NewService(comments, new(mockFestivalGate))

	total, err := service.Unlike(context.Background(), "c1", 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	comments.AssertExpectations(t)
}
