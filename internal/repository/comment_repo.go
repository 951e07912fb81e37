package repository

import (
	"context"

	"festivalapi/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentFilters struct {
	FestivalID string
	Search     string // substring match on content
	Ordering   string // created_at, updated_at, optionally "-" prefixed
	Limit      int
	Offset     int
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

var commentOrderings = map[string]string{
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
	"updated_at":  "updated_at ASC",
	"-updated_at": "updated_at DESC",
}

// List returns comments, newest first unless another whitelisted ordering is
// requested.
func (r *CommentRepository) List(
	ctx context.Context,
	f CommentFilters,
) ([]domain.Comment, int64, error) {

	var comments []domain.Comment
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Comment{})

	if f.FestivalID != "" {
		q = q.Where("festival_id = ?", f.FestivalID)
	}

	if f.Search != "" {
		q = q.Where("content LIKE ?", "%"+f.Search+"%")
	}

	q.Count(&total)

	order, ok := commentOrderings[f.Ordering]
	if !ok {
		order = "created_at DESC"
	}
	q = q.Order(order)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Find(&comments).Error
	return comments, total, err
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Like inserts a like row; the conflict clause makes repeats a no-op.
func (r *CommentRepository) Like(ctx context.Context, commentID string, userID int64) error {
	like := &domain.CommentLike{CommentID: commentID, UserID: userID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
}

// Unlike removes a like row; removing a non-liker is a no-op.
func (r *CommentRepository) Unlike(ctx context.Context, commentID string, userID int64) error {
	return r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&domain.CommentLike{}).Error
}

func (r *CommentRepository) CountLikes(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
