package domain

import "time"

// CommentLike links one user to one liked comment. The composite unique index
// is what makes like/unlike idempotent at the database level.
type CommentLike struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CommentID string    `json:"comment_id" gorm:"size:36;not null;index;uniqueIndex:idx_comment_user"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_comment_user"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Comment *Comment `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	User    *User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (CommentLike) TableName() string { return "comment_likes" }
