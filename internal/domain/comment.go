package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	AuthorID   int64     `json:"author" gorm:"not null;index"`
	FestivalID string    `json:"festival" gorm:"size:20;not null;index"`
	Content    string    `json:"content" gorm:"size:255;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Author   *User     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Festival *Festival `json:"-" gorm:"foreignKey:FestivalID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comment" }

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
