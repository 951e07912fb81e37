package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating stores one user's score for one festival. The composite unique index
// on (user_id, festival_id) resolves concurrent duplicate creates.
type Rating struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	UserID     int64  `json:"user" gorm:"not null;uniqueIndex:idx_user_festival"`
	FestivalID string `json:"festival" gorm:"size:20;not null;uniqueIndex:idx_user_festival"`
	Rating     int    `json:"rating" gorm:"not null"`

	User     *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Festival *Festival `json:"-" gorm:"foreignKey:FestivalID;constraint:OnDelete:CASCADE"`
}

func (Rating) TableName() string { return "rating" }

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
