package domain

import "time"

// Session is the server-side record behind an issued access token.
// Logout revokes the row, which invalidates the token before its expiry.
type Session struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	UserID    int64      `json:"user_id" gorm:"not null;index"`
	JTI       string     `json:"jti" gorm:"size:36;not null;uniqueIndex"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}
