package repository

import (
	"context"
	"errors"
	"time"

	"festivalapi/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) GetByJTI(ctx context.Context, jti string) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.WithContext(ctx).Where("jti = ?", jti).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// IsActive reports whether the session behind a token id is still usable.
func (r *SessionRepository) IsActive(ctx context.Context, jti string) (bool, error) {
	session, err := r.GetByJTI(ctx, jti)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return session.Active(time.Now()), nil
}

func (r *SessionRepository) Revoke(ctx context.Context, jti string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.Session{}).
		Where("jti = ? AND revoked_at IS NULL", jti).
		Update("revoked_at", now).Error
}

// DeleteExpired purges sessions that expired or were revoked before cutoff.
func (r *SessionRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at < ?", cutoff, cutoff).
		Delete(&domain.Session{})
	return result.RowsAffected, result.Error
}
