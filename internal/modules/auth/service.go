package auth

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

type jwtService interface {
	GenerateToken(userID int64, isStaff bool, jti string) (string, error)
}

// Service contains all business logic for registration and sessions.
type Service struct {
	users      UserRepositoryInterface
	sessions   SessionRepositoryInterface
	jwt        jwtService
	sessionTTL time.Duration
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(
	users UserRepositoryInterface,
	sessions SessionRepositoryInterface,
	jwt jwtService,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		jwt:        jwt,
		sessionTTL: sessionTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if req.Password != req.PasswordConfirmation {
		return nil, ErrPasswordMismatch
	}
	if err := validatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent register can slip past the pre-checks and land on
		// the unique index instead.
		if repository.IsUniqueViolation(err) {
			if strings.Contains(err.Error(), "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	jti := uuid.NewString()
	if err := s.sessions.Create(ctx, &domain.Session{
		UserID:    user.ID,
		JTI:       jti,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}); err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, user.IsStaff, jti)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: accessToken}, nil
}

// Logout revokes the session row behind the presented token.
func (s *Service) Logout(ctx context.Context, jti string) error {
	return s.sessions.Revoke(ctx, jti)
}

// validatePasswordStrength mirrors the usual minimum-length and not-all-digits
// rules.
func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrWeakPassword
	}
	return nil
}
