// Package user implements account signup, signin, and session lifecycle.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "trackcare/database/repository/user"
	"trackcare/models"
	"trackcare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials covers both unknown accounts and wrong passwords,
// deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken and ErrUsernameTaken reject duplicate signups.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// Service manages accounts and their sessions.
type Service struct {
	users        userRepo.UserRepository
	authCache    *redis.Client
	sessionCache *redis.Client
}

// NewService creates a user Service.
func NewService(users userRepo.UserRepository, authCache, sessionCache *redis.Client) *Service {
	return &Service{users: users, authCache: authCache, sessionCache: sessionCache}
}

// Signup registers a parent account.
func (s *Service) Signup(req models.SignupRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if existing, err := s.users.GetByEmail(email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.users.GetByUsername(username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return u, nil
}

// Signin authenticates by username or email, issues a token, caches its
// hash for middleware lookups, and opens the profile session.
func (s *Service) Signin(req models.SigninRequest) (*models.AuthResponse, error) {
	u, err := s.lookup(req.Identifier)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Username, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	ctx := context.Background()
	authKey := utils.AuthCachePrefix + utils.HashToken(token)
	if err := s.authCache.Set(ctx, authKey, u.ID, utils.AuthCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache token: %w", err)
	}

	if err := utils.SaveProfileSession(s.sessionCache, utils.ProfileSession{
		UserID:            u.ID,
		Username:          u.Username,
		Email:             u.Email,
		Role:              u.Role,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
	}); err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *u}, nil
}

// Logout revokes the presented token and clears the profile session.
// Logging out twice is a no-op.
func (s *Service) Logout(userID, token string) error {
	ctx := context.Background()
	if err := s.authCache.Del(ctx, utils.AuthCachePrefix+utils.HashToken(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return utils.DeleteProfileSession(s.sessionCache, userID)
}

// Session returns the stored profile session, rebuilding it from the
// account record when it has expired.
func (s *Service) Session(userID string) (*utils.ProfileSession, error) {
	session, err := utils.GetProfileSession(s.sessionCache, userID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if u == nil {
		return nil, nil
	}
	rebuilt := utils.ProfileSession{
		UserID:            u.ID,
		Username:          u.Username,
		Email:             u.Email,
		Role:              u.Role,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
	}
	if err := utils.SaveProfileSession(s.sessionCache, rebuilt); err != nil {
		return nil, err
	}
	return &rebuilt, nil
}

// GetByID loads an account.
func (s *Service) GetByID(id string) (*models.User, error) {
	return s.users.GetByID(id)
}

func (s *Service) lookup(identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		u, err := s.users.GetByEmail(strings.ToLower(identifier))
		if err != nil {
			return nil, fmt.Errorf("failed to load account: %w", err)
		}
		return u, nil
	}
	u, err := s.users.GetByUsername(identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return u, nil
}
