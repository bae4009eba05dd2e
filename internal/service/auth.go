package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campusreg/campusreg-go/internal/crypto"
	"github.com/campusreg/campusreg-go/internal/model"
	"github.com/campusreg/campusreg-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrNameRequired       = errors.New("first and last name are required")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles signup, login, and session resolution.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a new user account. It does not log the user in.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}
	if req.FirstName == "" || req.LastName == "" {
		return model.UserResponse{}, ErrNameRequired
	}

	// Check for an existing row before hashing so duplicate signups don't
	// pay the bcrypt cost.
	taken, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return model.UserResponse{}, err
	}
	if taken {
		return model.UserResponse{}, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	username := req.Username
	if username == "" {
		username, _, _ = strings.Cut(req.Email, "@")
	}

	user := &model.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Address:      req.Address,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Unique constraint still backstops a concurrent signup that won
		// the race between the existence check and the insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return userResponse(user), nil
}

// Login verifies the credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, model.UserResponse, error) {
	if req.Email == "" || req.Password == "" {
		return "", model.UserResponse{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", model.UserResponse{}, ErrInvalidCredentials
		}
		return "", model.UserResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return "", model.UserResponse{}, err
	}
	if !match {
		return "", model.UserResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", model.UserResponse{}, err
	}

	return token, userResponse(user), nil
}

// GetUser retrieves profile fields for an authenticated user.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return userResponse(user), nil
}

func userResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}
