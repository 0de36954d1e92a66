package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pquerna/otp/totp"

	"resto-backend/internal/auth"
	"resto-backend/internal/cache"
	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTOTPRequired       = errors.New("totp code required")
	ErrInvalidTOTPCode    = errors.New("invalid totp code")
)

type UserService struct {
	userRepo  *repositories.UserRepository
	staffRepo *repositories.StaffRepository
	jwt       *auth.JWTManager
}

func NewUserService(userRepo *repositories.UserRepository, staffRepo *repositories.StaffRepository, jwt *auth.JWTManager) *UserService {
	return &UserService{
		userRepo:  userRepo,
		staffRepo: staffRepo,
		jwt:       jwt,
	}
}

func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issueToken(ctx, user)
}

// Login authenticates by password and, when the account has 2FA enabled,
// by TOTP code. A successful login clears any revocation left over from a
// previous session so the fresh token is usable immediately.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, ErrTOTPRequired
		}
		if !totp.Validate(req.TOTPCode, user.TOTPSecret) {
			return nil, ErrInvalidTOTPCode
		}
	}

	cache.ClearRevocation(ctx, user.ID)
	return s.issueToken(ctx, user)
}

// Profile resolves the staff row linked to a user. A missing link is not an
// error: the account exists but has no role at any restaurant yet.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.StaffMember, error) {
	profile, err := s.staffRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.Get(ctx, userID)
}

func (s *UserService) issueToken(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	profile, err := s.Profile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user, Profile: profile}, nil
}
