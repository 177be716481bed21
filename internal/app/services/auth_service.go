package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/repositories"
	"github.com/joinwork/joinwork/internal/pkg/apperrors"
	"github.com/joinwork/joinwork/internal/pkg/auth"
	"github.com/joinwork/joinwork/internal/pkg/validation"
)

// AuthService handles signup, login and session identity
type AuthService struct {
	userRepo     *repositories.UserRepository
	graduateRepo *repositories.GraduateRepository
	companyRepo  *repositories.CompanyRepository
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	graduateRepo *repositories.GraduateRepository,
	companyRepo *repositories.CompanyRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		graduateRepo: graduateRepo,
		companyRepo:  companyRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Signup registers a new account and, depending on the role, its graduate
// or company profile, then issues a session token.
//
// The email uniqueness check is a read before the create; two concurrent
// signups for the same address can both pass it. The store is the only
// coordination point in the system and carries no uniqueness constraint,
// so this stays a best-effort check.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := validation.NormalizeEmail(req.Email)
	if !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}

	if existing := s.userRepo.GetByEmail(ctx, email); existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role")
	}

	// Validate role-specific input before any document is written.
	cardNumber := validation.NormalizeCardNumber(req.UnifiedCardNumber)
	if role == models.RoleGraduate && !validation.ValidCardNumber(cardNumber) {
		return nil, apperrors.ErrInvalidCardNumber
	}
	if role == models.RoleCompany && strings.TrimSpace(req.CompanyName) == "" {
		return nil, apperrors.ErrCompanyNameRequired
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	switch role {
	case models.RoleGraduate:
		if _, err := s.graduateRepo.Create(ctx, &models.Graduate{
			UserID:            user.ID,
			University:        req.University,
			Major:             req.Major,
			UnifiedCardNumber: cardNumber,
			Skills:            req.Skills,
			Age:               req.Age,
			DateOfBirth:       req.DateOfBirth,
			Gender:            req.Gender,
			ProfilePicture:    req.ProfilePicture,
			Projects:          req.Projects,
			Experience:        req.Experience,
		}); err != nil {
			s.logger.Error().Err(err).Int64("userId", user.ID).Msg("graduate profile creation failed during signup")
		}
	case models.RoleCompany:
		if _, err := s.companyRepo.Create(ctx, &models.Company{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			Sector:      req.Sector,
			Location:    req.Location,
		}); err != nil {
			s.logger.Error().Err(err).Int64("userId", user.ID).Msg("company profile creation failed during signup")
		}
	}

	return s.authResponse(user)
}

// Login verifies credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user := s.userRepo.GetByEmail(ctx, req.Email)
	if user == nil || user.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.authResponse(user)
}

// CurrentUser resolves the session identity. When the account document is
// gone the token claims still identify the session (stale-token
// tolerance), so the claims are the fallback.
func (s *AuthService) CurrentUser(ctx context.Context, claims *auth.Claims) dto.UserInfo {
	if user := s.userRepo.GetByID(ctx, claims.UserID); user != nil {
		return dto.UserInfo{
			UserID:   user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     string(user.Role),
		}
	}
	return dto.UserInfo{
		UserID:   claims.UserID,
		FullName: claims.FullName,
		Email:    claims.Email,
		Role:     claims.Role,
	}
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserInfo{
			UserID:   user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     string(user.Role),
		},
	}, nil
}
