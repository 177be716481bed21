package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/repositories"
	"github.com/joinwork/joinwork/internal/pkg/apperrors"
	"github.com/joinwork/joinwork/internal/pkg/validation"
)

// GraduateService handles graduate profile operations
type GraduateService struct {
	graduateRepo *repositories.GraduateRepository
	userRepo     *repositories.UserRepository
	logger       zerolog.Logger
}

// NewGraduateService creates a new GraduateService
func NewGraduateService(
	graduateRepo *repositories.GraduateRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *GraduateService {
	return &GraduateService{
		graduateRepo: graduateRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// GetGraduate returns a graduate annotated with the owning user's name
// and email. A dangling user reference leaves those fields empty rather
// than failing the view.
func (s *GraduateService) GetGraduate(ctx context.Context, graduateID int64) (*dto.GraduateProfileView, error) {
	graduate := s.graduateRepo.GetByID(ctx, graduateID)
	if graduate == nil {
		return nil, apperrors.ErrGraduateNotFound
	}
	return s.profileView(ctx, graduate), nil
}

// GetByUser returns the graduate profile owned by a user. Only the owner
// may call this.
func (s *GraduateService) GetByUser(ctx context.Context, userID, requestingUserID int64) (*dto.GraduateProfileView, error) {
	if userID != requestingUserID {
		return nil, apperrors.ErrPermissionDenied
	}
	graduate := s.graduateRepo.GetByUserID(ctx, userID)
	if graduate == nil {
		return nil, apperrors.ErrGraduateNotFound
	}
	return s.profileView(ctx, graduate), nil
}

// CreateProfile creates the graduate profile for a user. A prior read
// rejects a second profile for the same user; the check is best-effort
// under concurrency (see Signup).
func (s *GraduateService) CreateProfile(ctx context.Context, userID int64, req *dto.CreateGraduateRequest) (*models.Graduate, error) {
	if existing := s.graduateRepo.GetByUserID(ctx, userID); existing != nil {
		return nil, apperrors.ErrProfileAlreadyExists
	}

	cardNumber := validation.NormalizeCardNumber(req.UnifiedCardNumber)
	if !validation.ValidCardNumber(cardNumber) {
		return nil, apperrors.ErrInvalidCardNumber
	}

	graduate, err := s.graduateRepo.Create(ctx, &models.Graduate{
		UserID:            userID,
		University:        req.University,
		Major:             req.Major,
		UnifiedCardNumber: cardNumber,
		Skills:            req.Skills,
		Age:               req.Age,
		Projects:          req.Projects,
		Experience:        req.Experience,
	})
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	return graduate, nil
}

// UpdateProfile merges the sent fields into the graduate document. Only
// the owning user may update; fields not sent are left untouched.
func (s *GraduateService) UpdateProfile(ctx context.Context, graduateID, requestingUserID int64, req *dto.UpdateGraduateRequest) (*models.Graduate, error) {
	graduate := s.graduateRepo.GetByID(ctx, graduateID)
	if graduate == nil {
		return nil, apperrors.ErrGraduateNotFound
	}
	if graduate.UserID != requestingUserID {
		return nil, apperrors.ErrPermissionDenied
	}

	updates := map[string]interface{}{}
	setString := func(field string, v *string) {
		if v != nil {
			updates[field] = *v
		}
	}
	setString("university", req.University)
	setString("major", req.Major)
	setString("skills", req.Skills)
	setString("date_of_birth", req.DateOfBirth)
	setString("gender", req.Gender)
	setString("profile_picture", req.ProfilePicture)
	setString("projects", req.Projects)
	setString("experience", req.Experience)

	if req.UnifiedCardNumber != nil {
		cardNumber := validation.NormalizeCardNumber(*req.UnifiedCardNumber)
		if !validation.ValidCardNumber(cardNumber) {
			return nil, apperrors.ErrInvalidCardNumber
		}
		updates["unified_card_number"] = cardNumber
	}
	if req.Age != nil {
		updates["age"] = int64(*req.Age)
	}

	if len(updates) > 0 && !s.graduateRepo.Update(ctx, graduateID, updates) {
		return nil, apperrors.ErrStoreUnavailable
	}

	updated := s.graduateRepo.GetByID(ctx, graduateID)
	if updated == nil {
		return nil, apperrors.ErrGraduateNotFound
	}
	return updated, nil
}

func (s *GraduateService) profileView(ctx context.Context, graduate *models.Graduate) *dto.GraduateProfileView {
	view := &dto.GraduateProfileView{Graduate: *graduate}
	if user := s.userRepo.GetByID(ctx, graduate.UserID); user != nil {
		view.FullName = user.FullName
		view.Email = user.Email
	}
	return view
}
