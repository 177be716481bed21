package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/repositories"
	"github.com/joinwork/joinwork/internal/pkg/apperrors"
)

// UnknownCompanyName is shown on job listings whose company reference no
// longer resolves. Company deletion does not cascade to jobs.
const UnknownCompanyName = "Unknown Company"

// JobService handles job postings, their listings and applications
type JobService struct {
	jobRepo         *repositories.JobRepository
	companyRepo     *repositories.CompanyRepository
	applicationRepo *repositories.ApplicationRepository
	graduateRepo    *repositories.GraduateRepository
	userRepo        *repositories.UserRepository
	companyService  *CompanyService
	logger          zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo *repositories.JobRepository,
	companyRepo *repositories.CompanyRepository,
	applicationRepo *repositories.ApplicationRepository,
	graduateRepo *repositories.GraduateRepository,
	userRepo *repositories.UserRepository,
	companyService *CompanyService,
	logger zerolog.Logger,
) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		applicationRepo: applicationRepo,
		graduateRepo:    graduateRepo,
		userRepo:        userRepo,
		companyService:  companyService,
		logger:          logger,
	}
}

// ListJobs returns jobs matching the optional company and status filters,
// each annotated with its company's display name.
func (s *JobService) ListJobs(ctx context.Context, companyID *int64, status *string) *dto.JobListResponse {
	jobs := s.jobRepo.GetFiltered(ctx, companyID, status)

	views := make([]dto.JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, s.jobView(ctx, job))
	}
	return &dto.JobListResponse{Jobs: views, Total: len(views)}
}

// GetJob returns a single job annotated with its company's display name
func (s *JobService) GetJob(ctx context.Context, jobID int64) (*dto.JobView, error) {
	job := s.jobRepo.GetByID(ctx, jobID)
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}
	view := s.jobView(ctx, job)
	return &view, nil
}

// CreateJob posts a new active job under the caller's company, creating
// the company profile first when the account has none.
func (s *JobService) CreateJob(ctx context.Context, userID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.companyService.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Create(ctx, &models.Job{
		CompanyID:      company.ID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Salary:         req.Salary,
		SkillsRequired: req.SkillsRequired,
		EmploymentType: req.EmploymentType,
		Status:         models.JobActive,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	return job, nil
}

// UpdateJob merges the sent fields into a job the caller's company owns
func (s *JobService) UpdateJob(ctx context.Context, jobID, userID int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setString := func(field string, v *string) {
		if v != nil {
			updates[field] = *v
		}
	}
	setString("title", req.Title)
	setString("description", req.Description)
	setString("location", req.Location)
	setString("skills_required", req.SkillsRequired)
	setString("employment_type", req.EmploymentType)

	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Status != nil {
		if *req.Status != models.JobActive && *req.Status != models.JobClosed {
			return nil, apperrors.ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 && !s.jobRepo.Update(ctx, job.ID, updates) {
		return nil, apperrors.ErrStoreUnavailable
	}

	updated := s.jobRepo.GetByID(ctx, job.ID)
	if updated == nil {
		return nil, apperrors.ErrJobNotFound
	}
	return updated, nil
}

// DeleteJob removes a job the caller's company owns. Applications
// referencing the job are left in place.
func (s *JobService) DeleteJob(ctx context.Context, jobID, userID int64) error {
	job, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return err
	}
	if !s.jobRepo.Delete(ctx, job.ID) {
		return apperrors.ErrStoreUnavailable
	}
	return nil
}

// ListJobApplications returns the applications for a job the caller's
// company owns, each annotated with the applying graduate's identity.
func (s *JobService) ListJobApplications(ctx context.Context, jobID, userID int64) (*dto.ApplicationListResponse, error) {
	job, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}

	applications := s.applicationRepo.GetByJobID(ctx, job.ID)
	views := make([]dto.ApplicationView, 0, len(applications))
	for _, application := range applications {
		view := dto.ApplicationView{Application: *application}
		if graduate := s.graduateRepo.GetByID(ctx, application.GraduateID); graduate != nil {
			view.GraduateMajor = graduate.Major
			view.GraduateUniversity = graduate.University
			view.GraduateSkills = graduate.Skills
			if user := s.userRepo.GetByID(ctx, graduate.UserID); user != nil {
				view.GraduateName = user.FullName
				view.GraduateEmail = user.Email
			}
		}
		views = append(views, view)
	}
	return &dto.ApplicationListResponse{Applications: views, Total: len(views)}, nil
}

// Apply submits a pending application for the caller's graduate profile,
// creating an empty profile first when the account has none. At most one
// application per (job, graduate) pair; a second attempt is rejected by a
// read before the create, best-effort under concurrency.
func (s *JobService) Apply(ctx context.Context, jobID, userID int64, req *dto.ApplyRequest) (*models.Application, error) {
	job := s.jobRepo.GetByID(ctx, jobID)
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}

	graduate := s.graduateRepo.GetByUserID(ctx, userID)
	if graduate == nil {
		created, err := s.graduateRepo.Create(ctx, &models.Graduate{UserID: userID})
		if err != nil {
			return nil, apperrors.ErrStoreUnavailable
		}
		graduate = created
	}

	if existing := s.applicationRepo.GetByJobAndGraduate(ctx, job.ID, graduate.ID); existing != nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	application, err := s.applicationRepo.Create(ctx, &models.Application{
		JobID:       job.ID,
		GraduateID:  graduate.ID,
		Status:      models.ApplicationPending,
		CoverLetter: req.CoverLetter,
		AppliedDate: time.Now().UTC(),
	})
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	return application, nil
}

func (s *JobService) jobView(ctx context.Context, job *models.Job) dto.JobView {
	view := dto.JobView{Job: *job, CompanyName: UnknownCompanyName}
	if company := s.companyRepo.GetByID(ctx, job.CompanyID); company != nil {
		view.CompanyName = company.CompanyName
	}
	return view
}

// ownedJob resolves a job and verifies the chain job -> company -> user
// ends at the caller.
func (s *JobService) ownedJob(ctx context.Context, jobID, userID int64) (*models.Job, error) {
	job := s.jobRepo.GetByID(ctx, jobID)
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}
	company := s.companyRepo.GetByID(ctx, job.CompanyID)
	if company == nil || company.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}
	return job, nil
}
