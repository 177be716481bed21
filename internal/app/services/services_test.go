package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/repositories"
	"github.com/joinwork/joinwork/internal/pkg/apperrors"
	"github.com/joinwork/joinwork/internal/pkg/auth"
	"github.com/joinwork/joinwork/internal/store"
)

type fixture struct {
	repos        *repositories.Repositories
	auth         *AuthService
	graduates    *GraduateService
	companies    *CompanyService
	jobs         *JobService
	applications *ApplicationService
	workshops    *WorkshopService
}

func newFixture() *fixture {
	logger := zerolog.Nop()
	repos := repositories.NewRepositories(store.NewMemoryStore(), logger)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "joinwork-test",
	})

	companyService := NewCompanyService(repos.CompanyRepository, repos.UserRepository, logger)
	return &fixture{
		repos: repos,
		auth: NewAuthService(
			repos.UserRepository,
			repos.GraduateRepository,
			repos.CompanyRepository,
			jwtService,
			logger,
		),
		graduates: NewGraduateService(repos.GraduateRepository, repos.UserRepository, logger),
		companies: companyService,
		jobs: NewJobService(
			repos.JobRepository,
			repos.CompanyRepository,
			repos.ApplicationRepository,
			repos.GraduateRepository,
			repos.UserRepository,
			companyService,
			logger,
		),
		applications: NewApplicationService(
			repos.ApplicationRepository,
			repos.JobRepository,
			repos.CompanyRepository,
			logger,
		),
		workshops: NewWorkshopService(repos.WorkshopRepository, logger),
	}
}

func (f *fixture) signupGraduate(t *testing.T, email string) *dto.AuthResponse {
	t.Helper()
	resp, err := f.auth.Signup(context.Background(), &dto.SignupRequest{
		FullName:          "Sara Ahmed",
		Email:             email,
		Password:          "secret123",
		Role:              "graduate",
		University:        "University of Baghdad",
		Major:             "Computer Science",
		UnifiedCardNumber: "123456789012",
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) signupCompany(t *testing.T, email, name string) *dto.AuthResponse {
	t.Helper()
	resp, err := f.auth.Signup(context.Background(), &dto.SignupRequest{
		FullName:    "Basra Oil HR",
		Email:       email,
		Password:    "secret123",
		Role:        "company",
		CompanyName: name,
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) postJob(t *testing.T, userID int64, title string) *models.Job {
	t.Helper()
	job, err := f.jobs.CreateJob(context.Background(), userID, &dto.CreateJobRequest{
		Title:       title,
		Description: "Build backend services",
		Location:    "Baghdad",
	})
	require.NoError(t, err)
	return job
}

func TestSignupCreatesGraduateProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp := f.signupGraduate(t, "sara@example.com")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "graduate", resp.User.Role)

	graduate := f.repos.GraduateRepository.GetByUserID(ctx, resp.User.UserID)
	require.NotNil(t, graduate)
	assert.Equal(t, "Computer Science", graduate.Major)
	assert.Equal(t, "123456789012", graduate.UnifiedCardNumber)
}

func TestSignupCreatesCompanyProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp := f.signupCompany(t, "hr@basraoil.com", "Basra Oil Services")
	company := f.repos.CompanyRepository.GetByUserID(ctx, resp.User.UserID)
	require.NotNil(t, company)
	assert.Equal(t, "Basra Oil Services", company.CompanyName)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	f := newFixture()

	f.signupGraduate(t, "sara@example.com")
	_, err := f.auth.Signup(context.Background(), &dto.SignupRequest{
		FullName: "Other Sara",
		Email:    "Sara@Example.com",
		Password: "secret123",
		Role:     "graduate",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignupRejectsBadCardNumber(t *testing.T) {
	f := newFixture()

	_, err := f.auth.Signup(context.Background(), &dto.SignupRequest{
		FullName:          "Sara Ahmed",
		Email:             "sara@example.com",
		Password:          "secret123",
		Role:              "graduate",
		UnifiedCardNumber: "12345",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCardNumber)
}

func TestSignupRejectsCompanyWithoutName(t *testing.T) {
	f := newFixture()

	_, err := f.auth.Signup(context.Background(), &dto.SignupRequest{
		FullName:    "Basra Oil HR",
		Email:       "hr@basraoil.com",
		Password:    "secret123",
		Role:        "company",
		CompanyName: "   ",
	})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNameRequired)
}

func TestLogin(t *testing.T) {
	f := newFixture()

	f.signupGraduate(t, "sara@example.com")

	resp, err := f.auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "sara@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = f.auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "sara@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCurrentUserFallsBackToClaims(t *testing.T) {
	f := newFixture()

	info := f.auth.CurrentUser(context.Background(), &auth.Claims{
		UserID:   99,
		Email:    "gone@example.com",
		Role:     "graduate",
		FullName: "Gone User",
	})
	assert.Equal(t, int64(99), info.UserID)
	assert.Equal(t, "Gone User", info.FullName)
}

func TestCreateProfileRejectsSecond(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp := f.signupGraduate(t, "sara@example.com")

	_, err := f.graduates.CreateProfile(ctx, resp.User.UserID, &dto.CreateGraduateRequest{
		University: "Another University",
	})
	assert.ErrorIs(t, err, apperrors.ErrProfileAlreadyExists)
}

func TestUpdateProfileOwnershipAndMerge(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp := f.signupGraduate(t, "sara@example.com")
	graduate := f.repos.GraduateRepository.GetByUserID(ctx, resp.User.UserID)
	require.NotNil(t, graduate)

	skills := "Go, SQL"
	updated, err := f.graduates.UpdateProfile(ctx, graduate.ID, resp.User.UserID, &dto.UpdateGraduateRequest{
		Skills: &skills,
	})
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", updated.Skills)
	assert.Equal(t, "Computer Science", updated.Major)

	_, err = f.graduates.UpdateProfile(ctx, graduate.ID, resp.User.UserID+1, &dto.UpdateGraduateRequest{
		Skills: &skills,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGraduateViewDenormalizesUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp := f.signupGraduate(t, "sara@example.com")
	graduate := f.repos.GraduateRepository.GetByUserID(ctx, resp.User.UserID)
	require.NotNil(t, graduate)

	view, err := f.graduates.GetGraduate(ctx, graduate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sara Ahmed", view.FullName)
	assert.Equal(t, "sara@example.com", view.Email)
}

func TestGetOrCreateCompanyByUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.repos.UserRepository.Create(ctx, &models.User{
		FullName: "Late Registrant",
		Email:    "late@example.com",
		Role:     models.RoleCompany,
	})
	require.NoError(t, err)

	company, err := f.companies.GetOrCreateByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Late Registrant", company.CompanyName)

	again, err := f.companies.GetOrCreateByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, company.ID, again.ID)
}

func TestListJobsUnknownCompanyFallback(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	job, err := f.repos.JobRepository.Create(ctx, &models.Job{
		CompanyID: 404,
		Title:     "Orphan Job",
		Status:    models.JobActive,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	listing := f.jobs.ListJobs(ctx, nil, nil)
	require.Equal(t, 1, listing.Total)
	assert.Equal(t, job.ID, listing.Jobs[0].ID)
	assert.Equal(t, UnknownCompanyName, listing.Jobs[0].CompanyName)
}

func TestCreateJobAutoCreatesCompany(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.repos.UserRepository.Create(ctx, &models.User{
		FullName: "No Profile Yet",
		Email:    "noprofile@example.com",
		Role:     models.RoleCompany,
	})
	require.NoError(t, err)

	job := f.postJob(t, user.ID, "Backend Engineer")
	assert.Equal(t, models.JobActive, job.Status)

	company := f.repos.CompanyRepository.GetByUserID(ctx, user.ID)
	require.NotNil(t, company)
	assert.Equal(t, company.ID, job.CompanyID)
}

func TestUpdateJobOwnershipChain(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	owner := f.signupCompany(t, "owner@example.com", "Owner Co")
	other := f.signupCompany(t, "other@example.com", "Other Co")
	job := f.postJob(t, owner.User.UserID, "Backend Engineer")

	closed := models.JobClosed
	_, err := f.jobs.UpdateJob(ctx, job.ID, other.User.UserID, &dto.UpdateJobRequest{Status: &closed})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := f.jobs.UpdateJob(ctx, job.ID, owner.User.UserID, &dto.UpdateJobRequest{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, models.JobClosed, updated.Status)

	bogus := "archived"
	_, err = f.jobs.UpdateJob(ctx, job.ID, owner.User.UserID, &dto.UpdateJobRequest{Status: &bogus})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestDeleteJobLeavesApplications(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	company := f.signupCompany(t, "owner@example.com", "Owner Co")
	graduate := f.signupGraduate(t, "sara@example.com")
	job := f.postJob(t, company.User.UserID, "Backend Engineer")

	application, err := f.jobs.Apply(ctx, job.ID, graduate.User.UserID, &dto.ApplyRequest{CoverLetter: "hi"})
	require.NoError(t, err)

	require.NoError(t, f.jobs.DeleteJob(ctx, job.ID, company.User.UserID))
	assert.Nil(t, f.repos.JobRepository.GetByID(ctx, job.ID))
	assert.NotNil(t, f.repos.ApplicationRepository.GetByID(ctx, application.ID))
}

func TestApplyTwiceRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	company := f.signupCompany(t, "owner@example.com", "Owner Co")
	graduate := f.signupGraduate(t, "sara@example.com")
	job := f.postJob(t, company.User.UserID, "Backend Engineer")

	_, err := f.jobs.Apply(ctx, job.ID, graduate.User.UserID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = f.jobs.Apply(ctx, job.ID, graduate.User.UserID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApplyAutoCreatesGraduateProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	company := f.signupCompany(t, "owner@example.com", "Owner Co")
	job := f.postJob(t, company.User.UserID, "Backend Engineer")

	user, err := f.repos.UserRepository.Create(ctx, &models.User{
		FullName: "Bare Graduate",
		Email:    "bare@example.com",
		Role:     models.RoleGraduate,
	})
	require.NoError(t, err)

	application, err := f.jobs.Apply(ctx, job.ID, user.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)

	graduate := f.repos.GraduateRepository.GetByUserID(ctx, user.ID)
	require.NotNil(t, graduate)
	assert.Equal(t, graduate.ID, application.GraduateID)
}

func TestListJobApplicationsDenormalizesGraduate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	company := f.signupCompany(t, "owner@example.com", "Owner Co")
	graduate := f.signupGraduate(t, "sara@example.com")
	job := f.postJob(t, company.User.UserID, "Backend Engineer")

	_, err := f.jobs.Apply(ctx, job.ID, graduate.User.UserID, &dto.ApplyRequest{CoverLetter: "hi"})
	require.NoError(t, err)

	listing, err := f.jobs.ListJobApplications(ctx, job.ID, company.User.UserID)
	require.NoError(t, err)
	require.Equal(t, 1, listing.Total)
	assert.Equal(t, "Sara Ahmed", listing.Applications[0].GraduateName)
	assert.Equal(t, "Computer Science", listing.Applications[0].GraduateMajor)

	_, err = f.jobs.ListJobApplications(ctx, job.ID, graduate.User.UserID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	company := f.signupCompany(t, "owner@example.com", "Owner Co")
	graduate := f.signupGraduate(t, "sara@example.com")
	job := f.postJob(t, company.User.UserID, "Backend Engineer")

	application, err := f.jobs.Apply(ctx, job.ID, graduate.User.UserID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = f.applications.UpdateStatus(ctx, application.ID, company.User.UserID, "archived")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	_, err = f.applications.UpdateStatus(ctx, application.ID, graduate.User.UserID, "accepted")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := f.applications.UpdateStatus(ctx, application.ID, company.User.UserID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, updated.Status)
}

func TestListWorkshops(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.repos.WorkshopRepository.Create(ctx, &models.Workshop{
		Title:     "CV Writing Workshop",
		Organizer: "Ministry of Labor",
	})
	require.NoError(t, err)

	listing := f.workshops.ListWorkshops(ctx)
	assert.Equal(t, 1, listing.Total)
	assert.Equal(t, "CV Writing Workshop", listing.Workshops[0].Title)
}
