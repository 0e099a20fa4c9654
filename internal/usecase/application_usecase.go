package usecase

import (
	"context"
	"errors"

	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
)

const (
	msgProfileIncomplete = "Profile incomplete. Please complete your profile before applying"
	msgAlreadyApplied    = "You have already applied to this internship"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	candidateRepo   domain.CandidateRepository
	internshipRepo  domain.InternshipRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	candidateRepo domain.CandidateRepository,
	internshipRepo domain.InternshipRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		candidateRepo:   candidateRepo,
		internshipRepo:  internshipRepo,
	}
}

// Apply submits the user's candidate profile to an internship, at most once per pair.
func (uc *applicationUsecase) Apply(ctx context.Context, userID, internshipID int64) (*domain.Application, error) {
	if internshipID <= 0 {
		return nil, apperror.BadRequest("internship_id is required")
	}

	// 1. Caller must have a profile
	candidate, err := uc.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest(msgProfileIncomplete)
		}
		return nil, apperror.Internal(err)
	}

	// 2. Listing must exist
	if _, err := uc.internshipRepo.GetByID(ctx, internshipID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Internship not found")
		}
		return nil, apperror.Internal(err)
	}

	// 3. Check for duplicate application
	exists, err := uc.applicationRepo.CheckExists(ctx, candidate.ID, internshipID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict(msgAlreadyApplied)
	}

	// 4. Create application; the unique constraint catches concurrent duplicates
	app := &domain.Application{
		CandidateID:  candidate.ID,
		InternshipID: internshipID,
		Status:       domain.ApplicationStatusApplied,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict(msgAlreadyApplied)
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// MyApplications returns the user's applications, newest first
func (uc *applicationUsecase) MyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	candidate, err := uc.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.Application{}, nil
		}
		return nil, apperror.Internal(err)
	}

	apps, err := uc.applicationRepo.GetByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}
