package usecase

import (
	"context"
	"errors"
	"strings"

	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
	"go-internship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		userRepo: userRepo,
		validate: validate,
	}
}

// GetProfile returns the user and their candidate profile, which may be nil.
func (u *candidateUsecase) GetProfile(ctx context.Context, userID int64) (*domain.ProfileView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}

	candidate, err := u.repo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	return &domain.ProfileView{User: user, Candidate: candidate}, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, userID int64) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *candidateUsecase) HasProfile(ctx context.Context, userID int64) (bool, error) {
	exists, err := u.repo.ExistsForUser(ctx, userID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

// CompleteProfile validates the form and upserts the profile of userID.
func (u *candidateUsecase) CompleteProfile(ctx context.Context, userID int64, candidate *domain.Candidate) error {
	// The owner always comes from the session, never from the form
	candidate.UserID = userID
	candidate.ID = 0
	trimCandidate(candidate)

	if err := u.validate.Struct(candidate); err != nil {
		return apperror.BadRequest(validation.FirstError(err))
	}

	if err := u.repo.Upsert(ctx, candidate); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func trimCandidate(c *domain.Candidate) {
	c.Name = strings.TrimSpace(c.Name)
	c.Gender = strings.TrimSpace(c.Gender)
	c.City = strings.TrimSpace(c.City)
	c.State = strings.TrimSpace(c.State)
	c.Education = strings.TrimSpace(c.Education)
	c.Skills = strings.TrimSpace(c.Skills)
	c.Interests = strings.TrimSpace(c.Interests)
}
