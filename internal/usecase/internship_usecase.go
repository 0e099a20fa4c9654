package usecase

import (
	"context"

	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
)

type internshipUsecase struct {
	repo  domain.InternshipRepository
	limit int
}

func NewInternshipUsecase(repo domain.InternshipRepository, recommendationLimit int) domain.InternshipUsecase {
	if recommendationLimit <= 0 {
		recommendationLimit = DefaultRecommendationLimit
	}
	return &internshipUsecase{repo: repo, limit: recommendationLimit}
}

// Dashboard scores every listing for the candidate and keeps the best ones.
func (u *internshipUsecase) Dashboard(ctx context.Context, candidate *domain.Candidate) (*domain.Dashboard, error) {
	internships, err := u.repo.List(ctx, domain.InternshipFilter{})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.Dashboard{
		Candidate:       candidate,
		Recommendations: Recommend(candidate, internships, u.limit),
	}, nil
}

// Browse returns the filtered listings together with the available filter values.
func (u *internshipUsecase) Browse(ctx context.Context, filter domain.InternshipFilter) (*domain.InternshipListing, error) {
	internships, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	options, err := u.repo.FilterOptions(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.InternshipListing{
		Internships:   internships,
		Filters:       filter,
		FilterOptions: *options,
	}, nil
}
