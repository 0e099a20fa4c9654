package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-internship-backend/internal/domain"
	"go-internship-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applyFixture struct {
	uc          domain.ApplicationUsecase
	apps        *MockApplicationRepo
	candidates  *MockCandidateRepo
	internships *MockInternshipRepo
}

func newApplyFixture() applyFixture {
	f := applyFixture{
		apps:        new(MockApplicationRepo),
		candidates:  new(MockCandidateRepo),
		internships: new(MockInternshipRepo),
	}
	f.uc = usecase.NewApplicationUsecase(f.apps, f.candidates, f.internships)
	return f
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.Candidate{ID: 11, UserID: 5}
	listing := &domain.Internship{ID: 30, Stipend: 8000}

	t.Run("Should create an Applied row", func(t *testing.T) {
		f := newApplyFixture()
		f.candidates.On("GetByUserID", ctx, int64(5)).Return(candidate, nil).Once()
		f.internships.On("GetByID", ctx, int64(30)).Return(listing, nil).Once()
		f.apps.On("CheckExists", ctx, int64(11), int64(30)).Return(false, nil).Once()
		f.apps.On("Create", ctx, mock.MatchedBy(func(a *domain.Application) bool {
			return a.CandidateID == 11 && a.InternshipID == 30 && a.Status == domain.ApplicationStatusApplied
		})).Return(nil).Once()

		app, err := f.uc.Apply(ctx, 5, 30)
		require.NoError(t, err)
		assert.Equal(t, "Applied", app.Status)
		f.apps.AssertExpectations(t)
	})

	t.Run("Should refuse a second application without writing", func(t *testing.T) {
		f := newApplyFixture()
		f.candidates.On("GetByUserID", ctx, int64(5)).Return(candidate, nil).Once()
		f.internships.On("GetByID", ctx, int64(30)).Return(listing, nil).Once()
		f.apps.On("CheckExists", ctx, int64(11), int64(30)).Return(true, nil).Once()

		_, err := f.uc.Apply(ctx, 5, 30)
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "You have already applied to this internship", appErr.Message)
		f.apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should map a concurrent duplicate to already applied", func(t *testing.T) {
		f := newApplyFixture()
		f.candidates.On("GetByUserID", ctx, int64(5)).Return(candidate, nil).Once()
		f.internships.On("GetByID", ctx, int64(30)).Return(listing, nil).Once()
		f.apps.On("CheckExists", ctx, int64(11), int64(30)).Return(false, nil).Once()
		f.apps.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicate).Once()

		_, err := f.uc.Apply(ctx, 5, 30)
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "You have already applied to this internship", appErr.Message)
	})

	t.Run("Should require a profile", func(t *testing.T) {
		f := newApplyFixture()
		f.candidates.On("GetByUserID", ctx, int64(5)).Return(nil, domain.ErrNotFound).Once()

		_, err := f.uc.Apply(ctx, 5, 30)
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "Profile incomplete")
		f.internships.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should report an unknown internship", func(t *testing.T) {
		f := newApplyFixture()
		f.candidates.On("GetByUserID", ctx, int64(5)).Return(candidate, nil).Once()
		f.internships.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound).Once()

		_, err := f.uc.Apply(ctx, 5, 404)
		requireAppError(t, err, http.StatusNotFound)
		f.apps.AssertNotCalled(t, "CheckExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject a missing internship id", func(t *testing.T) {
		f := newApplyFixture()
		_, err := f.uc.Apply(ctx, 5, 0)
		requireAppError(t, err, http.StatusBadRequest)
	})
}

func TestMyApplications(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be empty without a profile", func(t *testing.T) {
		f := newApplyFixture()
		f.candidates.On("GetByUserID", ctx, int64(5)).Return(nil, domain.ErrNotFound).Once()

		apps, err := f.uc.MyApplications(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, apps)
		assert.NotNil(t, apps)
	})

	t.Run("Should list the candidate's applications", func(t *testing.T) {
		f := newApplyFixture()
		f.candidates.On("GetByUserID", ctx, int64(5)).Return(&domain.Candidate{ID: 11}, nil).Once()
		f.apps.On("GetByCandidateID", ctx, int64(11)).Return([]domain.Application{{ID: 1}, {ID: 2}}, nil).Once()

		apps, err := f.uc.MyApplications(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, apps, 2)
	})
}
