package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-internship-backend/internal/domain"
	"go-internship-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(id int64, city, state string, stipend int, skills *string) domain.Internship {
	return domain.Internship{ID: id, City: strPtr(city), State: strPtr(state), Stipend: stipend, SkillsRequired: skills}
}

func TestScoreInternship(t *testing.T) {
	candidate := &domain.Candidate{City: "Pune", State: "Maharashtra", Skills: "Python, SQL"}

	tests := []struct {
		name     string
		in       domain.Internship
		location int
		skills   int
	}{
		{"same state and skill", listing(1, "Mumbai", "Maharashtra", 5000, strPtr("Python, Django")), 3, 3},
		{"same city other state", listing(2, "Pune", "Karnataka", 5000, strPtr("Java")), 2, 0},
		{"nothing in common", listing(3, "Delhi", "Delhi", 5000, strPtr("Java")), 1, 0},
		{"no requirement recorded", listing(4, "Delhi", "Delhi", 5000, nil), 1, 1},
		{"skill match is case sensitive", listing(5, "Delhi", "Delhi", 5000, strPtr("python")), 1, 0},
		{"state wins over city", listing(6, "Pune", "Maharashtra", 5000, nil), 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.ScoreInternship(candidate, tt.in)
			assert.Equal(t, tt.location, got.LocationScore)
			assert.Equal(t, tt.skills, got.SkillsScore)
			assert.Equal(t, tt.location+tt.skills, got.Score)
		})
	}
}

func TestSkillsScoreWithoutCandidateSkills(t *testing.T) {
	candidate := &domain.Candidate{City: "Pune", State: "Maharashtra"}

	assert.Equal(t, 3, usecase.SkillsScore(candidate, &domain.Internship{SkillsRequired: strPtr("Java")}))
	assert.Equal(t, 3, usecase.SkillsScore(candidate, &domain.Internship{SkillsRequired: strPtr("")}))
	assert.Equal(t, 1, usecase.SkillsScore(candidate, &domain.Internship{}))
}

func TestRecommend(t *testing.T) {
	candidate := &domain.Candidate{City: "Pune", State: "Maharashtra", Skills: "Python, SQL"}

	t.Run("Should rank relevance before stipend", func(t *testing.T) {
		a := listing(1, "Mumbai", "Maharashtra", 5000, strPtr("Python, Django"))
		b := listing(2, "Bengaluru", "Karnataka", 20000, strPtr("Java"))

		got := usecase.Recommend(candidate, []domain.Internship{b, a}, 5)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].Internship.ID)
		assert.Equal(t, 6, got[0].Score)
		assert.Equal(t, int64(2), got[1].Internship.ID)
		assert.Equal(t, 1, got[1].Score)
	})

	t.Run("Should break score ties by stipend", func(t *testing.T) {
		low := listing(1, "Delhi", "Delhi", 1000, nil)
		high := listing(2, "Delhi", "Delhi", 9000, nil)

		got := usecase.Recommend(candidate, []domain.Internship{low, high}, 5)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].Internship.ID)
	})

	t.Run("Should keep at most the limit", func(t *testing.T) {
		var all []domain.Internship
		for i := int64(1); i <= 8; i++ {
			all = append(all, listing(i, "Delhi", "Delhi", int(i)*100, nil))
		}

		assert.Len(t, usecase.Recommend(candidate, all, 3), 3)
		assert.Len(t, usecase.Recommend(candidate, all, 0), usecase.DefaultRecommendationLimit)
		assert.Empty(t, usecase.Recommend(candidate, nil, 5))
	})
}

func TestInternshipUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Dashboard scores every listing", func(t *testing.T) {
		repo := new(MockInternshipRepo)
		uc := usecase.NewInternshipUsecase(repo, 2)
		candidate := &domain.Candidate{City: "Pune", State: "Maharashtra", Skills: "Go"}
		repo.On("List", ctx, domain.InternshipFilter{}).Return([]domain.Internship{
			listing(1, "Delhi", "Delhi", 100, nil),
			listing(2, "Pune", "Maharashtra", 100, strPtr("Go")),
			listing(3, "Pune", "Goa", 100, nil),
		}, nil).Once()

		dash, err := uc.Dashboard(ctx, candidate)
		require.NoError(t, err)
		require.Len(t, dash.Recommendations, 2)
		assert.Equal(t, int64(2), dash.Recommendations[0].Internship.ID)
		assert.Equal(t, int64(3), dash.Recommendations[1].Internship.ID)
		assert.Same(t, candidate, dash.Candidate)
	})

	t.Run("Browse echoes filters with options", func(t *testing.T) {
		repo := new(MockInternshipRepo)
		uc := usecase.NewInternshipUsecase(repo, 0)
		filter := domain.InternshipFilter{State: "kar"}
		repo.On("List", ctx, filter).Return([]domain.Internship{listing(2, "Bengaluru", "Karnataka", 100, nil)}, nil).Once()
		repo.On("FilterOptions", ctx).Return(&domain.FilterOptions{
			States:  []string{"Karnataka", "Maharashtra"},
			Sectors: []string{"IT"},
		}, nil).Once()

		res, err := uc.Browse(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, res.Internships, 1)
		assert.Equal(t, "kar", res.Filters.State)
		assert.Equal(t, []string{"Karnataka", "Maharashtra"}, res.States)
	})

	t.Run("Browse surfaces store errors as internal", func(t *testing.T) {
		repo := new(MockInternshipRepo)
		uc := usecase.NewInternshipUsecase(repo, 0)
		repo.On("List", ctx, domain.InternshipFilter{}).Return(nil, errors.New("boom")).Once()

		_, err := uc.Browse(ctx, domain.InternshipFilter{})
		requireAppError(t, err, 500)
	})
}

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	status, healthy := usecase.NewHealthUsecase(ok, nil).Check(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, "disabled", status["redis"])

	status, healthy = usecase.NewHealthUsecase(ok, down).Check(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, "unavailable", status["redis"])

	status, healthy = usecase.NewHealthUsecase(down, ok).Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "degraded", status["status"])
}
