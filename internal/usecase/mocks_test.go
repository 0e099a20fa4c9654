package usecase_test

import (
	"context"

	"go-internship-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateRepo) Upsert(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

type MockInternshipRepo struct {
	mock.Mock
}

func (m *MockInternshipRepo) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Internship), args.Error(1)
}

func (m *MockInternshipRepo) List(ctx context.Context, filter domain.InternshipFilter) ([]domain.Internship, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Internship), args.Error(1)
}

func (m *MockInternshipRepo) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterOptions), args.Error(1)
}

func (m *MockInternshipRepo) BulkCreate(ctx context.Context, internships []domain.Internship) (int64, error) {
	args := m.Called(ctx, internships)
	return int64(args.Int(0)), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) CheckExists(ctx context.Context, candidateID, internshipID int64) (bool, error) {
	args := m.Called(ctx, candidateID, internshipID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

// fakeHasher prefixes the password so digests are predictable in tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, digest string) bool { return digest == "hashed:"+password }

type fakeSessions struct{}

func (fakeSessions) Issue(userID int64, email string) (string, error) {
	return "token-for-" + email, nil
}

func strPtr(s string) *string { return &s }
