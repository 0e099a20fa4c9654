package usecase

import (
	"context"
	"errors"
	"strings"

	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	hasher        domain.PasswordHasher
	sessions      domain.SessionIssuer
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	candidateRepo domain.CandidateRepository,
	hasher domain.PasswordHasher,
	sessions domain.SessionIssuer,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		hasher:        hasher,
		sessions:      sessions,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and signs the new user in. A fresh account
// never has a candidate profile.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperror.Conflict("Email already registered")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	digest, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{Email: email, PasswordHash: digest}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, apperror.Internal(err)
	}

	token, err := u.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{
		User:        user,
		Token:       token,
		HasProfile:  false,
		DisplayName: strings.TrimSpace(input.Name),
	}, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Internal(err)
	}

	if !u.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	hasProfile, err := u.candidateRepo.ExistsForUser(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	token, err := u.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{User: user, Token: token, HasProfile: hasProfile}, nil
}

func (u *authUsecase) Status(ctx context.Context, session *domain.Session) (*domain.SessionStatus, error) {
	if session == nil {
		return &domain.SessionStatus{LoggedIn: false}, nil
	}

	hasProfile, err := u.candidateRepo.ExistsForUser(ctx, session.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.SessionStatus{
		LoggedIn:   true,
		UserID:     session.UserID,
		Email:      session.Email,
		HasProfile: &hasProfile,
	}, nil
}
