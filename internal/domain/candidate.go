package domain

import (
	"context"
	"strings"
)

// Candidate is a user's job-seeker profile. There is at most one per user.
type Candidate struct {
	ID        int64  `json:"candidate_id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name" validate:"required,max=100,no_emoji"`
	Age       int    `json:"age" validate:"required,min=14,max=100"`
	Gender    string `json:"gender" validate:"required,max=30"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=100"`
	Education string `json:"education" validate:"required,max=100"`
	Skills    string `json:"skills" validate:"max=500"`
	Interests string `json:"interests" validate:"max=1000"`
}

// FirstSkill is the first comma-separated skill, trimmed. It is empty when no
// skills are listed.
func (c *Candidate) FirstSkill() string {
	first, _, _ := strings.Cut(c.Skills, ",")
	return strings.TrimSpace(first)
}

// ProfileView is what the profile page renders.
type ProfileView struct {
	User      *User      `json:"user"`
	Candidate *Candidate `json:"candidate"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Candidate, error)
	ExistsForUser(ctx context.Context, userID int64) (bool, error)
	Upsert(ctx context.Context, candidate *Candidate) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*ProfileView, error)
	GetCandidate(ctx context.Context, userID int64) (*Candidate, error)
	HasProfile(ctx context.Context, userID int64) (bool, error)
	CompleteProfile(ctx context.Context, userID int64, candidate *Candidate) error
}
