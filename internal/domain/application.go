package domain

import (
	"context"
	"time"
)

const ApplicationStatusApplied = "Applied"

// Application links one candidate to one internship. The pair is unique.
type Application struct {
	ID           int64       `json:"id"`
	CandidateID  int64       `json:"candidate_id"`
	InternshipID int64       `json:"internship_id"`
	Status       string      `json:"status"`
	AppliedAt    time.Time   `json:"applied_at"`
	Internship   *Internship `json:"internship,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	CheckExists(ctx context.Context, candidateID, internshipID int64) (bool, error)
	GetByCandidateID(ctx context.Context, candidateID int64) ([]Application, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, internshipID int64) (*Application, error)
	MyApplications(ctx context.Context, userID int64) ([]Application, error)
}
