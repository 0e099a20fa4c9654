package postgres

import (
	"context"
	"fmt"

	"go-internship-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. A second row for the same
// (candidate, internship) pair is rejected by the store with ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (candidate_id, internship_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, applied_at`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query, app.CandidateID, app.InternshipID, app.Status).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("application %d/%d: %w", app.CandidateID, app.InternshipID, domain.ErrDuplicate)
		}
		return err
	}
	return nil
}

// CheckExists reports whether the candidate already applied to the internship
func (r *applicationRepo) CheckExists(ctx context.Context, candidateID, internshipID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE candidate_id = $1 AND internship_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, candidateID, internshipID).Scan(&exists)
	return exists, err
}

// GetByCandidateID retrieves a candidate's applications with listing details, newest first
func (r *applicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.candidate_id, a.internship_id, a.status, a.applied_at,
			i.id, i.title, i.company, i.sector, i.location_city, i.location_state,
			i.stipend, i.skills_required
		FROM applications a
		JOIN internships i ON a.internship_id = i.id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		var i domain.Internship
		if err := rows.Scan(
			&app.ID, &app.CandidateID, &app.InternshipID, &app.Status, &app.AppliedAt,
			&i.ID, &i.Title, &i.Company, &i.Sector, &i.City, &i.State,
			&i.Stipend, &i.SkillsRequired,
		); err != nil {
			return nil, err
		}
		app.Internship = &i
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
