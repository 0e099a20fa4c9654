package postgres

import (
	"context"
	"errors"

	"go-internship-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	query := `
		SELECT
			candidate_id, user_id, name, age, gender, city, state, education,
			COALESCE(skills, ''), COALESCE(interests, '')
		FROM candidates WHERE user_id = $1`

	var c domain.Candidate
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Age, &c.Gender, &c.City, &c.State, &c.Education,
		&c.Skills, &c.Interests,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE user_id = $1)`, userID).Scan(&exists)
	return exists, err
}

// Upsert inserts the profile or replaces every field of the existing one.
// user_id is UNIQUE so concurrent submissions resolve to a single row.
func (r *candidateRepository) Upsert(ctx context.Context, c *domain.Candidate) error {
	query := `
		INSERT INTO candidates (user_id, name, age, gender, city, state, education, skills, interests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''))
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests
		RETURNING candidate_id`

	return r.db.QueryRow(ctx, query,
		c.UserID, c.Name, c.Age, c.Gender, c.City, c.State, c.Education, c.Skills, c.Interests,
	).Scan(&c.ID)
}
