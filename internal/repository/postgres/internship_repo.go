package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-internship-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const internshipColumns = `id, title, company, sector, location_city, location_state, stipend, skills_required`

type internshipRepo struct {
	db *pgxpool.Pool
}

func NewInternshipRepository(db *pgxpool.Pool) domain.InternshipRepository {
	return &internshipRepo{db: db}
}

func (r *internshipRepo) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`
	var i domain.Internship
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Title, &i.Company, &i.Sector, &i.City, &i.State, &i.Stipend, &i.SkillsRequired,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

// List returns internships matching the filter, highest stipend first.
func (r *internshipRepo) List(ctx context.Context, filter domain.InternshipFilter) ([]domain.Internship, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	internships := []domain.Internship{}
	for rows.Next() {
		var i domain.Internship
		if err := rows.Scan(
			&i.ID, &i.Title, &i.Company, &i.Sector, &i.City, &i.State, &i.Stipend, &i.SkillsRequired,
		); err != nil {
			return nil, err
		}
		internships = append(internships, i)
	}
	return internships, rows.Err()
}

// buildListQuery builds the dynamic WHERE clause for List. Filters are
// case-insensitive substring matches; empty filters match everything.
func buildListQuery(filter domain.InternshipFilter) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}
	argIndex := 1

	if state := strings.TrimSpace(filter.State); state != "" {
		conditions = append(conditions, fmt.Sprintf(`location_state ILIKE $%d ESCAPE '\'`, argIndex))
		args = append(args, containsPattern(state))
		argIndex++
	}

	if sector := strings.TrimSpace(filter.Sector); sector != "" {
		conditions = append(conditions, fmt.Sprintf(`sector ILIKE $%d ESCAPE '\'`, argIndex))
		args = append(args, containsPattern(sector))
	}

	query := `SELECT ` + internshipColumns + ` FROM internships`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY stipend DESC, id`
	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *internshipRepo) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	states, err := r.distinct(ctx, "location_state")
	if err != nil {
		return nil, fmt.Errorf("distinct states: %w", err)
	}
	sectors, err := r.distinct(ctx, "sector")
	if err != nil {
		return nil, fmt.Errorf("distinct sectors: %w", err)
	}
	return &domain.FilterOptions{States: states, Sectors: sectors}, nil
}

// distinct only accepts the fixed column names used by FilterOptions.
func (r *internshipRepo) distinct(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM internships WHERE %s IS NOT NULL ORDER BY %s`, column, column, column)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// BulkCreate loads listings with COPY. Used by the seed tool.
func (r *internshipRepo) BulkCreate(ctx context.Context, internships []domain.Internship) (int64, error) {
	columns := []string{"title", "company", "sector", "location_city", "location_state", "stipend", "skills_required"}
	return r.db.CopyFrom(ctx,
		pgx.Identifier{"internships"},
		columns,
		pgx.CopyFromSlice(len(internships), func(i int) ([]interface{}, error) {
			in := internships[i]
			return []interface{}{in.Title, in.Company, in.Sector, in.City, in.State, in.Stipend, in.SkillsRequired}, nil
		}),
	)
}
