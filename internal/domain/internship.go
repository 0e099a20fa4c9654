package domain

import "context"

// Internship is a listing. Listings are written by the seed tool only.
type Internship struct {
	ID             int64   `json:"id"`
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Sector         *string `json:"sector"`
	City           *string `json:"location_city"`
	State          *string `json:"location_state"`
	Stipend        int     `json:"stipend"`
	SkillsRequired *string `json:"skills_required"`
}

// ScoredInternship is a recommendation with its relevance breakdown.
type ScoredInternship struct {
	Internship    Internship `json:"internship"`
	Score         int        `json:"score"`
	LocationScore int        `json:"location_score"`
	SkillsScore   int        `json:"skills_score"`
}

// InternshipFilter holds optional case-insensitive substring filters.
type InternshipFilter struct {
	State  string `form:"state" json:"state"`
	Sector string `form:"sector" json:"sector"`
}

// FilterOptions lists the distinct non-null values available for filtering.
type FilterOptions struct {
	States  []string `json:"states"`
	Sectors []string `json:"sectors"`
}

type InternshipListing struct {
	Internships []Internship     `json:"internships"`
	Filters     InternshipFilter `json:"filters"`
	FilterOptions
}

type Dashboard struct {
	Candidate       *Candidate         `json:"candidate"`
	Recommendations []ScoredInternship `json:"recommendations"`
}

type InternshipRepository interface {
	GetByID(ctx context.Context, id int64) (*Internship, error)
	List(ctx context.Context, filter InternshipFilter) ([]Internship, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	BulkCreate(ctx context.Context, internships []Internship) (int64, error)
}

type InternshipUsecase interface {
	Dashboard(ctx context.Context, candidate *Candidate) (*Dashboard, error)
	Browse(ctx context.Context, filter InternshipFilter) (*InternshipListing, error)
}
