package types

// ApplicationStatus tracks a candidate through the screening workflow
type ApplicationStatus string

// Candidate screening statuses
const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewed  ApplicationStatus = "reviewed"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusHired     ApplicationStatus = "hired"
)

// Candidate represents an applicant in the HR screening simulation
type Candidate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	SkillMatch  int               `json:"skillMatch"`
	LastCompany string            `json:"lastCompany"`
	Experience  int               `json:"experience"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"appliedDate"`
	Skills      []string          `json:"skills,omitempty"`
}
