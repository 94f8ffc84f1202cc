package screening

import "github.com/Koushiik20/ResuMate/internal/types"

// SampleCandidates returns a fresh copy of the staged applicant pool
func SampleCandidates() []types.Candidate {
	return []types.Candidate{
		{
			ID:          "1",
			Name:        "Alex Johnson",
			Email:       "alex.johnson@example.com",
			Phone:       "(555) 123-4567",
			SkillMatch:  95,
			LastCompany: "Google",
			Experience:  5,
			Status:      types.StatusPending,
			AppliedDate: "2025-01-15",
			Skills:      []string{"React", "JavaScript", "TypeScript", "CSS", "HTML", "Node.js", "GraphQL"},
		},
		{
			ID:          "2",
			Name:        "Jamie Smith",
			Email:       "jamie.smith@example.com",
			Phone:       "(555) 987-6543",
			SkillMatch:  88,
			LastCompany: "Microsoft",
			Experience:  7,
			Status:      types.StatusPending,
			AppliedDate: "2025-01-17",
			Skills:      []string{"Python", "Java", "Spring Boot", "SQL", "MongoDB", "Docker"},
		},
		{
			ID:          "3",
			Name:        "Taylor Williams",
			Email:       "taylor.williams@example.com",
			Phone:       "(555) 234-5678",
			SkillMatch:  82,
			LastCompany: "Amazon",
			Experience:  4,
			Status:      types.StatusPending,
			AppliedDate: "2025-01-18",
			Skills:      []string{"JavaScript", "Vue.js", "CSS", "HTML", "Node.js", "Express"},
		},
		{
			ID:          "4",
			Name:        "Morgan Davis",
			Email:       "morgan.davis@example.com",
			Phone:       "(555) 345-6789",
			SkillMatch:  78,
			LastCompany: "Apple",
			Experience:  3,
			Status:      types.StatusPending,
			AppliedDate: "2025-01-19",
			Skills:      []string{"React", "JavaScript", "CSS", "HTML", "Redux"},
		},
		{
			ID:          "5",
			Name:        "Jordan Miller",
			Email:       "jordan.miller@example.com",
			Phone:       "(555) 456-7890",
			SkillMatch:  73,
			LastCompany: "Netflix",
			Experience:  2,
			Status:      types.StatusPending,
			AppliedDate: "2025-01-20",
			Skills:      []string{"Angular", "TypeScript", "CSS", "HTML", "RxJS"},
		},
	}
}
