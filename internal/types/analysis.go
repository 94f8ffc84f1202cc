package types

// Scores holds the 0-100 category scores produced by resume analysis
type Scores struct {
	Overall  int `json:"overall"`
	Keywords int `json:"keywords"`
	Content  int `json:"content"`
	Format   int `json:"format"`
	Skills   int `json:"skills"`
}

// KeywordMatch lists keywords found in the resume and important keywords
// missing from it, relative to a target role.
type KeywordMatch struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// Importance levels for skill gaps
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// Difficulty levels for closing a skill gap
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// SkillGap represents a skill the target role expects that the resume
// does not demonstrate.
type SkillGap struct {
	Name       string `json:"name"`
	Importance string `json:"importance"`
	Difficulty string `json:"difficulty"`
}

// Improvements groups suggested resume changes by urgency
type Improvements struct {
	Critical    []string `json:"critical"`
	Recommended []string `json:"recommended"`
	Optional    []string `json:"optional"`
}

// ResumeAnalysis is the full analysis report for a resume against a role
type ResumeAnalysis struct {
	Scores       Scores       `json:"scores"`
	Keywords     KeywordMatch `json:"keywords"`
	SkillGaps    []SkillGap   `json:"skillGaps"`
	Improvements Improvements `json:"improvements"`
}
