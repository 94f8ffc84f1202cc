// Package types provides type definitions for structured data used throughout the ResuMate system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// DefaultTemplate is the template identifier used when none is selected
// or when a stored identifier does not resolve to a known renderer.
const DefaultTemplate = "modern"

// DefaultSkillLevel is the proficiency level assigned to newly added skills
const DefaultSkillLevel = 3

// PersonalInfo holds the single-instance contact block of a resume.
// There is no identity field; it is updated by field-level merge.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary"`
}

// Experience represents a single work history entry.
// When Current is true, EndDate is logically empty regardless of its
// stored value; renderers display "Present" via the date formatter.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education represents a single education entry.
// Same Current/EndDate rule as Experience.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Skill represents a named skill with a discrete proficiency level (1-5)
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ResumeDocument is the root aggregate. Exactly one instance is live per
// session, owned by the document store. Collection order is display order
// (insertion order, never sorted by date).
type ResumeDocument struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Template     string       `json:"template"`
}

// NewExperience returns a blank experience entry with a fresh unique id
func NewExperience() Experience {
	return Experience{ID: uuid.NewString()}
}

// NewEducation returns a blank education entry with a fresh unique id
func NewEducation() Education {
	return Education{ID: uuid.NewString()}
}

// NewSkill returns a blank skill entry with a fresh unique id and the
// default proficiency level.
func NewSkill() Skill {
	return Skill{ID: uuid.NewString(), Level: DefaultSkillLevel}
}

// NewDefaultDocument produces the default skeleton document: empty personal
// info, one blank entry per repeatable collection, and the default template.
// Used at first run and on explicit reset.
func NewDefaultDocument() *ResumeDocument {
	return &ResumeDocument{
		Experience: []Experience{NewExperience()},
		Education:  []Education{NewEducation()},
		Skills:     []Skill{NewSkill()},
		Template:   DefaultTemplate,
	}
}

// Clone returns a deep copy of the document. The store hands out clones so
// renderers and other readers can never mutate the live instance.
func (d *ResumeDocument) Clone() *ResumeDocument {
	out := &ResumeDocument{
		PersonalInfo: d.PersonalInfo,
		Experience:   make([]Experience, len(d.Experience)),
		Education:    make([]Education, len(d.Education)),
		Skills:       make([]Skill, len(d.Skills)),
		Template:     d.Template,
	}
	copy(out.Experience, d.Experience)
	copy(out.Education, d.Education)
	copy(out.Skills, d.Skills)
	return out
}

// skillLevelLabels maps the discrete 1-5 proficiency scale to display labels
var skillLevelLabels = map[int]string{
	1: "Beginner",
	2: "Basic",
	3: "Intermediate",
	4: "Advanced",
	5: "Expert",
}

// LevelLabel returns the display label for the skill's proficiency level,
// or an empty string when the level is outside the 1-5 scale.
func (s Skill) LevelLabel() string {
	return skillLevelLabels[s.Level]
}

// LevelPercent returns the proportional bar width for the skill's level in
// 20% steps (level/5 * 100). Out-of-range levels clamp to 0 or 100.
func (s Skill) LevelPercent() int {
	switch {
	case s.Level <= 0:
		return 0
	case s.Level >= 5:
		return 100
	default:
		return s.Level * 20
	}
}
