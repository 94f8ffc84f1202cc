package rendering

import (
	"github.com/Koushiik20/ResuMate/internal/dates"
	"github.com/Koushiik20/ResuMate/internal/types"
)

// Placeholder strings substituted for required-but-empty header fields so
// the preview never looks structurally broken before the form is filled.
// Optional fields (summary, website, descriptions) get no placeholder and
// are simply omitted when empty.
const (
	PlaceholderName  = "Your Name"
	PlaceholderTitle = "Professional Title"
)

// TemplateData is the shared view model every template renders from. All
// cross-cutting rules are applied once here: placeholders, the
// populated-section checks, date-range formatting, and skill level
// labels/bars. Templates only differ in markup.
type TemplateData struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	Website  string
	Summary  string
	// Contact lists the non-empty contact fields in display order for
	// templates that render them as one separated line.
	Contact []string

	ShowExperience bool
	Experience     []ExperienceView
	ShowEducation  bool
	Education      []EducationView
	ShowSkills     bool
	Skills         []SkillView
}

// ExperienceView is a single experience entry prepared for display
type ExperienceView struct {
	Position    string
	Company     string
	DateRange   string
	Description string
}

// EducationView is a single education entry prepared for display
type EducationView struct {
	Degree      string
	Field       string
	Institution string
	DateRange   string
	Description string
}

// SkillView is a single skill entry prepared for display
type SkillView struct {
	Name    string
	Label   string
	Percent int
}

// HasExperience reports whether the experience section counts as populated:
// the first entry's company field is non-empty. Later entries are not
// consulted; this mirrors the behavior the app has always had, so a
// document whose first entry is blank hides the section even when later
// entries are filled in.
func HasExperience(doc *types.ResumeDocument) bool {
	return len(doc.Experience) > 0 && doc.Experience[0].Company != ""
}

// HasEducation reports whether the education section counts as populated,
// keyed on the first entry's institution field.
func HasEducation(doc *types.ResumeDocument) bool {
	return len(doc.Education) > 0 && doc.Education[0].Institution != ""
}

// HasSkills reports whether the skills section counts as populated, keyed
// on the first entry's name field.
func HasSkills(doc *types.ResumeDocument) bool {
	return len(doc.Skills) > 0 && doc.Skills[0].Name != ""
}

// BuildTemplateData prepares the view model for a document. Entries keep
// their stored collection order.
func BuildTemplateData(doc *types.ResumeDocument) *TemplateData {
	info := doc.PersonalInfo

	data := &TemplateData{
		Name:     info.FullName,
		Title:    info.Title,
		Email:    info.Email,
		Phone:    info.Phone,
		Location: info.Location,
		Website:  info.Website,
		Summary:  info.Summary,
	}
	if data.Name == "" {
		data.Name = PlaceholderName
	}
	if data.Title == "" {
		data.Title = PlaceholderTitle
	}

	for _, field := range []string{info.Email, info.Phone, info.Location, info.Website} {
		if field != "" {
			data.Contact = append(data.Contact, field)
		}
	}

	data.ShowExperience = HasExperience(doc)
	if data.ShowExperience {
		for _, exp := range doc.Experience {
			data.Experience = append(data.Experience, ExperienceView{
				Position:    exp.Position,
				Company:     exp.Company,
				DateRange:   dates.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
				Description: exp.Description,
			})
		}
	}

	data.ShowEducation = HasEducation(doc)
	if data.ShowEducation {
		for _, edu := range doc.Education {
			data.Education = append(data.Education, EducationView{
				Degree:      edu.Degree,
				Field:       edu.Field,
				Institution: edu.Institution,
				DateRange:   dates.FormatDateRange(edu.StartDate, edu.EndDate, edu.Current),
				Description: edu.Description,
			})
		}
	}

	data.ShowSkills = HasSkills(doc)
	if data.ShowSkills {
		for _, skill := range doc.Skills {
			data.Skills = append(data.Skills, SkillView{
				Name:    skill.Name,
				Label:   skill.LevelLabel(),
				Percent: skill.LevelPercent(),
			})
		}
	}

	return data
}
