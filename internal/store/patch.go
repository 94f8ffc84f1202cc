package store

// Patch types carry partial updates: nil fields are left unchanged, set
// fields are merged into the entry. Empty strings are legal values at this
// layer; form-level validation is a caller concern.

// PersonalInfoPatch is a partial update of the personal info block
type PersonalInfoPatch struct {
	FullName *string
	Title    *string
	Email    *string
	Phone    *string
	Location *string
	Website  *string
	Summary  *string
}

// ExperiencePatch is a partial update of an experience entry
type ExperiencePatch struct {
	Company     *string
	Position    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Description *string
}

// EducationPatch is a partial update of an education entry
type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Description *string
}

// SkillPatch is a partial update of a skill entry
type SkillPatch struct {
	Name  *string
	Level *int
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
