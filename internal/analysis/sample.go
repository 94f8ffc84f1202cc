package analysis

import "github.com/Koushiik20/ResuMate/internal/types"

// sampleScores, sampleSkillGaps and sampleImprovements are the staged
// analysis content. Scoring is a client-side simulation; only the keyword
// scan reflects the actual resume text.
var sampleScores = types.Scores{
	Overall:  74,
	Keywords: 68,
	Content:  85,
	Format:   92,
	Skills:   62,
}

var sampleSkillGaps = []types.SkillGap{
	{Name: "TypeScript", Importance: types.ImportanceHigh, Difficulty: types.DifficultyMedium},
	{Name: "Redux", Importance: types.ImportanceMedium, Difficulty: types.DifficultyMedium},
	{Name: "AWS Services", Importance: types.ImportanceHigh, Difficulty: types.DifficultyHard},
	{Name: "NextJS", Importance: types.ImportanceMedium, Difficulty: types.DifficultyEasy},
}

var sampleImprovements = types.Improvements{
	Critical: []string{
		"Add more quantifiable achievements to demonstrate impact",
		"Include TypeScript experience or certification",
		"Improve layout to reduce whitespace and highlight key accomplishments",
	},
	Recommended: []string{
		"Add a skills section with technology proficiency levels",
		"Include links to GitHub or portfolio projects",
		"Tailor your summary to match the specific job description",
	},
	Optional: []string{
		"Consider adding a small profile photo",
		"Include relevant hobbies that demonstrate soft skills",
		"Add references or testimonials section",
	},
}
