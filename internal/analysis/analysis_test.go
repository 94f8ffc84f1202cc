package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koushiik20/ResuMate/internal/rendering"
	"github.com/Koushiik20/ResuMate/internal/types"
)

func renderedSurface(t *testing.T) string {
	t.Helper()
	reg, err := rendering.NewRegistry()
	require.NoError(t, err)

	doc := types.NewDefaultDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Summary = "Frontend engineer working with React and CSS."
	doc.Experience[0] = types.Experience{
		ID:          "exp-1",
		Company:     "Acme",
		Position:    "Engineer",
		Description: "Built JavaScript applications with REST API backends.",
	}
	doc.Skills[0] = types.Skill{ID: "s1", Name: "JavaScript", Level: 4}

	layout, err := reg.Resolve("modern").Render(doc)
	require.NoError(t, err)
	return layout.HTML
}

func TestExtractText(t *testing.T) {
	text, err := ExtractText("<html><body><h1>Jane   Doe</h1><p>Engineer</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Engineer", text)
}

func TestAnalyze_KeywordScanReflectsResume(t *testing.T) {
	analyzer := NewAnalyzer().WithDelay(0)

	result, err := analyzer.Analyze(context.Background(), renderedSurface(t), "Frontend Developer")
	require.NoError(t, err)

	assert.Contains(t, result.Keywords.Found, "JavaScript")
	assert.Contains(t, result.Keywords.Found, "React")
	assert.Contains(t, result.Keywords.Found, "CSS")
	assert.Contains(t, result.Keywords.Missing, "TypeScript")
	assert.Contains(t, result.Keywords.Missing, "Redux")

	// Every screening keyword lands in exactly one bucket
	total := len(result.Keywords.Found) + len(result.Keywords.Missing)
	assert.Equal(t, len(KeywordsForRole("Frontend Developer")), total)
}

func TestAnalyze_KeywordScoreFromScan(t *testing.T) {
	analyzer := NewAnalyzer().WithDelay(0)

	result, err := analyzer.Analyze(context.Background(), renderedSurface(t), "Frontend Developer")
	require.NoError(t, err)

	total := len(result.Keywords.Found) + len(result.Keywords.Missing)
	require.Positive(t, total)
	assert.Equal(t, len(result.Keywords.Found)*100/total, result.Scores.Keywords)
}

func TestAnalyze_StagedContent(t *testing.T) {
	analyzer := NewAnalyzer().WithDelay(0)

	result, err := analyzer.Analyze(context.Background(), renderedSurface(t), "Frontend Developer")
	require.NoError(t, err)

	// Non-keyword categories are staged sample content
	assert.Equal(t, 74, result.Scores.Overall)
	assert.Equal(t, 92, result.Scores.Format)
	assert.Len(t, result.SkillGaps, 4)
	assert.NotEmpty(t, result.Improvements.Critical)
	assert.NotEmpty(t, result.Improvements.Recommended)
	assert.NotEmpty(t, result.Improvements.Optional)
}

func TestAnalyze_ContextCancelsDelay(t *testing.T) {
	analyzer := NewAnalyzer().WithDelay(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := analyzer.Analyze(ctx, renderedSurface(t), "Frontend Developer")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAnalyze_UnknownRoleUsesDefaultKeywords(t *testing.T) {
	analyzer := NewAnalyzer().WithDelay(0)

	result, err := analyzer.Analyze(context.Background(), renderedSurface(t), "Basket Weaver")
	require.NoError(t, err)

	total := len(result.Keywords.Found) + len(result.Keywords.Missing)
	assert.Equal(t, len(defaultKeywords), total)
}

func TestKeywordsForRole(t *testing.T) {
	assert.Contains(t, KeywordsForRole("DevOps Engineer"), "Kubernetes")
	assert.Equal(t, defaultKeywords, KeywordsForRole("Product Manager"))
}

func TestJobRoles_CatalogStable(t *testing.T) {
	assert.Len(t, JobRoles, 12)
	assert.Contains(t, JobRoles, "Frontend Developer")
	assert.Contains(t, JobRoles, "Machine Learning Engineer")
}
