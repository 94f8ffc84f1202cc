// Package suggest turns a resume analysis into a short natural-language
// improvement paragraph, via the text-completion service when available and
// a deterministic templated fallback when the call fails.
package suggest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Koushiik20/ResuMate/internal/llm"
	"github.com/Koushiik20/ResuMate/internal/types"
)

// Service generates improvement suggestions for an analyzed resume
type Service struct {
	client llm.Client
}

// NewService creates a suggestion service over the given client
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Generate returns a suggestion paragraph for the analysis and target role.
// A failed call (auth, rate limit, network, empty response) falls back to
// the deterministic templated string built from the same inputs - exactly
// one attempt, no retry. The second return value reports whether fallback
// content is being shown, so the caller can surface a non-blocking notice.
func (s *Service) Generate(ctx context.Context, analysis *types.ResumeAnalysis, role string) (string, bool) {
	text, err := s.client.GenerateContent(ctx, BuildPrompt(analysis, role))
	if err != nil {
		log.Printf("[SUGGEST] generation failed, using fallback: %v", err)
		return FallbackSuggestion(analysis, role), true
	}
	return strings.TrimSpace(text), false
}

// BuildPrompt constructs the reviewer prompt for the completion service
func BuildPrompt(analysis *types.ResumeAnalysis, role string) string {
	var sb strings.Builder

	sb.WriteString("You are a professional resume reviewer and career coach.\n")
	sb.WriteString(fmt.Sprintf("Based on the following resume analysis for a %s position, ", role))
	sb.WriteString("provide a concise, actionable suggestion paragraph (2-3 sentences) that:\n")
	sb.WriteString("1. Highlights the most important improvement the candidate should make\n")
	sb.WriteString(fmt.Sprintf("2. References specific missing skills or keywords: %s\n", strings.Join(analysis.Keywords.Missing, ", ")))
	sb.WriteString("3. Suggests a concrete next step, such as a certification or project\n")
	sb.WriteString("4. Maintains a supportive and encouraging tone\n\n")

	sb.WriteString("Resume Analysis:\n")
	sb.WriteString(fmt.Sprintf("- Overall Score: %d/100\n", analysis.Scores.Overall))
	sb.WriteString(fmt.Sprintf("- Keywords Found: %s\n", strings.Join(analysis.Keywords.Found, ", ")))
	sb.WriteString(fmt.Sprintf("- Missing Keywords: %s\n", strings.Join(analysis.Keywords.Missing, ", ")))
	sb.WriteString(fmt.Sprintf("- Critical Improvements: %s\n", strings.Join(analysis.Improvements.Critical, "; ")))

	gaps := make([]string, 0, len(analysis.SkillGaps))
	for _, gap := range analysis.SkillGaps {
		gaps = append(gaps, fmt.Sprintf("%s (%s importance)", gap.Name, gap.Importance))
	}
	sb.WriteString(fmt.Sprintf("- Skill Gaps: %s\n", strings.Join(gaps, ", ")))

	return sb.String()
}

// FallbackSuggestion builds the deterministic suggestion shown when the
// completion service is unavailable. Same inputs always produce the same
// paragraph.
func FallbackSuggestion(analysis *types.ResumeAnalysis, role string) string {
	var sb strings.Builder

	sb.WriteString("Focus on quantifiable achievements and metrics in your experience section.")

	missing := analysis.Keywords.Missing
	switch {
	case len(missing) >= 2:
		sb.WriteString(fmt.Sprintf(" For a %s role, emphasize your technical proficiency with %s and %s - even if you're still learning them.",
			role, missing[0], missing[1]))
	case len(missing) == 1:
		sb.WriteString(fmt.Sprintf(" For a %s role, emphasize your technical proficiency with %s - even if you're still learning it.",
			role, missing[0]))
	default:
		sb.WriteString(fmt.Sprintf(" For a %s role, tailor your summary to the specific job description.", role))
	}

	if len(analysis.SkillGaps) > 0 {
		sb.WriteString(fmt.Sprintf(" Consider taking a quick certification course in %s to strengthen your application.",
			analysis.SkillGaps[0].Name))
	}

	return sb.String()
}
