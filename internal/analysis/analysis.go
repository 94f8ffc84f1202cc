// Package analysis simulates AI-driven resume scoring. Scores, skill gaps
// and improvement lists are staged sample content behind a fixed delay; the
// keyword scan runs against the actual rendered resume text.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/Koushiik20/ResuMate/internal/types"
)

// DefaultDelay is the simulated processing time of the scoring pass
const DefaultDelay = 1500 * time.Millisecond

// Analyzer produces a resume analysis for a target role
type Analyzer struct {
	delay time.Duration
}

// NewAnalyzer returns an analyzer with the default simulated delay
func NewAnalyzer() *Analyzer {
	return &Analyzer{delay: DefaultDelay}
}

// WithDelay overrides the simulated processing delay (used by tests)
func (a *Analyzer) WithDelay(d time.Duration) *Analyzer {
	a.delay = d
	return a
}

// ExtractText pulls the visible text out of a rendered resume surface
func ExtractText(surfaceHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(surfaceHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse rendered surface: %w", err)
	}
	return strings.Join(strings.Fields(doc.Find("body").Text()), " "), nil
}

// Analyze runs the analysis for a rendered resume surface and target role.
// The staged scoring pass and the keyword scan run as parallel branches;
// the context cancels the simulated delay.
func (a *Analyzer) Analyze(ctx context.Context, surfaceHTML, role string) (*types.ResumeAnalysis, error) {
	text, err := ExtractText(surfaceHTML)
	if err != nil {
		return nil, err
	}

	result := &types.ResumeAnalysis{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scores, gaps, improvements, err := a.simulateScoring(gCtx)
		if err != nil {
			return err
		}
		result.Scores = scores
		result.SkillGaps = gaps
		result.Improvements = improvements
		return nil
	})

	var keywords types.KeywordMatch
	g.Go(func() error {
		keywords = scanKeywords(text, role)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Keywords = keywords
	// The keyword category score reflects the real scan; the remaining
	// categories stay staged.
	if total := len(keywords.Found) + len(keywords.Missing); total > 0 {
		result.Scores.Keywords = len(keywords.Found) * 100 / total
	}
	return result, nil
}

// simulateScoring waits out the staged processing delay and returns the
// sample scoring content.
func (a *Analyzer) simulateScoring(ctx context.Context) (types.Scores, []types.SkillGap, types.Improvements, error) {
	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			return types.Scores{}, nil, types.Improvements{}, ctx.Err()
		}
	}

	gaps := make([]types.SkillGap, len(sampleSkillGaps))
	copy(gaps, sampleSkillGaps)
	return sampleScores, gaps, sampleImprovements, nil
}

// scanKeywords splits the role's screening keywords into those present in
// the resume text and those missing from it. Matching is case-insensitive
// substring matching over the extracted text.
func scanKeywords(text, role string) types.KeywordMatch {
	lower := strings.ToLower(text)

	match := types.KeywordMatch{
		Found:   []string{},
		Missing: []string{},
	}
	for _, kw := range KeywordsForRole(role) {
		if strings.Contains(lower, strings.ToLower(kw)) {
			match.Found = append(match.Found, kw)
		} else {
			match.Missing = append(match.Missing, kw)
		}
	}
	return match
}
