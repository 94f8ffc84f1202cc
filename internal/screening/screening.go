// Package screening simulates the HR candidate-screening workflow over a
// fixed sample applicant pool. There is no real matching: the skill-match
// score is a simple overlap between a candidate's listed skills and the
// target role's screening keywords.
package screening

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Koushiik20/ResuMate/internal/analysis"
	"github.com/Koushiik20/ResuMate/internal/types"
)

// DefaultDelay is the simulated screening time
const DefaultDelay = 2 * time.Second

// ErrUnknownCandidate is returned when a status change targets an id that
// is not in the pool.
var ErrUnknownCandidate = fmt.Errorf("unknown candidate")

// Screener holds the in-memory candidate pool for one session
type Screener struct {
	mu         sync.Mutex
	delay      time.Duration
	candidates []types.Candidate
}

// NewScreener returns a screener over the sample candidate pool
func NewScreener() *Screener {
	return &Screener{
		delay:      DefaultDelay,
		candidates: SampleCandidates(),
	}
}

// WithDelay overrides the simulated screening delay (used by tests)
func (s *Screener) WithDelay(d time.Duration) *Screener {
	s.delay = d
	return s
}

// Screen simulates a screening pass for the role: every candidate is
// re-scored against the role's keywords, marked reviewed, and the pool is
// returned ranked by skill match. The context cancels the simulated delay.
func (s *Screener) Screen(ctx context.Context, role string) ([]types.Candidate, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	keywords := analysis.KeywordsForRole(role)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.candidates {
		s.candidates[i].SkillMatch = matchScore(s.candidates[i].Skills, keywords)
		s.candidates[i].Status = types.StatusReviewed
	}
	sort.SliceStable(s.candidates, func(i, j int) bool {
		return s.candidates[i].SkillMatch > s.candidates[j].SkillMatch
	})
	return s.snapshot(), nil
}

// Candidates returns a copy of the current pool in its current order
func (s *Screener) Candidates() []types.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SetStatus moves a candidate to a new workflow status
func (s *Screener) SetStatus(id string, status types.ApplicationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			s.candidates[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownCandidate, id)
}

// Reset restores the sample pool with every candidate pending again
func (s *Screener) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = SampleCandidates()
}

func (s *Screener) snapshot() []types.Candidate {
	out := make([]types.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// matchScore is the percentage of role keywords covered by the candidate's
// skills, case-insensitive.
func matchScore(skills, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}
	have := make(map[string]bool, len(skills))
	for _, skill := range skills {
		have[strings.ToLower(skill)] = true
	}
	matched := 0
	for _, kw := range keywords {
		if have[strings.ToLower(kw)] {
			matched++
		}
	}
	return matched * 100 / len(keywords)
}
