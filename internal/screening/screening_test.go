package screening

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koushiik20/ResuMate/internal/types"
)

func TestSampleCandidates_FreshCopies(t *testing.T) {
	a := SampleCandidates()
	b := SampleCandidates()
	require.Len(t, a, 5)

	a[0].Status = types.StatusHired
	assert.Equal(t, types.StatusPending, b[0].Status)
}

func TestScreen_MarksReviewedAndRanks(t *testing.T) {
	s := NewScreener().WithDelay(0)

	candidates, err := s.Screen(context.Background(), "Frontend Developer")
	require.NoError(t, err)
	require.Len(t, candidates, 5)

	for i, c := range candidates {
		assert.Equal(t, types.StatusReviewed, c.Status, "candidate %s", c.Name)
		if i > 0 {
			assert.GreaterOrEqual(t, candidates[i-1].SkillMatch, c.SkillMatch)
		}
	}

	// Alex (React/JS/TS/CSS/HTML) outranks Jamie (backend stack) for a
	// frontend role.
	names := []string{candidates[0].Name, candidates[len(candidates)-1].Name}
	assert.Contains(t, names[0], "Alex")
	assert.Equal(t, "Jamie Smith", names[1])
}

func TestScreen_ScoresDependOnRole(t *testing.T) {
	s := NewScreener().WithDelay(0)

	frontend, err := s.Screen(context.Background(), "Frontend Developer")
	require.NoError(t, err)

	s.Reset()
	backend, err := s.Screen(context.Background(), "Backend Developer")
	require.NoError(t, err)

	var alexFrontend, alexBackend int
	for _, c := range frontend {
		if c.ID == "1" {
			alexFrontend = c.SkillMatch
		}
	}
	for _, c := range backend {
		if c.ID == "1" {
			alexBackend = c.SkillMatch
		}
	}
	assert.Greater(t, alexFrontend, alexBackend)
}

func TestScreen_ContextCancelsDelay(t *testing.T) {
	s := NewScreener().WithDelay(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.Screen(ctx, "Frontend Developer")
	assert.Error(t, err)
}

func TestSetStatus_Workflow(t *testing.T) {
	s := NewScreener().WithDelay(0)

	require.NoError(t, s.SetStatus("1", types.StatusInterview))
	require.NoError(t, s.SetStatus("2", types.StatusRejected))

	byID := map[string]types.Candidate{}
	for _, c := range s.Candidates() {
		byID[c.ID] = c
	}
	assert.Equal(t, types.StatusInterview, byID["1"].Status)
	assert.Equal(t, types.StatusRejected, byID["2"].Status)
	assert.Equal(t, types.StatusPending, byID["3"].Status)
}

func TestSetStatus_UnknownCandidate(t *testing.T) {
	s := NewScreener().WithDelay(0)
	assert.ErrorIs(t, s.SetStatus("999", types.StatusHired), ErrUnknownCandidate)
}

func TestReset_RestoresPendingPool(t *testing.T) {
	s := NewScreener().WithDelay(0)
	_, err := s.Screen(context.Background(), "Frontend Developer")
	require.NoError(t, err)

	s.Reset()
	for _, c := range s.Candidates() {
		assert.Equal(t, types.StatusPending, c.Status)
	}
}

func TestCandidates_ReturnsCopy(t *testing.T) {
	s := NewScreener().WithDelay(0)

	snapshot := s.Candidates()
	snapshot[0].Status = types.StatusHired

	assert.Equal(t, types.StatusPending, s.Candidates()[0].Status)
}
