package proposal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdvance(t *testing.T) {
	assert.True(t, CanAdvance(StatusApplied, StatusViewed))
	assert.True(t, CanAdvance(StatusViewed, StatusInterview))
	assert.True(t, CanAdvance(StatusInterview, StatusHired))

	assert.False(t, CanAdvance(StatusApplied, StatusInterview), "skipping a stage")
	assert.False(t, CanAdvance(StatusApplied, StatusHired), "skipping to hired")
	assert.False(t, CanAdvance(StatusInterview, StatusViewed), "moving backwards")
	assert.False(t, CanAdvance(StatusViewed, StatusViewed), "same stage")
	assert.False(t, CanAdvance(StatusHired, StatusHired), "terminal")
	assert.False(t, CanAdvance(StatusInterview, Status("final_call")), "unknown target")
}

func TestRank(t *testing.T) {
	prev := -1
	for _, s := range []Status{StatusApplied, StatusViewed, StatusInterview, StatusHired} {
		assert.Greater(t, s.Rank(), prev)
		prev = s.Rank()
	}
	assert.Equal(t, -1, Status("rejected").Rank())
	assert.True(t, StatusHired.Terminal())
	assert.False(t, StatusInterview.Terminal())
}
