package message

import (
	"testing"

	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/stretchr/testify/assert"
)

func TestIsLocked(t *testing.T) {
	assert.True(t, IsLocked(proposal.StatusApplied))
	for _, s := range []proposal.Status{proposal.StatusViewed, proposal.StatusInterview, proposal.StatusHired} {
		assert.False(t, IsLocked(s), string(s))
	}
}
