package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_Active(t *testing.T) {
	assert.False(t, SessionIdle.Active())
	assert.False(t, SessionState("").Active())
	for _, s := range []SessionState{SessionCapturing, SessionIdentifying, SessionPendingResult, SessionCommitted, SessionDiscarded} {
		assert.True(t, s.Active(), s)
	}
}
