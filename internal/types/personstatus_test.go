package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonStatusValidate(t *testing.T) {
	for _, status := range PersonStatuses() {
		assert.NoError(t, status.Validate(), "status %s should be valid", status)
	}

	for _, status := range []PersonStatus{"", "fired", "Candidate", "new_hire"} {
		assert.Error(t, status.Validate(), "status %q should be invalid", status)
	}
}

func TestPersonStatusTransitionTable(t *testing.T) {
	allowed := map[PersonStatus][]PersonStatus{
		PersonStatusCandidate: {PersonStatusInterview, PersonStatusNewHire},
		PersonStatusInterview: {PersonStatusNewHire},
		PersonStatusNewHire:   {PersonStatusEmployee},
		PersonStatusEmployee:  {PersonStatusInactive},
		PersonStatusInactive:  {},
	}

	for _, from := range PersonStatuses() {
		for _, to := range PersonStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPersonStatusUnknownNeverTransitions(t *testing.T) {
	unknown := PersonStatus("archived")
	for _, to := range PersonStatuses() {
		assert.False(t, unknown.CanTransitionTo(to))
	}
	assert.False(t, PersonStatusCandidate.CanTransitionTo(unknown))
}

func TestPersonStatusIsTerminal(t *testing.T) {
	assert.True(t, PersonStatusInactive.IsTerminal())
	for _, status := range []PersonStatus{
		PersonStatusCandidate,
		PersonStatusInterview,
		PersonStatusNewHire,
		PersonStatusEmployee,
	} {
		assert.False(t, status.IsTerminal(), "status %s should not be terminal", status)
	}
}

func TestPersonStatusNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]PersonStatus{PersonStatusInterview, PersonStatusNewHire},
		PersonStatusCandidate.NextStatuses())
	assert.Empty(t, PersonStatusInactive.NextStatuses())
}

func TestInactiveReasonValidate(t *testing.T) {
	for _, reason := range []InactiveReason{
		InactiveReasonRenunciation,
		InactiveReasonTermination,
		InactiveReasonOther,
	} {
		assert.NoError(t, reason.Validate())
	}

	assert.Error(t, InactiveReason("").Validate())
	assert.Error(t, InactiveReason("fired").Validate())
}
