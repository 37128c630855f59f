package types

import (
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/samber/lo"
)

// PersonStatus represents where a person currently is in the onboarding
// lifecycle. The literal values are stored as-is and must be preserved
// verbatim for compatibility with existing records.
type PersonStatus string

const (
	PersonStatusCandidate PersonStatus = "candidate"
	PersonStatusInterview PersonStatus = "interview"
	PersonStatusNewHire   PersonStatus = "new-hire"
	PersonStatusEmployee  PersonStatus = "employee"
	PersonStatusInactive  PersonStatus = "inactive"
)

// personStatusTransitions is the single authoritative transition table.
// A direct candidate -> new-hire promotion is supported for candidates
// hired without a formal interview round. inactive is terminal; there is
// no reactivation path.
var personStatusTransitions = map[PersonStatus][]PersonStatus{
	PersonStatusCandidate: {PersonStatusInterview, PersonStatusNewHire},
	PersonStatusInterview: {PersonStatusNewHire},
	PersonStatusNewHire:   {PersonStatusEmployee},
	PersonStatusEmployee:  {PersonStatusInactive},
	PersonStatusInactive:  {},
}

// PersonStatuses lists every legal status value.
func PersonStatuses() []PersonStatus {
	return []PersonStatus{
		PersonStatusCandidate,
		PersonStatusInterview,
		PersonStatusNewHire,
		PersonStatusEmployee,
		PersonStatusInactive,
	}
}

func (s PersonStatus) String() string {
	return string(s)
}

func (s PersonStatus) Validate() error {
	if !lo.Contains(PersonStatuses(), s) {
		return ierr.NewError("invalid person status").
			WithHint("Please provide a valid person status").
			WithReportableDetails(map[string]any{
				"allowed": PersonStatuses(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CanTransitionTo reports whether the edge s -> target is in the
// transition table.
func (s PersonStatus) CanTransitionTo(target PersonStatus) bool {
	allowed, ok := personStatusTransitions[s]
	if !ok {
		return false
	}
	return lo.Contains(allowed, target)
}

// NextStatuses returns the statuses reachable from s in a single step.
func (s PersonStatus) NextStatuses() []PersonStatus {
	return personStatusTransitions[s]
}

// IsTerminal reports whether no further transitions are defined from s.
func (s PersonStatus) IsTerminal() bool {
	return len(personStatusTransitions[s]) == 0
}

// InactiveReason qualifies why a person was moved to inactive.
type InactiveReason string

const (
	InactiveReasonRenunciation InactiveReason = "renunciation"
	InactiveReasonTermination  InactiveReason = "termination"
	InactiveReasonOther        InactiveReason = "other"
)

func (r InactiveReason) String() string {
	return string(r)
}

func (r InactiveReason) Validate() error {
	allowed := []InactiveReason{
		InactiveReasonRenunciation,
		InactiveReasonTermination,
		InactiveReasonOther,
	}
	if !lo.Contains(allowed, r) {
		return ierr.NewError("invalid inactive reason").
			WithHint("Please provide a valid inactive reason").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
