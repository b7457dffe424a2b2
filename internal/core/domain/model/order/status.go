package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	InProgress ──┬──> Completed
//	             └──> Cancelled
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	InProgress
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	InProgress: "in_progress",
	Completed:  "completed",
	Cancelled:  "cancelled",
}

// transitions lists, per status, the statuses it may move to.
var transitions = map[Status][]Status{
	InProgress: {Completed, Cancelled},
}

// ParseStatus converts the wire form ("in_progress", ...) into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	if s == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsFinal reports whether no transition leaves s.
func (s Status) IsFinal() bool {
	return len(transitions[s]) == 0
}

// TransitionTo returns next if the state machine allows s -> next.
func (s Status) TransitionTo(next Status) (Status, error) {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot change status from %s to %s", s, next),
	)
}
