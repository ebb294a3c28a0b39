package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as observed by the
// kitchen and cashier views. It implements the forward-only state machine
// shared by both roles:
//
//	Pending ──> Confirmed ──> Cooking ──> Ready ──> Completed
//
// Cancelled is an absorbing terminal state reachable from any non-completed
// state, but cancellation is an external event: the machine only exposes the
// forward path through Next, never a transition into Cancelled.
//
// Status is a value object. Next is a pure lookup; committing a transition is
// the caller's job, performed through the order API, after which the local
// order list must be treated as stale until refreshed.
type Status int

const (
	// StatusUnknown represents a status tag the client does not recognize.
	// The zero value doubles as the fallback for forward-compatibility with
	// new server-side statuses.
	StatusUnknown Status = iota

	// StatusPending is the initial state of orders arriving through delivery
	// channels, awaiting explicit acceptance by the kitchen.
	StatusPending

	// StatusConfirmed is the initial state of in-house orders and the state
	// of accepted delivery orders, queued for the kitchen.
	StatusConfirmed

	// StatusCooking indicates the kitchen is preparing the order.
	StatusCooking

	// StatusReady indicates the order is ready for pickup or handover.
	StatusReady

	// StatusCompleted is a terminal state: the order has been handed over.
	StatusCompleted

	// StatusCancelled is a terminal state set externally at any point before
	// completion.
	StatusCancelled
)

// statusTags maps each status to its wire representation used by the order
// API. Unknown has no wire form.
func statusTags() map[Status]string {
	return map[Status]string{
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusCooking:   "cooking",
		StatusReady:     "ready",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

func statusLabels() map[Status]string {
	return map[Status]string{
		StatusPending:   "Pending",
		StatusConfirmed: "New",
		StatusCooking:   "Cooking",
		StatusReady:     "Ready",
		StatusCompleted: "Done",
		StatusCancelled: "Cancelled",
	}
}

func statusColors() map[Status]string {
	return map[Status]string{
		StatusPending:   "#8B5CF6",
		StatusConfirmed: "#3B82F6",
		StatusCooking:   "#F59E0B",
		StatusReady:     "#10B981",
		StatusCompleted: "#6B7280",
		StatusCancelled: "#EF4444",
	}
}

// StatusFromString maps a wire tag to its Status. Unrecognized tags fall back
// to StatusUnknown without error so that new server-side statuses never crash
// an outdated client; callers decoding API payloads log the fallback.
func StatusFromString(tag string) Status {
	for status, t := range statusTags() {
		if t == tag {
			return status
		}
	}
	return StatusUnknown
}

// String returns the wire tag of the status ("pending", "cooking", ...).
// StatusUnknown renders as "unknown", which is never sent to the order API.
func (s Status) String() string {
	if tag, ok := statusTags()[s]; ok {
		return tag
	}
	return "unknown"
}

// Label returns the short display name shown on the kitchen board.
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// Color returns the hex display color associated with the status.
func (s Status) Color() string {
	if color, ok := statusColors()[s]; ok {
		return color
	}
	return "#666"
}

// Validate returns nil for the six known statuses and an error for
// StatusUnknown or any out-of-range value.
func (s Status) Validate() error {
	if _, ok := statusTags()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// Next returns the single allowed forward transition from the current
// status. The second return value is false for terminal states (Completed,
// Cancelled) and for Unknown, where no transition is offered.
//
// Next never mutates anything; skipping states is not expressible through
// this machine by construction.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusConfirmed, true
	case StatusConfirmed:
		return StatusCooking, true
	case StatusCooking:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	default:
		return StatusUnknown, false
	}
}

// IsTerminal reports whether no further transitions exist for the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
