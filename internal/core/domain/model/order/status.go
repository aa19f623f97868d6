package order

import (
	"fmt"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/pkg/errs"
)

// Status represents the fulfillment state of a single order item.
//
// Intended fulfillment sequence:
//
//	new ──> assigned ──> in_production ──> ready ──┬──> out_for_delivery ──> delivered
//	                                               └──> picked_up
//
// Side branches: on_hold is re-enterable from any non-terminal state;
// canceled is reachable from any non-terminal state.
// delivered, picked_up, and canceled are terminal: no transition leaves them.
//
// Statuses are validated as a flat per-role permission set, not a
// transition graph: a role may set an item to any status in its allowed
// set as long as the item is not already terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of every item at intake.
	// Items in this status have no printshop assigned.
	New

	// Assigned indicates the item has a printshop assigned but
	// production has not started.
	Assigned

	// InProduction indicates the printshop is producing the item.
	// The first transition into this status stamps the production start date.
	InProduction

	// Ready indicates production finished and the item awaits handover.
	// The first transition into this status stamps the production ready date.
	Ready

	// OutForDelivery indicates a driver took the item for delivery.
	OutForDelivery

	// PickedUp indicates the customer collected the item. Terminal.
	PickedUp

	// Delivered indicates the driver delivered the item. Terminal.
	Delivered

	// OnHold pauses fulfillment; re-enterable from any non-terminal state.
	OnHold

	// Canceled aborts fulfillment. Terminal.
	Canceled
)

// statusMeta centralizes the per-status lookup data (wire name, display
// label, fulfillment ordering rank) that the original system scattered
// across presentation components.
type statusMeta struct {
	name  string
	label string
	rank  int
}

func getStatusMeta() map[Status]statusMeta {
	return map[Status]statusMeta{
		Unknown:        {name: "unknown", label: "Unknown", rank: -1},
		New:            {name: "new", label: "New", rank: 0},
		Assigned:       {name: "assigned", label: "Assigned", rank: 1},
		InProduction:   {name: "in_production", label: "In production", rank: 2},
		Ready:          {name: "ready", label: "Ready", rank: 3},
		OutForDelivery: {name: "out_for_delivery", label: "Out for delivery", rank: 4},
		PickedUp:       {name: "picked_up", label: "Picked up", rank: 5},
		Delivered:      {name: "delivered", label: "Delivered", rank: 5},
		OnHold:         {name: "on_hold", label: "On hold", rank: 2},
		Canceled:       {name: "canceled", label: "Canceled", rank: 6},
	}
}

// getValidStatuses returns only the statuses an item may actually hold.
func getValidStatuses() map[Status]statusMeta {
	meta := getStatusMeta()
	delete(meta, Unknown)
	return meta
}

// getRoleAllowedStatuses returns the flat permission set per role: the
// statuses a role may set an item to. This is deliberately not a
// transition graph (see Status).
func getRoleAllowedStatuses() map[actor.Role][]Status {
	return map[actor.Role][]Status{
		actor.Manager: {
			New, Assigned, InProduction, Ready, OutForDelivery, PickedUp, Delivered, OnHold, Canceled,
		},
		actor.PrintshopManager: {
			InProduction, OnHold, Ready, PickedUp, Canceled,
		},
		actor.Driver: {
			OutForDelivery, Delivered, OnHold, Canceled,
		},
	}
}

// StatusFromString parses a status wire name such as "in_production".
func StatusFromString(s string) (Status, error) {
	for status, meta := range getValidStatuses() {
		if meta.name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status (e.g. "out_for_delivery").
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if meta, ok := getStatusMeta()[s]; ok {
		return meta.name
	}
	return "unknown"
}

// Label returns the human-readable display label (e.g. "Out for delivery").
func (s Status) Label() string {
	if meta, ok := getStatusMeta()[s]; ok {
		return meta.label
	}
	return "Unknown"
}

// Rank returns the position of the status in the intended fulfillment
// sequence. OnHold shares the production rank; Delivered and PickedUp share
// the final fulfillment rank. Used by presentation consumers for ordering
// kanban columns, never for permission checks.
func (s Status) Rank() int {
	if meta, ok := getStatusMeta()[s]; ok {
		return meta.rank
	}
	return -1
}

// IsTerminal reports whether the status permits no further transitions.
// The terminal set is {delivered, picked_up, canceled}.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == PickedUp || s == Canceled
}

// CanSetStatus reports whether the role's flat permission set contains the
// given status. It does not consider the item's current status; combine
// with ValidateTransition for the full check.
func CanSetStatus(role actor.Role, status Status) bool {
	for _, allowed := range getRoleAllowedStatuses()[role] {
		if allowed == status {
			return true
		}
	}
	return false
}

// ValidateTransition checks whether the role may move an item from the
// current status to the requested one.
//
// Returns:
//   - nil when the transition is legal
//   - *errs.TerminalStateError when current is terminal
//   - *errs.ForbiddenError when the role's permission set lacks the
//     requested status
//
// Requesting the current status again is not a transition; callers treat
// it as an idempotent no-op before consulting this function.
func ValidateTransition(current, requested Status, role actor.Role) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	if current.IsTerminal() {
		return errs.NewTerminalStateError("", current.String())
	}
	if !CanSetStatus(role, requested) {
		return errs.NewForbiddenError(role.String(), requested.String())
	}
	return nil
}
