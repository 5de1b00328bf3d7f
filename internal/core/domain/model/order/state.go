package order

import (
	"fmt"

	"tradefinance/internal/pkg/errs"
)

// State represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions so that orders
// follow the escrow workflow: no money or goods release without the
// preceding confirmations.
//
// State transitions:
//
//	Created ──> Confirmed ──> Shipped ──> Delivered
//	   │            │            │
//	   │            │            └──────> Passed   (deadline expired)
//	   ├────────────┴──────────────────> Cancelled
//	   └───────────────────────────────> Passed
//
// Delivered, Cancelled, and Passed are terminal. The numeric ordering of
// the states is load-bearing: ReachedDelivery compares ordinals, so the
// constants must not be reordered.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Created is the initial state after the seller registers the order.
	Created

	// Confirmed means the buyer has accepted the order terms.
	Confirmed

	// Shipped means the seller has handed the goods to the carrier and
	// recorded a tracking code.
	Shipped

	// Delivered means both the buyer and the freight carrier have signed
	// the arrival. Terminal.
	Delivered

	// Cancelled means a party withdrew the order before shipment. Terminal.
	Cancelled

	// Passed means the latest delivery date elapsed before delivery
	// closure. Terminal.
	Passed
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Passed:    "Passed",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Created:   "Created",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Passed:    "Passed",
	}
}

// Validate checks if the State value is one of the six workflow states.
// Unknown (0) and any other values are invalid. Used when rehydrating
// records from storage.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the state has no outgoing transitions.
func (s State) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Passed
}

// ReachedDelivery reports whether the order progressed to Delivered or to a
// terminal state beyond it in ordinal terms (Cancelled, Passed). Used for
// deadline-check eligibility: an order that already closed, one way or the
// other, cannot expire anymore.
func (s State) ReachedDelivery() bool {
	return s >= Delivered
}

// Confirm transitions the state to Confirmed.
//
// Valid transitions:
//   - Created -> Confirmed
func (s State) Confirm() (State, error) {
	if s != Created {
		return Unknown, errs.NewStateIsInvalidError("confirm", s.String())
	}
	return Confirmed, nil
}

// Ship transitions the state to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
func (s State) Ship() (State, error) {
	if s != Confirmed {
		return Unknown, errs.NewStateIsInvalidError("ship", s.String())
	}
	return Shipped, nil
}

// Deliver transitions the state to Delivered. The aggregate invokes this
// only once both arrival signatures are present.
//
// Valid transitions:
//   - Shipped -> Delivered
func (s State) Deliver() (State, error) {
	if s != Shipped {
		return Unknown, errs.NewStateIsInvalidError("deliver", s.String())
	}
	return Delivered, nil
}

// Cancel transitions the state to Cancelled. Only pre-shipment orders are
// cancellable: once goods are in transit the deadline mechanism is the only
// escape hatch.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Confirmed -> Cancelled
func (s State) Cancel() (State, error) {
	if s != Created && s != Confirmed {
		return Unknown, errs.NewStateIsInvalidError("cancel", s.String())
	}
	return Cancelled, nil
}

// Pass transitions the state to Passed after deadline expiry.
//
// Valid transitions: any state strictly before Delivered in ordinal terms
// (Created, Confirmed, Shipped).
func (s State) Pass() (State, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.ReachedDelivery() {
		return Unknown, errs.NewStateIsInvalidError("pass deadline", s.String())
	}
	return Passed, nil
}
