// Package order provides the domain entity and state machine for the
// trade-finance escrow workflow. It implements the Order aggregate root
// with lifecycle management and role-independent transition rules.
//
// The package includes:
//   - Order: the aggregate root holding the traded good, pricing, shipping
//     data, tracking code, and the two arrival signatures
//   - State: a strictly ordered state machine enforcing valid transitions
//
// Key business rules:
//   - The price is never below the shipping costs
//   - Order state follows Created -> Confirmed -> Shipped -> Delivered,
//     with Cancelled reachable before shipment and Passed reachable from
//     any state before delivery closure
//   - Delivery closes only after both the buyer and the freight carrier
//     sign the arrival, in either call order
//   - Terminal records are never deleted; they remain for audit
//
// Who may perform each transition is not decided here: role checks belong
// to the application layer, which runs them before touching storage.
package order
