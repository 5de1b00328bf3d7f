// Package commands contains the write operations of the escrow workflow.
// Implements the Command pattern for the CQRS split: every lifecycle
// transition is a validated command value object plus a handler.
//
// All handlers follow the same shape, in this order:
//  1. validate the command (constructor guard and field checks)
//  2. authorize the caller's role attributes before any storage access,
//     so an unauthorized caller cannot distinguish a missing order from an
//     order in the wrong state
//  3. read the current record, apply the domain transition, write back
//  4. publish the order-changed event
//
// Each operation is a single read-validate-write unit against the ledger;
// per-key write serialization is the ledger's contract, and a handler that
// loses a write race can simply be re-executed from scratch.
package commands

import "time"

// Clock supplies the invocation-time wall clock for deadline comparison.
// Injected so tests and the expiry job control time explicitly.
type Clock func() time.Time
