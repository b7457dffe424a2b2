// Package order implements the Order aggregate: a customer's purchase of one
// offer tier, and the state machine its status follows.
//
// The package includes:
//   - Order: the aggregate root holding the parties, the snapshot and the status
//   - Snapshot: the copy of the ordered detail taken at creation time
//   - Status: in_progress, completed or cancelled
//
// Key business rules:
//   - A new order always starts in_progress
//   - in_progress may move to completed or cancelled; both are final
//   - A business user cannot order their own offer
//   - The snapshot never changes after creation, whatever happens to the offer
package order
