// Package kernel provides the value objects shared by every aggregate of the
// marketplace domain.
//
// The package includes:
//   - UUID: identifier of users, offers, offer details, orders and reviews
//   - Price: a non-negative monetary amount with at most two fractional digits
//
// Values are immutable and safe for concurrent use.
package kernel
