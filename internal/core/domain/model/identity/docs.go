// Package identity models marketplace users, their profiles and the per-request actor.
//
// The package includes:
//   - User: the account, always created together with exactly one Profile
//   - Profile: role (customer or business) and contact metadata
//   - Actor: who is performing the current action, possibly anonymous
//
// Key business rules:
//   - NewUser is the only way to create an account and it always builds the profile,
//     so a persisted user without a profile cannot be produced
//   - A profile's role never changes after registration
//   - An actor whose role cannot be determined has RoleNone and is denied every
//     role-gated action
package identity
