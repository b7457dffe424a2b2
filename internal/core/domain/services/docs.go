// Package services provides domain services that decide across aggregates.
//
// The package includes:
//   - Authorizer: the access rules of the marketplace as a table of pure
//     predicates, evaluated first per action and then per loaded object
//
// Key rules:
//   - Anonymous actors get AuthenticationRequired on every gated action
//   - Authenticated actors failing a rule get Forbidden
//   - Unknown (resource, action) pairs and unexpected objects are denied
package services
