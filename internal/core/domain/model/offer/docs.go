// Package offer implements the Offer aggregate: a service published by a
// business user together with its three pricing tiers.
//
// The package includes:
//   - Offer: the aggregate root (title, description, optional image, owner)
//   - Detail: one pricing tier of an offer
//   - Tier: basic, standard or premium
//
// Key business rules:
//   - An offer always has exactly three details whose tiers are exactly
//     basic, standard and premium; creation, restoration and update all enforce it
//   - Details are patched by tier key; a patch never adds or removes a tier
//   - A failed update leaves the aggregate untouched
//   - The minimum price and minimum delivery time are derived, never stored
package offer
