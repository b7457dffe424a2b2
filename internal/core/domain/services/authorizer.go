package services

import (
	"fmt"
	"slices"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"
)

type Resource string

const (
	ResourceOffer       Resource = "offer"
	ResourceOfferDetail Resource = "offer_detail"
	ResourceOrder       Resource = "order"
	ResourceOrderCount  Resource = "order_count"
	ResourceReview      Resource = "review"
	ResourceProfile     Resource = "profile"
	ResourceBaseInfo    Resource = "base_info"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

type rule struct {
	resource Resource
	action   Action
}

func (r rule) String() string {
	return fmt.Sprintf("%s.%s", r.resource, r.action)
}

// policy is an action-level rule. allow is nil when any actor passing the
// authentication requirement is let through.
type policy struct {
	authenticated bool
	allow         func(identity.Actor) bool
	reason        string
}

// objectPolicy is an object-level rule over an already loaded object.
type objectPolicy func(actor identity.Actor, object any) bool

var (
	public       = policy{}
	signedIn     = policy{authenticated: true}
	businessOnly = policy{
		authenticated: true,
		allow:         func(a identity.Actor) bool { return a.HasRole(identity.RoleBusiness) },
		reason:        "only business users can do this",
	}
	customerOnly = policy{
		authenticated: true,
		allow:         func(a identity.Actor) bool { return a.HasRole(identity.RoleCustomer) },
		reason:        "only customer users can do this",
	}
	staffOnly = policy{
		authenticated: true,
		allow:         func(a identity.Actor) bool { return a.IsStaff() },
		reason:        "only staff can do this",
	}
)

var actionRules = map[rule]policy{
	{ResourceOffer, ActionList}:     public,
	{ResourceOffer, ActionRetrieve}: public,
	{ResourceOffer, ActionCreate}:   businessOnly,
	{ResourceOffer, ActionUpdate}:   signedIn,
	{ResourceOffer, ActionDelete}:   signedIn,

	{ResourceOfferDetail, ActionRetrieve}: public,

	{ResourceOrder, ActionList}:     signedIn,
	{ResourceOrder, ActionRetrieve}: signedIn,
	{ResourceOrder, ActionCreate}:   customerOnly,
	{ResourceOrder, ActionUpdate}:   businessOnly,
	{ResourceOrder, ActionDelete}:   staffOnly,

	{ResourceOrderCount, ActionRetrieve}: public,

	{ResourceReview, ActionList}:     public,
	{ResourceReview, ActionRetrieve}: public,
	{ResourceReview, ActionCreate}:   customerOnly,
	{ResourceReview, ActionUpdate}:   signedIn,
	{ResourceReview, ActionDelete}:   signedIn,

	{ResourceProfile, ActionList}:     signedIn,
	{ResourceProfile, ActionRetrieve}: signedIn,
	{ResourceProfile, ActionUpdate}:   signedIn,

	{ResourceBaseInfo, ActionRetrieve}: public,
}

var (
	offerOwner = ownedBy("you are not the owner of this offer",
		func(o *offer.Offer) []kernel.UUID { return []kernel.UUID{o.OwnerID()} })
	orderParty = ownedBy("you are not a party of this order",
		func(o *order.Order) []kernel.UUID { return []kernel.UUID{o.CustomerID(), o.BusinessID()} })
	orderBusiness = ownedBy("you are not the business user of this order",
		func(o *order.Order) []kernel.UUID { return []kernel.UUID{o.BusinessID()} })
	reviewAuthor = ownedBy("you are not the author of this review",
		func(r *review.Review) []kernel.UUID { return []kernel.UUID{r.ReviewerID()} })
	profileOwner = ownedBy("you can only edit your own profile",
		func(u *identity.User) []kernel.UUID { return []kernel.UUID{u.ID()} })
)

type objectRule struct {
	check  objectPolicy
	reason string
}

var objectRules = map[rule]objectRule{
	{ResourceOffer, ActionUpdate}:   offerOwner,
	{ResourceOffer, ActionDelete}:   offerOwner,
	{ResourceOrder, ActionRetrieve}: orderParty,
	{ResourceOrder, ActionUpdate}:   orderBusiness,
	{ResourceReview, ActionUpdate}:  reviewAuthor,
	{ResourceReview, ActionDelete}:  reviewAuthor,
	{ResourceProfile, ActionUpdate}: profileOwner,
}

// ownedBy builds an object rule passing when the actor is one of the ids
// owners returns. Objects of another type never pass.
func ownedBy[T any](reason string, owners func(T) []kernel.UUID) objectRule {
	return objectRule{
		reason: reason,
		check: func(actor identity.Actor, object any) bool {
			v, ok := object.(T)
			if !ok {
				return false
			}
			return slices.ContainsFunc(owners(v), actor.Is)
		},
	}
}

// Authorizer evaluates the access rules. It holds no state.
//
// Example usage:
//
//	authz := services.NewAuthorizer()
//	if err := authz.Authorize(actor, services.ResourceOffer, services.ActionUpdate); err != nil {
//	    return err
//	}
//	// load the offer FOR UPDATE, then
//	if err := authz.AuthorizeObject(actor, services.ResourceOffer, services.ActionUpdate, o); err != nil {
//	    return err
//	}
type Authorizer struct{}

func NewAuthorizer() Authorizer {
	return Authorizer{}
}

// Authorize runs the action-level check. It never looks at an object.
func (Authorizer) Authorize(actor identity.Actor, resource Resource, action Action) error {
	r := rule{resource, action}
	p, ok := actionRules[r]
	if !ok {
		return errs.NewForbiddenError(r.String(), "action is not allowed")
	}
	if p.authenticated && !actor.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError(r.String())
	}
	if p.allow != nil && !p.allow(actor) {
		return errs.NewForbiddenError(r.String(), p.reason)
	}
	return nil
}

// AuthorizeObject runs the object-level check against a loaded object.
// Pairs without an object rule pass.
func (Authorizer) AuthorizeObject(actor identity.Actor, resource Resource, action Action, object any) error {
	r := rule{resource, action}
	o, ok := objectRules[r]
	if !ok {
		return nil
	}
	if !actor.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError(r.String())
	}
	if !o.check(actor, object) {
		return errs.NewForbiddenError(r.String(), o.reason)
	}
	return nil
}
