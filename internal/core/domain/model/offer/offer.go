package offer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")
	ErrDetailsMustHaveThree  = errs.NewValueIsInvalidErrorWithCause(
		"details", errors.New("an offer must contain exactly 3 details: basic, standard and premium"))
	// ErrOfferHasOrders is returned when deleting an offer some order still points at.
	ErrOfferHasOrders = errs.NewValueIsInvalidErrorWithCause(
		"offer", errors.New("offer has orders and cannot be deleted"))
)

// Offer is the aggregate root of a published service.
//
// Invariants:
//   - exactly three details, one per tier, kept in basic, standard, premium order
//   - owner never changes
type Offer struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	title       string
	description string
	image       *string
	details     []*Detail
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewOffer publishes an offer for ownerID. Detail ids are generated here.
func NewOffer(
	id kernel.UUID,
	ownerID kernel.UUID,
	title string,
	description string,
	image *string,
	specs []DetailSpec,
) (*Offer, error) {
	now := time.Now().UTC()
	o := &Offer{
		image:     cloneString(image),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	details, detailsErr := buildDetails(specs)

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setTitle(title),
		o.setDescription(description),
		detailsErr,
	); err != nil {
		return nil, err
	}

	o.details = details
	return o, nil
}

func buildDetails(specs []DetailSpec) ([]*Detail, error) {
	tiers := make([]Tier, 0, len(specs))
	for _, s := range specs {
		tiers = append(tiers, s.Tier)
	}
	if err := validateTierSet(tiers); err != nil {
		return nil, err
	}

	var errList []error
	details := make([]*Detail, 0, len(specs))
	for _, s := range specs {
		d, err := newDetail(kernel.NewUUID(), s)
		if err != nil {
			errList = append(errList, fmt.Errorf("details[%s]: %w", s.Tier, err))
			continue
		}
		details = append(details, d)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	sortDetails(details)
	return details, nil
}

// OfferState is the persisted form of an offer used by RestoreOffer.
type OfferState struct {
	ID          kernel.UUID
	OwnerID     kernel.UUID
	Title       string
	Description string
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreOffer rebuilds a persisted offer. The three-tier invariant is checked
// again so a damaged row never yields a usable aggregate.
func RestoreOffer(state OfferState, details []*Detail) (*Offer, error) {
	tiers := make([]Tier, 0, len(details))
	for _, d := range details {
		if d == nil {
			return nil, ErrDetailsMustHaveThree
		}
		tiers = append(tiers, d.tier)
	}

	o := &Offer{
		image:     cloneString(state.Image),
		details:   slices.Clone(details),
		createdAt: state.CreatedAt,
		updatedAt: state.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateTierSet(tiers),
		o.setID(state.ID),
		o.setOwnerID(state.OwnerID),
		o.setTitle(state.Title),
		o.setDescription(state.Description),
	); err != nil {
		return nil, err
	}

	sortDetails(o.details)
	return o, nil
}

// Validate ensures the offer was built by NewOffer or RestoreOffer.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) ID() kernel.UUID {
	return o.id
}

func (o *Offer) OwnerID() kernel.UUID {
	return o.ownerID
}

func (o *Offer) Title() string {
	return o.title
}

func (o *Offer) Description() string {
	return o.description
}

func (o *Offer) Image() *string {
	return cloneString(o.image)
}

func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Offer) UpdatedAt() time.Time {
	return o.updatedAt
}

// Details returns the details in tier order.
func (o *Offer) Details() []*Detail {
	return slices.Clone(o.details)
}

// Detail returns the detail of the given tier.
func (o *Offer) Detail(tier Tier) (*Detail, bool) {
	for _, d := range o.details {
		if d.tier == tier {
			return d, true
		}
	}
	return nil, false
}

// DetailByID returns the detail with the given id.
func (o *Offer) DetailByID(id kernel.UUID) (*Detail, bool) {
	for _, d := range o.details {
		if d.id.IsEqual(id) {
			return d, true
		}
	}
	return nil, false
}

func (o *Offer) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// MinPrice is the lowest price across the details.
func (o *Offer) MinPrice() kernel.Price {
	lowest := o.details[0].price
	for _, d := range o.details[1:] {
		if d.price.LessThan(lowest) {
			lowest = d.price
		}
	}
	return lowest
}

// MinDeliveryDays is the shortest delivery time across the details.
func (o *Offer) MinDeliveryDays() int {
	lowest := o.details[0].deliveryDays
	for _, d := range o.details[1:] {
		lowest = min(lowest, d.deliveryDays)
	}
	return lowest
}

// Patch is a partial update of an offer. Nil fields are left alone; an empty
// Image clears the image reference.
type Patch struct {
	Title       *string
	Description *string
	Image       *string
	Details     []DetailPatch
}

// Update applies patch atomically: either every change is applied or none is.
func (o *Offer) Update(patch Patch) error {
	staged := *o

	var errList []error
	if patch.Title != nil {
		errList = append(errList, staged.setTitle(*patch.Title))
	}
	if patch.Description != nil {
		errList = append(errList, staged.setDescription(*patch.Description))
	}
	if patch.Image != nil {
		if *patch.Image == "" {
			staged.image = nil
		} else {
			staged.image = cloneString(patch.Image)
		}
	}

	details, detailsErr := o.patchedDetails(patch.Details)
	errList = append(errList, detailsErr)

	if err := errors.Join(errList...); err != nil {
		return err
	}

	staged.details = details
	staged.updatedAt = time.Now().UTC()
	*o = staged
	return nil
}

func (o *Offer) patchedDetails(patches []DetailPatch) ([]*Detail, error) {
	details := make([]*Detail, len(o.details))
	for i, d := range o.details {
		details[i] = d.clone()
	}

	seen := make(map[Tier]struct{}, len(patches))
	var errList []error
	for _, p := range patches {
		if err := p.Tier.Validate(); err != nil {
			errList = append(errList, fieldOfDetails(err))
			continue
		}
		if _, dup := seen[p.Tier]; dup {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"details", fmt.Errorf("tier %q is patched more than once", p.Tier)))
			continue
		}
		seen[p.Tier] = struct{}{}

		idx := slices.IndexFunc(details, func(d *Detail) bool { return d.tier == p.Tier })
		if idx < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"details", fmt.Errorf("offer has no %q detail", p.Tier)))
			continue
		}
		if err := details[idx].apply(p); err != nil {
			errList = append(errList, fmt.Errorf("details[%s]: %w", p.Tier, err))
		}
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return details, nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("business_user", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Offer) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title", len(title), 1, maxTitleLength)
	}
	o.title = title
	return nil
}

func (o *Offer) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func validateTierSet(tiers []Tier) error {
	if len(tiers) != len(Tiers()) {
		return ErrDetailsMustHaveThree
	}
	seen := make(map[Tier]struct{}, len(tiers))
	for _, t := range tiers {
		if err := t.Validate(); err != nil {
			return fieldOfDetails(err)
		}
		if _, dup := seen[t]; dup {
			return ErrDetailsMustHaveThree
		}
		seen[t] = struct{}{}
	}
	return nil
}

// fieldOfDetails re-keys a tier error onto the details field.
func fieldOfDetails(err error) error {
	return errs.NewValueIsInvalidErrorWithCause("details", err)
}

func sortDetails(details []*Detail) {
	slices.SortFunc(details, func(a, b *Detail) int {
		return a.tier.rank() - b.tier.rank()
	})
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
