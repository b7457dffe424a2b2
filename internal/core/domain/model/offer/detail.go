package offer

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	maxTitleLength   = 255
	maxFeatureLength = 100
)

// Detail is one pricing tier of an offer. It is only reachable through its Offer.
type Detail struct {
	id           kernel.UUID
	tier         Tier
	title        string
	revisions    int
	deliveryDays int
	price        kernel.Price
	features     []string
}

// DetailSpec describes a detail to create or restore.
type DetailSpec struct {
	Tier         Tier
	Title        string
	Revisions    int
	DeliveryDays int
	Price        kernel.Price
	Features     []string
}

// DetailPatch changes the detail identified by Tier. Nil fields are left alone.
type DetailPatch struct {
	Tier         Tier
	Title        *string
	Revisions    *int
	DeliveryDays *int
	Price        *kernel.Price
	Features     *[]string
}

func newDetail(id kernel.UUID, spec DetailSpec) (*Detail, error) {
	d := &Detail{}
	if err := errors.Join(
		d.setID(id),
		d.setTier(spec.Tier),
		d.setTitle(spec.Title),
		d.setRevisions(spec.Revisions),
		d.setDeliveryDays(spec.DeliveryDays),
		d.setFeatures(spec.Features),
	); err != nil {
		return nil, err
	}
	d.price = spec.Price
	return d, nil
}

// RestoreDetail rebuilds a persisted detail.
func RestoreDetail(id kernel.UUID, spec DetailSpec) (*Detail, error) {
	return newDetail(id, spec)
}

func (d *Detail) ID() kernel.UUID {
	return d.id
}

func (d *Detail) Tier() Tier {
	return d.tier
}

func (d *Detail) Title() string {
	return d.title
}

func (d *Detail) Revisions() int {
	return d.revisions
}

func (d *Detail) DeliveryDays() int {
	return d.deliveryDays
}

func (d *Detail) Price() kernel.Price {
	return d.price
}

// Features returns a copy of the ordered feature list.
func (d *Detail) Features() []string {
	return slices.Clone(d.features)
}

func (d *Detail) clone() *Detail {
	c := *d
	c.features = slices.Clone(d.features)
	return &c
}

// apply patches a detail in place. Callers work on a clone.
func (d *Detail) apply(patch DetailPatch) error {
	var errList []error
	if patch.Title != nil {
		errList = append(errList, d.setTitle(*patch.Title))
	}
	if patch.Revisions != nil {
		errList = append(errList, d.setRevisions(*patch.Revisions))
	}
	if patch.DeliveryDays != nil {
		errList = append(errList, d.setDeliveryDays(*patch.DeliveryDays))
	}
	if patch.Features != nil {
		errList = append(errList, d.setFeatures(*patch.Features))
	}
	if patch.Price != nil {
		d.price = *patch.Price
	}
	return errors.Join(errList...)
}

func (d *Detail) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Detail) setTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	d.tier = tier
	return nil
}

func (d *Detail) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title", len(title), 1, maxTitleLength)
	}
	d.title = title
	return nil
}

func (d *Detail) setRevisions(revisions int) error {
	if revisions < 0 {
		return errs.NewValueIsOutOfRangeError("revisions", revisions, 0, "unbounded")
	}
	d.revisions = revisions
	return nil
}

func (d *Detail) setDeliveryDays(days int) error {
	if days < 1 {
		return errs.NewValueIsOutOfRangeError("delivery_time_in_days", days, 1, "unbounded")
	}
	d.deliveryDays = days
	return nil
}

func (d *Detail) setFeatures(features []string) error {
	cleaned := make([]string, 0, len(features))
	for i, f := range features {
		f = strings.TrimSpace(f)
		if f == "" {
			return errs.NewValueIsRequiredErrorWithCause("features", fmt.Errorf("feature %d is empty", i))
		}
		if len(f) > maxFeatureLength {
			return errs.NewValueIsOutOfRangeError("features", len(f), 1, maxFeatureLength)
		}
		cleaned = append(cleaned, f)
	}
	d.features = cleaned
	return nil
}
