package offer

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Tier is the pricing variant of an offer detail.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Tiers returns every tier in display order.
func Tiers() []Tier {
	return []Tier{TierBasic, TierStandard, TierPremium}
}

// ParseTier converts the "offer_type" field of a payload into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Tier) Validate() error {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return nil
	case "":
		return errs.NewValueIsRequiredError("offer_type")
	default:
		return errs.NewValueIsInvalidErrorWithCause("offer_type", fmt.Errorf("%q is not a valid tier", string(t)))
	}
}

func (t Tier) String() string {
	return string(t)
}

// rank orders details basic < standard < premium.
func (t Tier) rank() int {
	switch t {
	case TierBasic:
		return 0
	case TierStandard:
		return 1
	case TierPremium:
		return 2
	default:
		return 3
	}
}
