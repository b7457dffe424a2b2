package order

import (
	"slices"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
)

// Snapshot is the ordered detail as it was when the order was placed.
type Snapshot struct {
	Title        string
	Revisions    int
	DeliveryDays int
	Price        kernel.Price
	Features     []string
	Tier         offer.Tier
}

// SnapshotOf copies the current values of d.
func SnapshotOf(d *offer.Detail) Snapshot {
	return Snapshot{
		Title:        d.Title(),
		Revisions:    d.Revisions(),
		DeliveryDays: d.DeliveryDays(),
		Price:        d.Price(),
		Features:     d.Features(),
		Tier:         d.Tier(),
	}
}

func (s Snapshot) clone() Snapshot {
	s.Features = slices.Clone(s.Features)
	return s
}
