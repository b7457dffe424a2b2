package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOfferQueryIsNotConstructed = errors.New(
		"GetOfferQuery must be created via NewGetOfferQuery constructor",
	)
	ErrGetOfferDetailQueryIsNotConstructed = errors.New(
		"GetOfferDetailQuery must be created via NewGetOfferDetailQuery constructor",
	)
)

type GetOfferQuery struct {
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOfferQuery(offerID kernel.UUID) (GetOfferQuery, error) {
	if err := offerID.Validate(); err != nil {
		return GetOfferQuery{}, err
	}
	return GetOfferQuery{offerID: offerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOfferQuery) Validate() error {
	return q.guard.Validate(ErrGetOfferQueryIsNotConstructed)
}

func (q GetOfferQuery) OfferID() kernel.UUID {
	return q.offerID
}

type GetOfferQueryHandler struct {
	db *gorm.DB
}

func NewGetOfferQueryHandler(db *gorm.DB) GetOfferQueryHandler {
	return GetOfferQueryHandler{db: db}
}

func (h GetOfferQueryHandler) Handle(ctx context.Context, query GetOfferQuery) (OfferResponse, error) {
	if err := query.Validate(); err != nil {
		return OfferResponse{}, err
	}

	rows, err := offerBase(h.db.WithContext(ctx)).Where("o.id = ?", query.OfferID().Bytes()).Rows()
	if err != nil {
		return OfferResponse{}, err
	}

	offers, err := scanOffers(rows)
	if err != nil {
		return OfferResponse{}, err
	}
	if len(offers) == 0 {
		return OfferResponse{}, errs.NewObjectNotFoundError("offer", query.OfferID().String())
	}

	if err := attachDetails(ctx, h.db, offers); err != nil {
		return OfferResponse{}, err
	}
	return offers[0], nil
}

type GetOfferDetailQuery struct {
	detailID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOfferDetailQuery(detailID kernel.UUID) (GetOfferDetailQuery, error) {
	if err := detailID.Validate(); err != nil {
		return GetOfferDetailQuery{}, err
	}
	return GetOfferDetailQuery{detailID: detailID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOfferDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOfferDetailQueryIsNotConstructed)
}

func (q GetOfferDetailQuery) DetailID() kernel.UUID {
	return q.detailID
}

type GetOfferDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOfferDetailQueryHandler(db *gorm.DB) GetOfferDetailQueryHandler {
	return GetOfferDetailQueryHandler{db: db}
}

func (h GetOfferDetailQueryHandler) Handle(ctx context.Context, query GetOfferDetailQuery) (OfferDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OfferDetailResponse{}, err
	}

	rows, err := detailBase(h.db.WithContext(ctx)).Where("id = ?", query.DetailID().Bytes()).Rows()
	if err != nil {
		return OfferDetailResponse{}, err
	}

	details, err := scanDetails(rows)
	if err != nil {
		return OfferDetailResponse{}, err
	}
	if len(details) == 0 {
		return OfferDetailResponse{}, errs.NewObjectNotFoundError("offer_detail", query.DetailID().String())
	}
	return details[0], nil
}
