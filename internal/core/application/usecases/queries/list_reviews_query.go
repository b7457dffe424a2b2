package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListReviewsQueryIsNotConstructed = errors.New(
		"ListReviewsQuery must be created via NewListReviewsQuery constructor",
	)
	ErrGetReviewQueryIsNotConstructed = errors.New(
		"GetReviewQuery must be created via NewGetReviewQuery constructor",
	)
)

var reviewOrderings = map[string]string{
	"updated_at":  "updated_at ASC",
	"-updated_at": "updated_at DESC",
	"rating":      "rating ASC",
	"-rating":     "rating DESC",
}

const DefaultReviewOrdering = "-updated_at"

// ReviewFilter narrows the review list. Nil ids do not filter.
type ReviewFilter struct {
	BusinessUserID *kernel.UUID
	ReviewerID     *kernel.UUID
	Ordering       string
}

type ListReviewsQuery struct {
	filter ReviewFilter

	guard guard.ConstructorGuard
}

func NewListReviewsQuery(filter ReviewFilter) (ListReviewsQuery, error) {
	if filter.Ordering == "" {
		filter.Ordering = DefaultReviewOrdering
	}

	var errList []error
	if _, ok := reviewOrderings[filter.Ordering]; !ok {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"ordering", fmt.Errorf("%q is not a valid ordering", filter.Ordering)))
	}
	if filter.BusinessUserID != nil {
		if err := filter.BusinessUserID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("business_user_id", err))
		}
	}
	if filter.ReviewerID != nil {
		if err := filter.ReviewerID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("reviewer_id", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ListReviewsQuery{}, err
	}

	return ListReviewsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListReviewsQueryIsNotConstructed)
}

func (q ListReviewsQuery) Filter() ReviewFilter {
	return q.filter
}

// ListReviewsQueryHandler reads reviews. Reviews are public.
type ListReviewsQueryHandler struct {
	db *gorm.DB
}

func NewListReviewsQueryHandler(db *gorm.DB) ListReviewsQueryHandler {
	return ListReviewsQueryHandler{db: db}
}

func (h ListReviewsQueryHandler) Handle(ctx context.Context, query ListReviewsQuery) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	stmt := reviewBase(h.db.WithContext(ctx))
	if f.BusinessUserID != nil {
		stmt = stmt.Where("business_user_id = ?", f.BusinessUserID.Bytes())
	}
	if f.ReviewerID != nil {
		stmt = stmt.Where("reviewer_id = ?", f.ReviewerID.Bytes())
	}

	rows, err := stmt.Order(reviewOrderings[f.Ordering]).Order("id").Rows()
	if err != nil {
		return nil, err
	}
	return scanReviews(rows)
}

type GetReviewQuery struct {
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetReviewQuery(reviewID kernel.UUID) (GetReviewQuery, error) {
	if err := reviewID.Validate(); err != nil {
		return GetReviewQuery{}, err
	}
	return GetReviewQuery{reviewID: reviewID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReviewQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewQueryIsNotConstructed)
}

func (q GetReviewQuery) ReviewID() kernel.UUID {
	return q.reviewID
}

type GetReviewQueryHandler struct {
	db *gorm.DB
}

func NewGetReviewQueryHandler(db *gorm.DB) GetReviewQueryHandler {
	return GetReviewQueryHandler{db: db}
}

func (h GetReviewQueryHandler) Handle(ctx context.Context, query GetReviewQuery) (ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewResponse{}, err
	}

	rows, err := reviewBase(h.db.WithContext(ctx)).Where("id = ?", query.ReviewID().Bytes()).Rows()
	if err != nil {
		return ReviewResponse{}, err
	}

	reviews, err := scanReviews(rows)
	if err != nil {
		return ReviewResponse{}, err
	}
	if len(reviews) == 0 {
		return ReviewResponse{}, errs.NewObjectNotFoundError("review", query.ReviewID().String())
	}
	return reviews[0], nil
}

func reviewBase(db *gorm.DB) *gorm.DB {
	return db.Table("reviews").
		Select("id, business_user_id, reviewer_id, rating, description, created_at, updated_at")
}

func scanReviews(rows *sql.Rows) ([]ReviewResponse, error) {
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		var (
			r                          ReviewResponse
			id, businessID, reviewerID uuid.UUID
		)

		if err := rows.Scan(
			&id,
			&businessID,
			&reviewerID,
			&r.Rating,
			&r.Description,
			&r.CreatedAt,
			&r.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ids, err := toKernel(&id, &businessID, &reviewerID)
		if err != nil {
			return nil, err
		}
		r.ID, r.BusinessUserID, r.ReviewerID = ids[0], ids[1], ids[2]

		reviews = append(reviews, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
