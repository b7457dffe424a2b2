package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
	ErrListProfilesQueryIsNotConstructed = errors.New(
		"ListProfilesQuery must be created via NewListProfilesQuery constructor",
	)
)

type GetProfileQuery struct {
	actor  identity.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(actor identity.Actor, userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// GetProfileQueryHandler reads one profile. Any signed in user may read any profile.
type GetProfileQueryHandler struct {
	db    *gorm.DB
	authz services.Authorizer
}

func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db, authz: services.NewAuthorizer()}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}
	if err := h.authz.Authorize(query.actor, services.ResourceProfile, services.ActionRetrieve); err != nil {
		return ProfileResponse{}, err
	}

	rows, err := profileBase(h.db.WithContext(ctx)).Where("u.id = ?", query.userID.Bytes()).Rows()
	if err != nil {
		return ProfileResponse{}, err
	}

	profiles, err := scanProfiles(rows)
	if err != nil {
		return ProfileResponse{}, err
	}
	if len(profiles) == 0 {
		return ProfileResponse{}, errs.NewObjectNotFoundError("profile", query.userID.String())
	}
	return profiles[0], nil
}

// ListProfilesQuery lists the profiles holding one role.
type ListProfilesQuery struct {
	actor identity.Actor
	role  identity.Role

	guard guard.ConstructorGuard
}

func NewListProfilesQuery(actor identity.Actor, role identity.Role) (ListProfilesQuery, error) {
	if err := role.Validate(); err != nil {
		return ListProfilesQuery{}, err
	}
	return ListProfilesQuery{actor: actor, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProfilesQuery) Validate() error {
	return q.guard.Validate(ErrListProfilesQueryIsNotConstructed)
}

type ListProfilesQueryHandler struct {
	db    *gorm.DB
	authz services.Authorizer
}

func NewListProfilesQueryHandler(db *gorm.DB) ListProfilesQueryHandler {
	return ListProfilesQueryHandler{db: db, authz: services.NewAuthorizer()}
}

func (h ListProfilesQueryHandler) Handle(ctx context.Context, query ListProfilesQuery) ([]ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.authz.Authorize(query.actor, services.ResourceProfile, services.ActionList); err != nil {
		return nil, err
	}

	rows, err := profileBase(h.db.WithContext(ctx)).
		Where("p.type = ?", string(query.role)).
		Order("u.username").
		Rows()
	if err != nil {
		return nil, err
	}
	return scanProfiles(rows)
}

func profileBase(db *gorm.DB) *gorm.DB {
	return db.Table("users AS u").
		Select(`
			u.id,
			u.username,
			u.first_name,
			u.last_name,
			u.email,
			p.type,
			p.file,
			p.location,
			p.tel,
			p.description,
			p.working_hours,
			p.created_at`).
		Joins("JOIN profiles AS p ON p.user_id = u.id")
}

func scanProfiles(rows *sql.Rows) ([]ProfileResponse, error) {
	defer rows.Close()

	profiles := make([]ProfileResponse, 0)
	for rows.Next() {
		var (
			p    ProfileResponse
			id   uuid.UUID
			role string
		)

		if err := rows.Scan(
			&id,
			&p.Username,
			&p.FirstName,
			&p.LastName,
			&p.Email,
			&role,
			&p.File,
			&p.Location,
			&p.Tel,
			&p.Description,
			&p.WorkingHours,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}

		userID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		p.UserID = userID

		if p.Type, err = identity.ParseRole(role); err != nil {
			return nil, err
		}

		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}
