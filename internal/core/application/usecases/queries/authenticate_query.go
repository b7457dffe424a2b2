package queries

import (
	"context"
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)
	ErrResolveActorQueryIsNotConstructed = errors.New(
		"ResolveActorQuery must be created via NewResolveActorQuery constructor",
	)
	// ErrInvalidCredentials does not tell an unknown username from a wrong password.
	ErrInvalidCredentials = errs.NewValueIsInvalidErrorWithCause(
		"credentials", errors.New("invalid username or password"))
)

// AuthenticateQuery checks a username and password pair.
type AuthenticateQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(username, password string) (AuthenticateQuery, error) {
	username = strings.TrimSpace(username)

	var errList []error
	if username == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return AuthenticateQuery{}, err
	}

	return AuthenticateQuery{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

type AuthenticatedUserResponse struct {
	UserID   kernel.UUID
	Username string
	Email    string
}

type AuthenticateQueryHandler struct {
	db *gorm.DB
}

func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle compares the password against the stored bcrypt hash.
func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (AuthenticatedUserResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedUserResponse{}, err
	}

	var (
		id   uuid.UUID
		hash string
		resp AuthenticatedUserResponse
	)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, password_hash
		FROM users
		WHERE username = ?
	`, query.username).Rows()
	if err != nil {
		return AuthenticatedUserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return AuthenticatedUserResponse{}, err
		}
		return AuthenticatedUserResponse{}, ErrInvalidCredentials
	}
	if err := rows.Scan(&id, &resp.Username, &resp.Email, &hash); err != nil {
		return AuthenticatedUserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(query.password)); err != nil {
		return AuthenticatedUserResponse{}, ErrInvalidCredentials
	}

	resp.UserID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticatedUserResponse{}, err
	}
	return resp, nil
}

// ResolveActorQuery turns an authenticated user id into an Actor with the
// role and staff flag currently stored.
type ResolveActorQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResolveActorQuery(userID kernel.UUID) (ResolveActorQuery, error) {
	if err := userID.Validate(); err != nil {
		return ResolveActorQuery{}, err
	}
	return ResolveActorQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveActorQuery) Validate() error {
	return q.guard.Validate(ErrResolveActorQueryIsNotConstructed)
}

func (q ResolveActorQuery) UserID() kernel.UUID {
	return q.userID
}

type ResolveActorQueryHandler struct {
	db *gorm.DB
}

func NewResolveActorQueryHandler(db *gorm.DB) ResolveActorQueryHandler {
	return ResolveActorQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound for deleted users. A user without
// a profile resolves to an actor with no role.
func (h ResolveActorQueryHandler) Handle(ctx context.Context, query ResolveActorQuery) (identity.Actor, error) {
	if err := query.Validate(); err != nil {
		return identity.Anonymous(), err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT u.is_staff, COALESCE(p.type, '')
		FROM users AS u
		LEFT JOIN profiles AS p ON p.user_id = u.id
		WHERE u.id = ?
	`, query.userID.Bytes()).Rows()
	if err != nil {
		return identity.Anonymous(), err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return identity.Anonymous(), err
		}
		return identity.Anonymous(), errs.NewObjectNotFoundError("user", query.userID.String())
	}

	var (
		staff bool
		role  string
	)
	if err := rows.Scan(&staff, &role); err != nil {
		return identity.Anonymous(), err
	}

	return identity.NewAuthenticatedActor(query.userID, identity.Role(role), staff), nil
}
