package userrepo

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/adapters/out/postgres/pgutil"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var ErrUserAlreadyExists = errs.NewValueIsInvalidErrorWithCause(
	"username", errors.New("a user with this username or email already exists"))

type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the user and its profile. Both rows go in one statement batch,
// so callers running inside a unit of work get them atomically.
func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgutil.IsDuplicate(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	db := r.db.WithContext(ctx)

	result := db.Model(&UserDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"email":      dto.Email,
		"first_name": dto.FirstName,
		"last_name":  dto.LastName,
		"is_staff":   dto.IsStaff,
	})
	if result.Error != nil {
		if pgutil.IsDuplicate(result.Error) {
			return errs.NewValueIsInvalidErrorWithCause("email", errors.New("this email is already in use"))
		}
		return fmt.Errorf("update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", user.ID().String())
	}

	if err := db.Model(&ProfileDTO{}).Where("user_id = ?", dto.ID).Updates(map[string]any{
		"file":          dto.Profile.File,
		"location":      dto.Profile.Location,
		"tel":           dto.Profile.Tel,
		"description":   dto.Profile.Description,
		"working_hours": dto.Profile.WorkingHours,
	}).Error; err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormUserRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	return r.get(r.db.WithContext(ctx).Clauses(pgutil.ForUpdate()), id)
}

func (r *GormUserRepository) get(db *gorm.DB, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := db.Preload("Profile").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgutil.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	return ToDomain(dto)
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Preload("Profile").First(&dto, "username = ?", username).Error; err != nil {
		if pgutil.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, fmt.Errorf("select user by username: %w", err)
	}

	return ToDomain(dto)
}

func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *GormUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}
