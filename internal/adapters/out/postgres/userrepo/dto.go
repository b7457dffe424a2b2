// Package userrepo persists users and their profiles.
package userrepo

import (
	"time"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        string     `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FirstName    string     `gorm:"type:varchar(150);not null;default:''"`
	LastName     string     `gorm:"type:varchar(150);not null;default:''"`
	IsStaff      bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time  `gorm:"not null"`
	Profile      ProfileDTO `gorm:"foreignKey:UserID"`
}

func (UserDTO) TableName() string {
	return "users"
}

type ProfileDTO struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type         string    `gorm:"type:varchar(16);not null;index"`
	File         string    `gorm:"type:varchar(255);not null;default:''"`
	Location     string    `gorm:"type:varchar(255);not null;default:''"`
	Tel          string    `gorm:"type:varchar(64);not null;default:''"`
	Description  string    `gorm:"type:text;not null;default:''"`
	WorkingHours string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (ProfileDTO) TableName() string {
	return "profiles"
}

func fromDomain(user *identity.User) UserDTO {
	id := user.ID().Bytes()
	details := user.Profile().Details()

	return UserDTO{
		ID:           id,
		Username:     user.Username(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		FirstName:    user.FirstName(),
		LastName:     user.LastName(),
		IsStaff:      user.IsStaff(),
		CreatedAt:    user.CreatedAt(),
		Profile: ProfileDTO{
			UserID:       id,
			Type:         string(user.Role()),
			File:         details.File,
			Location:     details.Location,
			Tel:          details.Tel,
			Description:  details.Description,
			WorkingHours: details.WorkingHours,
			CreatedAt:    user.Profile().CreatedAt(),
		},
	}
}

// ToDomain rebuilds a user from a row loaded with its profile. Query handlers
// use it too.
func ToDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var profile *identity.Profile
	if dto.Profile.UserID == dto.ID {
		profile, err = identity.RestoreProfile(identity.Role(dto.Profile.Type), identity.ProfileDetails{
			File:         dto.Profile.File,
			Location:     dto.Profile.Location,
			Tel:          dto.Profile.Tel,
			Description:  dto.Profile.Description,
			WorkingHours: dto.Profile.WorkingHours,
		}, dto.Profile.CreatedAt)
		if err != nil {
			return nil, err
		}
	}

	return identity.RestoreUser(identity.UserState{
		ID:           id,
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		IsStaff:      dto.IsStaff,
		CreatedAt:    dto.CreatedAt,
	}, profile)
}
