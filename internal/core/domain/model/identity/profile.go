package identity

import (
	"time"
)

// Profile carries the role and the public contact details of a user.
// It has no identity of its own; it is addressed through its User.
type Profile struct {
	role         Role
	file         string
	location     string
	tel          string
	description  string
	workingHours string
	createdAt    time.Time
}

// ProfileDetails is the contact metadata of a profile.
type ProfileDetails struct {
	File         string
	Location     string
	Tel          string
	Description  string
	WorkingHours string
}

func newProfile(role Role, createdAt time.Time) (*Profile, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return &Profile{role: role, createdAt: createdAt}, nil
}

// RestoreProfile rebuilds a persisted profile.
func RestoreProfile(role Role, details ProfileDetails, createdAt time.Time) (*Profile, error) {
	p, err := newProfile(role, createdAt)
	if err != nil {
		return nil, err
	}
	p.file = details.File
	p.location = details.Location
	p.tel = details.Tel
	p.description = details.Description
	p.workingHours = details.WorkingHours
	return p, nil
}

func (p *Profile) Role() Role {
	return p.role
}

func (p *Profile) Details() ProfileDetails {
	return ProfileDetails{
		File:         p.file,
		Location:     p.location,
		Tel:          p.tel,
		Description:  p.description,
		WorkingHours: p.workingHours,
	}
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}
