// Package pgutil holds the small gorm helpers shared by the repositories.
package pgutil

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate is the row lock taken by GetForUpdate methods.
func ForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// IsDuplicate reports a unique index violation. Needs gorm.Config.TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports a rejected insert or delete caused by a
// foreign key. Needs gorm.Config.TranslateError.
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// IsNotFound reports gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
