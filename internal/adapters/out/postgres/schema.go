package postgres

import (
	"context"
	"fmt"

	"marketplace/internal/adapters/out/postgres/offerrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// NewGormConfig is the gorm configuration every connection must use.
// Driver errors are translated so repositories can detect unique and
// foreign key violations; foreign keys are created by Migrate instead.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

type foreignKey struct {
	table    string
	name     string
	column   string
	refTable string
	onDelete string
}

var foreignKeys = []foreignKey{
	{"profiles", "fk_profiles_user", "user_id", "users", "CASCADE"},
	{"offers", "fk_offers_owner", "owner_id", "users", "CASCADE"},
	{"offer_details", "fk_offer_details_offer", "offer_id", "offers", "CASCADE"},
	{"orders", "fk_orders_offer_detail", "offer_detail_id", "offer_details", "RESTRICT"},
	{"orders", "fk_orders_customer_user", "customer_user_id", "users", "CASCADE"},
	{"orders", "fk_orders_business_user", "business_user_id", "users", "CASCADE"},
	{"reviews", "fk_reviews_reviewer", "reviewer_id", "users", "CASCADE"},
	{"reviews", "fk_reviews_business_user", "business_user_id", "users", "CASCADE"},
}

// Models lists the persisted DTOs in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.ProfileDTO{},
		&offerrepo.OfferDTO{},
		&offerrepo.OfferDetailDTO{},
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
	}
}

// Migrate creates or updates the schema, then adds the foreign keys that are missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[2]s') THEN
		ALTER TABLE %[1]s ADD CONSTRAINT %[2]s FOREIGN KEY (%[3]s) REFERENCES %[4]s (id) ON DELETE %[5]s;
	END IF;
END $$;`, fk.table, fk.name, fk.column, fk.refTable, fk.onDelete)

		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add foreign key %s: %w", fk.name, err)
		}
	}
	return nil
}
