// Package commands contains business operations that modify system state.
// Every handler follows the same sequence: validate the command, run the
// action-level access check, open a unit of work, load the target with a row
// lock, run the object-level check, mutate the aggregate and commit.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// UserUoW manages transactions for registration and profile changes.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUoW covers offers together with the orders placed against them.
	// Offer deletion checks for orders, order creation reads the offer.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OfferRepository().GetByDetailID(ctx, detailID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, newOrder)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OfferRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for reviews. The user repository is
	// needed to check the reviewed business user.
	ReviewUoW interface {
		TxManager
		UserRepoFactory
		ReviewRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
