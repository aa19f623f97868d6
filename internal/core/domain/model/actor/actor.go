package actor

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor was not created
	// through one of the constructor functions.
	ErrActorIsNotConstructed = errors.New(
		"Actor must be created via NewManager, NewPrintshopManager, or NewDriver")

	// ErrShopScopeIsRequired is returned when a printshop manager is
	// constructed without at least one assigned shop.
	ErrShopScopeIsRequired = errs.NewValueIsRequiredError("printshop manager requires at least one shop id")
)

// Actor couples a role with its scoping data: a printshop manager carries
// the set of shop ids it is assigned to; managers and drivers carry no
// explicit scope (a driver's scope is the implicit delivery-stage filter).
//
// Actor is an immutable value object; create instances through NewManager,
// NewPrintshopManager, or NewDriver.
type Actor struct {
	role    Role
	shopIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewManager creates an actor with unrestricted visibility.
func NewManager() Actor {
	return Actor{
		role:  Manager,
		guard: guard.NewConstructorGuard(),
	}
}

// NewPrintshopManager creates an actor scoped to the given shop ids.
// At least one valid shop id is required.
func NewPrintshopManager(shopIDs []kernel.UUID) (Actor, error) {
	if len(shopIDs) == 0 {
		return Actor{}, ErrShopScopeIsRequired
	}
	for _, id := range shopIDs {
		if err := id.Validate(); err != nil {
			return Actor{}, err
		}
	}

	scope := make([]kernel.UUID, len(shopIDs))
	copy(scope, shopIDs)

	return Actor{
		role:    PrintshopManager,
		shopIDs: scope,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewDriver creates an actor restricted to the delivery-stage slice of the universe.
func NewDriver() Actor {
	return Actor{
		role:  Driver,
		guard: guard.NewConstructorGuard(),
	}
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ShopScope returns a copy of the shop ids a printshop manager is assigned to.
// Empty for managers and drivers.
func (a Actor) ShopScope() []kernel.UUID {
	scope := make([]kernel.UUID, len(a.shopIDs))
	copy(scope, a.shopIDs)
	return scope
}

// InShopScope reports whether the given shop id belongs to the actor's scope.
// A nil shop id is never in scope.
func (a Actor) InShopScope(shopID *kernel.UUID) bool {
	if shopID == nil {
		return false
	}
	for _, id := range a.shopIDs {
		if id.IsEqual(*shopID) {
			return true
		}
	}
	return false
}

// Validate ensures the actor was created through a constructor and carries
// a valid role.
func (a Actor) Validate() error {
	if err := a.guard.Validate(ErrActorIsNotConstructed); err != nil {
		return err
	}
	return a.role.Validate()
}
