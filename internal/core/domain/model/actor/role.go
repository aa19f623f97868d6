// Package actor defines the user roles that operate on the fulfillment
// engine and the scoping data each role carries. Roles gate which item
// statuses may be set and which slice of the order universe is visible.
package actor

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// Role identifies the kind of user performing an operation.
// Each role carries a flat set of item statuses it may set and a
// visibility scope applied to the order/item universe.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Manager oversees the whole fulfillment pipeline.
	// Managers may set every status and see every order.
	Manager

	// PrintshopManager runs one or more printshops.
	// Sees only orders with items assigned to their shops and may set
	// production-side statuses.
	PrintshopManager

	// Driver delivers finished items.
	// Sees only delivery-ready orders and may set delivery-side statuses.
	Driver
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:          "unknown",
		Manager:          "manager",
		PrintshopManager: "printshop_manager",
		Driver:           "driver",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Manager:          "manager",
		PrintshopManager: "printshop_manager",
		Driver:           "driver",
	}
}

// RoleFromString parses a role name as it appears on the wire
// ("manager", "printshop_manager", "driver").
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Manager, PrintshopManager, Driver.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
