package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrSetItemPrintshopCommandIsNotConstructed = errors.New(
	"SetItemPrintshopCommand must be created via NewSetItemPrintshopCommand constructor",
)

// SetItemPrintshopCommand represents a request to assign a line item to a
// printshop, or to clear the assignment with a nil shop id. Assignment is
// not role-gated; any actor with item-edit rights may reassign.
//
// The new/assigned auto-flip belongs to the item: assigning a shop to a new
// item promotes it to assigned, clearing the shop of an assigned item
// demotes it back to new.
type SetItemPrintshopCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	shopID    *kernel.UUID
	changedBy string

	guard guard.ConstructorGuard
}

// NewSetItemPrintshopCommand creates a command to (re)assign an item's
// printshop. A nil shopID clears the assignment.
func NewSetItemPrintshopCommand(
	itemID kernel.UUID,
	shopID *kernel.UUID,
	changedBy string,
) (SetItemPrintshopCommand, error) {
	cmd := SetItemPrintshopCommand{
		changedBy: changedBy,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setShopID(shopID),
	); err != nil {
		return SetItemPrintshopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetItemPrintshopCommandIsNotConstructed if validation fails.
func (c SetItemPrintshopCommand) Validate() error {
	return c.guard.Validate(ErrSetItemPrintshopCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to reassign.
func (c SetItemPrintshopCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ShopID returns the target printshop, nil to clear the assignment.
func (c SetItemPrintshopCommand) ShopID() *kernel.UUID {
	return c.shopID
}

// ChangedBy returns the author name recorded in cascade history entries.
func (c SetItemPrintshopCommand) ChangedBy() string {
	return c.changedBy
}

func (c *SetItemPrintshopCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *SetItemPrintshopCommand) setShopID(shopID *kernel.UUID) error {
	if shopID == nil {
		return nil
	}
	if err := shopID.Validate(); err != nil {
		return err
	}
	id := *shopID
	c.shopID = &id
	return nil
}
