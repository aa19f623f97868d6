package commands

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrSetItemDueDateCommandIsNotConstructed = errors.New(
	"SetItemDueDateCommand must be created via NewSetItemDueDateCommand constructor",
)

// SetItemDueDateCommand represents a request to set or clear an item's due
// date. A plain field update: no cascade, no history entry.
type SetItemDueDateCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	dueDate *time.Time

	guard guard.ConstructorGuard
}

// NewSetItemDueDateCommand creates a command to set an item's due date.
// A nil dueDate clears it.
func NewSetItemDueDateCommand(itemID kernel.UUID, dueDate *time.Time) (SetItemDueDateCommand, error) {
	cmd := SetItemDueDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return SetItemDueDateCommand{}, err
	}

	if dueDate != nil {
		d := *dueDate
		cmd.dueDate = &d
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetItemDueDateCommandIsNotConstructed if validation fails.
func (c SetItemDueDateCommand) Validate() error {
	return c.guard.Validate(ErrSetItemDueDateCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c SetItemDueDateCommand) ItemID() kernel.UUID {
	return c.itemID
}

// DueDate returns the new due date, nil to clear it.
func (c SetItemDueDateCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c *SetItemDueDateCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
