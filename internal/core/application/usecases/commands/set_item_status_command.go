package commands

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/guard"
)

var ErrSetItemStatusCommandIsNotConstructed = errors.New(
	"SetItemStatusCommand must be created via NewSetItemStatusCommand constructor",
)

// SetItemStatusCommand represents a request to move a line item to a new
// fulfillment status on behalf of an acting user. Role permission, terminal
// locks and cascades are enforced by the item itself.
//
// Example:
//
//	cmd, err := NewSetItemStatusCommand(itemID, order.Ready, user, "kim", "")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewSetItemStatusCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var forbidden *errs.ForbiddenError
//	    if errors.As(err, &forbidden) {
//	        // acting role may not set this status
//	    }
//	    return err
//	}
//	if !result.Changed {
//	    // item already was in the requested status
//	}
type SetItemStatusCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	status    order.Status
	user      actor.Actor
	changedBy string
	note      string

	guard guard.ConstructorGuard
}

// NewSetItemStatusCommand creates a command to change an item's status.
// changedBy names the person for the status history; note is optional.
func NewSetItemStatusCommand(
	itemID kernel.UUID,
	status order.Status,
	user actor.Actor,
	changedBy string,
	note string,
) (SetItemStatusCommand, error) {
	cmd := SetItemStatusCommand{
		changedBy: changedBy,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setStatus(status),
		cmd.setUser(user),
	); err != nil {
		return SetItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetItemStatusCommandIsNotConstructed if validation fails.
func (c SetItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetItemStatusCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to move.
func (c SetItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Status returns the requested target status.
func (c SetItemStatusCommand) Status() order.Status {
	return c.status
}

// User returns the acting user whose role gates the transition.
func (c SetItemStatusCommand) User() actor.Actor {
	return c.user
}

// ChangedBy returns the author name recorded in the status history.
func (c SetItemStatusCommand) ChangedBy() string {
	return c.changedBy
}

// Note returns the optional free-text note for the history entry.
func (c SetItemStatusCommand) Note() string {
	return c.note
}

func (c *SetItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *SetItemStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *SetItemStatusCommand) setUser(user actor.Actor) error {
	if err := user.Validate(); err != nil {
		return err
	}
	c.user = user
	return nil
}
