package commands

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var (
	ErrCancelItemsCommandIsNotConstructed = errors.New(
		"CancelItemsCommand must be created via NewCancelItemsCommand constructor",
	)
	ErrItemIDsAreRequired = errors.New("at least one item id is required")
)

// CancelItemsCommand represents a request to cancel a batch of line items
// on behalf of an acting user. Each id is processed independently: one
// item's rejection never blocks the others.
//
// Example:
//
//	cmd, err := NewCancelItemsCommand(itemIDs, user, "kim")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCancelItemsCommandHandler(uowFactory)
//	results, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	for _, r := range results {
//	    if r.Err != nil {
//	        log.Printf("item %s not canceled: %v", r.ItemID, r.Err)
//	    }
//	}
type CancelItemsCommand struct { //nolint:recvcheck //using for validation
	itemIDs   []kernel.UUID
	user      actor.Actor
	changedBy string

	guard guard.ConstructorGuard
}

// NewCancelItemsCommand creates a command to cancel the given items.
func NewCancelItemsCommand(
	itemIDs []kernel.UUID,
	user actor.Actor,
	changedBy string,
) (CancelItemsCommand, error) {
	cmd := CancelItemsCommand{
		changedBy: changedBy,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemIDs(itemIDs),
		cmd.setUser(user),
	); err != nil {
		return CancelItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelItemsCommandIsNotConstructed if validation fails.
func (c CancelItemsCommand) Validate() error {
	return c.guard.Validate(ErrCancelItemsCommandIsNotConstructed)
}

// ItemIDs returns the identifiers of the items to cancel.
func (c CancelItemsCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

// User returns the acting user whose role gates the cancellations.
func (c CancelItemsCommand) User() actor.Actor {
	return c.user
}

// ChangedBy returns the author name recorded in the status history.
func (c CancelItemsCommand) ChangedBy() string {
	return c.changedBy
}

func (c *CancelItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemIDsAreRequired
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.itemIDs = append([]kernel.UUID(nil), itemIDs...)
	return nil
}

func (c *CancelItemsCommand) setUser(user actor.Actor) error {
	if err := user.Validate(); err != nil {
		return err
	}
	c.user = user
	return nil
}
