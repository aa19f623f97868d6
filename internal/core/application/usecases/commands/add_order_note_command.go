package commands

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/guard"
)

var (
	ErrAddOrderNoteCommandIsNotConstructed = errors.New(
		"AddOrderNoteCommand must be created via NewAddOrderNoteCommand constructor",
	)
	ErrNoteTextIsRequired = errors.New("note text is required")
)

// AddOrderNoteCommand represents a request to attach a note to an order,
// optionally referencing one of its items. The department controls which
// roles may read the note.
type AddOrderNoteCommand struct { //nolint:recvcheck //using for validation
	noteID     kernel.UUID
	orderID    kernel.UUID
	itemID     *kernel.UUID
	department order.Department
	author     string
	text       string

	guard guard.ConstructorGuard
}

// NewAddOrderNoteCommand creates a command to attach a note to an order.
// A nil itemID makes it an order-level note.
func NewAddOrderNoteCommand(
	noteID kernel.UUID,
	orderID kernel.UUID,
	itemID *kernel.UUID,
	department order.Department,
	author string,
	text string,
) (AddOrderNoteCommand, error) {
	cmd := AddOrderNoteCommand{
		author: author,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setDepartment(department),
		cmd.setText(text),
	); err != nil {
		return AddOrderNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderNoteCommandIsNotConstructed)
}

// NoteID returns the unique identifier for the note.
func (c AddOrderNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// OrderID returns the identifier of the order to annotate.
func (c AddOrderNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the referenced item, nil for an order-level note.
func (c AddOrderNoteCommand) ItemID() *kernel.UUID {
	return c.itemID
}

// Department returns the note's audience.
func (c AddOrderNoteCommand) Department() order.Department {
	return c.department
}

// Author returns the note author's name.
func (c AddOrderNoteCommand) Author() string {
	return c.author
}

// Text returns the note body.
func (c AddOrderNoteCommand) Text() string {
	return c.text
}

func (c *AddOrderNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}
	c.noteID = noteID
	return nil
}

func (c *AddOrderNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderNoteCommand) setItemID(itemID *kernel.UUID) error {
	if itemID == nil {
		return nil
	}
	if err := itemID.Validate(); err != nil {
		return err
	}
	id := *itemID
	c.itemID = &id
	return nil
}

func (c *AddOrderNoteCommand) setDepartment(department order.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	c.department = department
	return nil
}

func (c *AddOrderNoteCommand) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNoteTextIsRequired
	}
	c.text = text
	return nil
}
