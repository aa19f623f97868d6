package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var (
	ErrCreatePrintshopCommandIsNotConstructed = errors.New(
		"CreatePrintshopCommand must be created via NewCreatePrintshopCommand constructor",
	)
	ErrPrintshopNameIsRequired = errors.New("printshop name is required")
)

// CreatePrintshopCommand represents a request to register a new printshop.
type CreatePrintshopCommand struct { //nolint:recvcheck //using for validation
	shopID   kernel.UUID
	name     string
	address  string
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreatePrintshopCommand creates a command to register a printshop.
func NewCreatePrintshopCommand(
	shopID kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
) (CreatePrintshopCommand, error) {
	cmd := CreatePrintshopCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShopID(shopID),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return CreatePrintshopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePrintshopCommand) Validate() error {
	return c.guard.Validate(ErrCreatePrintshopCommandIsNotConstructed)
}

// ShopID returns the unique identifier for the printshop.
func (c CreatePrintshopCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Name returns the printshop's display name.
func (c CreatePrintshopCommand) Name() string {
	return c.name
}

// Address returns the printshop's street address.
func (c CreatePrintshopCommand) Address() string {
	return c.address
}

// Location returns the printshop's geographic coordinates.
func (c CreatePrintshopCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreatePrintshopCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	c.shopID = shopID
	return nil
}

func (c *CreatePrintshopCommand) setName(name string) error {
	if name == "" {
		return ErrPrintshopNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreatePrintshopCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
