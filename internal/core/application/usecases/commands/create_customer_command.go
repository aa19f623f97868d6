package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	company    *string
	address    string
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Name is required; the remaining contact fields are optional.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name string,
	email string,
	phone string,
	company *string,
	address string,
	notes string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		email:   email,
		phone:   phone,
		address: address,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	if company != nil {
		cp := *company
		cmd.company = &cp
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Company returns the optional company name.
func (c CreateCustomerCommand) Company() *string {
	return c.company
}

// Address returns the customer's address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// Notes returns free-text notes about the customer.
func (c CreateCustomerCommand) Notes() string {
	return c.notes
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.name = name
	return nil
}
