// Package customer contains the customer entity. Customers are referenced,
// never owned, by orders.
package customer

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is the party an order is produced for. The dashboard shows its
// contact data alongside the order; the engine itself only needs the id.
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	company *string
	address string
	notes   string

	isConstructed bool
}

// NewCustomer creates a customer. Name is required; company is optional.
func NewCustomer(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	company *string,
	address string,
	notes string,
) (*Customer, error) {
	c := &Customer{
		email:         email,
		phone:         phone,
		address:       address,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	if company != nil {
		cp := *company
		c.company = &cp
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	company *string,
	address string,
	notes string,
) (*Customer, error) {
	return NewCustomer(id, name, email, phone, company, address, notes)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the contact email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Company returns the optional company name, or nil.
func (c *Customer) Company() *string {
	if c.company == nil {
		return nil
	}
	cp := *c.company
	return &cp
}

// Address returns the customer's address.
func (c *Customer) Address() string {
	return c.address
}

// Notes returns free-form remarks about the customer.
func (c *Customer) Notes() string {
	return c.notes
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}
