// Package printshop contains the printshop entity: a production site that
// order items are assigned to. Printshops are referenced by item
// assignments and scope what a printshop manager may see.
package printshop

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// ErrPrintshopIsNotConstructed is returned when a Printshop instance was
// not created through NewPrintshop or RestorePrintshop.
var ErrPrintshopIsNotConstructed = errors.New(
	"Printshop must be created via NewPrintshop or RestorePrintshop constructor")

// Printshop is a production site. Location feeds the dashboard's map
// consumers; the engine only needs the id for assignment and scoping.
type Printshop struct {
	id       kernel.UUID
	name     string
	address  string
	location kernel.GeoPoint

	isConstructed bool
}

// NewPrintshop creates a printshop with a validated geographic location.
func NewPrintshop(
	id kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
) (*Printshop, error) {
	p := &Printshop{
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePrintshop reconstructs a printshop from persistence.
func RestorePrintshop(
	id kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
) (*Printshop, error) {
	return NewPrintshop(id, name, address, location)
}

// Validate ensures the Printshop was created through a constructor.
func (p *Printshop) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrintshopIsNotConstructed
	}
	return nil
}

// ID returns the printshop's unique identifier.
func (p *Printshop) ID() kernel.UUID {
	return p.id
}

// Name returns the printshop's display name.
func (p *Printshop) Name() string {
	return p.name
}

// Address returns the printshop's street address.
func (p *Printshop) Address() string {
	return p.address
}

// Location returns the printshop's geographic coordinates.
func (p *Printshop) Location() kernel.GeoPoint {
	return p.location
}

func (p *Printshop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Printshop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("printshop name")
	}
	p.name = name
	return nil
}

func (p *Printshop) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}
