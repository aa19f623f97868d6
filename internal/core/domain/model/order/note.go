package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// Department is the audience of a note. The visibility filter uses it to
// decide which roles may read an order-level note.
type Department int

const (
	// DepartmentUnknown represents an invalid or undefined department.
	DepartmentUnknown Department = iota

	// DepartmentEveryone makes a note readable by all roles.
	DepartmentEveryone

	// DepartmentPrintshop addresses production staff.
	DepartmentPrintshop

	// DepartmentDelivery addresses drivers.
	DepartmentDelivery

	// DepartmentManagement restricts a note to managers.
	DepartmentManagement
)

func getDepartmentStrings() map[Department]string {
	return map[Department]string{
		DepartmentUnknown:    "unknown",
		DepartmentEveryone:   "everyone",
		DepartmentPrintshop:  "printshop",
		DepartmentDelivery:   "delivery",
		DepartmentManagement: "management",
	}
}

// DepartmentFromString parses a department wire name.
func DepartmentFromString(s string) (Department, error) {
	for dept, name := range getDepartmentStrings() {
		if dept != DepartmentUnknown && name == s {
			return dept, nil
		}
	}
	return DepartmentUnknown,
		errs.NewValueIsInvalidErrorWithCause("department", fmt.Errorf("%q is not a valid department", s))
}

// Validate checks if the Department value is valid.
func (d Department) Validate() error {
	if _, ok := getDepartmentStrings()[d]; !ok || d == DepartmentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("department", fmt.Errorf("%d is not a valid department", d))
	}
	return nil
}

// String returns the wire name of the department. Implements fmt.Stringer.
func (d Department) String() string {
	if str, ok := getDepartmentStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// ErrNoteIsNotConstructed is returned when a Note was not created via NewNote.
var ErrNoteIsNotConstructed = errors.New("Note must be created via NewNote constructor")

// Note is a free-text annotation on an order, optionally referencing one of
// the order's items. Item-referencing notes inherit the item's visibility;
// order-level notes are gated by Department.
type Note struct {
	id         kernel.UUID
	itemID     *kernel.UUID
	department Department
	author     string
	text       string
	createdAt  time.Time

	isConstructed bool
}

// NewNote creates a note addressed to the given department.
// itemID is optional: nil makes it an order-level note.
func NewNote(
	id kernel.UUID,
	itemID *kernel.UUID,
	department Department,
	author string,
	text string,
	createdAt time.Time,
) (Note, error) {
	if err := id.Validate(); err != nil {
		return Note{}, err
	}
	if itemID != nil {
		if err := itemID.Validate(); err != nil {
			return Note{}, err
		}
	}
	if err := department.Validate(); err != nil {
		return Note{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Note{}, errs.NewValueIsRequiredError("note text")
	}

	return Note{
		id:            id,
		itemID:        itemID,
		department:    department,
		author:        author,
		text:          text,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// ID returns the note's unique identifier.
func (n Note) ID() kernel.UUID {
	return n.id
}

// ItemID returns the referenced item id, or nil for order-level notes.
func (n Note) ItemID() *kernel.UUID {
	return n.itemID
}

// Department returns the note's audience.
func (n Note) Department() Department {
	return n.department
}

// Author returns who wrote the note.
func (n Note) Author() string {
	return n.author
}

// Text returns the note body.
func (n Note) Text() string {
	return n.text
}

// CreatedAt returns when the note was written.
func (n Note) CreatedAt() time.Time {
	return n.createdAt
}

// Validate ensures the Note was created via NewNote.
func (n Note) Validate() error {
	if !n.isConstructed {
		return ErrNoteIsNotConstructed
	}
	return nil
}
