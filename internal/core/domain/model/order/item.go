package order

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

const maxItemQuantity = 10000

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrPrintshopStillRequired is returned when clearing an item's
	// printshop while the item is mid-production: an unassigned item may
	// only be new or terminal.
	ErrPrintshopStillRequired = errors.New(
		"printshop cannot be cleared while the item is in production flow")
)

// StatusChange is one entry of an item's append-only status history.
// Every status mutation appends exactly one entry carrying the prior and
// new status.
type StatusChange struct {
	ID        kernel.UUID
	From      Status
	To        Status
	ChangedAt time.Time
	ChangedBy string
	Note      string
}

// Item is a single line item of a print order: one product being produced
// by at most one printshop. Items carry their own fulfillment Status; the
// owning order's aggregate status is derived from them.
//
// Invariants:
//   - status transitions pass ValidateTransition for the acting role
//   - the status history is append-only, one entry per status mutation
//   - an item without a printshop is either new or terminal; assigning a
//     shop to a new item promotes it to assigned, clearing the shop of an
//     assigned item demotes it to new
//   - production timestamps are stamped on the first transition into
//     in_production / ready / delivered and never cleared
type Item struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productName string
	description string
	quantity    int
	specs       map[string]string

	status      Status
	printshopID *kernel.UUID
	dueDate     *time.Time

	productionStartAt *time.Time
	productionReadyAt *time.Time
	deliveredAt       *time.Time

	history []StatusChange

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewItem creates a line item at order intake. The item starts in status
// New with no printshop assigned and an empty status history.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productName string,
	description string,
	quantity int,
	specs map[string]string,
	createdAt time.Time,
) (*Item, error) {
	item := &Item{
		status:        New,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductName(productName),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.specs = copySpecs(specs)

	return item, nil
}

// RestoreItem reconstructs an item from persistence with its full state.
// No transition rules are applied; the stored state is trusted.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productName string,
	description string,
	quantity int,
	specs map[string]string,
	status Status,
	printshopID *kernel.UUID,
	dueDate *time.Time,
	productionStartAt *time.Time,
	productionReadyAt *time.Time,
	deliveredAt *time.Time,
	history []StatusChange,
	createdAt time.Time,
	updatedAt time.Time,
) (*Item, error) {
	item := &Item{
		status:            status,
		printshopID:       printshopID,
		dueDate:           dueDate,
		productionStartAt: productionStartAt,
		productionReadyAt: productionReadyAt,
		deliveredAt:       deliveredAt,
		history:           append([]StatusChange(nil), history...),
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.specs = copySpecs(specs)

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the id of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductName returns the ordered product's name.
func (i *Item) ProductName() string {
	return i.productName
}

// Description returns the free-form item description.
func (i *Item) Description() string {
	return i.description
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Specs returns a copy of the free-form production specs.
func (i *Item) Specs() map[string]string {
	return copySpecs(i.specs)
}

// Status returns the current fulfillment status.
func (i *Item) Status() Status {
	return i.status
}

// Printshop returns the assigned printshop's id, or nil when unassigned.
func (i *Item) Printshop() *kernel.UUID {
	return i.printshopID
}

// DueDate returns the requested completion date, or nil when unset.
func (i *Item) DueDate() *time.Time {
	return i.dueDate
}

// ProductionStartAt returns when production first started, or nil.
func (i *Item) ProductionStartAt() *time.Time {
	return i.productionStartAt
}

// ProductionReadyAt returns when the item first became ready, or nil.
func (i *Item) ProductionReadyAt() *time.Time {
	return i.productionReadyAt
}

// DeliveredAt returns when the item was delivered, or nil.
func (i *Item) DeliveredAt() *time.Time {
	return i.deliveredAt
}

// History returns a copy of the append-only status history, oldest first.
func (i *Item) History() []StatusChange {
	return append([]StatusChange(nil), i.history...)
}

// CreatedAt returns the intake timestamp.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// ChangeStatus moves the item to the requested status on behalf of the
// acting role.
//
// Returns (false, nil) when the requested status equals the current one:
// an idempotent no-op, not an error. Otherwise the transition is validated
// against the role's permission set and the terminal lock; on success one
// history entry is appended, the status is updated, updatedAt is stamped,
// and the production cascade timestamps are applied:
//   - first transition into InProduction stamps the production start date
//   - first transition into Ready stamps the production ready date
//   - first transition into Delivered stamps the delivery date
//
// Timestamps are set once and never cleared by later transitions.
func (i *Item) ChangeStatus(
	requested Status,
	role actor.Role,
	changedBy string,
	note string,
	at time.Time,
) (bool, error) {
	if err := i.Validate(); err != nil {
		return false, err
	}

	if requested == i.status {
		return false, nil
	}

	if err := ValidateTransition(i.status, requested, role); err != nil {
		var terminalErr *errs.TerminalStateError
		if errors.As(err, &terminalErr) {
			terminalErr.ItemID = i.id.String()
		}
		return false, err
	}

	i.applyStatus(requested, changedBy, note, at)
	return true, nil
}

// AssignPrintshop updates the item's printshop assignment. Any actor with
// item-edit rights may reassign; the cascade is role-independent:
//   - assigning a shop while the item is New promotes it to Assigned
//   - clearing the shop while the item is Assigned demotes it to New
//
// Clearing the shop of an item that is mid-production (neither new,
// assigned, nor terminal) is rejected with ErrPrintshopStillRequired: an
// unassigned item may only be new or terminal.
//
// Returns (false, nil) when the assignment already equals the requested one.
func (i *Item) AssignPrintshop(shopID *kernel.UUID, changedBy string, at time.Time) (bool, error) {
	if err := i.Validate(); err != nil {
		return false, err
	}
	if shopID != nil {
		if err := shopID.Validate(); err != nil {
			return false, err
		}
	}

	if samePrintshop(i.printshopID, shopID) {
		return false, nil
	}

	if shopID == nil && i.status != Assigned && i.status != New && !i.status.IsTerminal() {
		return false, ErrPrintshopStillRequired
	}

	if shopID != nil && i.status == New {
		i.applyStatus(Assigned, changedBy, "printshop assigned", at)
	}
	if shopID == nil && i.status == Assigned {
		i.applyStatus(New, changedBy, "printshop cleared", at)
	}

	if shopID != nil {
		assigned := *shopID
		i.printshopID = &assigned
	} else {
		i.printshopID = nil
	}
	i.updatedAt = at

	return true, nil
}

// SetDueDate updates the requested completion date. Plain field update,
// no cascade.
func (i *Item) SetDueDate(dueDate *time.Time, at time.Time) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if dueDate != nil {
		d := *dueDate
		i.dueDate = &d
	} else {
		i.dueDate = nil
	}
	i.updatedAt = at

	return nil
}

// applyStatus performs the already-validated status write: one history
// entry, the status itself, the set-once cascade timestamps, updatedAt.
func (i *Item) applyStatus(requested Status, changedBy string, note string, at time.Time) {
	i.history = append(i.history, StatusChange{
		ID:        kernel.NewUUID(),
		From:      i.status,
		To:        requested,
		ChangedAt: at,
		ChangedBy: changedBy,
		Note:      note,
	})
	i.status = requested

	switch requested { //nolint:exhaustive // only stamped statuses matter
	case InProduction:
		if i.productionStartAt == nil {
			stamp := at
			i.productionStartAt = &stamp
		}
	case Ready:
		if i.productionReadyAt == nil {
			stamp := at
			i.productionReadyAt = &stamp
		}
	case Delivered:
		if i.deliveredAt == nil {
			stamp := at
			i.deliveredAt = &stamp
		}
	}

	i.updatedAt = at
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func copySpecs(specs map[string]string) map[string]string {
	if specs == nil {
		return nil
	}
	cp := make(map[string]string, len(specs))
	for k, v := range specs {
		cp[k] = v
	}
	return cp
}

func samePrintshop(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}
