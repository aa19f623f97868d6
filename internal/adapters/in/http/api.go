package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// Request headers carrying the acting user. The dashboard frontend fills
// them from its session; the engine trusts them as-is.
const (
	headerUserRole  = "X-User-Role"
	headerUserName  = "X-User-Name"
	headerShopScope = "X-Shop-Scope"
)

// Error is the JSON error envelope for all failure responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one line item in an order intake request.
type NewOrderItem struct {
	ProductName string            `json:"productName"`
	Description string            `json:"description,omitempty"`
	Quantity    int               `json:"quantity"`
	Specs       map[string]string `json:"specs,omitempty"`
}

// NewOrder is the order intake request body.
type NewOrder struct {
	ExternalID     *string        `json:"externalId,omitempty"`
	CustomerID     string         `json:"customerId"`
	DeliveryMethod string         `json:"deliveryMethod"`
	AmountTotal    string         `json:"amountTotal"`
	Source         string         `json:"source,omitempty"`
	Items          []NewOrderItem `json:"items"`
}

// NewCustomer is the customer registration request body.
type NewCustomer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Address string  `json:"address,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

// NewPrintshop is the printshop registration request body.
type NewPrintshop struct {
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// SetStatus is the item status mutation request body.
type SetStatus struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// SetPrintshop is the item printshop assignment request body.
// A null printshopId clears the assignment.
type SetPrintshop struct {
	PrintshopID *string `json:"printshopId"`
}

// SetDueDate is the item due date request body. A null dueDate clears it.
type SetDueDate struct {
	DueDate *time.Time `json:"dueDate"`
}

// SetPaymentStatus is the order payment status request body.
type SetPaymentStatus struct {
	Status string `json:"status"`
}

// SetPaymentMethod is the order payment method request body.
type SetPaymentMethod struct {
	Method string `json:"method"`
}

// NewNote is the note creation request body. A non-null itemId attaches the
// note to that line item.
type NewNote struct {
	ItemID     *string `json:"itemId,omitempty"`
	Department string  `json:"department"`
	Text       string  `json:"text"`
}

// CancelItems is the bulk cancellation request body.
type CancelItems struct {
	ItemIDs []string `json:"itemIds"`
}

// MutationResult reports whether a mutation changed anything. Repeating a
// mutation that is already in effect reads as changed=false.
type MutationResult struct {
	Changed bool `json:"changed"`
}

// CancelItemOutcome is the per-item result of a bulk cancellation.
type CancelItemOutcome struct {
	ItemID  string `json:"itemId"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

// Item is the item read model on the wire.
type Item struct {
	ID                string     `json:"id"`
	OrderID           string     `json:"orderId"`
	ProductName       string     `json:"productName"`
	Quantity          int        `json:"quantity"`
	Status            string     `json:"status"`
	StatusLabel       string     `json:"statusLabel"`
	PrintshopID       *string    `json:"printshopId,omitempty"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	ProductionStartAt *time.Time `json:"productionStartAt,omitempty"`
	ProductionReadyAt *time.Time `json:"productionReadyAt,omitempty"`
	DeliveredAt       *time.Time `json:"deliveredAt,omitempty"`
}

// Note is the note read model on the wire.
type Note struct {
	ID         string    `json:"id"`
	ItemID     *string   `json:"itemId,omitempty"`
	Department string    `json:"department"`
	Author     string    `json:"author"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Order is the order read model on the wire. StatusRollup reflects only
// the items visible to the acting user.
type Order struct {
	ID             string    `json:"id"`
	ExternalID     *string   `json:"externalId,omitempty"`
	CustomerID     string    `json:"customerId"`
	DeliveryMethod string    `json:"deliveryMethod"`
	PaymentStatus  string    `json:"paymentStatus"`
	StatusRollup   string    `json:"statusRollup"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Items          []Item    `json:"items"`
	Notes          []Note    `json:"notes"`
}

// Customer is the customer read model on the wire.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Address string  `json:"address,omitempty"`
}

// Printshop is the printshop read model on the wire.
type Printshop struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// OverdueItem is the overdue report row on the wire.
type OverdueItem struct {
	ItemID      string    `json:"itemId"`
	OrderID     string    `json:"orderId"`
	ProductName string    `json:"productName"`
	Status      string    `json:"status"`
	PrintshopID *string   `json:"printshopId,omitempty"`
	DueDate     time.Time `json:"dueDate"`
}

// actorFromRequest builds the acting user from the identity headers.
// Printshop managers additionally carry their shop scope as a
// comma-separated UUID list.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	role, err := actor.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return actor.Actor{}, err
	}

	switch role {
	case actor.Manager:
		return actor.NewManager(), nil
	case actor.Driver:
		return actor.NewDriver(), nil
	case actor.PrintshopManager:
		raw := strings.Split(ctx.Request().Header.Get(headerShopScope), ",")
		scope := make([]kernel.UUID, 0, len(raw))
		for _, s := range raw {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			id, idErr := kernel.UUIDFromString(s)
			if idErr != nil {
				return actor.Actor{}, idErr
			}
			scope = append(scope, id)
		}
		return actor.NewPrintshopManager(scope)
	default:
		return actor.Actor{}, errs.NewValueIsRequiredError("user role")
	}
}

// userFromRequest returns the display name used for history attribution.
func userFromRequest(ctx echo.Context) string {
	if name := ctx.Request().Header.Get(headerUserName); name != "" {
		return name
	}
	return ctx.Request().Header.Get(headerUserRole)
}

// respondError maps business errors to HTTP status codes. Forbidden
// transitions read as 403, terminal locks and write conflicts as 409,
// unknown objects as 404 and anything else as 500.
func respondError(ctx echo.Context, err error) error {
	var (
		forbiddenErr *errs.ForbiddenError
		terminalErr  *errs.TerminalStateError
		conflictErr  *errs.ConflictError
		notFoundErr  *errs.ObjectNotFoundError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &forbiddenErr):
		status = http.StatusForbidden
	case errors.As(err, &terminalErr), errors.As(err, &conflictErr):
		status = http.StatusConflict
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

// respondBadRequest reports malformed input.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func newItemResponse(view queries.ItemView) Item {
	return Item{
		ID:                view.ID.String(),
		OrderID:           view.OrderID.String(),
		ProductName:       view.ProductName,
		Quantity:          view.Quantity,
		Status:            view.Status.String(),
		StatusLabel:       view.StatusLabel,
		PrintshopID:       uuidPtrToString(view.PrintshopID),
		DueDate:           view.DueDate,
		ProductionStartAt: view.ProductionStartAt,
		ProductionReadyAt: view.ProductionReadyAt,
		DeliveredAt:       view.DeliveredAt,
	}
}

func newNoteResponse(view queries.NoteView) Note {
	return Note{
		ID:         view.ID.String(),
		ItemID:     uuidPtrToString(view.ItemID),
		Department: view.Department.String(),
		Author:     view.Author,
		Text:       view.Text,
		CreatedAt:  view.CreatedAt,
	}
}

func newOrderResponse(view queries.OrderView) Order {
	items := make([]Item, len(view.Items))
	for i, item := range view.Items {
		items[i] = newItemResponse(item)
	}

	notes := make([]Note, len(view.Notes))
	for i, note := range view.Notes {
		notes[i] = newNoteResponse(note)
	}

	return Order{
		ID:             view.ID.String(),
		ExternalID:     view.ExternalID,
		CustomerID:     view.CustomerID.String(),
		DeliveryMethod: view.DeliveryMethod.String(),
		PaymentStatus:  view.PaymentStatus.String(),
		StatusRollup:   view.StatusRollup.String(),
		Version:        view.Version,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
		Items:          items,
		Notes:          notes,
	}
}
