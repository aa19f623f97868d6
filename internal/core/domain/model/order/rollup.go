package order

// RollupStatus is the aggregate status of an order derived from its items'
// statuses. It mirrors the item Status values and adds Mixed for orders
// whose remaining items sit in incompatible stages.
//
// A rollup is never stored: it is recomputed from the current items on
// every read by services.StatusRollup.
type RollupStatus int

const (
	// RollupUnknown represents an invalid or undefined rollup.
	RollupUnknown RollupStatus = iota

	RollupNew
	RollupAssigned
	RollupInProduction
	RollupReady
	RollupOutForDelivery
	RollupPickedUp
	RollupDelivered
	RollupOnHold
	RollupCanceled

	// RollupMixed indicates the order's non-canceled items are spread
	// across stages with no single representative status.
	RollupMixed
)

func getRollupStrings() map[RollupStatus]string {
	return map[RollupStatus]string{
		RollupUnknown:        "unknown",
		RollupNew:            "new",
		RollupAssigned:       "assigned",
		RollupInProduction:   "in_production",
		RollupReady:          "ready",
		RollupOutForDelivery: "out_for_delivery",
		RollupPickedUp:       "picked_up",
		RollupDelivered:      "delivered",
		RollupOnHold:         "on_hold",
		RollupCanceled:       "canceled",
		RollupMixed:          "mixed",
	}
}

// RollupFromStatus lifts an item status into the rollup domain,
// used when all of an order's items share one status.
func RollupFromStatus(s Status) RollupStatus {
	switch s {
	case New:
		return RollupNew
	case Assigned:
		return RollupAssigned
	case InProduction:
		return RollupInProduction
	case Ready:
		return RollupReady
	case OutForDelivery:
		return RollupOutForDelivery
	case PickedUp:
		return RollupPickedUp
	case Delivered:
		return RollupDelivered
	case OnHold:
		return RollupOnHold
	case Canceled:
		return RollupCanceled
	case Unknown:
		return RollupUnknown
	default:
		return RollupUnknown
	}
}

// String returns the wire name of the rollup (e.g. "mixed").
// Implements fmt.Stringer.
func (r RollupStatus) String() string {
	if str, ok := getRollupStrings()[r]; ok {
		return str
	}
	return "unknown"
}
