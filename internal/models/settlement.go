package models

import "github.com/shopspring/decimal"

// Settlement is a directed amount one participant owes the payer.
type Settlement struct {
	// ID is the unique identifier for a persisted settlement (UUID format).
	// Empty until the settlement is stored.
	ID string `json:"id,omitempty"`

	// BillID is the bill this settlement was computed from.
	BillID string `json:"billId,omitempty"`

	// From is the display name of the participant who owes.
	From string `json:"from"`

	// To is the display name of the payer.
	To string `json:"to"`

	FromID string `json:"fromId"`
	ToID   string `json:"toId"`

	Amount decimal.Decimal `json:"amount"`

	// CreatedAt is the Unix timestamp when the settlement was stored.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// PersonItem is one participant's part of a line item.
type PersonItem struct {
	ItemID string          `json:"itemId"`
	Name   string          `json:"name"`
	Units  int             `json:"units"`
	Amount decimal.Decimal `json:"amount"`
}

// PersonShare is one participant's computed share of a bill.
type PersonShare struct {
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`

	// Subtotal is the cost of the units assigned to this participant.
	Subtotal decimal.Decimal `json:"subtotal"`

	// Extras is this participant's part of tax and tip.
	Extras decimal.Decimal `json:"extras"`

	// Total is Subtotal + Extras.
	Total decimal.Decimal `json:"total"`

	Items []PersonItem `json:"items"`
}

// UnassignedItem reports a line item with units nobody claimed.
// Those units are excluded from every total.
type UnassignedItem struct {
	ItemID     string          `json:"itemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Unassigned int             `json:"unassigned"`
	Value      decimal.Decimal `json:"value"`
}

// SettlementResult is the derived output of a settlement computation.
// It is recomputed from scratch on every request and never edited in place.
type SettlementResult struct {
	Currency string `json:"currency"`

	// PerPersonShare maps participant name to owed amount.
	PerPersonShare map[string]decimal.Decimal `json:"perPersonShare"`

	// GrandTotal equals the sum of PerPersonShare exactly.
	GrandTotal decimal.Decimal `json:"grandTotal"`

	// Settlements are ordered by participant order on the bill.
	Settlements []Settlement `json:"settlements"`

	// Breakdown lists every participant's share in participant order.
	Breakdown []PersonShare `json:"breakdown"`

	// Unassigned lists items whose unclaimed units were excluded.
	Unassigned []UnassignedItem `json:"unassigned,omitempty"`
}
