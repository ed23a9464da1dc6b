package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps the units of a single line item.
const MaxQuantity = 1_000_000

// ErrInvalidPolicy is returned for a negative tax or tip, or an unknown
// split strategy.
var ErrInvalidPolicy = errors.New("invalid bill policy")

// SplitStrategy selects how tax and tip are distributed across participants.
type SplitStrategy string

const (
	// PayerPaysAll adds all tax and tip to the payer's share.
	PayerPaysAll SplitStrategy = "PAYER_PAYS_ALL"

	// SplitEqually divides tax and tip evenly across every participant.
	SplitEqually SplitStrategy = "SPLIT_EQUALLY"
)

// Valid reports whether s is a known strategy.
func (s SplitStrategy) Valid() bool {
	return s == PayerPaysAll || s == SplitEqually
}

// Bill is a complete snapshot of one split-expense session.
// It is the unit persisted at the storage boundary.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Title is the human-readable name for the bill.
	// Auto-generated from participants when left empty.
	Title string `json:"title"`

	// Participants in the order they were added.
	Participants []Participant `json:"participants"`

	// Items are the line items in the order they were added.
	Items []LineItem `json:"items"`

	// Policy carries the payer and the tax/tip distribution.
	Policy BillPolicy `json:"policy"`

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last mutation.
	UpdatedAt int64 `json:"updatedAt"`
}

// Participant is one person splitting a bill.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Assignment says how many units of a line item one participant consumed.
type Assignment struct {
	ParticipantID string `json:"participantId"`
	Units         int    `json:"unitCount"`
}

// LineItem is one priced entry on a receipt.
type LineItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// UnitPrice is the authoritative per-unit cost; it is never derived
	// from a line total.
	UnitPrice decimal.Decimal `json:"unitPrice"`

	// Quantity is the number of units on the receipt (at least 1).
	Quantity int `json:"quantity"`

	// Assignments are kept in insertion order. Their unit counts never sum
	// to more than Quantity; any shortfall is unassigned.
	Assignments []Assignment `json:"assignments"`
}

// AssignedUnits returns the number of units that have an owner.
func (i LineItem) AssignedUnits() int {
	n := 0
	for _, a := range i.Assignments {
		n += a.Units
	}
	return n
}

// UnassignedUnits returns the number of units nobody has claimed.
func (i LineItem) UnassignedUnits() int {
	return i.Quantity - i.AssignedUnits()
}

// LineTotal is unitPrice * quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// UnitsFor returns the units assigned to a participant, or 0.
func (i LineItem) UnitsFor(participantID string) int {
	for _, a := range i.Assignments {
		if a.ParticipantID == participantID {
			return a.Units
		}
	}
	return 0
}

// BillPolicy configures who paid and how extras are shared.
type BillPolicy struct {
	// PayerID references a participant; empty means no payer selected yet.
	PayerID string `json:"payerId"`

	TaxAmount decimal.Decimal `json:"taxAmount"`
	TipAmount decimal.Decimal `json:"tipAmount"`

	SplitStrategy SplitStrategy `json:"splitStrategy"`

	// Currency is an ISO-4217 code; it fixes the minor unit used when
	// extras do not divide evenly.
	Currency string `json:"currency"`
}

// Extras returns tax + tip.
func (p BillPolicy) Extras() decimal.Decimal {
	return p.TaxAmount.Add(p.TipAmount)
}

// Participant returns the participant with the given ID.
func (b *Bill) Participant(id string) (Participant, bool) {
	for _, p := range b.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// Clone returns a deep copy of the bill.
func (b *Bill) Clone() Bill {
	out := *b
	out.Participants = append([]Participant(nil), b.Participants...)
	out.Items = make([]LineItem, len(b.Items))
	for i, item := range b.Items {
		item.Assignments = append([]Assignment(nil), item.Assignments...)
		out.Items[i] = item
	}
	return out
}

// Unassigned lists items that have units nobody claimed, with the value of
// those units.
func (b *Bill) Unassigned() []UnassignedItem {
	var out []UnassignedItem
	for _, item := range b.Items {
		n := item.UnassignedUnits()
		if n <= 0 {
			continue
		}
		out = append(out, UnassignedItem{
			ItemID:     item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unassigned: n,
			Value:      item.UnitPrice.Mul(decimal.NewFromInt(int64(n))),
		})
	}
	return out
}
