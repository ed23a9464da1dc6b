// Package api defines the wire messages of the patungan.v1 BillService.
// Messages are plain Go structs encoded as JSON; amounts travel as decimal
// strings so no precision is lost between client and server.
package api

import "github.com/shopspring/decimal"

// Participant is a person on a bill.
type Participant struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Assignment is a claim of units of one item by one participant.
type Assignment struct {
	ParticipantId string `json:"participantId"`
	UnitCount     int    `json:"unitCount"`
}

// LineItem is one line of a receipt.
type LineItem struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Assignments []*Assignment   `json:"assignments"`
}

// Policy holds the payer, extras and split strategy of a bill.
type Policy struct {
	PayerId       string          `json:"payerId"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TipAmount     decimal.Decimal `json:"tipAmount"`
	SplitStrategy string          `json:"splitStrategy"`
	Currency      string          `json:"currency"`
}

// Bill is a full bill snapshot.
type Bill struct {
	Id           string         `json:"id"`
	Title        string         `json:"title"`
	Participants []*Participant `json:"participants"`
	Items        []*LineItem    `json:"items"`
	Policy       *Policy        `json:"policy"`
	CreatedAt    int64          `json:"createdAt"`
	UpdatedAt    int64          `json:"updatedAt"`
}

// BillSummary is a bill header used in listings.
type BillSummary struct {
	Id               string   `json:"id"`
	Title            string   `json:"title"`
	Currency         string   `json:"currency"`
	ParticipantNames []string `json:"participantNames"`
	CreatedAt        int64    `json:"createdAt"`
	UpdatedAt        int64    `json:"updatedAt"`
}

// Settlement is a directed amount one participant owes the payer.
type Settlement struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	FromId string          `json:"fromId"`
	ToId   string          `json:"toId"`
	Amount decimal.Decimal `json:"amount"`
}

// PersonItem is one participant's part of a line item.
type PersonItem struct {
	ItemId string          `json:"itemId"`
	Name   string          `json:"name"`
	Units  int             `json:"units"`
	Amount decimal.Decimal `json:"amount"`
}

// PersonShare is one participant's computed share.
type PersonShare struct {
	ParticipantId string          `json:"participantId"`
	Name          string          `json:"name"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Extras        decimal.Decimal `json:"extras"`
	Total         decimal.Decimal `json:"total"`
	Items         []*PersonItem   `json:"items"`
}

// UnassignedItem warns about units nobody claimed.
type UnassignedItem struct {
	ItemId     string          `json:"itemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Unassigned int             `json:"unassigned"`
	Value      decimal.Decimal `json:"value"`
}

// SettlementResult is the computed summary of a bill.
type SettlementResult struct {
	Currency       string                     `json:"currency"`
	PerPersonShare map[string]decimal.Decimal `json:"perPersonShare"`
	GrandTotal     decimal.Decimal            `json:"grandTotal"`
	Settlements    []*Settlement              `json:"settlements"`
	Breakdown      []*PersonShare             `json:"breakdown"`
}

// ReceiptItem is an item proposed by receipt extraction.
type ReceiptItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// ItemRejection reports a receipt item that was not added.
type ItemRejection struct {
	Index  int          `json:"index"`
	Item   *ReceiptItem `json:"item"`
	Reason string       `json:"reason"`
}

// MemberBalance is one person's net position across bills.
type MemberBalance struct {
	Name       string          `json:"name"`
	NetBalance decimal.Decimal `json:"netBalance"`
	TotalOwed  decimal.Decimal `json:"totalOwed"`
	TotalOwes  decimal.Decimal `json:"totalOwes"`
}

// DebtEdge is a simplified debt between two people.
type DebtEdge struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}
