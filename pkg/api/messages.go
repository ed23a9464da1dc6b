package api

import "github.com/shopspring/decimal"

type CreateBillRequest struct {
	Title            string   `json:"title" validate:"max=200"`
	Currency         string   `json:"currency" validate:"omitempty,alpha,len=3"`
	ParticipantNames []string `json:"participantNames" validate:"max=100,dive,required,max=100"`
}

type CreateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type GetBillRequest struct {
	BillId string `json:"billId" validate:"required"`
}

type GetBillResponse struct {
	Bill *Bill `json:"bill"`
	// Unassigned warns about units nobody claimed yet.
	Unassigned []*UnassignedItem `json:"unassigned"`
	// Settlements are the ones stored by the last Settle call, if the bill
	// has not changed since.
	Settlements []*Settlement `json:"settlements"`
}

type DeleteBillRequest struct {
	BillId string `json:"billId" validate:"required"`
}

type DeleteBillResponse struct {
	Success bool `json:"success"`
}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []*BillSummary `json:"bills"`
}

type AddParticipantRequest struct {
	BillId string `json:"billId" validate:"required"`
	Name   string `json:"name" validate:"required,max=100"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
	Bill        *Bill        `json:"bill"`
}

type RenameParticipantRequest struct {
	BillId        string `json:"billId" validate:"required"`
	ParticipantId string `json:"participantId" validate:"required"`
	Name          string `json:"name" validate:"required,max=100"`
}

type RenameParticipantResponse struct {
	Bill *Bill `json:"bill"`
}

type RemoveParticipantRequest struct {
	BillId        string `json:"billId" validate:"required"`
	ParticipantId string `json:"participantId" validate:"required"`
}

type RemoveParticipantResponse struct {
	Bill *Bill `json:"bill"`
	// PayerReselected is set when the removed participant was the payer and
	// the first remaining participant took over.
	PayerReselected bool `json:"payerReselected"`
}

type AddItemRequest struct {
	BillId    string          `json:"billId" validate:"required"`
	Name      string          `json:"name" validate:"max=200"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity" validate:"min=1,max=1000000"`
}

type AddItemResponse struct {
	Item *LineItem `json:"item"`
	Bill *Bill     `json:"bill"`
}

// UpdateItemRequest changes only the fields that are set.
type UpdateItemRequest struct {
	BillId    string           `json:"billId" validate:"required"`
	ItemId    string           `json:"itemId" validate:"required"`
	Name      *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Quantity  *int             `json:"quantity,omitempty" validate:"omitempty,min=1,max=1000000"`
}

type UpdateItemResponse struct {
	Item *LineItem `json:"item"`
	Bill *Bill     `json:"bill"`
}

type RemoveItemRequest struct {
	BillId string `json:"billId" validate:"required"`
	ItemId string `json:"itemId" validate:"required"`
}

type RemoveItemResponse struct {
	Bill *Bill `json:"bill"`
}

type SetAssignmentRequest struct {
	BillId        string `json:"billId" validate:"required"`
	ItemId        string `json:"itemId" validate:"required"`
	ParticipantId string `json:"participantId" validate:"required"`
	UnitCount     int    `json:"unitCount" validate:"min=0,max=1000000"`
}

type SetAssignmentResponse struct {
	Item *LineItem `json:"item"`
	Bill *Bill     `json:"bill"`
}

// SetPolicyRequest replaces the policy. An empty split strategy or
// currency keeps the current one.
type SetPolicyRequest struct {
	BillId        string          `json:"billId" validate:"required"`
	PayerId       string          `json:"payerId"`
	TaxAmount     decimal.Decimal `json:"taxAmount" validate:"nonnegative_decimal"`
	TipAmount     decimal.Decimal `json:"tipAmount" validate:"nonnegative_decimal"`
	SplitStrategy string          `json:"splitStrategy" validate:"omitempty,oneof=PAYER_PAYS_ALL SPLIT_EQUALLY"`
	Currency      string          `json:"currency" validate:"omitempty,alpha,len=3"`
}

type SetPolicyResponse struct {
	Bill *Bill `json:"bill"`
}

// ImportReceiptRequest carries either already extracted items or a raw
// image for the configured extraction service.
type ImportReceiptRequest struct {
	BillId           string         `json:"billId" validate:"required"`
	Items            []*ReceiptItem `json:"items" validate:"required_without=Image,dive,required"`
	Image            []byte         `json:"image,omitempty"`
	ImageContentType string         `json:"imageContentType,omitempty"`
}

type ImportReceiptResponse struct {
	Bill     *Bill            `json:"bill"`
	Added    []*LineItem      `json:"added"`
	Rejected []*ItemRejection `json:"rejected"`
}

type SettleRequest struct {
	BillId string `json:"billId" validate:"required"`
	// AllowEmpty returns an all-zero summary instead of failing when the
	// bill has nothing to settle.
	AllowEmpty bool `json:"allowEmpty"`
}

type SettleResponse struct {
	Result     *SettlementResult `json:"result"`
	Unassigned []*UnassignedItem `json:"unassigned"`
}

type GetBalancesRequest struct {
	BillIds []string `json:"billIds" validate:"required,min=1,max=100,dive,required"`
}

type GetBalancesResponse struct {
	Balances []*MemberBalance `json:"balances"`
	Debts    []*DebtEdge      `json:"debts"`
}
