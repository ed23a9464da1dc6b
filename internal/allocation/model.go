// Package allocation maintains the participants and line items of a bill and
// enforces per-item quantity conservation at mutation time.
//
// A Model is owned by a single caller. It does no locking; callers that share
// a bill across goroutines must serialize mutations themselves.
package allocation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/r1zemon/patungan/internal/models"
	"github.com/r1zemon/patungan/internal/money"
)

// Model is the editable state of one bill.
// Every method either applies its change completely or returns an error and
// leaves the model untouched.
type Model struct {
	bill models.Bill
}

// New creates an empty bill. Extras are split equally until a policy is set.
func New(title, currency string) *Model {
	now := time.Now().Unix()
	return &Model{bill: models.Bill{
		ID:    uuid.New().String(),
		Title: strings.TrimSpace(title),
		Policy: models.BillPolicy{
			SplitStrategy: models.SplitEqually,
			Currency:      money.NormalizeCurrency(currency, ""),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}}
}

// FromSnapshot restores a model from a stored or client-supplied snapshot.
// The snapshot is untrusted: every invariant is checked before it is accepted.
func FromSnapshot(b models.Bill) (*Model, error) {
	if err := validateSnapshot(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	b = b.Clone()
	b.Policy.Currency = money.NormalizeCurrency(b.Policy.Currency, "")
	if !b.Policy.SplitStrategy.Valid() {
		b.Policy.SplitStrategy = models.SplitEqually
	}
	return &Model{bill: b}, nil
}

// Snapshot returns a deep copy of the bill.
func (m *Model) Snapshot() models.Bill {
	return m.bill.Clone()
}

// ID returns the bill ID.
func (m *Model) ID() string {
	return m.bill.ID
}

// Participants returns a copy of the participant list.
func (m *Model) Participants() []models.Participant {
	return append([]models.Participant(nil), m.bill.Participants...)
}

// Item returns a copy of the item with the given ID.
func (m *Model) Item(id string) (models.LineItem, bool) {
	idx := m.itemIndex(id)
	if idx < 0 {
		return models.LineItem{}, false
	}
	item := m.bill.Items[idx]
	item.Assignments = append([]models.Assignment(nil), item.Assignments...)
	return item, true
}

// Policy returns the current bill policy.
func (m *Model) Policy() models.BillPolicy {
	return m.bill.Policy
}

// SetTitle renames the bill.
func (m *Model) SetTitle(title string) {
	m.bill.Title = strings.TrimSpace(title)
	m.touch()
}

// AddParticipant adds a participant with a fresh ID.
func (m *Model) AddParticipant(name string) (models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Participant{}, ErrBlankName
	}
	if m.nameTaken(name, "") {
		return models.Participant{}, &DuplicateNameError{Name: name}
	}
	p := models.Participant{ID: uuid.New().String(), Name: name}
	m.bill.Participants = append(m.bill.Participants, p)
	m.touch()
	return p, nil
}

// RenameParticipant changes a participant's display name.
func (m *Model) RenameParticipant(id, name string) error {
	idx := m.participantIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrParticipantNotFound, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	if m.nameTaken(name, id) {
		return &DuplicateNameError{Name: name}
	}
	m.bill.Participants[idx].Name = name
	m.touch()
	return nil
}

// RemoveParticipant removes a participant and strips their assignments from
// every item. Their units become unassigned rather than redistributed.
// payerRemoved is true when the participant was the payer; the payer is then
// cleared and the caller must pick a new one (see ReselectPayer).
func (m *Model) RemoveParticipant(id string) (payerRemoved bool, err error) {
	idx := m.participantIndex(id)
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", ErrParticipantNotFound, id)
	}
	m.bill.Participants = append(m.bill.Participants[:idx:idx], m.bill.Participants[idx+1:]...)

	for i := range m.bill.Items {
		item := &m.bill.Items[i]
		kept := item.Assignments[:0:0]
		for _, a := range item.Assignments {
			if a.ParticipantID != id {
				kept = append(kept, a)
			}
		}
		item.Assignments = kept
	}

	if m.bill.Policy.PayerID == id {
		m.bill.Policy.PayerID = ""
		payerRemoved = true
	}
	m.touch()
	return payerRemoved, nil
}

// ReselectPayer sets the payer to the first remaining participant, or to
// none when the bill has no participants. It returns the new payer ID.
func (m *Model) ReselectPayer() string {
	m.bill.Policy.PayerID = ""
	if len(m.bill.Participants) > 0 {
		m.bill.Policy.PayerID = m.bill.Participants[0].ID
	}
	m.touch()
	return m.bill.Policy.PayerID
}

// AddItem appends a line item with no assignments.
func (m *Model) AddItem(name string, unitPrice decimal.Decimal, quantity int) (models.LineItem, error) {
	name = strings.TrimSpace(name)
	if err := validateItem(name, unitPrice, quantity); err != nil {
		return models.LineItem{}, err
	}
	item := models.LineItem{
		ID:        uuid.New().String(),
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
	m.bill.Items = append(m.bill.Items, item)
	m.touch()
	return item, nil
}

// ItemUpdate lists the fields UpdateItem changes; nil fields are kept.
type ItemUpdate struct {
	Name      *string
	UnitPrice *decimal.Decimal
	Quantity  *int
}

// UpdateItem edits an item. When the quantity drops below the assigned units,
// assignments are truncated from the end of the list: counts are reduced
// before entries are removed.
func (m *Model) UpdateItem(id string, upd ItemUpdate) (models.LineItem, error) {
	idx := m.itemIndex(id)
	if idx < 0 {
		return models.LineItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	item := m.bill.Items[idx]
	if upd.Name != nil {
		item.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.UnitPrice != nil {
		item.UnitPrice = *upd.UnitPrice
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if err := validateItem(item.Name, item.UnitPrice, item.Quantity); err != nil {
		return models.LineItem{}, err
	}

	item.Assignments = truncate(item.Assignments, item.AssignedUnits()-item.Quantity)
	m.bill.Items[idx] = item
	m.touch()
	return item, nil
}

// truncate removes excess units walking backwards through the assignments.
func truncate(assignments []models.Assignment, excess int) []models.Assignment {
	if excess <= 0 {
		return assignments
	}
	out := append([]models.Assignment(nil), assignments...)
	for i := len(out) - 1; i >= 0 && excess > 0; i-- {
		take := min(out[i].Units, excess)
		out[i].Units -= take
		excess -= take
	}
	kept := out[:0]
	for _, a := range out {
		if a.Units > 0 {
			kept = append(kept, a)
		}
	}
	return kept
}

// SetAssignment overwrites the units of an item assigned to a participant.
// A count of 0 removes the assignment.
func (m *Model) SetAssignment(itemID, participantID string, count int) error {
	idx := m.itemIndex(itemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if m.participantIndex(participantID) < 0 {
		return fmt.Errorf("%w: %s", ErrParticipantNotFound, participantID)
	}
	if count < 0 {
		return ErrNegativeCount
	}

	item := &m.bill.Items[idx]
	if count > item.Quantity {
		return &OverAssignmentError{ItemID: itemID, Quantity: item.Quantity, Requested: count}
	}
	// Both terms are bounded by the quantity, so neither side can overflow.
	others := item.AssignedUnits() - item.UnitsFor(participantID)
	if count > item.Quantity-others {
		return &OverAssignmentError{ItemID: itemID, Quantity: item.Quantity, Requested: others + count}
	}

	assignments := make([]models.Assignment, 0, len(item.Assignments)+1)
	found := false
	for _, a := range item.Assignments {
		if a.ParticipantID == participantID {
			found = true
			if count == 0 {
				continue
			}
			a.Units = count
		}
		assignments = append(assignments, a)
	}
	if !found && count > 0 {
		assignments = append(assignments, models.Assignment{ParticipantID: participantID, Units: count})
	}
	item.Assignments = assignments
	m.touch()
	return nil
}

// RemoveItem deletes an item and its assignments.
func (m *Model) RemoveItem(id string) error {
	idx := m.itemIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	m.bill.Items = append(m.bill.Items[:idx:idx], m.bill.Items[idx+1:]...)
	m.touch()
	return nil
}

// SetPolicy replaces the bill policy. The payer must be a current
// participant or empty; tax and tip must not be negative.
func (m *Model) SetPolicy(p models.BillPolicy) error {
	if err := m.validatePolicy(p); err != nil {
		return err
	}
	p.Currency = money.NormalizeCurrency(p.Currency, m.bill.Policy.Currency)
	m.bill.Policy = p
	m.touch()
	return nil
}

// UnassignedUnits lists items that still have units nobody claimed.
// Callers use it to warn before computing a settlement.
func (m *Model) UnassignedUnits() []models.UnassignedItem {
	return m.bill.Unassigned()
}

func (m *Model) touch() {
	m.bill.UpdatedAt = time.Now().Unix()
}

func (m *Model) participantIndex(id string) int {
	for i, p := range m.bill.Participants {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) itemIndex(id string) int {
	for i, item := range m.bill.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// nameTaken reports whether another participant (other than exceptID) uses
// name after case folding.
func (m *Model) nameTaken(name, exceptID string) bool {
	key := foldName(name)
	for _, p := range m.bill.Participants {
		if p.ID != exceptID && foldName(p.Name) == key {
			return true
		}
	}
	return false
}

func (m *Model) validatePolicy(p models.BillPolicy) error {
	if p.TaxAmount.IsNegative() {
		return fmt.Errorf("%w: tax must not be negative", models.ErrInvalidPolicy)
	}
	if p.TipAmount.IsNegative() {
		return fmt.Errorf("%w: tip must not be negative", models.ErrInvalidPolicy)
	}
	if !p.SplitStrategy.Valid() {
		return fmt.Errorf("%w: unknown split strategy %q", models.ErrInvalidPolicy, p.SplitStrategy)
	}
	if p.PayerID != "" && m.participantIndex(p.PayerID) < 0 {
		return fmt.Errorf("%w: payer %s", ErrParticipantNotFound, p.PayerID)
	}
	return nil
}

func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func validateItem(name string, unitPrice decimal.Decimal, quantity int) error {
	if name == "" {
		return &InvalidItemError{Reason: "name must not be blank"}
	}
	if unitPrice.IsNegative() {
		return &InvalidItemError{Name: name, Reason: "unit price must not be negative"}
	}
	if quantity < 1 {
		return &InvalidItemError{Name: name, Reason: "quantity must be at least 1"}
	}
	if quantity > models.MaxQuantity {
		return &InvalidItemError{Name: name, Reason: fmt.Sprintf("quantity must not exceed %d", models.MaxQuantity)}
	}
	return nil
}

func validateSnapshot(b *models.Bill) error {
	if b.ID == "" {
		return fmt.Errorf("missing bill id")
	}
	ids := make(map[string]bool, len(b.Participants))
	names := make(map[string]bool, len(b.Participants))
	for _, p := range b.Participants {
		if p.ID == "" || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("participant with empty id or name")
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate participant id %s", p.ID)
		}
		key := foldName(p.Name)
		if names[key] {
			return &DuplicateNameError{Name: p.Name}
		}
		ids[p.ID] = true
		names[key] = true
	}

	itemIDs := make(map[string]bool, len(b.Items))
	for _, item := range b.Items {
		if item.ID == "" || itemIDs[item.ID] {
			return fmt.Errorf("missing or duplicate item id %q", item.ID)
		}
		itemIDs[item.ID] = true
		if err := validateItem(strings.TrimSpace(item.Name), item.UnitPrice, item.Quantity); err != nil {
			return err
		}
		seen := make(map[string]bool, len(item.Assignments))
		for _, a := range item.Assignments {
			if !ids[a.ParticipantID] {
				return fmt.Errorf("item %s: %w: %s", item.ID, ErrParticipantNotFound, a.ParticipantID)
			}
			if seen[a.ParticipantID] {
				return fmt.Errorf("item %s: participant %s assigned twice", item.ID, a.ParticipantID)
			}
			if a.Units <= 0 {
				return fmt.Errorf("item %s: non-positive unit count", item.ID)
			}
			if a.Units > item.Quantity {
				return &OverAssignmentError{ItemID: item.ID, Quantity: item.Quantity, Requested: a.Units}
			}
			seen[a.ParticipantID] = true
		}
		if assigned := item.AssignedUnits(); assigned > item.Quantity {
			return &OverAssignmentError{ItemID: item.ID, Quantity: item.Quantity, Requested: assigned}
		}
	}

	p := b.Policy
	if p.TaxAmount.IsNegative() || p.TipAmount.IsNegative() {
		return fmt.Errorf("%w: negative tax or tip", models.ErrInvalidPolicy)
	}
	if p.SplitStrategy != "" && !p.SplitStrategy.Valid() {
		return fmt.Errorf("%w: unknown split strategy %q", models.ErrInvalidPolicy, p.SplitStrategy)
	}
	if p.PayerID != "" && !ids[p.PayerID] {
		return fmt.Errorf("%w: payer %s", ErrParticipantNotFound, p.PayerID)
	}
	return nil
}
