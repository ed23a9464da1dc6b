package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/r1zemon/patungan/internal/models"
	"github.com/r1zemon/patungan/internal/money"
)

var (
	// ErrNothingToSummarize is returned for a bill with no items, no tax and
	// no tip. Callers may render an all-zero summary instead (see SettleOrZero).
	ErrNothingToSummarize = errors.New("nothing to summarize: bill has no items, tax or tip")

	// ErrPayerRequired is returned when no payer is set, or the payer is not
	// one of the bill's participants.
	ErrPayerRequired = errors.New("a payer must be selected")
)

// Settle computes every participant's share of a bill and the settlements
// each non-payer owes the payer.
//
// Algorithm:
//   - Only assigned units count; unassigned units are excluded for everyone
//   - Subtotal per participant = Σ unitPrice × assigned units
//   - PAYER_PAYS_ALL: tax + tip go to the payer
//   - SPLIT_EQUALLY: tax + tip divided over all participants, truncated to
//     the currency's minor unit; the remainder goes to the payer
//   - One settlement per non-payer whose share is positive
//
// Settle is pure: it never modifies bill and returns a new result each call.
func Settle(bill models.Bill) (*models.SettlementResult, error) {
	policy := bill.Policy
	if len(bill.Items) == 0 && policy.TaxAmount.IsZero() && policy.TipAmount.IsZero() {
		return nil, ErrNothingToSummarize
	}
	return settle(bill)
}

// SettleOrZero behaves like Settle but turns ErrNothingToSummarize into an
// all-zero summary.
func SettleOrZero(bill models.Bill) (*models.SettlementResult, error) {
	result, err := Settle(bill)
	if errors.Is(err, ErrNothingToSummarize) {
		return settle(bill)
	}
	return result, err
}

func settle(bill models.Bill) (*models.SettlementResult, error) {
	policy := bill.Policy
	if err := validatePolicy(policy); err != nil {
		return nil, err
	}
	if policy.PayerID == "" {
		return nil, ErrPayerRequired
	}
	payer, ok := bill.Participant(policy.PayerID)
	if !ok {
		return nil, fmt.Errorf("%w: payer %s is not a participant", ErrPayerRequired, policy.PayerID)
	}

	currency := money.NormalizeCurrency(policy.Currency, "")
	shares := make(map[string]*models.PersonShare, len(bill.Participants))
	for _, p := range bill.Participants {
		shares[p.ID] = &models.PersonShare{
			ParticipantID: p.ID,
			Name:          p.Name,
			Subtotal:      decimal.Zero,
			Extras:        decimal.Zero,
			Items:         []models.PersonItem{},
		}
	}

	for _, item := range bill.Items {
		for _, a := range item.Assignments {
			share, exists := shares[a.ParticipantID]
			if !exists || a.Units <= 0 {
				continue
			}
			amount := money.Line(item.UnitPrice, a.Units)
			share.Subtotal = share.Subtotal.Add(amount)
			share.Items = append(share.Items, models.PersonItem{
				ItemID: item.ID,
				Name:   item.Name,
				Units:  a.Units,
				Amount: amount,
			})
		}
	}

	extras := policy.Extras()
	switch policy.SplitStrategy {
	case models.PayerPaysAll:
		shares[payer.ID].Extras = extras
	case models.SplitEqually:
		each, remainder, err := money.SplitEvenly(extras, len(bill.Participants), money.Places(currency))
		if err != nil {
			return nil, fmt.Errorf("failed to split extras: %w", err)
		}
		for _, share := range shares {
			share.Extras = each
		}
		shares[payer.ID].Extras = each.Add(remainder)
	}

	result := &models.SettlementResult{
		Currency:       currency,
		PerPersonShare: make(map[string]decimal.Decimal, len(bill.Participants)),
		GrandTotal:     decimal.Zero,
		Settlements:    []models.Settlement{},
		Breakdown:      make([]models.PersonShare, 0, len(bill.Participants)),
		Unassigned:     bill.Unassigned(),
	}
	for _, p := range bill.Participants {
		share := shares[p.ID]
		share.Total = share.Subtotal.Add(share.Extras)
		result.PerPersonShare[p.Name] = share.Total
		result.GrandTotal = result.GrandTotal.Add(share.Total)
		result.Breakdown = append(result.Breakdown, *share)

		if p.ID != payer.ID && share.Total.IsPositive() {
			result.Settlements = append(result.Settlements, models.Settlement{
				BillID: bill.ID,
				From:   p.Name,
				To:     payer.Name,
				FromID: p.ID,
				ToID:   payer.ID,
				Amount: share.Total,
			})
		}
	}

	return result, nil
}

func validatePolicy(p models.BillPolicy) error {
	if p.TaxAmount.IsNegative() || p.TipAmount.IsNegative() {
		return fmt.Errorf("%w: tax and tip must not be negative", models.ErrInvalidPolicy)
	}
	if !p.SplitStrategy.Valid() {
		return fmt.Errorf("%w: unknown split strategy %q", models.ErrInvalidPolicy, p.SplitStrategy)
	}
	return nil
}
