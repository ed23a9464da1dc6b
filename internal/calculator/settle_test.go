package calculator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/r1zemon/patungan/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// nasiGorengBill is two people sharing two plates of nasi goreng, one each.
func nasiGorengBill(strategy models.SplitStrategy) models.Bill {
	return models.Bill{
		ID: "bill-1",
		Participants: []models.Participant{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
		},
		Items: []models.LineItem{{
			ID:        "i1",
			Name:      "Nasi Goreng",
			UnitPrice: d("25000"),
			Quantity:  2,
			Assignments: []models.Assignment{
				{ParticipantID: "a", Units: 1},
				{ParticipantID: "b", Units: 1},
			},
		}},
		Policy: models.BillPolicy{
			PayerID:       "a",
			TaxAmount:     d("10000"),
			TipAmount:     decimal.Zero,
			SplitStrategy: strategy,
			Currency:      "IDR",
		},
	}
}

func assertShare(t *testing.T, result *models.SettlementResult, name, want string) {
	t.Helper()
	got, ok := result.PerPersonShare[name]
	if !ok {
		t.Errorf("missing share for %s", name)
		return
	}
	if !got.Equal(d(want)) {
		t.Errorf("%s share = %s, want %s", name, got, want)
	}
}

func assertConsistent(t *testing.T, result *models.SettlementResult) {
	t.Helper()
	sum := decimal.Zero
	for _, v := range result.PerPersonShare {
		sum = sum.Add(v)
	}
	if !sum.Equal(result.GrandTotal) {
		t.Errorf("sum of shares %s != grand total %s", sum, result.GrandTotal)
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name            string
		bill            func() models.Bill
		wantShares      map[string]string
		wantGrandTotal  string
		wantSettlements []models.Settlement
	}{
		{
			name:           "split equally",
			bill:           func() models.Bill { return nasiGorengBill(models.SplitEqually) },
			wantShares:     map[string]string{"A": "30000", "B": "30000"},
			wantGrandTotal: "60000",
			wantSettlements: []models.Settlement{
				{From: "B", To: "A", Amount: d("30000")},
			},
		},
		{
			name:           "payer pays all",
			bill:           func() models.Bill { return nasiGorengBill(models.PayerPaysAll) },
			wantShares:     map[string]string{"A": "35000", "B": "25000"},
			wantGrandTotal: "60000",
			wantSettlements: []models.Settlement{
				{From: "B", To: "A", Amount: d("25000")},
			},
		},
		{
			name: "unassigned units are excluded",
			bill: func() models.Bill {
				b := nasiGorengBill(models.SplitEqually)
				b.Participants = append(b.Participants, models.Participant{ID: "c", Name: "C"})
				b.Items[0].Quantity = 3
				b.Policy.TaxAmount = decimal.Zero
				return b
			},
			wantShares:     map[string]string{"A": "25000", "B": "25000", "C": "0"},
			wantGrandTotal: "50000",
			wantSettlements: []models.Settlement{
				{From: "B", To: "A", Amount: d("25000")},
			},
		},
		{
			name: "remainder of an uneven split goes to the payer",
			bill: func() models.Bill {
				b := nasiGorengBill(models.SplitEqually)
				b.Participants = append(b.Participants, models.Participant{ID: "c", Name: "C"})
				b.Policy.PayerID = "b"
				return b
			},
			// 10000 / 3 = 3333 each, remainder 1 to B.
			wantShares:     map[string]string{"A": "28333", "B": "28334", "C": "3333"},
			wantGrandTotal: "60000",
			wantSettlements: []models.Settlement{
				{From: "A", To: "B", Amount: d("28333")},
				{From: "C", To: "B", Amount: d("3333")},
			},
		},
		{
			name: "cents currency remainder",
			bill: func() models.Bill {
				return models.Bill{
					Participants: []models.Participant{{ID: "a", Name: "Ann"}, {ID: "b", Name: "Ben"}, {ID: "c", Name: "Cat"}},
					Items: []models.LineItem{{
						ID: "i", Name: "Pizza", UnitPrice: d("9.99"), Quantity: 3,
						Assignments: []models.Assignment{{ParticipantID: "a", Units: 1}, {ParticipantID: "b", Units: 1}, {ParticipantID: "c", Units: 1}},
					}},
					Policy: models.BillPolicy{PayerID: "c", TaxAmount: d("2.50"), TipAmount: d("3.00"), SplitStrategy: models.SplitEqually, Currency: "USD"},
				}
			},
			// 5.50 / 3 = 1.83 each, remainder 0.01 to Cat.
			wantShares:     map[string]string{"Ann": "11.82", "Ben": "11.82", "Cat": "11.83"},
			wantGrandTotal: "35.47",
			wantSettlements: []models.Settlement{
				{From: "Ann", To: "Cat", Amount: d("11.82")},
				{From: "Ben", To: "Cat", Amount: d("11.82")},
			},
		},
		{
			name: "all units unassigned only distributes extras",
			bill: func() models.Bill {
				b := nasiGorengBill(models.SplitEqually)
				b.Items[0].Assignments = nil
				return b
			},
			wantShares:     map[string]string{"A": "5000", "B": "5000"},
			wantGrandTotal: "10000",
			wantSettlements: []models.Settlement{
				{From: "B", To: "A", Amount: d("5000")},
			},
		},
		{
			name: "tax only bill with no items",
			bill: func() models.Bill {
				b := nasiGorengBill(models.PayerPaysAll)
				b.Items = nil
				return b
			},
			wantShares:      map[string]string{"A": "10000", "B": "0"},
			wantGrandTotal:  "10000",
			wantSettlements: []models.Settlement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Settle(tt.bill())
			if err != nil {
				t.Fatalf("Settle() error = %v", err)
			}
			if len(result.PerPersonShare) != len(tt.wantShares) {
				t.Errorf("got %d shares, want %d", len(result.PerPersonShare), len(tt.wantShares))
			}
			for name, want := range tt.wantShares {
				assertShare(t, result, name, want)
			}
			if !result.GrandTotal.Equal(d(tt.wantGrandTotal)) {
				t.Errorf("grand total = %s, want %s", result.GrandTotal, tt.wantGrandTotal)
			}
			assertConsistent(t, result)

			if len(result.Settlements) != len(tt.wantSettlements) {
				t.Fatalf("got %d settlements %+v, want %d", len(result.Settlements), result.Settlements, len(tt.wantSettlements))
			}
			for i, want := range tt.wantSettlements {
				got := result.Settlements[i]
				if got.From != want.From || got.To != want.To || !got.Amount.Equal(want.Amount) {
					t.Errorf("settlement %d = %s->%s %s, want %s->%s %s",
						i, got.From, got.To, got.Amount, want.From, want.To, want.Amount)
				}
			}
		})
	}
}

func TestSettleErrors(t *testing.T) {
	tests := []struct {
		name    string
		bill    func() models.Bill
		wantErr error
	}{
		{
			name: "nothing to summarize",
			bill: func() models.Bill {
				b := nasiGorengBill(models.SplitEqually)
				b.Items = nil
				b.Policy.TaxAmount = decimal.Zero
				return b
			},
			wantErr: ErrNothingToSummarize,
		},
		{
			name: "no payer",
			bill: func() models.Bill {
				b := nasiGorengBill(models.SplitEqually)
				b.Policy.PayerID = ""
				return b
			},
			wantErr: ErrPayerRequired,
		},
		{
			name: "payer not on bill",
			bill: func() models.Bill {
				b := nasiGorengBill(models.SplitEqually)
				b.Policy.PayerID = "ghost"
				return b
			},
			wantErr: ErrPayerRequired,
		},
		{
			name: "unknown strategy",
			bill: func() models.Bill {
				b := nasiGorengBill("EVERYONE_PAYS_DOUBLE")
				return b
			},
			wantErr: models.ErrInvalidPolicy,
		},
		{
			name: "negative tip",
			bill: func() models.Bill {
				b := nasiGorengBill(models.SplitEqually)
				b.Policy.TipAmount = d("-1")
				return b
			},
			wantErr: models.ErrInvalidPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Settle(tt.bill())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Settle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettleOrZero(t *testing.T) {
	b := nasiGorengBill(models.SplitEqually)
	b.Items = nil
	b.Policy.TaxAmount = decimal.Zero

	result, err := SettleOrZero(b)
	if err != nil {
		t.Fatalf("SettleOrZero() error = %v", err)
	}
	if !result.GrandTotal.IsZero() {
		t.Errorf("grand total = %s, want 0", result.GrandTotal)
	}
	assertShare(t, result, "A", "0")
	assertShare(t, result, "B", "0")
	if len(result.Settlements) != 0 {
		t.Errorf("expected no settlements, got %+v", result.Settlements)
	}

	b.Policy.PayerID = ""
	if _, err := SettleOrZero(b); !errors.Is(err, ErrPayerRequired) {
		t.Errorf("expected ErrPayerRequired, got %v", err)
	}
}

func TestSettleIsIdempotentAndPure(t *testing.T) {
	bill := nasiGorengBill(models.SplitEqually)
	bill.Participants = append(bill.Participants, models.Participant{ID: "c", Name: "C"})
	before, _ := json.Marshal(bill)

	first, err := Settle(bill)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Settle(bill)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("results differ:\n%s\n%s", a, b)
	}
	after, _ := json.Marshal(bill)
	if string(before) != string(after) {
		t.Error("Settle must not modify its input")
	}
}

func TestPayerNeverSettlesWithThemself(t *testing.T) {
	for _, strategy := range []models.SplitStrategy{models.PayerPaysAll, models.SplitEqually} {
		bill := nasiGorengBill(strategy)
		for _, payer := range []string{"a", "b"} {
			bill.Policy.PayerID = payer
			result, err := Settle(bill)
			if err != nil {
				t.Fatal(err)
			}
			for _, s := range result.Settlements {
				if s.FromID == payer {
					t.Errorf("%s: payer %s appears as debtor", strategy, payer)
				}
				if s.ToID != payer {
					t.Errorf("%s: settlement to %s, want payer %s", strategy, s.ToID, payer)
				}
			}
		}
	}
}

func TestSettleBreakdown(t *testing.T) {
	bill := nasiGorengBill(models.SplitEqually)
	bill.Items = append(bill.Items, models.LineItem{
		ID: "i2", Name: "Es Jeruk", UnitPrice: d("8000"), Quantity: 3,
		Assignments: []models.Assignment{{ParticipantID: "b", Units: 2}},
	})

	result, err := Settle(bill)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Breakdown) != 2 || result.Breakdown[0].Name != "A" || result.Breakdown[1].Name != "B" {
		t.Fatalf("breakdown not in participant order: %+v", result.Breakdown)
	}
	bob := result.Breakdown[1]
	if !bob.Subtotal.Equal(d("41000")) || !bob.Extras.Equal(d("5000")) || !bob.Total.Equal(d("46000")) {
		t.Errorf("unexpected breakdown for B: %+v", bob)
	}
	if len(bob.Items) != 2 || bob.Items[1].Units != 2 || !bob.Items[1].Amount.Equal(d("16000")) {
		t.Errorf("unexpected item lines for B: %+v", bob.Items)
	}
	if len(result.Unassigned) != 1 || result.Unassigned[0].ItemID != "i2" || result.Unassigned[0].Unassigned != 1 {
		t.Errorf("unexpected unassigned report: %+v", result.Unassigned)
	}
}
