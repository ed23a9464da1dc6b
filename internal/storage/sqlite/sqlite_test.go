package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/r1zemon/patungan/internal/models"
	"github.com/r1zemon/patungan/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "patungan-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleBill() *models.Bill {
	return &models.Bill{
		Participants: []models.Participant{
			{ID: "p-ani", Name: "Ani"},
			{ID: "p-budi", Name: "Budi"},
		},
		Items: []models.LineItem{
			{
				Name:      "Nasi Goreng",
				UnitPrice: decimal.NewFromInt(25000),
				Quantity:  2,
				Assignments: []models.Assignment{
					{ParticipantID: "p-budi", Units: 1},
					{ParticipantID: "p-ani", Units: 1},
				},
			},
			{
				Name:        "Es Teh",
				UnitPrice:   decimal.RequireFromString("5000.50"),
				Quantity:    3,
				Assignments: []models.Assignment{{ParticipantID: "p-ani", Units: 2}},
			},
		},
		Policy: models.BillPolicy{
			PayerID:       "p-ani",
			TaxAmount:     decimal.NewFromInt(5500),
			TipAmount:     decimal.Zero,
			SplitStrategy: models.SplitEqually,
			Currency:      "IDR",
		},
	}
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateBill generates ID and title", func(t *testing.T) {
		bill := sampleBill()
		bill.Participants[0].ID = "p-create-ani"
		bill.Participants[1].ID = "p-create-budi"
		bill.Items = nil
		bill.Policy.PayerID = "p-create-ani"

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		if bill.ID == "" {
			t.Error("Expected bill ID to be generated")
		}
		if bill.Title != "Patungan with Ani, Budi" {
			t.Errorf("Unexpected generated title: %q", bill.Title)
		}
		if bill.CreatedAt == 0 || bill.UpdatedAt != bill.CreatedAt {
			t.Errorf("Expected timestamps to be set, got created=%d updated=%d", bill.CreatedAt, bill.UpdatedAt)
		}
	})

	t.Run("GetBill retrieves complete snapshot", func(t *testing.T) {
		original := sampleBill()
		original.Title = "Makan siang"
		if err := store.CreateBill(ctx, original); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		got, err := store.GetBill(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}

		if got.Title != "Makan siang" {
			t.Errorf("Title mismatch: %q", got.Title)
		}
		if len(got.Participants) != 2 || got.Participants[0].Name != "Ani" || got.Participants[1].Name != "Budi" {
			t.Errorf("Participants not in insertion order: %+v", got.Participants)
		}
		if len(got.Items) != 2 {
			t.Fatalf("Expected 2 items, got %d", len(got.Items))
		}
		if got.Items[0].Name != "Nasi Goreng" || got.Items[1].Name != "Es Teh" {
			t.Errorf("Items not in insertion order: %s, %s", got.Items[0].Name, got.Items[1].Name)
		}
		if !got.Items[1].UnitPrice.Equal(decimal.RequireFromString("5000.5")) {
			t.Errorf("Unit price lost precision: %s", got.Items[1].UnitPrice)
		}

		// Assignment order is kept per item
		first := got.Items[0].Assignments
		if len(first) != 2 || first[0].ParticipantID != "p-budi" || first[1].ParticipantID != "p-ani" {
			t.Errorf("Assignments not in insertion order: %+v", first)
		}
		if got.Items[1].Assignments[0].Units != 2 {
			t.Errorf("Expected 2 assigned units, got %d", got.Items[1].Assignments[0].Units)
		}

		if got.Policy.PayerID != "p-ani" || got.Policy.SplitStrategy != models.SplitEqually || got.Policy.Currency != "IDR" {
			t.Errorf("Policy mismatch: %+v", got.Policy)
		}
		if !got.Policy.TaxAmount.Equal(decimal.NewFromInt(5500)) {
			t.Errorf("Tax mismatch: %s", got.Policy.TaxAmount)
		}
	})

	t.Run("GetBill returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetBill(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestUpdateBill(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bill := sampleBill()
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	if err := store.ReplaceSettlements(ctx, bill.ID, []models.Settlement{
		{From: "Budi", FromID: "p-budi", To: "Ani", ToID: "p-ani", Amount: decimal.NewFromInt(30000)},
	}); err != nil {
		t.Fatalf("ReplaceSettlements failed: %v", err)
	}

	// Remove Budi along with his assignments and drop the second item
	bill.Participants = bill.Participants[:1]
	bill.Items = bill.Items[:1]
	bill.Items[0].Assignments = []models.Assignment{{ParticipantID: "p-ani", Units: 2}}
	bill.Policy.SplitStrategy = models.PayerPaysAll
	bill.UpdatedAt = bill.CreatedAt + 60

	if err := store.UpdateBill(ctx, bill); err != nil {
		t.Fatalf("UpdateBill failed: %v", err)
	}

	got, err := store.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if len(got.Participants) != 1 || len(got.Items) != 1 {
		t.Fatalf("Expected 1 participant and 1 item, got %d and %d", len(got.Participants), len(got.Items))
	}
	if a := got.Items[0].Assignments; len(a) != 1 || a[0].Units != 2 {
		t.Errorf("Assignments not replaced: %+v", a)
	}
	if got.Policy.SplitStrategy != models.PayerPaysAll {
		t.Errorf("Strategy not updated: %s", got.Policy.SplitStrategy)
	}
	if got.UpdatedAt != bill.UpdatedAt {
		t.Errorf("UpdatedAt mismatch: %d != %d", got.UpdatedAt, bill.UpdatedAt)
	}

	settlements, err := store.ListSettlements(ctx, bill.ID)
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(settlements) != 0 {
		t.Errorf("Expected stale settlements to be dropped, got %d", len(settlements))
	}

	missing := sampleBill()
	missing.ID = "missing"
	missing.Participants = nil
	missing.Items = nil
	if err := store.UpdateBill(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown bill, got %v", err)
	}
}

func TestDeleteAndListBills(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := &models.Bill{Title: "Older", CreatedAt: 1000, Policy: models.BillPolicy{SplitStrategy: models.SplitEqually, Currency: "IDR"}}
	newer := &models.Bill{
		Title:        "Newer",
		CreatedAt:    2000,
		Participants: []models.Participant{{ID: "p-citra", Name: "Citra"}},
		Policy:       models.BillPolicy{SplitStrategy: models.PayerPaysAll, Currency: "USD"},
	}
	for _, b := range []*models.Bill{older, newer} {
		if err := store.CreateBill(ctx, b); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
	}

	bills, err := store.ListBills(ctx)
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("Expected 2 bills, got %d", len(bills))
	}
	if bills[0].Title != "Newer" || bills[1].Title != "Older" {
		t.Errorf("Expected newest first, got %s, %s", bills[0].Title, bills[1].Title)
	}
	if len(bills[0].Participants) != 1 || bills[0].Participants[0].Name != "Citra" {
		t.Errorf("Expected participants on header, got %+v", bills[0].Participants)
	}
	if bills[0].Policy.Currency != "USD" {
		t.Errorf("Expected USD currency, got %s", bills[0].Policy.Currency)
	}

	if err := store.DeleteBill(ctx, newer.ID); err != nil {
		t.Fatalf("DeleteBill failed: %v", err)
	}
	if _, err := store.GetBill(ctx, newer.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected deleted bill to be gone, got %v", err)
	}
	if err := store.DeleteBill(ctx, newer.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bill := sampleBill()
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	other := &models.Bill{
		Participants: []models.Participant{{ID: "p-dewi", Name: "Dewi"}, {ID: "p-eko", Name: "Eko"}},
		Policy:       models.BillPolicy{PayerID: "p-dewi", SplitStrategy: models.SplitEqually, Currency: "IDR"},
	}
	if err := store.CreateBill(ctx, other); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	first := []models.Settlement{
		{From: "Budi", FromID: "p-budi", To: "Ani", ToID: "p-ani", Amount: decimal.NewFromInt(10000)},
	}
	if err := store.ReplaceSettlements(ctx, bill.ID, first); err != nil {
		t.Fatalf("ReplaceSettlements failed: %v", err)
	}
	if first[0].ID == "" || first[0].BillID != bill.ID || first[0].CreatedAt == 0 {
		t.Errorf("Expected ID, BillID and CreatedAt to be populated, got %+v", first[0])
	}

	second := []models.Settlement{
		{From: "Budi", FromID: "p-budi", To: "Ani", ToID: "p-ani", Amount: decimal.RequireFromString("30000.25")},
	}
	if err := store.ReplaceSettlements(ctx, bill.ID, second); err != nil {
		t.Fatalf("ReplaceSettlements failed: %v", err)
	}
	if err := store.ReplaceSettlements(ctx, other.ID, []models.Settlement{
		{From: "Eko", FromID: "p-eko", To: "Dewi", ToID: "p-dewi", Amount: decimal.NewFromInt(15000)},
	}); err != nil {
		t.Fatalf("ReplaceSettlements failed: %v", err)
	}

	got, err := store.ListSettlements(ctx, bill.ID)
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected previous settlements to be replaced, got %d", len(got))
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("30000.25")) || got[0].From != "Budi" || got[0].ToID != "p-ani" {
		t.Errorf("Unexpected settlement: %+v", got[0])
	}

	all, err := store.ListSettlementsByBills(ctx, []string{bill.ID, other.ID})
	if err != nil {
		t.Fatalf("ListSettlementsByBills failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 settlements across bills, got %d", len(all))
	}

	none, err := store.ListSettlementsByBills(ctx, nil)
	if err != nil || none != nil {
		t.Errorf("Expected nil result for empty input, got %v, %v", none, err)
	}

	// Deleting a bill removes its settlements
	if err := store.DeleteBill(ctx, other.ID); err != nil {
		t.Fatalf("DeleteBill failed: %v", err)
	}
	left, err := store.ListSettlements(ctx, other.ID)
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("Expected settlements to cascade, got %d", len(left))
	}
}

func TestGenerateTitle(t *testing.T) {
	people := func(names ...string) []models.Participant {
		ps := make([]models.Participant, len(names))
		for i, n := range names {
			ps[i] = models.Participant{ID: n, Name: n}
		}
		return ps
	}

	tests := []struct {
		participants []models.Participant
		wantContains string
	}{
		{nil, "Patungan -"},
		{people("Ani"), "Patungan with Ani"},
		{people("Ani", "Budi"), "Patungan with Ani, Budi"},
		{people("Ani", "Budi", "Citra"), "Patungan with Ani, Budi, Citra"},
		{people("Ani", "Budi", "Citra", "Dewi"), "and 2 others"},
	}

	for _, tt := range tests {
		t.Run(tt.wantContains, func(t *testing.T) {
			got := generateTitle(tt.participants)
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("generateTitle(%v) = %q, want to contain %q", tt.participants, got, tt.wantContains)
			}
		})
	}
}
