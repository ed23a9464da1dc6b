// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/r1zemon/patungan/internal/models"
)

// ErrNotFound is returned when a bill does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for bill snapshot storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateBill persists a new bill snapshot.
	// Missing ID, Title and CreatedAt fields are populated by the store.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a full snapshot by ID.
	// Returns an error wrapping ErrNotFound if the bill does not exist.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// UpdateBill replaces the stored snapshot of an existing bill and drops
	// its stored settlements, which no longer match the snapshot.
	UpdateBill(ctx context.Context, bill *models.Bill) error

	// DeleteBill removes a bill with its items and settlements.
	DeleteBill(ctx context.Context, billID string) error

	// ListBills returns bill headers (no items) ordered newest first.
	ListBills(ctx context.Context) ([]*models.Bill, error)

	// ReplaceSettlements stores the settlements of the latest computation of
	// a bill, discarding any previous ones. A nil slice clears them.
	ReplaceSettlements(ctx context.Context, billID string, settlements []models.Settlement) error

	// ListSettlements returns the stored settlements of a bill.
	ListSettlements(ctx context.Context, billID string) ([]models.Settlement, error)

	// ListSettlementsByBills returns the stored settlements of several bills.
	ListSettlementsByBills(ctx context.Context, billIDs []string) ([]models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
