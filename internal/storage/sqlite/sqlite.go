// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/r1zemon/patungan/internal/models"
	"github.com/r1zemon/patungan/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys are per connection, so they are enabled through the DSN
	// for every connection in the pool.
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateBill persists a new bill snapshot to the database.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	// Generate ID and timestamps if not set
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}
	if bill.UpdatedAt == 0 {
		bill.UpdatedAt = bill.CreatedAt
	}
	if bill.Title == "" {
		bill.Title = generateTitle(bill.Participants)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bills (id, title, currency, payer_id, tax_amount, tip_amount, split_strategy, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.ID, bill.Title, bill.Policy.Currency, bill.Policy.PayerID,
		bill.Policy.TaxAmount, bill.Policy.TipAmount, string(bill.Policy.SplitStrategy),
		bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	if err := insertChildren(ctx, tx, bill); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateBill replaces the stored snapshot of a bill.
// Participants, items and assignments are rewritten in one transaction and
// stored settlements are dropped.
func (s *SQLiteStore) UpdateBill(ctx context.Context, bill *models.Bill) error {
	if bill.UpdatedAt == 0 {
		bill.UpdatedAt = time.Now().Unix()
	}
	if bill.Title == "" {
		bill.Title = generateTitle(bill.Participants)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE bills SET title = ?, currency = ?, payer_id = ?, tax_amount = ?, tip_amount = ?,
		 split_strategy = ?, updated_at = ? WHERE id = ?`,
		bill.Title, bill.Policy.Currency, bill.Policy.PayerID,
		bill.Policy.TaxAmount, bill.Policy.TipAmount, string(bill.Policy.SplitStrategy),
		bill.UpdatedAt, bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bill %s: %w", bill.ID, storage.ErrNotFound)
	}

	// Items first: deleting them cascades to assignments that still
	// reference participants.
	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE bill_id = ?", bill.ID); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE bill_id = ?", bill.ID); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}
	// A changed bill invalidates its last computed settlements.
	if _, err := tx.ExecContext(ctx, "DELETE FROM settlements WHERE bill_id = ?", bill.ID); err != nil {
		return fmt.Errorf("failed to clear settlements: %w", err)
	}

	if err := insertChildren(ctx, tx, bill); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// insertChildren writes participants, items and assignments of a bill.
func insertChildren(ctx context.Context, tx *sql.Tx, bill *models.Bill) error {
	for pos, p := range bill.Participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO participants (id, bill_id, name, position) VALUES (?, ?, ?, ?)",
			p.ID, bill.ID, p.Name, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for pos := range bill.Items {
		item := &bill.Items[pos]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO items (id, bill_id, name, unit_price, quantity, position) VALUES (?, ?, ?, ?, ?, ?)",
			item.ID, bill.ID, item.Name, item.UnitPrice, item.Quantity, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		for apos, a := range item.Assignments {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO item_assignments (item_id, participant_id, unit_count, position) VALUES (?, ?, ?, ?)",
				item.ID, a.ParticipantID, a.Units, apos,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item assignment: %w", err)
			}
		}
	}
	return nil
}

// GetBill retrieves a bill by ID, including all items and participants.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill := &models.Bill{}
	var strategy string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, currency, payer_id, tax_amount, tip_amount, split_strategy, created_at, updated_at
		 FROM bills WHERE id = ?`,
		billID,
	).Scan(&bill.ID, &bill.Title, &bill.Policy.Currency, &bill.Policy.PayerID,
		&bill.Policy.TaxAmount, &bill.Policy.TipAmount, &strategy, &bill.CreatedAt, &bill.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	bill.Policy.SplitStrategy = models.SplitStrategy(strategy)

	// Get participants
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM participants WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		bill.Participants = append(bill.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	// Get items
	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, unit_price, quantity FROM items WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	index := make(map[string]int)
	for itemRows.Next() {
		var item models.LineItem
		if err := itemRows.Scan(&item.ID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		index[item.ID] = len(bill.Items)
		bill.Items = append(bill.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	// Get assignments for all items of the bill in one query
	assignRows, err := s.db.QueryContext(ctx,
		`SELECT a.item_id, a.participant_id, a.unit_count
		 FROM item_assignments a JOIN items i ON i.id = a.item_id
		 WHERE i.bill_id = ? ORDER BY i.position, a.position`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get item assignments: %w", err)
	}
	defer assignRows.Close()

	for assignRows.Next() {
		var itemID string
		var a models.Assignment
		if err := assignRows.Scan(&itemID, &a.ParticipantID, &a.Units); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		if idx, ok := index[itemID]; ok {
			bill.Items[idx].Assignments = append(bill.Items[idx].Assignments, a)
		}
	}
	if err := assignRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return bill, nil
}

// DeleteBill removes a bill; participants, items, assignments and
// settlements go with it.
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	return nil
}

// ListBills returns bill headers with participants, newest first.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]*models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, currency, payer_id, tax_amount, tip_amount, split_strategy, created_at, updated_at
		 FROM bills ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*models.Bill
	index := make(map[string]*models.Bill)
	for rows.Next() {
		bill := &models.Bill{}
		var strategy string
		if err := rows.Scan(&bill.ID, &bill.Title, &bill.Policy.Currency, &bill.Policy.PayerID,
			&bill.Policy.TaxAmount, &bill.Policy.TipAmount, &strategy, &bill.CreatedAt, &bill.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bill.Policy.SplitStrategy = models.SplitStrategy(strategy)
		bills = append(bills, bill)
		index[bill.ID] = bill
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	pRows, err := s.db.QueryContext(ctx, "SELECT bill_id, id, name FROM participants ORDER BY bill_id, position")
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer pRows.Close()

	for pRows.Next() {
		var billID string
		var p models.Participant
		if err := pRows.Scan(&billID, &p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if bill, ok := index[billID]; ok {
			bill.Participants = append(bill.Participants, p)
		}
	}
	if err := pRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return bills, nil
}

// generateTitle creates an auto-generated title from participants.
func generateTitle(participants []models.Participant) string {
	if len(participants) == 0 {
		return fmt.Sprintf("Patungan - %s", time.Now().Format("Jan 2, 2006"))
	}
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	if len(names) <= 3 {
		return fmt.Sprintf("Patungan with %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Patungan with %s and %d others",
		strings.Join(names[:2], ", "),
		len(names)-2,
	)
}
