package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/r1zemon/patungan/internal/models"
)

const settlementColumns = `id, bill_id, from_id, from_name, to_id, to_name, amount, created_at`

// ReplaceSettlements stores the latest computed settlements of a bill.
func (s *SQLiteStore) ReplaceSettlements(ctx context.Context, billID string, settlements []models.Settlement) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM settlements WHERE bill_id = ?", billID); err != nil {
		return fmt.Errorf("failed to clear settlements: %w", err)
	}

	now := time.Now().Unix()
	for pos := range settlements {
		settlement := &settlements[pos]
		// Generate ID if not set
		if settlement.ID == "" {
			settlement.ID = uuid.New().String()
		}
		if settlement.CreatedAt == 0 {
			settlement.CreatedAt = now
		}
		settlement.BillID = billID

		_, err := tx.ExecContext(ctx,
			`INSERT INTO settlements (id, bill_id, from_id, from_name, to_id, to_name, amount, position, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			settlement.ID, billID, settlement.FromID, settlement.From, settlement.ToID, settlement.To,
			settlement.Amount, pos, settlement.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListSettlements retrieves the stored settlements of a bill.
func (s *SQLiteStore) ListSettlements(ctx context.Context, billID string) ([]models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE bill_id = ? ORDER BY position`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	return scanSettlements(rows)
}

// ListSettlementsByBills retrieves the stored settlements of several bills.
func (s *SQLiteStore) ListSettlementsByBills(ctx context.Context, billIDs []string) ([]models.Settlement, error) {
	if len(billIDs) == 0 {
		return nil, nil
	}

	// Build the IN clause with placeholders
	args := make([]any, len(billIDs))
	for i, id := range billIDs {
		args[i] = id
	}
	query := `SELECT ` + settlementColumns + ` FROM settlements
		WHERE bill_id IN (?` + strings.Repeat(", ?", len(billIDs)-1) + `)
		ORDER BY created_at, bill_id, position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by bills: %w", err)
	}
	return scanSettlements(rows)
}

func scanSettlements(rows *sql.Rows) ([]models.Settlement, error) {
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		var st models.Settlement
		if err := rows.Scan(&st.ID, &st.BillID, &st.FromID, &st.From, &st.ToID, &st.To,
			&st.Amount, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}
	return settlements, nil
}
