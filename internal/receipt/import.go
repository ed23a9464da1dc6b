// Package receipt merges line items proposed by the external receipt
// extraction service into a bill. Proposals are untrusted: each one goes
// through the same validation as a manually entered item.
package receipt

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/r1zemon/patungan/internal/allocation"
	"github.com/r1zemon/patungan/internal/models"
)

// Candidate is one item proposed by the extraction service.
type Candidate struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`

	// Invalid is set when the proposal could not be read at all.
	// Such candidates are always rejected.
	Invalid string `json:"-"`
}

// Rejection records a candidate that could not be added.
type Rejection struct {
	Index     int
	Candidate Candidate
	Err       error
}

// Report is the outcome of an import.
type Report struct {
	Added    []models.LineItem
	Rejected []Rejection
}

// Import adds every valid candidate to the model, in order. Invalid
// candidates are reported and skipped; the valid ones are kept.
func Import(m *allocation.Model, candidates []Candidate) Report {
	var report Report
	for i, c := range candidates {
		var item models.LineItem
		var err error
		if c.Invalid != "" {
			err = &allocation.InvalidItemError{Name: c.Name, Reason: c.Invalid}
		} else {
			item, err = m.AddItem(c.Name, c.UnitPrice, c.Quantity)
		}
		if err != nil {
			slog.Debug("Rejected receipt candidate",
				"index", i,
				"name", c.Name,
				"unit_price", c.UnitPrice.String(),
				"quantity", c.Quantity,
				"error", err,
			)
			report.Rejected = append(report.Rejected, Rejection{Index: i, Candidate: c, Err: err})
			continue
		}
		report.Added = append(report.Added, item)
	}
	return report
}
