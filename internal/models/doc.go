// Package models defines the plain records Patungan passes between layers.
//
// # Records
//
//   - Bill: one split-expense session (participants, line items, policy)
//   - Participant: a person on a bill, identified by an opaque ID
//   - LineItem: a priced, quantity-bearing entry with unit assignments
//   - BillPolicy: payer, tax, tip and the split strategy for extras
//   - SettlementResult: the derived per-person shares and payer settlements
//
// # Design Principles
//
// 1. **Serializable**: every record is ids, names, decimal amounts and string
// tags, so a caller can persist and restore a full snapshot with any storage.
// 2. **No behavior**: validation lives in the allocation package and
// arithmetic in the calculator package; models only carry data.
// 3. **IDs, not pointers**: assignments reference participants by ID.
//
// Amounts use github.com/shopspring/decimal and marshal to JSON strings.
package models
