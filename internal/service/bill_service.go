package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/r1zemon/patungan/internal/allocation"
	"github.com/r1zemon/patungan/internal/calculator"
	"github.com/r1zemon/patungan/internal/metrics"
	"github.com/r1zemon/patungan/internal/models"
	"github.com/r1zemon/patungan/internal/money"
	"github.com/r1zemon/patungan/internal/receipt"
	"github.com/r1zemon/patungan/internal/storage"
	"github.com/r1zemon/patungan/pkg/api"
	"github.com/r1zemon/patungan/pkg/api/apiconnect"
)

// errUnchanged tells mutate that nothing needs to be written.
var errUnchanged = errors.New("bill unchanged")

// BillService implements the Connect BillService
type BillService struct {
	apiconnect.UnimplementedBillServiceHandler
	store           storage.Store
	extractor       receipt.Extractor
	metrics         *metrics.Metrics
	defaultCurrency string
	locks           *billLocks
}

// Option configures a BillService.
type Option func(*BillService)

// WithExtractor enables receipt image import.
func WithExtractor(e receipt.Extractor) Option {
	return func(s *BillService) { s.extractor = e }
}

// WithMetrics records settlement and receipt metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *BillService) { s.metrics = m }
}

// WithDefaultCurrency sets the currency of bills created without one.
func WithDefaultCurrency(currency string) Option {
	return func(s *BillService) { s.defaultCurrency = money.NormalizeCurrency(currency, "") }
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store, opts ...Option) *BillService {
	s := &BillService{
		store:           store,
		defaultCurrency: money.DefaultCurrency,
		locks:           newBillLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load restores the allocation model of a stored bill.
// Callers must hold the bill lock when they intend to write it back.
func (s *BillService) load(ctx context.Context, billID string) (*allocation.Model, error) {
	stored, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	return allocation.FromSnapshot(*stored)
}

// mutate applies fn to the bill under its lock and persists the result.
// Persisting a changed bill drops its stored settlements.
func (s *BillService) mutate(ctx context.Context, billID string, fn func(m *allocation.Model) error) (*models.Bill, error) {
	unlock := s.locks.Lock(billID)
	defer unlock()

	m, err := s.load(ctx, billID)
	if err != nil {
		return nil, err
	}
	if err := fn(m); err != nil {
		if errors.Is(err, errUnchanged) {
			snapshot := m.Snapshot()
			return &snapshot, nil
		}
		return nil, err
	}

	snapshot := m.Snapshot()
	if err := s.store.UpdateBill(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CreateBill creates a new bill and persists it to storage.
func (s *BillService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	m := allocation.New(req.Msg.Title, money.NormalizeCurrency(req.Msg.Currency, s.defaultCurrency))
	for _, name := range req.Msg.ParticipantNames {
		if _, err := m.AddParticipant(name); err != nil {
			return nil, toConnectError(err)
		}
	}

	bill := m.Snapshot()
	// Save to storage (generates title when blank)
	if err := s.store.CreateBill(ctx, &bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, toConnectError(err)
	}
	slog.Info("Bill created",
		"bill_id", bill.ID,
		"title", bill.Title,
		"currency", bill.Policy.Currency,
		"participants", len(bill.Participants),
	)

	return connect.NewResponse(&api.CreateBillResponse{Bill: billToAPI(&bill)}), nil
}

// GetBill retrieves a bill with unassigned-unit warnings and the settlements
// stored by the last Settle call.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	m, err := s.load(ctx, req.Msg.BillId)
	if err != nil {
		return nil, toConnectError(err)
	}
	settlements, err := s.store.ListSettlements(ctx, req.Msg.BillId)
	if err != nil {
		return nil, toConnectError(err)
	}

	bill := m.Snapshot()
	return connect.NewResponse(&api.GetBillResponse{
		Bill:        billToAPI(&bill),
		Unassigned:  unassignedToAPI(m.UnassignedUnits()),
		Settlements: settlementsToAPI(settlements),
	}), nil
}

// DeleteBill deletes a bill and everything stored with it.
func (s *BillService) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	unlock := s.locks.Lock(req.Msg.BillId)
	defer unlock()

	if err := s.store.DeleteBill(ctx, req.Msg.BillId); err != nil {
		return nil, toConnectError(err)
	}
	slog.Info("Bill deleted", "bill_id", req.Msg.BillId)

	return connect.NewResponse(&api.DeleteBillResponse{Success: true}), nil
}

// ListBills lists bill headers, newest first.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, toConnectError(err)
	}

	summaries := make([]*api.BillSummary, len(bills))
	for i, b := range bills {
		summaries[i] = summaryToAPI(b)
	}
	return connect.NewResponse(&api.ListBillsResponse{Bills: summaries}), nil
}

// AddParticipant adds a participant to a bill.
func (s *BillService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	var added models.Participant
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		p, err := m.AddParticipant(req.Msg.Name)
		added = p
		return err
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddParticipantResponse{
		Participant: &api.Participant{Id: added.ID, Name: added.Name},
		Bill:        billToAPI(bill),
	}), nil
}

// RenameParticipant renames a participant.
func (s *BillService) RenameParticipant(ctx context.Context, req *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error) {
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		return m.RenameParticipant(req.Msg.ParticipantId, req.Msg.Name)
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RenameParticipantResponse{Bill: billToAPI(bill)}), nil
}

// RemoveParticipant removes a participant and their assignments. When the
// participant was the payer, the first remaining participant becomes payer.
func (s *BillService) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	var reselected bool
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		payerRemoved, err := m.RemoveParticipant(req.Msg.ParticipantId)
		if err != nil {
			return err
		}
		if payerRemoved {
			newPayer := m.ReselectPayer()
			reselected = newPayer != ""
			slog.Info("Payer removed",
				"bill_id", req.Msg.BillId,
				"removed", req.Msg.ParticipantId,
				"new_payer", newPayer,
			)
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemoveParticipantResponse{
		Bill:            billToAPI(bill),
		PayerReselected: reselected,
	}), nil
}

// AddItem adds a line item.
func (s *BillService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	var added models.LineItem
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		item, err := m.AddItem(req.Msg.Name, req.Msg.UnitPrice, req.Msg.Quantity)
		added = item
		return err
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	slog.Debug("Item added",
		"bill_id", bill.ID,
		"item_id", added.ID,
		"name", added.Name,
		"unit_price", added.UnitPrice.String(),
		"quantity", added.Quantity,
	)

	return connect.NewResponse(&api.AddItemResponse{Item: itemToAPI(added), Bill: billToAPI(bill)}), nil
}

// UpdateItem changes the fields that are set on the request. Lowering the
// quantity below the assigned units trims assignments from the end.
func (s *BillService) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	var updated models.LineItem
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		item, err := m.UpdateItem(req.Msg.ItemId, allocation.ItemUpdate{
			Name:      req.Msg.Name,
			UnitPrice: req.Msg.UnitPrice,
			Quantity:  req.Msg.Quantity,
		})
		updated = item
		return err
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateItemResponse{Item: itemToAPI(updated), Bill: billToAPI(bill)}), nil
}

// RemoveItem removes a line item.
func (s *BillService) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error) {
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		return m.RemoveItem(req.Msg.ItemId)
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RemoveItemResponse{Bill: billToAPI(bill)}), nil
}

// SetAssignment sets how many units of an item a participant takes.
// A count of zero removes the assignment.
func (s *BillService) SetAssignment(ctx context.Context, req *connect.Request[api.SetAssignmentRequest]) (*connect.Response[api.SetAssignmentResponse], error) {
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		return m.SetAssignment(req.Msg.ItemId, req.Msg.ParticipantId, req.Msg.UnitCount)
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	var item *api.LineItem
	for i := range bill.Items {
		if bill.Items[i].ID == req.Msg.ItemId {
			item = itemToAPI(bill.Items[i])
			break
		}
	}
	return connect.NewResponse(&api.SetAssignmentResponse{Item: item, Bill: billToAPI(bill)}), nil
}

// SetPolicy replaces the payer, tax, tip, strategy and currency of a bill.
func (s *BillService) SetPolicy(ctx context.Context, req *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error) {
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		current := m.Policy()
		strategy := models.SplitStrategy(req.Msg.SplitStrategy)
		if strategy == "" {
			strategy = current.SplitStrategy
		}
		return m.SetPolicy(models.BillPolicy{
			PayerID:       req.Msg.PayerId,
			TaxAmount:     req.Msg.TaxAmount,
			TipAmount:     req.Msg.TipAmount,
			SplitStrategy: strategy,
			Currency:      req.Msg.Currency,
		})
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SetPolicyResponse{Bill: billToAPI(bill)}), nil
}

// ImportReceipt adds items proposed by receipt extraction. Items that fail
// validation are reported and skipped; the rest are kept.
func (s *BillService) ImportReceipt(ctx context.Context, req *connect.Request[api.ImportReceiptRequest]) (*connect.Response[api.ImportReceiptResponse], error) {
	var candidates []receipt.Candidate
	if len(req.Msg.Image) > 0 {
		if s.extractor == nil {
			return nil, toConnectError(receipt.ErrExtractorUnavailable)
		}
		// Extraction can be slow, so it runs before the bill is locked
		extracted, err := s.extractor.Extract(ctx, req.Msg.Image, req.Msg.ImageContentType)
		if err != nil {
			slog.Error("Receipt extraction failed", "bill_id", req.Msg.BillId, "error", err)
			return nil, toConnectError(err)
		}
		candidates = append(candidates, extracted...)
	}
	candidates = append(candidates, candidatesFromAPI(req.Msg.Items)...)

	var report receipt.Report
	bill, err := s.mutate(ctx, req.Msg.BillId, func(m *allocation.Model) error {
		report = receipt.Import(m, candidates)
		if len(report.Added) == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	s.metrics.AddReceiptItems(len(report.Added), len(report.Rejected))
	slog.Info("Receipt imported",
		"bill_id", bill.ID,
		"added", len(report.Added),
		"rejected", len(report.Rejected),
	)

	added := make([]*api.LineItem, len(report.Added))
	for i, item := range report.Added {
		added[i] = itemToAPI(item)
	}
	return connect.NewResponse(&api.ImportReceiptResponse{
		Bill:     billToAPI(bill),
		Added:    added,
		Rejected: rejectionsToAPI(report.Rejected),
	}), nil
}

// Settle computes the settlement summary of a bill and stores its
// settlements until the bill next changes.
func (s *BillService) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	unlock := s.locks.Lock(req.Msg.BillId)
	defer unlock()

	m, err := s.load(ctx, req.Msg.BillId)
	if err != nil {
		return nil, toConnectError(err)
	}
	bill := m.Snapshot()
	strategy := string(bill.Policy.SplitStrategy)

	var result *models.SettlementResult
	if req.Msg.AllowEmpty {
		result, err = calculator.SettleOrZero(bill)
	} else {
		result, err = calculator.Settle(bill)
	}
	if err != nil {
		if code := codeFor(err); code == connect.CodeInternal {
			s.metrics.ObserveSettlement(strategy, metrics.OutcomeError)
		} else {
			s.metrics.ObserveSettlement(strategy, metrics.OutcomeRejected)
		}
		return nil, toConnectError(err)
	}

	if err := s.store.ReplaceSettlements(ctx, bill.ID, result.Settlements); err != nil {
		slog.Error("Failed to store settlements", "bill_id", bill.ID, "error", err)
		s.metrics.ObserveSettlement(strategy, metrics.OutcomeError)
		return nil, toConnectError(err)
	}

	outcome := metrics.OutcomeOK
	if result.GrandTotal.IsZero() {
		outcome = metrics.OutcomeEmpty
	}
	s.metrics.ObserveSettlement(strategy, outcome)

	for _, share := range result.Breakdown {
		slog.Debug("Person share",
			"bill_id", bill.ID,
			"participant", share.Name,
			"subtotal", share.Subtotal.String(),
			"extras", share.Extras.String(),
			"total", share.Total.String(),
		)
	}
	if len(result.Unassigned) > 0 {
		slog.Warn("Settled with unassigned units", "bill_id", bill.ID, "items", len(result.Unassigned))
	}
	slog.Info("Bill settled",
		"bill_id", bill.ID,
		"strategy", strategy,
		"grand_total", result.GrandTotal.String(),
		"settlements", len(result.Settlements),
	)

	return connect.NewResponse(&api.SettleResponse{
		Result:     resultToAPI(result),
		Unassigned: unassignedToAPI(result.Unassigned),
	}), nil
}

// GetBalances nets the stored settlements of several bills into per-person
// balances and a simplified list of debts.
func (s *BillService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	settlements, err := s.store.ListSettlementsByBills(ctx, req.Msg.BillIds)
	if err != nil {
		slog.Error("GetBalances failed", "error", err)
		return nil, toConnectError(err)
	}

	balances, debts := calculator.NetBalances(settlements)
	outBalances, outDebts := balancesToAPI(balances, debts)
	return connect.NewResponse(&api.GetBalancesResponse{Balances: outBalances, Debts: outDebts}), nil
}
