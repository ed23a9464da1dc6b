package service

import (
	"github.com/r1zemon/patungan/internal/calculator"
	"github.com/r1zemon/patungan/internal/models"
	"github.com/r1zemon/patungan/internal/receipt"
	"github.com/r1zemon/patungan/pkg/api"
)

func billToAPI(b *models.Bill) *api.Bill {
	participants := make([]*api.Participant, len(b.Participants))
	for i, p := range b.Participants {
		participants[i] = &api.Participant{Id: p.ID, Name: p.Name}
	}
	items := make([]*api.LineItem, len(b.Items))
	for i := range b.Items {
		items[i] = itemToAPI(b.Items[i])
	}
	return &api.Bill{
		Id:           b.ID,
		Title:        b.Title,
		Participants: participants,
		Items:        items,
		Policy: &api.Policy{
			PayerId:       b.Policy.PayerID,
			TaxAmount:     b.Policy.TaxAmount,
			TipAmount:     b.Policy.TipAmount,
			SplitStrategy: string(b.Policy.SplitStrategy),
			Currency:      b.Policy.Currency,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func itemToAPI(item models.LineItem) *api.LineItem {
	assignments := make([]*api.Assignment, len(item.Assignments))
	for i, a := range item.Assignments {
		assignments[i] = &api.Assignment{ParticipantId: a.ParticipantID, UnitCount: a.Units}
	}
	return &api.LineItem{
		Id:          item.ID,
		Name:        item.Name,
		UnitPrice:   item.UnitPrice,
		Quantity:    item.Quantity,
		Assignments: assignments,
	}
}

func summaryToAPI(b *models.Bill) *api.BillSummary {
	names := make([]string, len(b.Participants))
	for i, p := range b.Participants {
		names[i] = p.Name
	}
	return &api.BillSummary{
		Id:               b.ID,
		Title:            b.Title,
		Currency:         b.Policy.Currency,
		ParticipantNames: names,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func settlementsToAPI(settlements []models.Settlement) []*api.Settlement {
	out := make([]*api.Settlement, len(settlements))
	for i, s := range settlements {
		out[i] = &api.Settlement{From: s.From, To: s.To, FromId: s.FromID, ToId: s.ToID, Amount: s.Amount}
	}
	return out
}

func unassignedToAPI(items []models.UnassignedItem) []*api.UnassignedItem {
	out := make([]*api.UnassignedItem, len(items))
	for i, u := range items {
		out[i] = &api.UnassignedItem{
			ItemId:     u.ItemID,
			Name:       u.Name,
			Quantity:   u.Quantity,
			Unassigned: u.Unassigned,
			Value:      u.Value,
		}
	}
	return out
}

func resultToAPI(r *models.SettlementResult) *api.SettlementResult {
	breakdown := make([]*api.PersonShare, len(r.Breakdown))
	for i, share := range r.Breakdown {
		items := make([]*api.PersonItem, len(share.Items))
		for j, it := range share.Items {
			items[j] = &api.PersonItem{ItemId: it.ItemID, Name: it.Name, Units: it.Units, Amount: it.Amount}
		}
		breakdown[i] = &api.PersonShare{
			ParticipantId: share.ParticipantID,
			Name:          share.Name,
			Subtotal:      share.Subtotal,
			Extras:        share.Extras,
			Total:         share.Total,
			Items:         items,
		}
	}
	return &api.SettlementResult{
		Currency:       r.Currency,
		PerPersonShare: r.PerPersonShare,
		GrandTotal:     r.GrandTotal,
		Settlements:    settlementsToAPI(r.Settlements),
		Breakdown:      breakdown,
	}
}

func candidatesFromAPI(items []*api.ReceiptItem) []receipt.Candidate {
	out := make([]receipt.Candidate, len(items))
	for i, it := range items {
		out[i] = receipt.Candidate{Name: it.Name, UnitPrice: it.UnitPrice, Quantity: it.Quantity}
	}
	return out
}

func rejectionsToAPI(rejected []receipt.Rejection) []*api.ItemRejection {
	out := make([]*api.ItemRejection, len(rejected))
	for i, r := range rejected {
		out[i] = &api.ItemRejection{
			Index:  r.Index,
			Item:   &api.ReceiptItem{Name: r.Candidate.Name, UnitPrice: r.Candidate.UnitPrice, Quantity: r.Candidate.Quantity},
			Reason: r.Err.Error(),
		}
	}
	return out
}

func balancesToAPI(balances []calculator.MemberBalance, debts []calculator.DebtEdge) ([]*api.MemberBalance, []*api.DebtEdge) {
	outBalances := make([]*api.MemberBalance, len(balances))
	for i, b := range balances {
		outBalances[i] = &api.MemberBalance{
			Name:       b.Name,
			NetBalance: b.NetBalance,
			TotalOwed:  b.TotalOwed,
			TotalOwes:  b.TotalOwes,
		}
	}
	outDebts := make([]*api.DebtEdge, len(debts))
	for i, d := range debts {
		outDebts[i] = &api.DebtEdge{From: d.From, To: d.To, Amount: d.Amount}
	}
	return outBalances, outDebts
}
