package calculator

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/r1zemon/patungan/internal/models"
)

// MemberBalance represents the balance information for one person across bills.
type MemberBalance struct {
	Name       string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalOwed  decimal.Decimal // Total amount others owe this person
	TotalOwes  decimal.Decimal // Total amount this person owes others
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// NetBalances aggregates settlements from several bills shared by the same
// friends. People are matched by display name, ignoring case.
//
// Algorithm:
//   - For each settlement: debtor owes +amount, creditor is owed +amount
//   - net_balance = total_owed - total_owes
//   - Debts are simplified by greedily matching the largest debtor with the
//     largest creditor until every balance is zero
//
// Decimal arithmetic keeps every edge exact, so no noise threshold is needed.
func NetBalances(settlements []models.Settlement) ([]MemberBalance, []DebtEdge) {
	balances := make(map[string]*MemberBalance)
	var order []string

	get := func(name string) *MemberBalance {
		key := strings.ToLower(strings.TrimSpace(name))
		bal, exists := balances[key]
		if !exists {
			bal = &MemberBalance{Name: strings.TrimSpace(name)}
			balances[key] = bal
			order = append(order, key)
		}
		return bal
	}

	for _, s := range settlements {
		if !s.Amount.IsPositive() {
			continue
		}
		from := get(s.From)
		to := get(s.To)
		if from == to {
			continue
		}
		from.TotalOwes = from.TotalOwes.Add(s.Amount)
		to.TotalOwed = to.TotalOwed.Add(s.Amount)
	}

	memberBalances := make([]MemberBalance, 0, len(order))
	var creditors, debtors []*MemberBalance
	for _, key := range order {
		bal := balances[key]
		bal.NetBalance = bal.TotalOwed.Sub(bal.TotalOwes)
		memberBalances = append(memberBalances, *bal)

		switch {
		case bal.NetBalance.IsPositive():
			creditors = append(creditors, bal)
		case bal.NetBalance.IsNegative():
			debtors = append(debtors, bal)
		}
	}

	// Largest first; names break ties so the output is stable.
	byMagnitude := func(list []*MemberBalance) {
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i].NetBalance.Abs(), list[j].NetBalance.Abs()
			if !a.Equal(b) {
				return a.GreaterThan(b)
			}
			return list[i].Name < list[j].Name
		})
	}
	byMagnitude(creditors)
	byMagnitude(debtors)

	remainingDebt := make(map[string]decimal.Decimal, len(debtors))
	for _, d := range debtors {
		remainingDebt[d.Name] = d.NetBalance.Neg()
	}
	remainingCredit := make(map[string]decimal.Decimal, len(creditors))
	for _, c := range creditors {
		remainingCredit[c.Name] = c.NetBalance
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].Name
		creditor := creditors[j].Name

		amount := decimal.Min(remainingDebt[debtor], remainingCredit[creditor])
		if amount.IsPositive() {
			edges = append(edges, DebtEdge{From: debtor, To: creditor, Amount: amount})
		}

		remainingDebt[debtor] = remainingDebt[debtor].Sub(amount)
		remainingCredit[creditor] = remainingCredit[creditor].Sub(amount)

		if !remainingDebt[debtor].IsPositive() {
			i++
		}
		if !remainingCredit[creditor].IsPositive() {
			j++
		}
	}

	return memberBalances, edges
}
