package valuation

import (
	"time"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// AccumulatedAsOf sums every disbursement dated on or before the cutoff,
// rounded per the money precision. A zero cutoff means no bound: the whole
// history is summed.
func AccumulatedAsOf(p *model.Project, cutoff time.Time, settings *model.Settings) float64 {
	sum := 0.0
	for _, ev := range p.Finance.Events {
		if !cutoff.IsZero() && ev.Date.After(cutoff) {
			continue
		}
		sum += ev.Amount
	}
	return RoundMoney(sum, settings)
}

// FinancePercent is the disbursed share of the contract value as of the
// cutoff. The second result is false when the contract value is not
// positive.
func FinancePercent(p *model.Project, cutoff time.Time, settings *model.Settings) (float64, bool) {
	contract := ComputeContractValue(p, settings)
	if contract.Value <= 0 {
		return 0, false
	}
	return AccumulatedAsOf(p, cutoff, settings) / contract.Value, true
}
