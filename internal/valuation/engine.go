package valuation

import (
	"math"
	"strings"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// ContractValue is the value of the contract plus how it was obtained, so a
// caller can validate the grand-total row against the summed budget when
// both exist.
type ContractValue struct {
	Value        float64 `json:"value"`
	Currency     string  `json:"currency"`
	FromTotalRow bool    `json:"fromTotalRow"`
}

// ExecutedValues is the money executed as of one report.
type ExecutedValues struct {
	Accumulated float64 `json:"accumulated"`
	Period      float64 `json:"period"`
	Currency    string  `json:"currency"`
}

// ComputeContractValue derives the contract value. A TOTAL row whose
// description contains "valor total" and carries a finite total is
// authoritative. Otherwise leaf items contribute effective quantity times
// effective price, AIU and lump-sum rows their stored total; subtotal and
// hierarchy rows never contribute.
func ComputeContractValue(p *model.Project, settings *model.Settings) ContractValue {
	currency := p.Terms.Currency

	for _, item := range p.Budget.Items {
		if item.Type != model.ItemTotal {
			continue
		}
		if !strings.Contains(strings.ToLower(item.Description), "valor total") {
			continue
		}
		if item.Total == 0 || math.IsNaN(item.Total) || math.IsInf(item.Total, 0) {
			continue
		}
		return ContractValue{
			Value:        RoundMoney(item.Total, settings),
			Currency:     currency,
			FromTotalRow: true,
		}
	}

	sum := 0.0
	for _, item := range p.Budget.Items {
		switch item.Type {
		case model.ItemLeaf:
			eff := EffectiveValue(item, p.Budget.Revisions)
			sum += eff.Quantity * eff.UnitPrice
		case model.ItemAIU, model.ItemLumpSum:
			sum += item.Total
		}
	}
	return ContractValue{Value: RoundMoney(sum, settings), Currency: currency}
}

// ComputeExecutedValues derives the accumulated and period executed value
// of one report. The period is measured against the report with the latest
// cutoff strictly before this one; quantities absent from either map count
// as zero.
func ComputeExecutedValues(p *model.Project, report *model.Report, settings *model.Settings) ExecutedValues {
	prev := p.PreviousReport(report.Cutoff)

	accumulated := 0.0
	period := 0.0
	for _, item := range p.Budget.Items {
		if item.Type != model.ItemLeaf {
			continue
		}
		price := EffectiveValue(item, p.Budget.Revisions).UnitPrice

		accumQty := report.Quantities[item.NormCode]
		prevQty := 0.0
		if prev != nil {
			prevQty = prev.Quantities[item.NormCode]
		}

		accumulated += accumQty * price
		period += (accumQty - prevQty) * price
	}

	return ExecutedValues{
		Accumulated: RoundMoney(accumulated, settings),
		Period:      RoundMoney(period, settings),
		Currency:    p.Terms.Currency,
	}
}

// ExecutedPercent is the executed share of the contract value as of one
// report. The second result is false when the contract value is not
// positive: the percentage is undefined, never a division by zero.
func ExecutedPercent(p *model.Project, report *model.Report, settings *model.Settings) (float64, bool) {
	contract := ComputeContractValue(p, settings)
	if contract.Value <= 0 {
		return 0, false
	}
	executed := ComputeExecutedValues(p, report, settings)
	return executed.Accumulated / contract.Value, true
}
