package valuation

import "github.com/Luisfch1/CONTROL/internal/model"

// Effective is an item's quantity and unit price after applying a chain of
// revisions over its base contract values.
type Effective struct {
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// EffectiveValue folds the revision list, in stored order, over the item's
// base quantity and price. Each revision's explicit fields override the
// running value independently; a revision without a change for the item is
// a no-op. Callers pass a prefix of the project's revisions to evaluate
// "as of revision N".
func EffectiveValue(item model.BudgetItem, revisions []model.Revision) Effective {
	qty := item.Quantity
	price := item.UnitPrice

	for _, rev := range revisions {
		change, ok := rev.ChangeFor(item.NormCode)
		if !ok {
			continue
		}
		if change.Quantity != nil {
			qty = *change.Quantity
		}
		if change.UnitPrice != nil {
			price = *change.UnitPrice
		}
	}

	return Effective{Quantity: qty, UnitPrice: price, Total: qty * price}
}
