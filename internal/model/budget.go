package model

import (
	"strings"
	"time"
)

// ItemType classifies one imported budget row.
type ItemType string

const (
	ItemChapter    ItemType = "CAP"      // chapter, 1-segment numeric code
	ItemSubChapter ItemType = "SUB"      // sub-chapter, 2-segment numeric code
	ItemLeaf       ItemType = "ITEM"     // priced leaf item
	ItemText       ItemType = "TEXT"     // free text, no code, no total
	ItemLumpSum    ItemType = "LUMP"     // no code but carries a total
	ItemSubtotal   ItemType = "SUBTOTAL" // rollup row, never summed
	ItemAIU        ItemType = "AIU"      // administration/contingency/profit row
	ItemTotal      ItemType = "TOTAL"    // contract grand-total row
	ItemOther      ItemType = "OTHER"    // discarded on import
)

// BudgetItem is one row of the imported budget. Only ItemLeaf rows take part
// in quantity/price arithmetic; ItemAIU and ItemLumpSum contribute their
// stored total directly; ItemSubtotal never contributes.
type BudgetItem struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`     // as written in the sheet
	NormCode    string   `json:"normCode"` // trailing "." stripped; join key everywhere
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	Quantity    float64  `json:"quantity"`  // base (contract) quantity
	UnitPrice   float64  `json:"unitPrice"` // base unit price
	Total       float64  `json:"total"`     // explicit, or quantity*price
	ParentCode  string   `json:"parentCode"`
	Depth       int      `json:"depth"`
	Type        ItemType `json:"type"`
}

// Change amends one item inside a revision. Nil fields keep the running value.
type Change struct {
	Code      string   `json:"code"` // target item's normalized code
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
}

// Revision is a non-destructive budget amendment (contract modification).
// Revisions apply in stored order, each explicit field overriding the
// running value independently.
type Revision struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	EffectiveDate time.Time `json:"effectiveDate"` // zero when unset, display only
	Changes       []Change  `json:"changes"`
	Hidden        bool      `json:"hidden"` // display only, never affects computation
}

// ChangeFor returns the change targeting code, if the revision has one.
// At most one change per code is stored per revision.
func (r *Revision) ChangeFor(code string) (Change, bool) {
	for _, ch := range r.Changes {
		if ch.Code == code {
			return ch, true
		}
	}
	return Change{}, false
}

// Budget holds the imported item list plus its amendment chain. Items are
// replaced wholesale on re-import; revisions survive re-imports.
type Budget struct {
	Items     []BudgetItem `json:"items"`
	Revisions []Revision   `json:"revisions"`
}

// NormalizeCode strips trailing code separators: "1." -> "1".
func NormalizeCode(code string) string {
	return strings.TrimRight(strings.TrimSpace(code), ".")
}

// CodeDepth counts dot segments of a normalized code ("1.2.3" -> 3).
// Empty codes have depth 0.
func CodeDepth(normCode string) int {
	if normCode == "" {
		return 0
	}
	return len(strings.Split(normCode, "."))
}

// ParentCode drops the last dot segment ("1.2.3" -> "1.2"). Codes with a
// single segment have no parent.
func ParentCode(normCode string) string {
	idx := strings.LastIndex(normCode, ".")
	if idx < 0 {
		return ""
	}
	return normCode[:idx]
}
