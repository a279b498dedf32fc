package parser

import (
	"strconv"
	"strings"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// RawRow carries one budget row's raw values after column mapping, before
// classification.
type RawRow struct {
	Code        string
	Description string
	Unit        string
	Quantity    *float64
	UnitPrice   *float64
	Total       *float64
}

// Vocabulary holds the keyword tables the classifier matches against.
// The vocabulary is injectable so locale extensions never touch the
// matching algorithm (ordered first-match, case-insensitive).
type Vocabulary struct {
	SubtotalPrefixes []string
	AIUKeywords      []string
	AIUExact         []string
	TotalKeywords    []string
}

// DefaultVocabulary returns the Spanish construction-budget vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		SubtotalPrefixes: []string{"subtotal", "sub-total", "sub total"},
		AIUKeywords:      []string{"administr", "imprev", "utilidad", "a.i.u"},
		AIUExact:         []string{"aiu"},
		TotalKeywords:    []string{"valor total", "incluye a.i.u", "incluye aiu"},
	}
}

// Classify assigns a semantic type to one decoded budget row. Pure function;
// first matching rule wins.
func Classify(row RawRow, vocab Vocabulary) model.ItemType {
	code := strings.TrimSpace(row.Code)
	desc := strings.TrimSpace(row.Description)
	lcode := strings.ToLower(code)
	ldesc := strings.ToLower(desc)

	if code == "" && desc == "" {
		return model.ItemOther
	}

	if hasAnyPrefix(lcode, vocab.SubtotalPrefixes) || hasAnyPrefix(ldesc, vocab.SubtotalPrefixes) {
		return model.ItemSubtotal
	}

	if matchesAIU(lcode, vocab) || matchesAIU(ldesc, vocab) {
		return model.ItemAIU
	}

	if containsAny(lcode, vocab.TotalKeywords) || containsAny(ldesc, vocab.TotalKeywords) {
		return model.ItemTotal
	}

	if code == "" {
		if row.Total != nil {
			return model.ItemLumpSum
		}
		return model.ItemText
	}

	norm := model.NormalizeCode(code)
	if isHierarchicalCode(norm) {
		switch model.CodeDepth(norm) {
		case 1:
			return model.ItemChapter
		case 2:
			return model.ItemSubChapter
		default:
			return model.ItemLeaf
		}
	}

	// Alphanumeric codes ("NP 1") are non-contractual extra items, still
	// priced as leaf items.
	return model.ItemLeaf
}

// isHierarchicalCode reports whether the normalized code is a dot-separated
// sequence of positive integers.
func isHierarchicalCode(norm string) bool {
	if norm == "" {
		return false
	}
	for _, seg := range strings.Split(norm, ".") {
		n, err := strconv.Atoi(seg)
		if err != nil || n <= 0 {
			return false
		}
	}
	return true
}

func matchesAIU(s string, vocab Vocabulary) bool {
	if s == "" {
		return false
	}
	if containsAny(s, vocab.AIUKeywords) {
		return true
	}
	for _, exact := range vocab.AIUExact {
		if s == exact {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
