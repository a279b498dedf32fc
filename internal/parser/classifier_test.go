package parser

import (
	"testing"

	"github.com/Luisfch1/CONTROL/internal/model"
)

func f64(v float64) *float64 { return &v }

func TestClassifyEmptyRowDiscarded(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	if got := Classify(RawRow{}, vocab); got != model.ItemOther {
		t.Fatalf("empty row: want %v got %v", model.ItemOther, got)
	}
	if got := Classify(RawRow{Code: "  ", Description: "\t"}, vocab); got != model.ItemOther {
		t.Fatalf("whitespace row: want %v got %v", model.ItemOther, got)
	}
}

func TestClassifySubtotalBeatsEverything(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	if got := Classify(RawRow{Description: "SUBTOTAL CAPITULO 1", Total: f64(5000)}, vocab); got != model.ItemSubtotal {
		t.Fatalf("want %v got %v", model.ItemSubtotal, got)
	}
	if got := Classify(RawRow{Code: "Sub-Total"}, vocab); got != model.ItemSubtotal {
		t.Fatalf("code column subtotal: want %v got %v", model.ItemSubtotal, got)
	}
	// Prefix match only: "subtotal" buried mid-description is not a rollup.
	if got := Classify(RawRow{Description: "incluye subtotal previo"}, vocab); got == model.ItemSubtotal {
		t.Fatalf("mid-string subtotal must not match")
	}
}

func TestClassifyAIU(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	for _, desc := range []string{"ADMINISTRACIÓN 20%", "Imprevistos", "UTILIDAD 5%", "A.I.U (30%)"} {
		if got := Classify(RawRow{Description: desc, Total: f64(100)}, vocab); got != model.ItemAIU {
			t.Fatalf("%q: want %v got %v", desc, model.ItemAIU, got)
		}
	}
	// "aiu" matches only as the whole cell, so codes like "aiuXYZ" stay out.
	if got := Classify(RawRow{Description: "AIU"}, vocab); got != model.ItemAIU {
		t.Fatalf("exact aiu: want %v got %v", model.ItemAIU, got)
	}
	if got := Classify(RawRow{Code: "aiu9"}, vocab); got == model.ItemAIU {
		t.Fatalf("aiu9 must not match the exact token")
	}
}

func TestClassifyTotalRow(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	if got := Classify(RawRow{Description: "VALOR TOTAL DEL CONTRATO", Total: f64(1000000)}, vocab); got != model.ItemTotal {
		t.Fatalf("want %v got %v", model.ItemTotal, got)
	}
}

func TestClassifyNoCodeRows(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	if got := Classify(RawRow{Description: "Nota: precios sin IVA"}, vocab); got != model.ItemText {
		t.Fatalf("text row: want %v got %v", model.ItemText, got)
	}
	if got := Classify(RawRow{Description: "Campamento provisional", Total: f64(2500000)}, vocab); got != model.ItemLumpSum {
		t.Fatalf("lump sum row: want %v got %v", model.ItemLumpSum, got)
	}
}

func TestClassifyHierarchy(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	if got := Classify(RawRow{Code: "1", Description: "PRELIMINARES"}, vocab); got != model.ItemChapter {
		t.Fatalf("depth 1: want %v got %v", model.ItemChapter, got)
	}
	if got := Classify(RawRow{Code: "1.", Description: "PRELIMINARES"}, vocab); got != model.ItemChapter {
		t.Fatalf("trailing dot: want %v got %v", model.ItemChapter, got)
	}
	if got := Classify(RawRow{Code: "1.2", Description: "Movimiento de tierras"}, vocab); got != model.ItemSubChapter {
		t.Fatalf("depth 2: want %v got %v", model.ItemSubChapter, got)
	}
	if got := Classify(RawRow{Code: "1.2.3", Description: "Excavación manual", Quantity: f64(10), UnitPrice: f64(100)}, vocab); got != model.ItemLeaf {
		t.Fatalf("depth 3: want %v got %v", model.ItemLeaf, got)
	}
	if got := Classify(RawRow{Code: "1.2.3.4", Description: "Retiro de sobrantes"}, vocab); got != model.ItemLeaf {
		t.Fatalf("depth 4: want %v got %v", model.ItemLeaf, got)
	}
}

func TestClassifyAlphanumericCodeIsLeaf(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	if got := Classify(RawRow{Code: "NP 1", Description: "Obra extra"}, vocab); got != model.ItemLeaf {
		t.Fatalf("want %v got %v", model.ItemLeaf, got)
	}
	if got := Classify(RawRow{Code: "1.0.2"}, vocab); got != model.ItemLeaf {
		t.Fatalf("zero segment is not hierarchical: want %v got %v", model.ItemLeaf, got)
	}
}
