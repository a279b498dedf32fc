package parser

import (
	"strings"
	"testing"

	"github.com/Luisfch1/CONTROL/internal/model"
	"github.com/Luisfch1/CONTROL/internal/sheet"
)

func budgetHeader() sheet.Row {
	return sheet.Row{
		sheet.Text("Item"),
		sheet.Text("Descripción"),
		sheet.Text("Und"),
		sheet.Text("Cantidad"),
		sheet.Text("Vr. Unitario"),
		sheet.Text("Vr. Total"),
	}
}

func TestParseBudgetSkipsLetterhead(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		{sheet.Text("CONSTRUCTORA ANDINA S.A.S.")},
		{sheet.Text("PRESUPUESTO DE OBRA"), sheet.Text("Contrato 042-2026")},
		{},
		budgetHeader(),
		{sheet.Text("1"), sheet.Text("PRELIMINARES")},
		{sheet.Text("1.1"), sheet.Text("Localización y replanteo"), sheet.Text("m2"), sheet.Number(120), sheet.Number(3500), sheet.Number(420000)},
	}

	parser := NewBudgetParser(nil)
	items, warnings := parser.Parse(rows)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Type != model.ItemChapter || items[0].NormCode != "1" {
		t.Fatalf("unexpected chapter row: %+v", items[0])
	}
}

func TestParseBudgetItemFields(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		budgetHeader(),
		{sheet.Text("1.2.3"), sheet.Text("Excavación manual"), sheet.Text("m3"), sheet.Number(10), sheet.Number(45000)},
	}

	parser := NewBudgetParser(nil)
	items, _ := parser.Parse(rows)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	got := items[0]
	if got.Type != model.ItemLeaf {
		t.Fatalf("want %v got %v", model.ItemLeaf, got.Type)
	}
	if got.Depth != 3 || got.ParentCode != "1.2" {
		t.Fatalf("hierarchy: want depth 3 parent 1.2, got depth %d parent %q", got.Depth, got.ParentCode)
	}
	if got.Total != 450000 {
		t.Fatalf("derived total: want 450000 got %v", got.Total)
	}
	if got.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestParseBudgetNormalizesTrailingDot(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		budgetHeader(),
		{sheet.Text("1."), sheet.Text("PRELIMINARES")},
	}

	parser := NewBudgetParser(nil)
	items, _ := parser.Parse(rows)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Code != "1." || items[0].NormCode != "1" {
		t.Fatalf("want code 1. norm 1, got code %q norm %q", items[0].Code, items[0].NormCode)
	}
	if items[0].Type != model.ItemChapter || items[0].Depth != 1 {
		t.Fatalf("want chapter depth 1, got %v depth %d", items[0].Type, items[0].Depth)
	}
}

func TestParseBudgetExplicitTotalWins(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		budgetHeader(),
		{sheet.Text("2.1.1"), sheet.Text("Concreto 3000 psi"), sheet.Text("m3"), sheet.Number(8), sheet.Number(500000), sheet.Number(4100000)},
	}

	parser := NewBudgetParser(nil)
	items, _ := parser.Parse(rows)
	if items[0].Total != 4100000 {
		t.Fatalf("explicit total must win: want 4100000 got %v", items[0].Total)
	}
}

func TestParseBudgetSubtotalLabelInCodeColumn(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		budgetHeader(),
		{sheet.Text("SUBTOTAL CAPITULO 1"), sheet.Empty(), sheet.Empty(), sheet.Empty(), sheet.Empty(), sheet.Number(420000)},
	}

	parser := NewBudgetParser(nil)
	items, _ := parser.Parse(rows)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.Type != model.ItemSubtotal {
		t.Fatalf("want %v got %v", model.ItemSubtotal, got.Type)
	}
	if got.Code != "" || got.Description != "SUBTOTAL CAPITULO 1" {
		t.Fatalf("label must move to the description: code %q desc %q", got.Code, got.Description)
	}
}

func TestParseBudgetExcessPrecisionWarning(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		budgetHeader(),
		{sheet.Text("1.1.1"), sheet.Text("Acero de refuerzo"), sheet.Text("kg"), sheet.Number(10.12345), sheet.Number(5000)},
		{sheet.Text("1.1.2"), sheet.Text("Malla electrosoldada"), sheet.Text("m2"), sheet.Number(3.5), sheet.Number(18000)},
	}

	parser := NewBudgetParser(nil)
	_, warnings := parser.Parse(rows)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "1 cantidades") {
		t.Fatalf("unexpected warning text: %q", warnings[0])
	}

	quiet := model.DefaultSettings()
	quiet.WarnExcessPrecision = false
	_, warnings = NewBudgetParser(quiet).Parse(rows)
	if len(warnings) != 0 {
		t.Fatalf("warning must respect the setting, got %v", warnings)
	}
}

func TestParseBudgetNoHeader(t *testing.T) {
	t.Parallel()

	parser := NewBudgetParser(nil)
	items, warnings := parser.Parse(nil)
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil items, got %v", items)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "encabezado") {
		t.Fatalf("expected header warning, got %v", warnings)
	}
}

func TestParseBudgetMissingColumnWarning(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		{sheet.Text("Item"), sheet.Text("Descripción"), sheet.Text("Cantidad"), sheet.Text("Vr. Unitario"), sheet.Text("Vr. Total")},
		{sheet.Text("1.1.1"), sheet.Text("Excavación"), sheet.Number(10), sheet.Number(100)},
	}

	parser := NewBudgetParser(nil)
	items, warnings := parser.Parse(rows)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, `"unit"`) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a missing-unit warning, got %v", warnings)
	}
}
