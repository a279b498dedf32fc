package valuation

import (
	"testing"
	"time"

	"github.com/Luisfch1/CONTROL/internal/model"
)

func financeProject() *model.Project {
	p := testProject()
	p.Finance.Events = []model.FinanceEvent{
		{ID: "e1", Date: day(2026, time.January, 15), Type: model.FinanceAdvance, Amount: 100},
		{ID: "e2", Date: day(2026, time.February, 20), Type: model.FinancePayment, Amount: 200},
		{ID: "e3", Date: day(2026, time.March, 10), Type: model.FinancePayment, Amount: 50},
	}
	return p
}

func TestAccumulatedAsOfCutoff(t *testing.T) {
	t.Parallel()

	p := financeProject()
	settings := model.DefaultSettings()

	if got := AccumulatedAsOf(p, day(2026, time.February, 28), settings); got != 300 {
		t.Fatalf("want 300, got %v", got)
	}
	// An event dated exactly on the cutoff is included.
	if got := AccumulatedAsOf(p, day(2026, time.February, 20), settings); got != 300 {
		t.Fatalf("cutoff-day event: want 300, got %v", got)
	}
}

func TestAccumulatedAsOfZeroCutoffIsUnbounded(t *testing.T) {
	t.Parallel()

	p := financeProject()
	if got := AccumulatedAsOf(p, time.Time{}, model.DefaultSettings()); got != 350 {
		t.Fatalf("want 350, got %v", got)
	}
}

func TestFinancePercent(t *testing.T) {
	t.Parallel()

	p := financeProject()
	p.Budget.Items = []model.BudgetItem{leaf("1.1.1", 10, 100)}

	got, ok := FinancePercent(p, day(2026, time.February, 28), model.DefaultSettings())
	if !ok {
		t.Fatalf("expected a defined percentage")
	}
	if got != 0.3 {
		t.Fatalf("want 0.3, got %v", got)
	}

	p.Budget.Items = nil
	if _, ok := FinancePercent(p, time.Time{}, model.DefaultSettings()); ok {
		t.Fatalf("percentage must be undefined without a contract value")
	}
}
