package valuation

import (
	"testing"

	"github.com/Luisfch1/CONTROL/internal/model"
)

func TestRoundMoneyThousandsCutsDown(t *testing.T) {
	t.Parallel()

	settings := &model.Settings{MoneyPrecision: model.MoneyThousands}
	if got := RoundMoney(1249999, settings); got != 1249000 {
		t.Fatalf("want 1249000, got %v", got)
	}
	if got := RoundMoney(1250000, settings); got != 1250000 {
		t.Fatalf("exact thousands untouched, got %v", got)
	}
	if got := RoundMoney(999, settings); got != 0 {
		t.Fatalf("below a thousand cuts to zero, got %v", got)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	if got := Round(1.005, 2); got != 1.01 {
		t.Fatalf("1.005: want 1.01, got %v", got)
	}
	if got := Round(2.675, 2); got != 2.68 {
		t.Fatalf("2.675: want 2.68, got %v", got)
	}
	if got := Round(-1.005, 2); got != -1.01 {
		t.Fatalf("-1.005: want -1.01, got %v", got)
	}
	if got := Round(1234.4, 0); got != 1234 {
		t.Fatalf("1234.4: want 1234, got %v", got)
	}
	if got := Round(1234.5, 0); got != 1235 {
		t.Fatalf("1234.5: want 1235, got %v", got)
	}
}
