package valuation

import (
	"math"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// RoundMoney rounds a money amount per the configured precision. The
// model.MoneyThousands sentinel cuts to whole thousands: 1,249,999 becomes
// 1,249,000, never 1,250,000.
func RoundMoney(v float64, settings *model.Settings) float64 {
	if settings.MoneyPrecision == model.MoneyThousands {
		return math.Trunc(v/1000) * 1000
	}
	return Round(v, settings.MoneyPrecision)
}

// Round rounds half away from zero at the given decimal digit. The scaled
// value is first re-rounded eight digits deeper so binary representation
// noise (1.005 is stored just under the half) cannot flip the result.
func Round(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	scaled := v * pow
	scaled = math.Round(scaled*1e8) / 1e8
	return math.Round(scaled) / pow
}
