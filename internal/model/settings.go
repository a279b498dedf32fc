package model

// MoneyThousands is the sentinel money precision: values are cut to whole
// thousands (1,249,999 -> 1,249,000, never up).
const MoneyThousands = -1

// Settings are the display and calculation settings. They are stored with
// the project data rather than in config.toml so backups carry them.
type Settings struct {
	MoneyPrecision            int  `json:"moneyPrecision"`            // decimal digits, or MoneyThousands
	QuantityPrecision         int  `json:"quantityPrecision"`         // display digits for item quantities
	WarnExcessPrecision       bool `json:"warnExcessPrecision"`       // warn on quantities with more digits than QuantityPrecision
	ShiftPlannedBySuspensions bool `json:"shiftPlannedBySuspensions"` // push planned-curve dates past suspensions
}

// DefaultSettings returns the settings used until the user changes them.
func DefaultSettings() *Settings {
	return &Settings{
		MoneyPrecision:            0,
		QuantityPrecision:         2,
		WarnExcessPrecision:       true,
		ShiftPlannedBySuspensions: false,
	}
}
