package rates

// Rate holds a fixed conversion factor from the USD base price plus the
// symbol and locale used when rendering amounts.
type Rate struct {
	Rate   float64
	Symbol string
	Locale string
}

type Table map[string]Rate

// DefaultCode is the fallback for unrecognised currency codes.
const DefaultCode = "IDR"

func Default() Table {
	return Table{
		"IDR": {Rate: 16000, Symbol: "Rp ", Locale: "id_ID"},
		"USD": {Rate: 1, Symbol: "$", Locale: "en_US"},
		"EUR": {Rate: 0.92, Symbol: "€", Locale: "de_DE"},
		"GBP": {Rate: 0.79, Symbol: "£", Locale: "en_GB"},
		"JPY": {Rate: 150, Symbol: "¥", Locale: "ja_JP"},
	}
}

// Lookup returns the canonical code and rate for an input, silently falling
// back to the default currency when the code isn't in the table.
func (t Table) Lookup(code string) (string, Rate) {
	if rate, ok := t[code]; ok {
		return code, rate
	}
	return DefaultCode, t[DefaultCode]
}
