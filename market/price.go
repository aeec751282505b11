package market

import "math"

// PipScale converts a fourth-decimal price distance into pips for the FX
// majors modeled here. It is a decimal-convention constant, not a tunable.
const PipScale float64 = 10000

// Precision is the number of decimal places every published price carries.
const Precision = 5

// Symbols lists the instruments available in the terminal.
var Symbols = []string{"EURUSD", "GBPUSD", "USDJPY", "AUDUSD", "XAUUSD"}

// RoundPrice rounds x to the standard 5-decimal price precision.
func RoundPrice(x float64) float64 {
	const scale = 1e5
	return math.Round(x*scale) / scale
}

// Pips returns the distance between two prices expressed in pips.
func Pips(a, b float64) float64 {
	return math.Abs(a-b) * PipScale
}

// Bias is a trade direction.
type Bias string

const (
	Long  Bias = "LONG"
	Short Bias = "SHORT"
)

// ValidSymbol reports whether s is a known instrument.
func ValidSymbol(s string) bool {
	for _, sym := range Symbols {
		if sym == s {
			return true
		}
	}
	return false
}
