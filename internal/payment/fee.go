package payment

import "math"

// Calculate returns the fee charged on amount. The percentage is applied in
// basis points and rounded up to the smallest unit.
func (f Fee) Calculate(amount int64) int64 {
	bp := int64(math.Round(f.Percent * 100))
	fee := f.Flat + (amount*bp+9999)/10000

	if f.Min > 0 && fee < f.Min {
		fee = f.Min
	}
	if f.Max > 0 && fee > f.Max {
		fee = f.Max
	}
	return fee
}
