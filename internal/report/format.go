package report

import (
	"math"
	"strconv"
	"strings"
)

// significantFigures is the precision of the energy column
const significantFigures = 5

// FormatEnergy formats v with five significant figures in general notation.
// Scientific notation is used when the decimal exponent is below -4 or at
// least significantFigures-1; trailing zeros are dropped, and fixed notation
// always keeps one digit after the point ("2.0", "1234.0", "1.2345e+04").
func FormatEnergy(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', significantFigures, 64)
	}

	// Round once so the exponent reflects the rounded value.
	sci := strconv.FormatFloat(v, 'e', significantFigures-1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return sci
	}

	if exp < -4 || exp >= significantFigures-1 {
		return trimZeros(mantissa, false) + "e" + expPart
	}

	fixed := strconv.FormatFloat(v, 'f', significantFigures-1-exp, 64)
	return trimZeros(fixed, true)
}

// trimZeros removes trailing fractional zeros. With keepOne the result
// keeps at least one digit after the point, adding ".0" when needed.
func trimZeros(s string, keepOne bool) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if keepOne && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
