// Package output normalizes numbers in devkit responses so identical queries
// produce byte-identical output.
package output

import (
	"math"
	"strconv"
	"strings"
)

// ScoreDecimals is the precision scores are rounded to.
const ScoreDecimals = 6

var scoreMultiplier = math.Pow(10, ScoreDecimals)

// RoundFloat rounds f to ScoreDecimals decimal places.
func RoundFloat(f float64) float64 {
	return math.Round(f*scoreMultiplier) / scoreMultiplier
}

// FormatFloat formats f rounded to ScoreDecimals places, without trailing zeros.
func FormatFloat(f float64) string {
	str := strconv.FormatFloat(RoundFloat(f), 'f', ScoreDecimals, 64)
	str = strings.TrimRight(str, "0")
	return strings.TrimRight(str, ".")
}
