package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	amountNoise   = regexp.MustCompile(`[^\d.,]`)
	leadingNumber = regexp.MustCompile(`^\d*\.?\d*`)
)

// Amount normalizes a cell value to a whole, non-negative amount.
//
// Strings use the local convention: with both '.' and ',' present the dots are thousands
// separators and the comma is the decimal mark; a lone ',' is the decimal mark. Otherwise '.'
// is the decimal mark and parsing stops at the first character that cannot continue the
// number, so "1.234.567" reads as 1.234. The value is rounded half-up. Absent or unreadable
// input yields 0.
func Amount(raw any) int64 {
	var s string
	switch v := raw.(type) {
	case nil:
		return 0
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		s = fmt.Sprint(v)
	}

	s = amountNoise.ReplaceAllString(s, "")
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}

	num := strings.TrimSuffix(leadingNumber.FindString(s), ".")
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0
	}
	return d.Round(0).IntPart()
}
