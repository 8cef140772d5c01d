// utils/currency.go
package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatRupiah renders an amount in the id-ID currency convention with no
// fraction digits, e.g. 150000 -> "Rp 150.000". Negative amounts keep the
// sign in front: -10000 -> "-Rp 10.000".
func FormatRupiah(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	whole := int64(math.Round(math.Abs(amount)))

	digits := strconv.FormatInt(whole, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return fmt.Sprintf("%sRp %s", sign, string(out))
}
