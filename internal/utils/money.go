package utils

import (
	"fmt"
	"strconv"
	"strings"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatPrice renders a raw amount plus ISO currency code as a display string,
// e.g. (1200, "USD") -> "$1,200". Unknown codes are suffixed: (45, "JOD") -> "45 JOD".
func FormatPrice(amount float64, currency string) string {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		cur = "USD"
	}
	neg := amount < 0
	body := formatAmount(amount)
	if sym, ok := currencySymbols[cur]; ok {
		if neg {
			return "-" + sym + strings.TrimPrefix(body, "-")
		}
		return sym + body
	}
	return body + " " + cur
}

func formatAmount(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	var str string
	if amount == float64(int64(amount)) {
		str = groupThousands(strconv.FormatInt(int64(amount), 10))
	} else {
		str = fmt.Sprintf("%.2f", amount)
		if dot := strings.IndexByte(str, '.'); dot > 0 {
			str = groupThousands(str[:dot]) + str[dot:]
		}
	}
	if neg {
		return "-" + str
	}
	return str
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
