// Package numword renders monetary amounts as English words for printed
// documents ("One Thousand Two Hundred Thirty Four Dollars and 56/100").
package numword

import (
	"fmt"
	"math"
	"strings"
)

var (
	ones  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	scale = []string{"", "Thousand", "Million", "Billion"}
)

// AmountInWords renders an amount as spelled-out dollars plus a two-digit
// cents fraction. It is display-only and has no inverse. Magnitudes are
// supported through the billions.
func AmountInWords(amount float64) string {
	whole := int64(math.Floor(amount))
	cents := int64(math.Round((amount - float64(whole)) * 100))
	return fmt.Sprintf("%s Dollars and %02d/100", Words(whole), cents)
}

// Words spells out a non-negative integer in English. Zero renders as "Zero".
func Words(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var word string
	for i := 0; n > 0; i++ {
		part := n % 1000
		if part != 0 {
			word = strings.TrimSpace(group(int(part))+" "+scale[min(i, len(scale)-1)]) + " " + word
		}
		n /= 1000
	}
	return strings.TrimSpace(word)
}

// group spells out a value below one thousand.
func group(n int) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + ones[n%10]
		}
		return s
	default:
		s := ones[n/100] + " Hundred"
		if n%100 != 0 {
			s += " " + group(n%100)
		}
		return s
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
