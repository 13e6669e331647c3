package numword

import "testing"

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Zero Dollars and 00/100"},
		{1234.56, "One Thousand Two Hundred Thirty Four Dollars and 56/100"},
		{5, "Five Dollars and 00/100"},
		{0.07, "Zero Dollars and 07/100"},
		{19.99, "Nineteen Dollars and 99/100"},
		{105, "One Hundred Five Dollars and 00/100"},
		{1000000, "One Million Dollars and 00/100"},
		{2000000000.5, "Two Billion Dollars and 50/100"},
		{1001001001, "One Billion One Million One Thousand One Dollars and 00/100"},
	}

	for _, tc := range cases {
		if got := AmountInWords(tc.in); got != tc.want {
			t.Errorf("AmountInWords(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{13, "Thirteen"},
		{40, "Forty"},
		{87, "Eighty Seven"},
		{300, "Three Hundred"},
		{512, "Five Hundred Twelve"},
		{7000, "Seven Thousand"},
		{123456, "One Hundred Twenty Three Thousand Four Hundred Fifty Six"},
	}

	for _, tc := range cases {
		if got := Words(tc.in); got != tc.want {
			t.Errorf("Words(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
