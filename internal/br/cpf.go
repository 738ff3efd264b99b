// Package br holds Brazilian-format helpers: CPF and mobile-number
// masking, stripping and checksum validation. All functions are pure
// and total; storage is always digits-only, masks are presentation.
package br

import "strings"

// OnlyDigits strips every non-digit character from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF progressively masks an accumulating CPF as NNN.NNN.NNN-NN.
// Partial input yields a partial mask, so the function can back a
// textbox mask as well as final display. Digits beyond 11 are dropped.
func FormatCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// ValidCPF reports whether s is a checksum-valid CPF. Formatting is
// stripped first; the result must be exactly 11 digits, not a repeated
// sequence, and both check digits must match the weighted-sum-mod-11
// algorithm (remainder 10 maps to 0).
func ValidCPF(s string) bool {
	d := OnlyDigits(s)
	if len(d) != 11 {
		return false
	}
	if allSameDigits(d) {
		return false
	}
	return checkDigit(d, 9) == int(d[9]-'0') && checkDigit(d, 10) == int(d[10]-'0')
}

func allSameDigits(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// checkDigit computes the verification digit over the first n digits
// of d, with weights n+1 down to 2.
func checkDigit(d string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(d[i]-'0') * (n + 1 - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		rest = 0
	}
	return rest
}
