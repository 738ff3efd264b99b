package br

import "regexp"

var celularRe = regexp.MustCompile(`^(\d{2})?9\d{8}$`)

// FormatCelular progressively masks an accumulating mobile number as
// (NN) NNNNN-NNNN, falling back to the 4-digit prefix variant while
// fewer digits are available. Digits beyond 11 are dropped.
func FormatCelular(s string) string {
	d := OnlyDigits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// ValidCelular reports whether s, after stripping, matches the
// Brazilian mobile pattern: optional 2-digit area code, mandatory
// leading 9, then 8 more digits.
func ValidCelular(s string) bool {
	return celularRe.MatchString(OnlyDigits(s))
}
