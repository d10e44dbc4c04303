package helper

import "strings"

// MaskDonorName keeps a short prefix of the donor's name and masks the rest,
// for the public recent-donations feed. "Ramesh Gupta" -> "Ra**********".
func MaskDonorName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Anonymous"
	}
	runes := []rune(name)
	keep := 2
	if len(runes) <= keep {
		return string(runes[:1]) + strings.Repeat("*", 3)
	}
	return string(runes[:keep]) + strings.Repeat("*", len(runes)-keep)
}
