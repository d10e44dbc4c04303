package helper

import "testing"

func TestMaskDonorName(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"regular name":    {"Ramesh Gupta", "Ra**********"},
		"trims spaces":    {"  Sita  ", "Si**"},
		"empty":           {"", "Anonymous"},
		"whitespace only": {"   ", "Anonymous"},
		"single rune":     {"R", "R***"},
		"two runes":       {"Ra", "R***"},
		"multibyte runes": {"राम कुमार", "रा*******"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := MaskDonorName(c.in); got != c.want {
				t.Fatalf("MaskDonorName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
