package utils

import "testing"

func TestFormatWholeMoney(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		150:     "150",
		1500:    "1 500",
		12500:   "12 500",
		1234567: "1 234 567",
		1499.6:  "1 500",
		-2500:   "-2 500",
	}
	for in, want := range cases {
		if got := FormatWholeMoney(in); got != want {
			t.Fatalf("FormatWholeMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatExactMoney(t *testing.T) {
	cases := map[float64]string{
		12:     "12.00",
		1512.5: "1 512.50",
		0.125:  "0.13",
		99.999: "100.00",
	}
	for in, want := range cases {
		if got := FormatExactMoney(in); got != want {
			t.Fatalf("FormatExactMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleCaseName(t *testing.T) {
	cases := map[string]string{
		"ola nordmann":  "Ola Nordmann",
		"KARI VINJE":    "Kari Vinje",
		"  per  olsen ": "Per Olsen",
		"":              "",
	}
	for in, want := range cases {
		if got := TitleCaseName(in); got != want {
			t.Fatalf("TitleCaseName(%q) = %q, want %q", in, got, want)
		}
	}
}
