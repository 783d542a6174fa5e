package domain

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAmountValue_Variants(t *testing.T) {
	cases := map[Amount]float64{
		"150":     150,
		"150.00":  150,
		"150,00":  150,
		" 1 500 ": 1500,
		"":        0,
		"abc":     0,
		"-20":     0,
		"12,5":    12.5,
	}
	for in, want := range cases {
		if got := in.Value(); !almostEqual(got, want) {
			t.Fatalf("Amount(%q).Value() = %v, want %v", string(in), got, want)
		}
	}
}

func TestEntryVAT_BacksOutTwelvePercent(t *testing.T) {
	e := CostEntry{TripPrice: "112"}
	if got := EntryTotal(e); !almostEqual(got, 112) {
		t.Fatalf("EntryTotal = %v, want 112", got)
	}
	if got := EntryVAT(e); !almostEqual(got, 12) {
		t.Fatalf("EntryVAT = %v, want 12", got)
	}
}

func TestEntryVAT_ZeroAndNegativeTotals(t *testing.T) {
	if got := EntryVAT(CostEntry{}); got != 0 {
		t.Fatalf("empty entry VAT = %v, want 0", got)
	}
	e := CostEntry{TripPrice: "100", Deductible: "150"}
	if got := EntryVAT(e); got != 0 {
		t.Fatalf("negative-total entry VAT = %v, want 0", got)
	}
}

func TestEntryTotal_DeductibleSubtracted(t *testing.T) {
	e := CostEntry{
		TripPrice:  "200",
		WaitingFee: "50",
		TollFee:    "30",
		FerryFee:   "20",
		ExtraFee:   "10",
		Deductible: "60",
	}
	if got := EntryTotal(e); !almostEqual(got, 250) {
		t.Fatalf("EntryTotal = %v, want 250", got)
	}
}

func TestSummarize(t *testing.T) {
	entries := []CostEntry{
		{TripPrice: "112"},
		{TripPrice: "100", TollFee: "40", Deductible: "28"},
	}
	s := Summarize(entries)

	if !almostEqual(s.TaxableSubtotal, 212) {
		t.Fatalf("taxable = %v, want 212", s.TaxableSubtotal)
	}
	if !almostEqual(s.NonTaxableSubtotal, 40) {
		t.Fatalf("non-taxable = %v, want 40", s.NonTaxableSubtotal)
	}
	if !almostEqual(s.DeductibleSubtotal, 28) {
		t.Fatalf("deductible = %v, want 28", s.DeductibleSubtotal)
	}
	if !almostEqual(s.GrossTotal, 224) {
		t.Fatalf("gross = %v, want 224", s.GrossTotal)
	}
	if !almostEqual(s.VATAmount, 24) {
		t.Fatalf("vat = %v, want 24", s.VATAmount)
	}
	if !almostEqual(s.NetTotal, 200) {
		t.Fatalf("net = %v, want 200", s.NetTotal)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.GrossTotal != 0 || s.VATAmount != 0 || s.NetTotal != 0 {
		t.Fatalf("empty summary not zero: %+v", s)
	}
}
