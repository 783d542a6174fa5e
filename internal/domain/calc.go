package domain

// VATRate is the flat VAT (MVA) rate for passenger transport in this domain.
const VATRate = 0.12

// EntryTotal is the VAT-inclusive total for one trip: all fees summed, the
// customer's own contribution (egenandel) subtracted.
func EntryTotal(e CostEntry) float64 {
	return e.TripPrice.Value() +
		e.WaitingFee.Value() +
		e.TollFee.Value() +
		e.FerryFee.Value() +
		e.ExtraFee.Value() -
		e.Deductible.Value()
}

// EntryVAT backs the VAT portion out of the VAT-inclusive entry total:
// vat = total - total/1.12. A non-positive total yields 0.
func EntryVAT(e CostEntry) float64 {
	total := EntryTotal(e)
	if total <= 0 {
		return 0
	}
	return total - total/(1+VATRate)
}

// Summarize computes the aggregate totals across all entries. It is called
// on every read; nothing is cached.
func Summarize(entries []CostEntry) TotalsSummary {
	var s TotalsSummary
	for _, e := range entries {
		s.TaxableSubtotal += e.TripPrice.Value() + e.WaitingFee.Value() + e.ExtraFee.Value()
		s.NonTaxableSubtotal += e.TollFee.Value() + e.FerryFee.Value()
		s.DeductibleSubtotal += e.Deductible.Value()
		s.GrossTotal += EntryTotal(e)
		s.VATAmount += EntryVAT(e)
	}
	s.NetTotal = s.GrossTotal - s.VATAmount
	return s
}
