package document

import (
	"fmt"
	"strings"

	"bluebook/internal/domain"
	"bluebook/internal/utils"
)

// Assemble maps the form aggregate onto the fixed printable section order:
// header, licenses, date/time, trip info, cost breakdown, totals,
// attachments index. Pure function: no I/O, no mutation of its inputs.
// Blank fields never become empty label/value pairs, and sections with
// nothing to show are dropped entirely (header and costs always render).
func Assemble(company Company, meta domain.TripMeta, licenses []domain.LicenseBinding, entries []domain.CostEntry, attachments []domain.Attachment) Document {
	doc := Document{
		Filename: MakeFilename(meta, licenses),
	}

	doc.Sections = append(doc.Sections, Section{
		Kind:   SectionHeader,
		Header: &Header{Title: "Rekning", Company: company},
	})

	if sec, ok := licenseSection(licenses); ok {
		doc.Sections = append(doc.Sections, sec)
	}
	if sec, ok := dateTimeSection(meta); ok {
		doc.Sections = append(doc.Sections, sec)
	}
	if sec, ok := tripInfoSection(meta); ok {
		doc.Sections = append(doc.Sections, sec)
	}

	doc.Sections = append(doc.Sections, costsSection(entries, len(licenses) > 1))
	doc.Sections = append(doc.Sections, totalsSection(entries))

	if len(attachments) > 0 {
		index := make([]string, 0, len(attachments))
		for _, a := range attachments {
			index = append(index, fmt.Sprintf("%s (%s)", a.DisplayName, prettySize(a.SizeBytes)))
		}
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionAttachments,
			Title: "Vedlegg",
			Index: index,
		})
	}

	return doc
}

func licenseSection(licenses []domain.LicenseBinding) (Section, bool) {
	if len(licenses) == 0 {
		return Section{}, false
	}
	rows := make([][]Field, 0, len(licenses))
	for _, b := range licenses {
		row := []Field{}
		row = appendField(row, "Løyve", b.LicenseID)
		row = appendField(row, "ID", b.DriverID)
		row = appendField(row, "Navn", b.DriverName)
		rows = append(rows, row)
	}
	return Section{Kind: SectionLicenses, Title: "Løyver", Rows: rows}, true
}

func dateTimeSection(meta domain.TripMeta) (Section, bool) {
	fields := []Field{}
	if t, err := utils.ParseDate(meta.Date); err == nil {
		fields = appendField(fields, "Dato", utils.FormatDateDisplay(t))
	} else {
		fields = appendField(fields, "Dato", meta.Date)
	}
	span := strings.TrimSpace(meta.StartTime)
	if end := strings.TrimSpace(meta.EndTime); end != "" {
		if span != "" {
			span += " - " + end
		} else {
			span = end
		}
	}
	fields = appendField(fields, "Tid", span)
	if len(fields) == 0 {
		return Section{}, false
	}
	return Section{Kind: SectionDateTime, Title: "Dato og Tid", Fields: fields}, true
}

func tripInfoSection(meta domain.TripMeta) (Section, bool) {
	fields := []Field{}
	fields = appendField(fields, "Bookingnummer", meta.BookingNumber)
	fields = appendField(fields, "Rutenummer", meta.RouteNumber)
	fields = appendField(fields, "Kunde", meta.Customer)
	fields = appendField(fields, "For", meta.PurposeFor)
	fields = appendField(fields, "Ved", meta.PurposeVia)
	fields = appendField(fields, "Frå", meta.Origin)
	fields = appendField(fields, "Til", meta.Destination)
	fields = appendField(fields, "Referanse", meta.Reference)
	fields = appendField(fields, "Merknad", meta.Remark)
	if len(fields) == 0 {
		return Section{}, false
	}
	return Section{Kind: SectionTripInfo, Title: "Turinformasjon", Fields: fields}, true
}

// costsSection emits one block per entry, populated fields only. The per-trip
// license line is shown only when several licenses are active; with a single
// license it is implied and omitted.
func costsSection(entries []domain.CostEntry, manyLicenses bool) Section {
	blocks := make([]CostBlock, 0, len(entries))
	for i, e := range entries {
		fields := []Field{}
		if manyLicenses {
			fields = appendField(fields, "Løyve", e.LicenseID)
		}
		fields = appendField(fields, "Kvitteringsnummer", e.ReceiptNumber)
		fields = appendMoney(fields, "Turpris", e.TripPrice)
		fields = appendMoney(fields, "Venting", e.WaitingFee)
		fields = appendMoney(fields, "Bompeng", e.TollFee)
		fields = appendMoney(fields, "Fergepeng", e.FerryFee)
		fields = appendMoney(fields, "Ekstra", e.ExtraFee)
		fields = appendMoney(fields, "Eigenandel", e.Deductible)

		if total := domain.EntryTotal(e); total > 0 {
			fields = append(fields, Field{Label: "Totalpris", Value: utils.FormatWholeMoney(total) + " NOK"})
		}
		if vat := domain.EntryVAT(e); vat > 0 {
			fields = append(fields, Field{Label: "Herav MVA 12%", Value: utils.FormatExactMoney(vat) + " NOK"})
		}

		blocks = append(blocks, CostBlock{
			Title:  fmt.Sprintf("Tur %d", i+1),
			Fields: fields,
		})
	}
	return Section{Kind: SectionCosts, Title: "Kostnader", Blocks: blocks}
}

func totalsSection(entries []domain.CostEntry) Section {
	sums := domain.Summarize(entries)
	fields := []Field{}
	if sums.GrossTotal > 0 {
		fields = append(fields, Field{Label: "Total Sum", Value: utils.FormatWholeMoney(sums.GrossTotal) + " NOK"})
	}
	if sums.VATAmount > 0 {
		fields = append(fields, Field{Label: "Total MVA 12%", Value: utils.FormatExactMoney(sums.VATAmount) + " NOK"})
	}
	return Section{Kind: SectionTotals, Fields: fields}
}

func appendField(fields []Field, label, value string) []Field {
	value = strings.TrimSpace(value)
	if value == "" {
		return fields
	}
	return append(fields, Field{Label: label, Value: value})
}

// appendMoney shows a monetary field only when the user filled it in,
// formatted as whole currency with grouping.
func appendMoney(fields []Field, label string, a domain.Amount) []Field {
	if strings.TrimSpace(string(a)) == "" {
		return fields
	}
	return append(fields, Field{Label: label, Value: utils.FormatWholeMoney(a.Value()) + " NOK"})
}

func prettySize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
