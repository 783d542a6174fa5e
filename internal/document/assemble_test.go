package document

import (
	"testing"

	"bluebook/internal/domain"
)

var testCompany = Company{Name: "Voss Taxi SA", Phone: "56 51 10 00", OrgNumber: "123 456 789 MVA"}

func sectionKinds(doc Document) []SectionKind {
	kinds := make([]SectionKind, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func findSection(t *testing.T, doc Document, kind SectionKind) Section {
	t.Helper()
	for _, s := range doc.Sections {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("section %q not found", kind)
	return Section{}
}

func TestAssemble_SectionOrderFullForm(t *testing.T) {
	meta := domain.TripMeta{
		Date: "2024-01-05", StartTime: "08:00", EndTime: "09:30",
		Customer: "Voss Kommune", Origin: "Voss", Destination: "Bergen",
	}
	licenses := []domain.LicenseBinding{{LicenseID: "A12", DriverName: "Ola Nordmann"}}
	entries := []domain.CostEntry{{ReceiptNumber: "R1", TripPrice: "112"}}
	files := []domain.Attachment{{DisplayName: "kvittering.png", SizeBytes: 2048}}

	doc := Assemble(testCompany, meta, licenses, entries, files)

	want := []SectionKind{
		SectionHeader, SectionLicenses, SectionDateTime,
		SectionTripInfo, SectionCosts, SectionTotals, SectionAttachments,
	}
	got := sectionKinds(doc)
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAssemble_EmptySectionsDropped(t *testing.T) {
	doc := Assemble(testCompany, domain.TripMeta{}, nil, []domain.CostEntry{{}}, nil)

	got := sectionKinds(doc)
	want := []SectionKind{SectionHeader, SectionCosts, SectionTotals}
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAssemble_TripInfoBlankFieldsOmitted(t *testing.T) {
	meta := domain.TripMeta{Customer: "Acme", Origin: "X", Destination: "Y"}
	doc := Assemble(testCompany, meta, nil, []domain.CostEntry{{}}, nil)

	sec := findSection(t, doc, SectionTripInfo)
	if len(sec.Fields) != 3 {
		t.Fatalf("got %d trip info fields, want 3: %+v", len(sec.Fields), sec.Fields)
	}
	labels := []string{"Kunde", "Frå", "Til"}
	for i, f := range sec.Fields {
		if f.Label != labels[i] {
			t.Fatalf("field %d label = %q, want %q", i, f.Label, labels[i])
		}
	}
}

func TestAssemble_DateFormattedForDisplay(t *testing.T) {
	meta := domain.TripMeta{Date: "2024-01-05"}
	doc := Assemble(testCompany, meta, nil, []domain.CostEntry{{}}, nil)

	sec := findSection(t, doc, SectionDateTime)
	if sec.Fields[0].Label != "Dato" || sec.Fields[0].Value != "05/01/2024" {
		t.Fatalf("date field = %+v", sec.Fields[0])
	}
}

func TestAssemble_CostBlockValues(t *testing.T) {
	entries := []domain.CostEntry{{
		ReceiptNumber: "R1",
		TripPrice:     "1500,00",
		TollFee:       "40",
	}}
	doc := Assemble(testCompany, domain.TripMeta{}, nil, entries, nil)

	sec := findSection(t, doc, SectionCosts)
	if len(sec.Blocks) != 1 {
		t.Fatalf("blocks = %d", len(sec.Blocks))
	}
	byLabel := map[string]string{}
	for _, f := range sec.Blocks[0].Fields {
		byLabel[f.Label] = f.Value
	}
	if byLabel["Turpris"] != "1 500 NOK" {
		t.Fatalf("Turpris = %q", byLabel["Turpris"])
	}
	if byLabel["Bompeng"] != "40 NOK" {
		t.Fatalf("Bompeng = %q", byLabel["Bompeng"])
	}
	if byLabel["Totalpris"] != "1 540 NOK" {
		t.Fatalf("Totalpris = %q", byLabel["Totalpris"])
	}
	if _, ok := byLabel["Venting"]; ok {
		t.Fatalf("blank fee should be omitted")
	}
	if _, ok := byLabel["Løyve"]; ok {
		t.Fatalf("license line should be omitted with a single license")
	}
}

func TestAssemble_PerEntryLicenseShownWithManyLicenses(t *testing.T) {
	licenses := []domain.LicenseBinding{{LicenseID: "A12"}, {LicenseID: "B34"}}
	entries := []domain.CostEntry{{LicenseID: "B34", TripPrice: "100"}}
	doc := Assemble(testCompany, domain.TripMeta{}, licenses, entries, nil)

	sec := findSection(t, doc, SectionCosts)
	if sec.Blocks[0].Fields[0].Label != "Løyve" || sec.Blocks[0].Fields[0].Value != "B34" {
		t.Fatalf("license line missing: %+v", sec.Blocks[0].Fields)
	}
}

func TestAssemble_TotalsWithVAT(t *testing.T) {
	entries := []domain.CostEntry{{TripPrice: "112"}}
	doc := Assemble(testCompany, domain.TripMeta{}, nil, entries, nil)

	sec := findSection(t, doc, SectionTotals)
	byLabel := map[string]string{}
	for _, f := range sec.Fields {
		byLabel[f.Label] = f.Value
	}
	if byLabel["Total Sum"] != "112 NOK" {
		t.Fatalf("Total Sum = %q", byLabel["Total Sum"])
	}
	if byLabel["Total MVA 12%"] != "12.00 NOK" {
		t.Fatalf("Total MVA = %q", byLabel["Total MVA 12%"])
	}
}
