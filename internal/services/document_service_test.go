package services

import (
	"bytes"
	"testing"

	"bluebook/internal/document"
	"bluebook/internal/domain"
)

func snapshotLoader(ready bool) func(string) (FormSnapshot, error) {
	return func(formID string) (FormSnapshot, error) {
		return FormSnapshot{
			Meta:     domain.TripMeta{Date: "2024-01-05", Customer: "Voss Kommune"},
			Licenses: []domain.LicenseBinding{{LicenseID: "A12", DriverName: "Ola Nordmann"}},
			Entries:  []domain.CostEntry{{ReceiptNumber: "R1", TripPrice: "112"}},
			Ready:    ready,
		}, nil
	}
}

func TestDocumentServiceGenerate(t *testing.T) {
	svc := DocumentService{
		Company: document.Company{Name: "Voss Taxi SA"},
		Loader:  snapshotLoader(true),
	}

	pdf, filename, err := svc.Generate("f1")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("Generate returned invalid PDF data")
	}
	if filename != "05-01-2024-A12-Ola_Nordmann.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestDocumentServiceGenerate_GatedWhenNotReady(t *testing.T) {
	svc := DocumentService{Loader: snapshotLoader(false)}

	_, _, err := svc.Generate("f1")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDocumentServiceDescribe_IgnoresReadiness(t *testing.T) {
	svc := DocumentService{Loader: snapshotLoader(false)}

	doc, err := svc.Describe("f1")
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if len(doc.Sections) == 0 || doc.Filename == "" {
		t.Fatalf("Describe returned empty document")
	}
}

func TestDocumentServiceSend_PropagatesLoaderError(t *testing.T) {
	svc := DocumentService{
		Loader: func(string) (FormSnapshot, error) {
			return FormSnapshot{}, domain.NotFoundError{Resource: "skjema"}
		},
	}
	if _, err := svc.Send("gone"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
