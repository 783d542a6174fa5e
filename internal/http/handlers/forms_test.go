package handlers

import (
	"testing"

	"bluebook/internal/domain"
	"bluebook/internal/form"
)

// The view a handler returns is serialized after the store lock is released,
// so it must be a snapshot: later mutations of the session may not show
// through it.
func TestViewOf_DoesNotAliasSessionState(t *testing.T) {
	s := form.New("f1")
	s.SetLicenses([]domain.LicenseBinding{{LicenseID: "A12", DriverName: "Ola Nordmann"}})
	s.Meta.Trips = []domain.TripLeg{{Licenses: []domain.LicenseBinding{{LicenseID: "B34"}}}}
	s.AddAttachments([]domain.Attachment{{ID: "1", DisplayName: "kvittering.png", SizeBytes: 10}})

	before := "R-before"
	if err := s.PatchEntry(0, form.EntryPatch{ReceiptNumber: &before}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	view := viewOf(s)

	after := "R-after"
	if err := s.PatchEntry(0, form.EntryPatch{ReceiptNumber: &after}); err != nil {
		t.Fatalf("patch: %v", err)
	}
	s.Licenses[0].LicenseID = "Z99"
	s.Meta.Trips[0].Licenses[0].LicenseID = "Z99"
	s.Attachments[0].DisplayName = "renamed.png"
	s.AddEntry()

	if got := view.Entries[0].ReceiptNumber; got != "R-before" {
		t.Fatalf("view observed a later patch: receipt = %q", got)
	}
	if len(view.Entries) != 1 {
		t.Fatalf("view entry count changed: %d", len(view.Entries))
	}
	if got := view.Licenses[0].LicenseID; got != "A12" {
		t.Fatalf("view licenses alias the session: %q", got)
	}
	if got := view.Meta.Trips[0].Licenses[0].LicenseID; got != "B34" {
		t.Fatalf("view trip licenses alias the session: %q", got)
	}
	if got := view.Attachments[0].DisplayName; got != "kvittering.png" {
		t.Fatalf("view attachments alias the session: %q", got)
	}
}

func TestLoadSnapshot_DoesNotAliasTripLicenses(t *testing.T) {
	store := form.NewStore()
	Init(Deps{Store: store})
	s := store.Create()

	err := store.Do(s.ID, func(s *form.State) error {
		s.Meta.Trips = []domain.TripLeg{{Licenses: []domain.LicenseBinding{{LicenseID: "B34"}}}}
		return nil
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}

	snap, err := loadSnapshot(s.ID)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}

	err = store.Do(s.ID, func(s *form.State) error {
		s.Meta.Trips[0].Licenses[0].LicenseID = "Z99"
		return nil
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}

	if got := snap.Meta.Trips[0].Licenses[0].LicenseID; got != "B34" {
		t.Fatalf("snapshot trip licenses alias the session: %q", got)
	}
}
