package services

import (
	"fmt"

	"bluebook/internal/attachments"
	"bluebook/internal/document"
	"bluebook/internal/domain"
	"bluebook/internal/mailer"
	"bluebook/internal/utils"
)

// FormSnapshot is everything the document pipeline needs from a form
// session, captured in one read.
type FormSnapshot struct {
	Meta        domain.TripMeta
	Licenses    []domain.LicenseBinding
	Entries     []domain.CostEntry
	Attachments []domain.Attachment
	Ready       bool
}

// DocumentService runs the generation pipeline: snapshot -> assemble ->
// normalize attachments -> render -> deliver. The snapshot loader is
// injected so the pipeline is testable without the HTTP layer.
type DocumentService struct {
	Company   document.Company
	Relay     mailer.Relay
	RequestID string
	Loader    func(formID string) (FormSnapshot, error)
}

// Describe assembles the printable section sequence without rendering it.
func (s DocumentService) Describe(formID string) (document.Document, error) {
	snap, err := s.Loader(formID)
	if err != nil {
		return document.Document{}, err
	}
	return document.Assemble(s.Company, snap.Meta, snap.Licenses, snap.Entries, snap.Attachments), nil
}

// Generate renders the final PDF. Generation is gated: every cost entry must
// carry a receipt number and a positive trip price.
func (s DocumentService) Generate(formID string) ([]byte, string, error) {
	snap, err := s.Loader(formID)
	if err != nil {
		return nil, "", err
	}
	if !snap.Ready {
		return nil, "", domain.ConflictError{
			Resource: "dokument",
			Msg:      "alle turer treng kvitteringsnummer og turpris",
		}
	}

	doc := document.Assemble(s.Company, snap.Meta, snap.Licenses, snap.Entries, snap.Attachments)
	previews := attachments.Normalize(snap.Attachments)

	utils.LogEvent(s.RequestID, "document", "generate",
		fmt.Sprintf("form_id=%s entries=%d attachments=%d", formID, len(snap.Entries), len(snap.Attachments)))

	pdfBytes, err := document.Render(doc, previews)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "document engine failed", Err: err}
	}
	return pdfBytes, doc.Filename, nil
}

// Send generates the PDF and submits it to the mail relay. Attempt-once.
func (s DocumentService) Send(formID string) (string, error) {
	pdfBytes, filename, err := s.Generate(formID)
	if err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "document", "send", fmt.Sprintf("form_id=%s file=%s", formID, filename))
	if err := s.Relay.Send(filename, pdfBytes); err != nil {
		return "", err
	}
	return filename, nil
}
