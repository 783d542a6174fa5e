package mailer

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"bluebook/internal/domain"
)

// Relay submits a generated report to the mail relay endpoint, which attaches
// the file to an email. One multipart POST, field name "file"; any 2xx is
// success. Attempt-once: a failure is surfaced and the user re-triggers.
type Relay struct {
	URL    string
	Client *http.Client
}

func (r Relay) Send(filename string, pdfBytes []byte) error {
	if r.URL == "" {
		return domain.ConflictError{Resource: "e-post", Msg: "mail relay not configured"}
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	hdr.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(hdr)
	if err != nil {
		return domain.InternalError{Msg: "could not build upload", Err: err}
	}
	if _, err := part.Write(pdfBytes); err != nil {
		return domain.InternalError{Msg: "could not build upload", Err: err}
	}
	if err := w.Close(); err != nil {
		return domain.InternalError{Msg: "could not build upload", Err: err}
	}

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Post(r.URL, w.FormDataContentType(), &body)
	if err != nil {
		return domain.InternalError{Msg: "kunne ikke sende", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.InternalError{Msg: fmt.Sprintf("kunne ikke sende (status %d)", resp.StatusCode)}
	}
	return nil
}
