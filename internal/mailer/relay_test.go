package mailer

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bluebook/internal/domain"
)

func TestSend_PostsMultipartFile(t *testing.T) {
	var gotName string
	var gotType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotName = hdr.Filename
		gotType = hdr.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(f)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay := Relay{URL: srv.URL, Client: srv.Client()}
	if err := relay.Send("05-01-2024-A12-Ola_Nordmann.pdf", []byte("%PDF-fake")); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if gotName != "05-01-2024-A12-Ola_Nordmann.pdf" {
		t.Fatalf("filename = %q", gotName)
	}
	if gotType != "application/pdf" {
		t.Fatalf("content type = %q", gotType)
	}
	if string(gotBody) != "%PDF-fake" {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestSend_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	relay := Relay{URL: srv.URL, Client: srv.Client()}
	err := relay.Send("rekning.pdf", []byte("x"))
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestSend_UnconfiguredRelay(t *testing.T) {
	err := Relay{}.Send("rekning.pdf", []byte("x"))
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
