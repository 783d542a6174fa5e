package repositories

import (
	"testing"

	"bluebook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDraftSave_Upserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bluebook_drafts").
		WithArgs("default", `{"meta":{}}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := DraftRepository{DB: db}
	if err := repo.Save("default", []byte(`{"meta":{}}`)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDraftLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM bluebook_drafts").
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(`{"meta":{}}`))

	repo := DraftRepository{DB: db}
	payload, err := repo.Load("default")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(payload) != `{"meta":{}}` {
		t.Fatalf("payload = %q", payload)
	}
}

func TestDraftLoad_MissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM bluebook_drafts").
		WithArgs("ukjend").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	repo := DraftRepository{DB: db}
	if _, err := repo.Load("ukjend"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDraftDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM bluebook_drafts").
		WithArgs("default").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := DraftRepository{DB: db}
	if err := repo.Delete("default"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}

func TestDraft_NoDatabaseConfigured(t *testing.T) {
	repo := DraftRepository{}
	if err := repo.Save("default", []byte("{}")); !domain.IsConflict(err) {
		t.Fatalf("expected conflict without a database, got %v", err)
	}
}
