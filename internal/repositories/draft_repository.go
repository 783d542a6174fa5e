package repositories

import (
	"database/sql"

	intconfig "bluebook/internal/config"
	"bluebook/internal/domain"
)

// DraftRepository stores the optional draft: one JSON-serialized form
// snapshot per string key. Save/Load/Delete are explicit user actions,
// never automatic.
//
// Table:
//
//	CREATE TABLE bluebook_drafts (
//	    draft_key  VARCHAR(64) PRIMARY KEY,
//	    payload    MEDIUMTEXT NOT NULL,
//	    updated_at DATETIME NOT NULL
//	);
type DraftRepository struct {
	DB *sql.DB
}

func (r DraftRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DraftRepository) Save(key string, payload []byte) error {
	db := r.db()
	if db == nil {
		return domain.ConflictError{Resource: "utkast", Msg: "database not configured"}
	}
	_, err := db.Exec(`
        INSERT INTO bluebook_drafts (draft_key, payload, updated_at)
        VALUES (?, ?, NOW())
        ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = NOW()
    `, key, string(payload))
	if err != nil {
		return domain.InternalError{Msg: "could not save draft", Err: err}
	}
	return nil
}

func (r DraftRepository) Load(key string) ([]byte, error) {
	db := r.db()
	if db == nil {
		return nil, domain.ConflictError{Resource: "utkast", Msg: "database not configured"}
	}
	var payload string
	err := db.QueryRow(`SELECT payload FROM bluebook_drafts WHERE draft_key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "utkast"}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "could not load draft", Err: err}
	}
	return []byte(payload), nil
}

func (r DraftRepository) Delete(key string) error {
	db := r.db()
	if db == nil {
		return domain.ConflictError{Resource: "utkast", Msg: "database not configured"}
	}
	if _, err := db.Exec(`DELETE FROM bluebook_drafts WHERE draft_key = ?`, key); err != nil {
		return domain.InternalError{Msg: "could not delete draft", Err: err}
	}
	return nil
}
