package handlers

import (
	"encoding/json"
	"net/http"

	"bluebook/internal/domain"
	"bluebook/internal/form"

	"github.com/gin-gonic/gin"
)

// draftPayload is what gets persisted: the editable form content minus the
// attachments. Files are too big for a draft row and trivially re-attached.
type draftPayload struct {
	Meta     domain.TripMeta         `json:"meta"`
	Licenses []domain.LicenseBinding `json:"licenses"`
	Entries  []domain.CostEntry      `json:"entries"`
}

func draftKey(c *gin.Context) string {
	if key := c.Query("key"); key != "" {
		return key
	}
	return "default"
}

// PUT /api/forms/:id/draft
func SaveDraft(c *gin.Context) {
	var payload draftPayload
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		payload.Meta = s.Meta.Clone()
		payload.Licenses = append([]domain.LicenseBinding(nil), s.Licenses...)
		payload.Entries = append([]domain.CostEntry(nil), s.Entries...)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not encode draft", Err: err})
		return
	}
	if err := deps.Drafts.Save(draftKey(c), raw); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "utkast lagra", "key": draftKey(c)})
}

// GET /api/forms/:id/draft
// Loads the draft and applies it to the form session, replacing the current
// meta, licenses and cost rows. Attachments are untouched.
func LoadDraft(c *gin.Context) {
	raw, err := deps.Drafts.Load(draftKey(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var payload draftPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not decode draft", Err: err})
		return
	}

	var view formView
	err = deps.Store.Do(c.Param("id"), func(s *form.State) error {
		s.Meta = payload.Meta
		s.SetLicenses(payload.Licenses)
		s.Entries = payload.Entries
		if len(s.Entries) == 0 {
			s.AddEntry()
		}
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/forms/:id/draft
func DeleteDraft(c *gin.Context) {
	if err := deps.Drafts.Delete(draftKey(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "utkast sletta"})
}
