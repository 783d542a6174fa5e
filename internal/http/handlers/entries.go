package handlers

import (
	"net/http"
	"strconv"

	"bluebook/internal/domain"
	"bluebook/internal/form"

	"github.com/gin-gonic/gin"
)

func entryIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "ugyldig radnummer", err)
		return 0, false
	}
	return idx, true
}

// POST /api/forms/:id/entries
func AddEntry(c *gin.Context) {
	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		s.AddEntry()
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// PATCH /api/forms/:id/entries/:index
func PatchEntry(c *gin.Context) {
	idx, ok := entryIndex(c)
	if !ok {
		return
	}
	var patch form.EntryPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		if err := s.PatchEntry(idx, patch); err != nil {
			return err
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

// DELETE /api/forms/:id/entries/:index
// The ledger never becomes empty: deleting the last row leaves one fresh row.
func DeleteEntry(c *gin.Context) {
	idx, ok := entryIndex(c)
	if !ok {
		return
	}
	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		if err := s.RemoveEntry(idx); err != nil {
			return err
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

// DELETE /api/forms/:id/entries
func ClearEntries(c *gin.Context) {
	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		s.ClearEntries()
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/forms/:id/totals
func GetTotals(c *gin.Context) {
	var totals domain.TotalsSummary
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		totals = s.Totals()
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
