package handlers

import (
	"io"
	"net/http"
	"strconv"

	"bluebook/internal/domain"
	"bluebook/internal/form"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /api/forms/:id/attachments
// Accepts one or more files in the multipart field "files". An optional
// parallel "lastModified" field carries the browser's per-file modification
// timestamp (ms); it takes part in deduplication. Re-uploads of an already
// known (name, size, lastModified) triple are silently skipped.
func UploadAttachments(c *gin.Context) {
	mpForm, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "ugyldig filopplasting", err)
		return
	}
	files := mpForm.File["files"]
	if len(files) == 0 {
		RespondError(c, http.StatusBadRequest, "ingen filer motteke", nil)
		return
	}
	lastModified := mpForm.Value["lastModified"]

	incoming := make([]domain.Attachment, 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "kunne ikkje lese fila "+fh.Filename, err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "kunne ikkje lese fila "+fh.Filename, err)
			return
		}

		var ts int64
		if i < len(lastModified) {
			ts, _ = strconv.ParseInt(lastModified[i], 10, 64)
		}

		incoming = append(incoming, domain.Attachment{
			ID:           uuid.NewString(),
			DisplayName:  fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
			SizeBytes:    fh.Size,
			LastModified: ts,
			Data:         data,
		})
	}

	var view formView
	var added int
	err = deps.Store.Do(c.Param("id"), func(s *form.State) error {
		added = s.AddAttachments(incoming)
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": added, "form": view})
}

// DELETE /api/forms/:id/attachments/:index
func DeleteAttachment(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "ugyldig vedleggsnummer", err)
		return
	}
	var view formView
	err = deps.Store.Do(c.Param("id"), func(s *form.State) error {
		if err := s.RemoveAttachment(idx); err != nil {
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

// DELETE /api/forms/:id/attachments
func ClearAttachments(c *gin.Context) {
	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		s.ClearAttachments()
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
