package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/forms/:id/document
// Returns the assembled section sequence as JSON, mainly for the preview pane.
func GetDocument(c *gin.Context) {
	svc := documentService(c)
	doc, err := svc.Describe(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GET /api/forms/:id/document/pdf
// Renders and streams the PDF. Default disposition is attachment; pass
// ?disposition=inline to open it in the browser instead of downloading.
func GetDocumentPDF(c *gin.Context) {
	svc := documentService(c)
	pdfBytes, filename, err := svc.Generate(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	disposition := "attachment"
	if c.Query("disposition") == "inline" {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// POST /api/forms/:id/document/send
func SendDocument(c *gin.Context) {
	svc := documentService(c)
	filename, err := svc.Send(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rekning sendt", "filename": filename})
}
