package cmd

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"bluebook/internal/attachments"
	intconfig "bluebook/internal/config"
	"bluebook/internal/document"
	"bluebook/internal/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	renderIn     string
	renderOut    string
	renderAttach []string
)

// snapshot is the JSON shape bbctl reads: the same payload the service
// persists as a draft.
type snapshot struct {
	Meta     domain.TripMeta         `json:"meta"`
	Licenses []domain.LicenseBinding `json:"licenses"`
	Entries  []domain.CostEntry      `json:"entries"`
}

// renderCmd renders a snapshot to PDF.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a form snapshot to PDF",
	Long: `Render reads a form snapshot (JSON) and writes the finished PDF.
Receipt files can be appended with --attach; they are classified and
rendered the same way the service does it.

Example:
  bbctl render --in skjema.json --out rekning.pdf --attach kvittering.png`,
	Run: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderIn, "in", "", "form snapshot JSON (required)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output path (default: derived filename)")
	renderCmd.Flags().StringArrayVar(&renderAttach, "attach", nil, "receipt file to append (repeatable)")
	_ = renderCmd.MarkFlagRequired("in")
}

func runRender(cmd *cobra.Command, args []string) {
	raw, err := os.ReadFile(renderIn)
	exitOnError(err, "could not read snapshot")

	var snap snapshot
	exitOnError(json.Unmarshal(raw, &snap), "could not parse snapshot")

	files, err := loadAttachments(renderAttach)
	exitOnError(err, "could not read attachment")

	company := intconfig.LoadCompany(companyFile)
	doc := document.Assemble(document.Company{
		Name:      company.Name,
		Phone:     company.Phone,
		OrgNumber: company.OrgNumber,
		LogoPath:  company.LogoPath,
	}, snap.Meta, snap.Licenses, snap.Entries, files)

	previews := attachments.Normalize(files)
	pdfBytes, err := document.Render(doc, previews)
	exitOnError(err, "document engine failed")

	out := renderOut
	if out == "" {
		out = doc.Filename
	}
	exitOnError(os.WriteFile(out, pdfBytes, 0o644), "could not write PDF")
	fmt.Printf("wrote %s (%d bytes)\n", out, len(pdfBytes))
}

func loadAttachments(paths []string) ([]domain.Attachment, error) {
	files := make([]domain.Attachment, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.Attachment{
			ID:           uuid.NewString(),
			DisplayName:  filepath.Base(p),
			MimeType:     mime.TypeByExtension(filepath.Ext(p)),
			SizeBytes:    info.Size(),
			LastModified: info.ModTime().UnixMilli(),
			Data:         data,
		})
	}
	return files, nil
}
