package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"bluebook/internal/attachments"
	"bluebook/internal/utils"

	"github.com/phpdave11/gofpdf"
	fpdi "github.com/phpdave11/gofpdf/contrib/gofpdi"
)

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	marginLeft = 15.0
	bodyWidth  = pageWidth - 2*marginLeft
)

// Render lays the assembled document out on A4 pages and appends one
// trailing page per normalized attachment page, in upload order. The
// attachment previews must belong to the same form snapshot the document was
// assembled from.
func Render(doc Document, previews []attachments.Preview) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(strings.TrimSuffix(doc.Filename, ".pdf"), true)
	pdf.SetMargins(marginLeft, 15, marginLeft)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, sec := range doc.Sections {
		switch sec.Kind {
		case SectionHeader:
			renderHeader(pdf, tr, sec)
		case SectionLicenses:
			renderSectionTitle(pdf, tr, sec.Title)
			for _, row := range sec.Rows {
				parts := make([]string, 0, len(row))
				for _, f := range row {
					parts = append(parts, f.Label+": "+f.Value)
				}
				line(pdf, tr, strings.Join(parts, "   "))
			}
			pdf.Ln(4)
		case SectionDateTime, SectionTripInfo:
			renderSectionTitle(pdf, tr, sec.Title)
			for _, f := range sec.Fields {
				line(pdf, tr, f.Label+": "+f.Value)
			}
			pdf.Ln(4)
		case SectionCosts:
			renderSectionTitle(pdf, tr, sec.Title)
			for _, block := range sec.Blocks {
				pdf.SetFont("Helvetica", "B", 11)
				line(pdf, tr, block.Title)
				pdf.SetFont("Helvetica", "", 11)
				for _, f := range block.Fields {
					line(pdf, tr, f.Label+": "+f.Value)
				}
				pdf.Ln(2)
			}
		case SectionTotals:
			hr(pdf)
			pdf.SetFont("Helvetica", "B", 12)
			for _, f := range sec.Fields {
				line(pdf, tr, f.Label+": "+f.Value)
			}
			pdf.Ln(4)
		case SectionAttachments:
			renderSectionTitle(pdf, tr, sec.Title)
			for _, name := range sec.Index {
				line(pdf, tr, "- "+name)
			}
		}
	}

	for i, p := range previews {
		renderPreview(pdf, tr, i, p)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, sec Section) {
	h := sec.Header
	if h == nil {
		return
	}
	if h.Company.LogoPath != "" {
		if _, err := os.Stat(h.Company.LogoPath); err == nil {
			pdf.ImageOptions(h.Company.LogoPath, marginLeft, 12, 40, 0, false, gofpdf.ImageOptions{}, 0, "")
		}
	}
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(bodyWidth, 10, tr(h.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, s := range []string{h.Company.Name, "Telefon: " + h.Company.Phone, "Org.nr: " + h.Company.OrgNumber} {
		if strings.TrimSpace(s) == "" {
			continue
		}
		pdf.CellFormat(bodyWidth, 4, tr(s), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func renderSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(bodyWidth, 7, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
}

func line(pdf *gofpdf.Fpdf, tr func(string) string, s string) {
	pdf.CellFormat(bodyWidth, 6, tr(s), "", 1, "L", false, 0, "")
}

func hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 2
	pdf.Line(marginLeft, y, pageWidth-marginLeft, y)
	pdf.SetY(y + 2)
}

// renderPreview appends the trailing page(s) for one attachment. A failure
// here (gofpdi panics on PDFs it cannot parse) degrades to a placeholder
// page for that attachment only.
func renderPreview(pdf *gofpdf.Fpdf, tr func(string) string, idx int, p attachments.Preview) {
	defer func() {
		if r := recover(); r != nil {
			utils.LogEvent("", "document", "render_preview", fmt.Sprintf("file=%s panic=%v", p.DisplayName, r))
			placeholderPage(pdf, tr, p.DisplayName, "vedlegget kunne ikke gjengis")
		}
	}()

	switch p.Kind {
	case attachments.PreviewImage:
		pdf.AddPage()
		previewCaption(pdf, tr, p.DisplayName)
		name := fmt.Sprintf("vedlegg-%d", idx)
		opts := gofpdf.ImageOptions{ImageType: strings.ToUpper(p.ImageFormat), ReadDpi: true}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(p.ImageData))
		pdf.ImageOptions(name, marginLeft, 25, bodyWidth, 0, false, opts, 0, "")
	case attachments.PreviewPDF:
		for page := 1; page <= p.PageCount; page++ {
			var rs io.ReadSeeker = bytes.NewReader(p.PDFData)
			tpl := fpdi.ImportPageFromStream(pdf, &rs, page, "/MediaBox")
			pdf.AddPage()
			fpdi.UseImportedTemplate(pdf, tpl, 0, 0, pageWidth, pageHeight)
		}
	case attachments.PreviewSheet:
		pdf.AddPage()
		previewCaption(pdf, tr, p.DisplayName+" ("+p.SheetName+")")
		sheetTable(pdf, tr, p.Rows)
	default:
		placeholderPage(pdf, tr, p.DisplayName, p.Note)
	}
}

func previewCaption(pdf *gofpdf.Fpdf, tr func(string) string, caption string) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(bodyWidth, 5, tr("Vedlegg: "+caption), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func sheetTable(pdf *gofpdf.Fpdf, tr func(string) string, rows [][]string) {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}
	colW := bodyWidth / float64(cols)
	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = truncateCell(row[c], 28)
			}
			pdf.CellFormat(colW, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// truncateCell limits a cell to max runes. Byte slicing would split
// multi-byte characters (æ/ø/å are common here).
func truncateCell(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func placeholderPage(pdf *gofpdf.Fpdf, tr func(string) string, name, note string) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(bodyWidth, 8, tr("Vedlegg: "+name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 11)
	pdf.MultiCell(bodyWidth, 6, tr("Ingen forhåndsvisning tilgjengelig: "+note), "", "L", false)
}
