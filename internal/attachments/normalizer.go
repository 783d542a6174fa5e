package attachments

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
	"sync"

	// raster formats accepted for pass-through previews
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"bluebook/internal/domain"
	"bluebook/internal/utils"

	"github.com/phpdave11/gofpdi"
	"github.com/xuri/excelize/v2"
)

// Bounds for the first-sheet snapshot of tabular attachments.
const (
	maxSheetRows = 40
	maxSheetCols = 8
)

type PreviewKind string

const (
	PreviewImage       PreviewKind = "image"
	PreviewPDF         PreviewKind = "pdf"
	PreviewSheet       PreviewKind = "sheet"
	PreviewPlaceholder PreviewKind = "placeholder"
)

// Preview is the uniform representation an attachment is reduced to before
// the document renderer embeds it as trailing pages. Exactly the fields for
// its kind are populated.
type Preview struct {
	Kind        PreviewKind
	DisplayName string

	// PreviewImage
	ImageFormat string
	ImageData   []byte

	// PreviewPDF: pages are imported one by one in order at render time
	PDFData   []byte
	PageCount int

	// PreviewSheet
	SheetName string
	Rows      [][]string

	// PreviewPlaceholder
	Note string
}

// Normalize converts every attachment into a Preview. Files are processed
// concurrently but the result keeps the original upload order, and one bad
// file never aborts the others: it degrades to a placeholder page naming it.
func Normalize(files []domain.Attachment) []Preview {
	out := make([]Preview, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f domain.Attachment) {
			defer wg.Done()
			out[i] = normalizeOne(f)
		}(i, f)
	}
	wg.Wait()
	return out
}

func normalizeOne(a domain.Attachment) (p Preview) {
	// gofpdi and friends panic on malformed input
	defer func() {
		if r := recover(); r != nil {
			utils.LogEvent("", "attachments", "normalize", fmt.Sprintf("file=%s panic=%v", a.DisplayName, r))
			p = placeholder(a, "forhåndsvisning feilet")
		}
	}()

	switch classify(a) {
	case PreviewImage:
		return normalizeImage(a)
	case PreviewPDF:
		return normalizePDF(a)
	case PreviewSheet:
		return normalizeSheet(a)
	default:
		return placeholder(a, "filtypen støttes ikke")
	}
}

func classify(a domain.Attachment) PreviewKind {
	mime := strings.ToLower(strings.TrimSpace(a.MimeType))
	ext := strings.ToLower(filepath.Ext(a.DisplayName))

	switch {
	case strings.HasPrefix(mime, "image/"),
		ext == ".png", ext == ".jpg", ext == ".jpeg", ext == ".gif":
		return PreviewImage
	case mime == "application/pdf", ext == ".pdf":
		return PreviewPDF
	case strings.Contains(mime, "spreadsheetml"), ext == ".xlsx", ext == ".xlsm":
		return PreviewSheet
	default:
		return PreviewPlaceholder
	}
}

func normalizeImage(a domain.Attachment) Preview {
	_, format, err := image.DecodeConfig(bytes.NewReader(a.Data))
	if err != nil {
		return placeholder(a, "bildet kunne ikke dekodes")
	}
	switch format {
	case "png", "jpeg", "gif":
	default:
		return placeholder(a, "bildeformatet støttes ikke")
	}
	return Preview{
		Kind:        PreviewImage,
		DisplayName: a.DisplayName,
		ImageFormat: format,
		ImageData:   a.Data,
	}
}

func normalizePDF(a domain.Attachment) Preview {
	imp := gofpdi.NewImporter()
	var rs io.ReadSeeker = bytes.NewReader(a.Data)
	imp.SetSourceStream(&rs)
	pages := imp.GetNumPages()
	if pages < 1 {
		return placeholder(a, "dokumentet har ingen sider")
	}
	return Preview{
		Kind:        PreviewPDF,
		DisplayName: a.DisplayName,
		PDFData:     a.Data,
		PageCount:   pages,
	}
}

// normalizeSheet snapshots the first sheet as a bounded grid of cell texts.
func normalizeSheet(a domain.Attachment) Preview {
	f, err := excelize.OpenReader(bytes.NewReader(a.Data))
	if err != nil {
		return placeholder(a, "regnearket kunne ikke åpnes")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return placeholder(a, "regnearket har ingen ark")
	}
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) == 0 {
		return placeholder(a, "regnearket er tomt")
	}

	grid := [][]string{}
	for _, row := range rows {
		if len(grid) >= maxSheetRows {
			break
		}
		cells := make([]string, 0, maxSheetCols)
		for _, cell := range row {
			if len(cells) >= maxSheetCols {
				break
			}
			cells = append(cells, strings.TrimSpace(cell))
		}
		grid = append(grid, cells)
	}

	return Preview{
		Kind:        PreviewSheet,
		DisplayName: a.DisplayName,
		SheetName:   sheet,
		Rows:        grid,
	}
}

func placeholder(a domain.Attachment, note string) Preview {
	return Preview{
		Kind:        PreviewPlaceholder,
		DisplayName: a.DisplayName,
		Note:        note,
	}
}
