package attachments

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"bluebook/internal/domain"

	"github.com/xuri/excelize/v2"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func xlsxBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "Kvittering")
	_ = f.SetCellValue(sheet, "B1", 1500)
	_ = f.SetCellValue(sheet, "A2", "Bompeng")
	_ = f.SetCellValue(sheet, "B2", 40)
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return buf.Bytes()
}

func TestNormalize_Image(t *testing.T) {
	data := pngBytes(t)
	previews := Normalize([]domain.Attachment{{
		DisplayName: "kvittering.png",
		MimeType:    "image/png",
		Data:        data,
	}})
	if len(previews) != 1 {
		t.Fatalf("got %d previews", len(previews))
	}
	p := previews[0]
	if p.Kind != PreviewImage || p.ImageFormat != "png" {
		t.Fatalf("preview = %+v", p)
	}
	if !bytes.Equal(p.ImageData, data) {
		t.Fatalf("image data not passed through")
	}
}

func TestNormalize_CorruptImageBecomesPlaceholder(t *testing.T) {
	previews := Normalize([]domain.Attachment{{
		DisplayName: "kvittering.png",
		MimeType:    "image/png",
		Data:        []byte("not an image"),
	}})
	if previews[0].Kind != PreviewPlaceholder {
		t.Fatalf("corrupt image should degrade to placeholder, got %+v", previews[0])
	}
}

func TestNormalize_Sheet(t *testing.T) {
	previews := Normalize([]domain.Attachment{{
		DisplayName: "utlegg.xlsx",
		Data:        xlsxBytes(t),
	}})
	p := previews[0]
	if p.Kind != PreviewSheet {
		t.Fatalf("preview = %+v", p)
	}
	if len(p.Rows) != 2 || p.Rows[0][0] != "Kvittering" {
		t.Fatalf("rows = %v", p.Rows)
	}
}

func TestNormalize_UnknownTypeBecomesPlaceholder(t *testing.T) {
	previews := Normalize([]domain.Attachment{{
		DisplayName: "notat.bin",
		MimeType:    "application/octet-stream",
		Data:        []byte{0x00, 0x01},
	}})
	p := previews[0]
	if p.Kind != PreviewPlaceholder || p.DisplayName != "notat.bin" {
		t.Fatalf("preview = %+v", p)
	}
	if p.Note == "" {
		t.Fatalf("placeholder should carry a note")
	}
}

func TestNormalize_CorruptPDFBecomesPlaceholder(t *testing.T) {
	previews := Normalize([]domain.Attachment{{
		DisplayName: "rekning.pdf",
		MimeType:    "application/pdf",
		Data:        []byte("%PDF-1.4 garbage"),
	}})
	if previews[0].Kind != PreviewPlaceholder {
		t.Fatalf("corrupt pdf should degrade to placeholder, got %+v", previews[0])
	}
}

func TestNormalize_KeepsUploadOrder(t *testing.T) {
	files := []domain.Attachment{
		{DisplayName: "a.png", MimeType: "image/png", Data: pngBytes(t)},
		{DisplayName: "b.bin", MimeType: "application/octet-stream", Data: []byte("x")},
		{DisplayName: "c.xlsx", Data: xlsxBytes(t)},
		{DisplayName: "d.png", MimeType: "image/png", Data: pngBytes(t)},
	}
	previews := Normalize(files)
	if len(previews) != 4 {
		t.Fatalf("got %d previews", len(previews))
	}
	for i, f := range files {
		if previews[i].DisplayName != f.DisplayName {
			t.Fatalf("preview %d = %q, want %q", i, previews[i].DisplayName, f.DisplayName)
		}
	}
}
