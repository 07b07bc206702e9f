package report

import (
	"bytes"
	"fmt"
	"strings"

	reporterrors "go-shopbook/internal/report/errors"

	"golang.org/x/text/encoding/charmap"
)

const (
	pageWidth    = 595
	pageHeight   = 842
	marginLeft   = 50
	amountColumn = 420
	rowHeight    = 18
	firstRowY    = 740
	lastRowY     = 60
)

const ContentTypePDF = "application/pdf"

// RenderPDF writes doc as a minimal A4 PDF using the built-in Helvetica fonts.
// Rows continue onto further pages when they do not fit.
func RenderPDF(doc Document) ([]byte, error) {
	pages := layoutPages(doc)

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled in once page object numbers are known
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>",
	}

	kids := make([]string, 0, len(pages))
	for _, content := range pages {
		stream, err := charmap.Windows1252.NewEncoder().String(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", reporterrors.ErrUnencodableText, err)
		}

		pageNum := len(objects) + 1
		contentNum := pageNum + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))

		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>", pageWidth, pageHeight, contentNum),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(kids))

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for i, obj := range objects {
		offsets = append(offsets, out.Len())
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(offsets))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		fmt.Fprintf(&out, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart)

	return out.Bytes(), nil
}

// layoutPages returns one content stream per page. The title block and the
// column header go on the first page only.
func layoutPages(doc Document) []string {
	var (
		pages []string
		page  strings.Builder
	)

	text(&page, "F2", 16, marginLeft, 800, doc.Title)
	text(&page, "F1", 12, marginLeft, 780, doc.Subtitle)
	text(&page, "F2", 12, marginLeft, 760, doc.Columns[0])
	text(&page, "F2", 12, amountColumn, 760, doc.Columns[1])

	y := firstRowY
	prevKind := RowKind("")
	for _, row := range doc.Rows {
		if row.Kind == RowTotal && prevKind != RowTotal {
			y -= rowHeight / 2
		}
		if y < lastRowY {
			pages = append(pages, page.String())
			page.Reset()
			y = pageHeight - 50
		}

		font := "F1"
		if row.Kind == RowTotal {
			font = "F2"
		}
		text(&page, font, 11, marginLeft, y, row.Description)
		text(&page, font, 11, amountColumn, y, FormatAmount(row.Amount))

		y -= rowHeight
		prevKind = row.Kind
	}

	return append(pages, page.String())
}

func text(b *strings.Builder, font string, size, x, y int, s string) {
	fmt.Fprintf(b, "BT /%s %d Tf %d %d Td (%s) Tj ET\n", font, size, x, y, pdfEscape(s))
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
