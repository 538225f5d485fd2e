// Package pdf renders scraped page content into printable documents.
package pdf

import (
	"fmt"
	"io"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// fpdfRenderer implements service.PDFRenderer. Headings are numbered
// hierarchically and list items become bullets, so the output reads like a
// sectioned summary of the page.
type fpdfRenderer struct{}

// NewFpdfRenderer is the constructor for fpdfRenderer.
func NewFpdfRenderer() service.PDFRenderer {
	return &fpdfRenderer{}
}

// Render writes the page content to w as a PDF document.
func (r *fpdfRenderer) Render(page *entity.ScrapedPage, w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 10)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 10, tr("Scraped Content from "+page.URL), "", "L", false)
	doc.Ln(5)

	var section, subsection, subsubsection int

	for _, block := range page.Content {
		text := tr(block.Text)

		switch block.Tag {
		case "h1":
			section++
			subsection = 0
			subsubsection = 0
			doc.AddPage()
			doc.SetFont("Helvetica", "B", 14)
			doc.SetTextColor(0, 0, 100)
			doc.MultiCell(180, 8, fmt.Sprintf("%d. %s", section, text), "", "L", false)
			doc.Ln(2)
		case "h2":
			subsection++
			subsubsection = 0
			doc.SetFont("Helvetica", "B", 13)
			doc.SetTextColor(0, 0, 100)
			doc.MultiCell(180, 8, fmt.Sprintf("%d.%d. %s", section, subsection, text), "", "L", false)
			doc.Ln(2)
		case "h3":
			subsubsection++
			doc.SetFont("Helvetica", "B", 12)
			doc.SetTextColor(0, 0, 100)
			doc.MultiCell(180, 8, fmt.Sprintf("%d.%d.%d. %s", section, subsection, subsubsection, text), "", "L", false)
			doc.Ln(2)
		case "h4", "h5", "h6":
			doc.SetFont("Helvetica", "B", 11)
			doc.SetTextColor(60, 60, 120)
			doc.MultiCell(180, 7, text, "", "L", false)
			doc.Ln(1)
		case "li":
			doc.SetFont("Helvetica", "", 12)
			doc.SetTextColor(0, 0, 0)
			doc.MultiCell(170, 8, "- "+text, "", "L", false)
			doc.Ln(1)
		case "a":
			doc.SetFont("Helvetica", "", 12)
			doc.SetTextColor(0, 0, 255)
			doc.MultiCell(170, 8, text, "", "L", false)
			doc.SetTextColor(0, 0, 0)
			doc.Ln(2)
		default:
			doc.SetFont("Helvetica", "", 12)
			doc.SetTextColor(0, 0, 0)
			doc.MultiCell(170, 8, text, "", "L", false)
			doc.Ln(2)
		}
	}

	if err := doc.Output(w); err != nil {
		return errors.Wrap(err, "failed to render pdf")
	}

	return nil
}
