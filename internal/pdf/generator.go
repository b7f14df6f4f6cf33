package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/format"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
)

// Generator renders the one-page governance snapshot handed out at
// committee meetings.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(report model.Report) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "ICGRIS Governance Snapshot", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", report.GeneratedAt.Format("02 Jan 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Program Totals", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Contract Value: %s", format.Currency(report.Summary.TotalValue, report.Currency)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Paid to Date: %s (%d%%)", format.Currency(report.Summary.TotalPaid, report.Currency), report.Summary.OverallPercentPaid), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Change Orders: %d    Claims: %d    Next Agenda: %d carry-over, %d first-time",
		report.Summary.ChangeOrderCount,
		report.Summary.ClaimCount,
		report.Summary.Agenda.CarryOver,
		report.Summary.Agenda.FirstTime,
	), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Payments by Package", "", 1, "L", false, 0, "")

	headers := []string{"Package", "Title", "Contract Value", "Paid to Date", "% Paid"}
	colWidths := []float64{25, 100, 50, 50, 25}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)
	for _, c := range report.Contracts {
		row := []string{
			c.Pkg,
			c.Title,
			format.Currency(c.ContractValue, report.Currency),
			format.Currency(c.PaidToDate, report.Currency),
			fmt.Sprintf("%d%%", c.PercentPaid),
		}
		drawTableRow(pdf, g.fontName, row, colWidths, false)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Open Claims Aging", "", 1, "L", false, 0, "")
	claimHeaders := []string{"Claim", "Package", "Status", "Claimed", "Days Open", "Aging"}
	claimWidths := []float64{40, 25, 30, 50, 25, 30}
	drawTableRow(pdf, g.fontName, claimHeaders, claimWidths, true)
	for _, cl := range report.Claims {
		row := []string{
			cl.ID,
			cl.Pkg,
			string(cl.Status),
			format.Currency(cl.Claimed, report.Currency),
			fmt.Sprintf("%d", cl.DaysOpen),
			cl.Aging,
		}
		drawTableRow(pdf, g.fontName, row, claimWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
