package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/format"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
)

// Generator builds the governance report workbook: one summary sheet plus a
// detail sheet per work package in the selection.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.Report) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, contract := range report.Contracts {
		sheetName := buildSheetName(contract.Pkg, usedNames)
		usedNames[sheetName] = struct{}{}

		file.NewSheet(sheetName)
		if err := g.writePackage(file, sheetName, report, contract); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.Report) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Governance Report")
	set("A2", "Generated")
	set("B2", report.GeneratedAt.Format("2006-01-02"))
	set("A3", "Total Contract Value")
	set("B3", format.Currency(report.Summary.TotalValue, report.Currency))
	set("A4", "Paid to Date")
	set("B4", format.Currency(report.Summary.TotalPaid, report.Currency))
	set("A5", "Overall % Paid")
	set("B5", fmt.Sprintf("%d%%", report.Summary.OverallPercentPaid))
	set("A6", "Contracts")
	set("B6", report.Summary.ContractCount)
	set("A7", "Change Orders")
	set("B7", report.Summary.ChangeOrderCount)
	set("A8", "Claims")
	set("B8", report.Summary.ClaimCount)
	set("A9", "Agenda Carry-Over / First-Time")
	set("B9", fmt.Sprintf("%d / %d", report.Summary.Agenda.CarryOver, report.Summary.Agenda.FirstTime))

	row := 11
	set(fmt.Sprintf("A%d", row), "Change Orders by Status")
	for _, status := range model.ChangeOrderStatuses() {
		row++
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), report.Summary.ChangeOrdersByStatus[status])
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Claims by Status")
	for _, status := range model.ClaimStatuses() {
		row++
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), report.Summary.ClaimsByStatus[status])
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Package")
	set(fmt.Sprintf("B%d", row), "% Paid")
	for _, entry := range report.Summary.PaidByPackage {
		row++
		set(fmt.Sprintf("A%d", row), entry.Pkg)
		set(fmt.Sprintf("B%d", row), fmt.Sprintf("%d%%", entry.PercentPaid))
	}

	_ = file.SetColWidth(sheet, "A", "A", 36)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	return nil
}

func (g *Generator) writePackage(file *excelize.File, sheet string, report model.Report, contract model.ContractView) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", contract.Title)
	set("A2", "Contract Value")
	set("B2", format.Currency(contract.ContractValue, report.Currency))
	set("A3", "Paid to Date")
	set("B3", format.Currency(contract.PaidToDate, report.Currency))
	set("A4", "% Paid")
	set("B4", fmt.Sprintf("%d%%", contract.PercentPaid))

	row := 6
	row = g.writeChangeOrders(file, sheet, report, contract.Pkg, row)
	row = g.writeClaims(file, sheet, report, contract.Pkg, row+1)
	row = g.writeIPCs(file, sheet, report, contract.Pkg, row+1)
	g.writeAdvance(file, sheet, report, contract.Pkg, row+1)

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "E", 18)
	return nil
}

func (g *Generator) writeChangeOrders(file *excelize.File, sheet string, report model.Report, pkg string, row int) int {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set(fmt.Sprintf("A%d", row), "Change Orders")
	row++
	headers := []string{"ID", "Title", "Status", "Estimated", "Actual", "Variance", "Date"}
	writeHeaders(file, sheet, row, headers)
	for _, co := range report.ChangeOrders {
		if co.Pkg != pkg {
			continue
		}
		row++
		set(fmt.Sprintf("A%d", row), co.ID)
		set(fmt.Sprintf("B%d", row), co.Title)
		set(fmt.Sprintf("C%d", row), string(co.Status))
		set(fmt.Sprintf("D%d", row), format.Currency(co.Estimated, report.Currency))
		set(fmt.Sprintf("E%d", row), optionalCurrency(co.Actual, report.Currency))
		set(fmt.Sprintf("F%d", row), optionalCurrency(co.Variance, report.Currency))
		set(fmt.Sprintf("G%d", row), format.Date(co.Date))
	}
	return row + 1
}

func (g *Generator) writeClaims(file *excelize.File, sheet string, report model.Report, pkg string, row int) int {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set(fmt.Sprintf("A%d", row), "Claims")
	row++
	headers := []string{"ID", "Title", "Status", "Claimed", "Certified", "Variance", "Days Open", "Aging"}
	writeHeaders(file, sheet, row, headers)
	for _, cl := range report.Claims {
		if cl.Pkg != pkg {
			continue
		}
		row++
		set(fmt.Sprintf("A%d", row), cl.ID)
		set(fmt.Sprintf("B%d", row), cl.Title)
		set(fmt.Sprintf("C%d", row), string(cl.Status))
		set(fmt.Sprintf("D%d", row), format.Currency(cl.Claimed, report.Currency))
		set(fmt.Sprintf("E%d", row), optionalCurrency(cl.Certified, report.Currency))
		set(fmt.Sprintf("F%d", row), optionalCurrency(cl.Variance, report.Currency))
		set(fmt.Sprintf("G%d", row), cl.DaysOpen)
		set(fmt.Sprintf("H%d", row), cl.Aging)
	}
	return row + 1
}

func (g *Generator) writeIPCs(file *excelize.File, sheet string, report model.Report, pkg string, row int) int {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set(fmt.Sprintf("A%d", row), "Interim Payment Certificates")
	row++
	headers := []string{"IPC No.", "Date", "Certified", "Status"}
	writeHeaders(file, sheet, row, headers)
	for _, ipc := range report.IPCs {
		if ipc.Pkg != pkg {
			continue
		}
		row++
		set(fmt.Sprintf("A%d", row), ipc.Number)
		set(fmt.Sprintf("B%d", row), format.Date(ipc.Date))
		set(fmt.Sprintf("C%d", row), format.Currency(ipc.Certified, report.Currency))
		set(fmt.Sprintf("D%d", row), string(ipc.Status))
	}
	return row + 1
}

func (g *Generator) writeAdvance(file *excelize.File, sheet string, report model.Report, pkg string, row int) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	for _, ap := range report.Advances {
		if ap.Pkg != pkg {
			continue
		}
		set(fmt.Sprintf("A%d", row), "Advance Payment")
		set(fmt.Sprintf("A%d", row+1), "Granted")
		set(fmt.Sprintf("B%d", row+1), format.Currency(ap.Amount, report.Currency))
		set(fmt.Sprintf("A%d", row+2), "Recovered")
		set(fmt.Sprintf("B%d", row+2), format.Currency(ap.Recovered, report.Currency))
		set(fmt.Sprintf("A%d", row+3), "Outstanding")
		set(fmt.Sprintf("B%d", row+3), format.Currency(ap.Outstanding, report.Currency))
		set(fmt.Sprintf("A%d", row+4), "Recovery %")
		set(fmt.Sprintf("B%d", row+4), fmt.Sprintf("%d%%", ap.RecoveryPercent))
		return
	}
}

func writeHeaders(file *excelize.File, sheet string, row int, headers []string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = file.SetCellValue(sheet, cell, header)
	}
}

func optionalCurrency(value *float64, currency string) string {
	if value == nil {
		return ""
	}
	return format.Currency(*value, currency)
}

func buildSheetName(pkg string, used map[string]struct{}) string {
	base := sanitizeSheetName("Package " + strings.TrimSpace(pkg))
	if len(base) > 31 {
		base = base[:31]
	}

	nameCandidate := base
	counter := 2
	for {
		if _, exists := used[nameCandidate]; !exists {
			return nameCandidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		nameCandidate = trimmed + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Package"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = replacer.Replace(value)
	value = strings.TrimSpace(value)
	if value == "" {
		return "Package"
	}
	return value
}
