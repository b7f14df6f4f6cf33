package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/export"
)

// Artifact is a downloadable export ready to serve.
type Artifact struct {
	FileName    string
	ContentType string
	Content     []byte
}

const (
	csvContentType  = "text/csv;charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// ExportCSV serializes one entity's filtered records. Unknown entities map
// to ErrNotFound so the route can 404.
func (s *Governance) ExportCSV(ctx context.Context, entity string, q Query) (*Artifact, error) {
	var (
		records []export.Record
		err     error
	)
	switch entity {
	case "contracts":
		records, err = s.contractRecords(ctx, q)
	case "change-orders":
		records, err = s.changeOrderRecords(ctx, q)
	case "claims":
		records, err = s.claimRecords(ctx, q)
	case "ipcs":
		records, err = s.ipcRecords(ctx, q)
	case "provisionals":
		records, err = s.provisionalRecords(ctx, q)
	case "advances":
		records, err = s.advanceRecords(ctx, q)
	default:
		return nil, fmt.Errorf("%w: unknown export entity %q", ErrNotFound, entity)
	}
	if err != nil {
		return nil, err
	}

	return &Artifact{
		FileName:    export.FileName(entity, "csv", s.now()),
		ContentType: csvContentType,
		Content:     []byte(export.ToCSV(records, nil)),
	}, nil
}

// ExportExcel builds the governance workbook for the current selection.
func (s *Governance) ExportExcel(ctx context.Context, q Query) (*Artifact, error) {
	report, err := s.report(ctx, q)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		FileName:    export.FileName("governance-report", "xlsx", s.now()),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

// ExportPDF builds the one-page governance snapshot.
func (s *Governance) ExportPDF(ctx context.Context, q Query) (*Artifact, error) {
	report, err := s.report(ctx, q)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		FileName:    export.FileName("governance-snapshot", "pdf", s.now()),
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}

func (s *Governance) contractRecords(ctx context.Context, q Query) ([]export.Record, error) {
	views, err := s.Contracts(ctx, q)
	if err != nil {
		return nil, err
	}
	records := make([]export.Record, 0, len(views))
	for _, v := range views {
		records = append(records, export.Record{
			{Name: "pkg", Value: v.Pkg},
			{Name: "title", Value: v.Title},
			{Name: "contractValue", Value: amount(v.ContractValue)},
			{Name: "paidToDate", Value: amount(v.PaidToDate)},
			{Name: "percentPaid", Value: strconv.Itoa(v.PercentPaid)},
		})
	}
	return records, nil
}

func (s *Governance) changeOrderRecords(ctx context.Context, q Query) ([]export.Record, error) {
	views, err := s.ChangeOrders(ctx, q)
	if err != nil {
		return nil, err
	}
	records := make([]export.Record, 0, len(views))
	for _, v := range views {
		records = append(records, export.Record{
			{Name: "id", Value: v.ID},
			{Name: "pkg", Value: v.Pkg},
			{Name: "title", Value: v.Title},
			{Name: "status", Value: string(v.Status)},
			{Name: "estimated", Value: amount(v.Estimated)},
			{Name: "actual", Value: optionalAmount(v.Actual)},
			{Name: "variance", Value: optionalAmount(v.Variance)},
			{Name: "date", Value: v.Date},
		})
	}
	return records, nil
}

func (s *Governance) claimRecords(ctx context.Context, q Query) ([]export.Record, error) {
	views, err := s.Claims(ctx, q)
	if err != nil {
		return nil, err
	}
	records := make([]export.Record, 0, len(views))
	for _, v := range views {
		records = append(records, export.Record{
			{Name: "id", Value: v.ID},
			{Name: "pkg", Value: v.Pkg},
			{Name: "title", Value: v.Title},
			{Name: "status", Value: string(v.Status)},
			{Name: "claimed", Value: amount(v.Claimed)},
			{Name: "certified", Value: optionalAmount(v.Certified)},
			{Name: "variance", Value: optionalAmount(v.Variance)},
			{Name: "daysOpen", Value: strconv.Itoa(v.DaysOpen)},
			{Name: "aging", Value: v.Aging},
			{Name: "date", Value: v.Date},
		})
	}
	return records, nil
}

func (s *Governance) ipcRecords(ctx context.Context, q Query) ([]export.Record, error) {
	views, err := s.IPCs(ctx, q)
	if err != nil {
		return nil, err
	}
	records := make([]export.Record, 0, len(views))
	for _, v := range views {
		records = append(records, export.Record{
			{Name: "pkg", Value: v.Pkg},
			{Name: "ipcNo", Value: v.Number},
			{Name: "date", Value: v.Date},
			{Name: "claimed", Value: optionalAmount(v.Claimed)},
			{Name: "certified", Value: amount(v.Certified)},
			{Name: "variance", Value: optionalAmount(v.Variance)},
			{Name: "status", Value: string(v.Status)},
		})
	}
	return records, nil
}

func (s *Governance) provisionalRecords(ctx context.Context, q Query) ([]export.Record, error) {
	sums, err := s.Provisionals(ctx, q)
	if err != nil {
		return nil, err
	}
	records := make([]export.Record, 0, len(sums))
	for _, p := range sums {
		records = append(records, export.Record{
			{Name: "pkg", Value: p.Pkg},
			{Name: "used", Value: amount(p.Used)},
			{Name: "approved", Value: amount(p.Approved)},
			{Name: "pending", Value: amount(p.Pending)},
		})
	}
	return records, nil
}

func (s *Governance) advanceRecords(ctx context.Context, q Query) ([]export.Record, error) {
	views, err := s.Advances(ctx, q)
	if err != nil {
		return nil, err
	}
	records := make([]export.Record, 0, len(views))
	for _, v := range views {
		records = append(records, export.Record{
			{Name: "pkg", Value: v.Pkg},
			{Name: "amount", Value: amount(v.Amount)},
			{Name: "recovered", Value: amount(v.Recovered)},
			{Name: "outstanding", Value: amount(v.Outstanding)},
		})
	}
	return records, nil
}

// amount renders a number the way the sheet stores it: shortest exact
// decimal form, no grouping.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return amount(*v)
}
