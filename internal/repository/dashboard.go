// Package repository maps spreadsheet rows onto dashboard entities.
// Coercion happens here, at the boundary: a blank or mistyped cell becomes
// zero, nil or "" and never an error, so one bad row cannot blank a report.
package repository

import (
	"context"
	"fmt"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/sheets"
)

// RangeReader is the spreadsheet read surface the repository consumes.
type RangeReader interface {
	ReadRange(ctx context.Context, rangeSpec string) ([]sheets.Row, error)
}

// Ranges names the backing range for each entity sheet.
type Ranges struct {
	Contracts    string
	Provisionals string
	ChangeOrders string
	Claims       string
	IPCs         string
	Advances     string
}

type Dashboard struct {
	reader RangeReader
	ranges Ranges
}

func NewDashboard(reader RangeReader, ranges Ranges) *Dashboard {
	return &Dashboard{reader: reader, ranges: ranges}
}

func (r *Dashboard) Contracts(ctx context.Context) ([]model.Contract, error) {
	rows, err := r.reader.ReadRange(ctx, r.ranges.Contracts)
	if err != nil {
		return nil, fmt.Errorf("load contracts: %w", err)
	}
	contracts := make([]model.Contract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, model.Contract{
			Pkg:           sheets.Str(row["pkg"]),
			Title:         sheets.Str(row["title"]),
			ContractValue: sheets.NumOr(row["contractValue"], 0),
			PaidToDate:    sheets.NumOr(row["paidToDate"], 0),
		})
	}
	return contracts, nil
}

func (r *Dashboard) Provisionals(ctx context.Context) ([]model.ProvisionalSum, error) {
	rows, err := r.reader.ReadRange(ctx, r.ranges.Provisionals)
	if err != nil {
		return nil, fmt.Errorf("load provisionals: %w", err)
	}
	sums := make([]model.ProvisionalSum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, model.ProvisionalSum{
			Pkg:      sheets.Str(row["pkg"]),
			Used:     sheets.NumOr(row["used"], 0),
			Approved: sheets.NumOr(row["approved"], 0),
			Pending:  sheets.NumOr(row["pending"], 0),
		})
	}
	return sums, nil
}

func (r *Dashboard) ChangeOrders(ctx context.Context) ([]model.ChangeOrder, error) {
	rows, err := r.reader.ReadRange(ctx, r.ranges.ChangeOrders)
	if err != nil {
		return nil, fmt.Errorf("load change orders: %w", err)
	}
	orders := make([]model.ChangeOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, model.ChangeOrder{
			ID:          sheets.Str(row["id"]),
			Pkg:         sheets.Str(row["pkg"]),
			Title:       sheets.Str(row["title"]),
			Status:      model.ChangeOrderStatus(sheets.Str(row["status"])),
			Estimated:   sheets.NumOr(row["estimated"], 0),
			Actual:      sheets.Num(row["actual"]),
			Date:        sheets.Str(row["date"]),
			Description: sheets.Str(row["description"]),
			PrevCycle:   sheets.Str(row["prevCycle"]),
		})
	}
	return orders, nil
}

func (r *Dashboard) Claims(ctx context.Context) ([]model.Claim, error) {
	rows, err := r.reader.ReadRange(ctx, r.ranges.Claims)
	if err != nil {
		return nil, fmt.Errorf("load claims: %w", err)
	}
	claims := make([]model.Claim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, model.Claim{
			ID:          sheets.Str(row["id"]),
			Pkg:         sheets.Str(row["pkg"]),
			Title:       sheets.Str(row["title"]),
			Status:      model.ClaimStatus(sheets.Str(row["status"])),
			Claimed:     sheets.NumOr(row["claimed"], 0),
			Certified:   sheets.Num(row["certified"]),
			DaysOpen:    int(sheets.NumOr(row["daysOpen"], 0)),
			Date:        sheets.Str(row["date"]),
			Description: sheets.Str(row["description"]),
		})
	}
	return claims, nil
}

func (r *Dashboard) IPCs(ctx context.Context) ([]model.IPC, error) {
	rows, err := r.reader.ReadRange(ctx, r.ranges.IPCs)
	if err != nil {
		return nil, fmt.Errorf("load ipcs: %w", err)
	}
	ipcs := make([]model.IPC, 0, len(rows))
	for _, row := range rows {
		ipcs = append(ipcs, model.IPC{
			Pkg:       sheets.Str(row["pkg"]),
			Number:    sheets.Str(row["ipcNo"]),
			Date:      sheets.Str(row["date"]),
			Claimed:   sheets.Num(row["claimed"]),
			Certified: sheets.NumOr(row["certified"], 0),
			Status:    model.IPCStatus(sheets.Str(row["status"])),
		})
	}
	return ipcs, nil
}

func (r *Dashboard) Advances(ctx context.Context) ([]model.AdvancePayment, error) {
	rows, err := r.reader.ReadRange(ctx, r.ranges.Advances)
	if err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}
	advances := make([]model.AdvancePayment, 0, len(rows))
	for _, row := range rows {
		advances = append(advances, model.AdvancePayment{
			Pkg:       sheets.Str(row["pkg"]),
			Amount:    sheets.NumOr(row["amount"], 0),
			Recovered: sheets.NumOr(row["recovered"], 0),
		})
	}
	return advances, nil
}
