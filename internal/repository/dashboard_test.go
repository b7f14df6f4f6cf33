package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/sheets"
)

// fakeReader serves canned rows per range, standing in for the Sheets API.
type fakeReader struct {
	rows map[string][]sheets.Row
	err  error
}

func (f *fakeReader) ReadRange(ctx context.Context, rangeSpec string) ([]sheets.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[rangeSpec], nil
}

func testRanges() Ranges {
	return Ranges{
		Contracts:    "contracts!A1:D",
		Provisionals: "provisionals!A1:D",
		ChangeOrders: "change_orders!A1:I",
		Claims:       "claims!A1:I",
		IPCs:         "ipcs!A1:F",
		Advances:     "advances!A1:C",
	}
}

func TestContractsMapping(t *testing.T) {
	reader := &fakeReader{rows: map[string][]sheets.Row{
		"contracts!A1:D": {
			{"pkg": "A", "title": "Package A - Systems", "contractValue": "120000000", "paidToDate": "48000000"},
			{"pkg": "B", "title": "Package B - Track", "contractValue": "", "paidToDate": "garbage"},
		},
	}}
	repo := NewDashboard(reader, testRanges())

	contracts, err := repo.Contracts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contracts) != 2 {
		t.Fatalf("expected 2 contracts, got %d", len(contracts))
	}
	if contracts[0].ContractValue != 120_000_000 || contracts[0].PaidToDate != 48_000_000 {
		t.Fatalf("numeric mapping wrong: %+v", contracts[0])
	}
	// Blank and garbage cells coerce to zero instead of failing the read.
	if contracts[1].ContractValue != 0 || contracts[1].PaidToDate != 0 {
		t.Fatalf("defensive coercion failed: %+v", contracts[1])
	}
}

func TestChangeOrdersMapping(t *testing.T) {
	reader := &fakeReader{rows: map[string][]sheets.Row{
		"change_orders!A1:I": {
			{"id": "CO-B-001", "pkg": "B", "title": "Ballast Spec Update", "status": "Approved", "estimated": "2000000", "actual": "1850000", "date": "2025-07-22"},
			{"id": "CO-A-002", "pkg": "A", "title": "Cybersecurity Upgrade", "status": "Proposed", "estimated": "1150000", "actual": "", "date": "2025-10-10"},
		},
	}}
	repo := NewDashboard(reader, testRanges())

	orders, err := repo.ChangeOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders[0].Actual == nil || *orders[0].Actual != 1_850_000 {
		t.Fatalf("actual not mapped: %+v", orders[0])
	}
	// Empty actual stays nil: "not realized", not zero.
	if orders[1].Actual != nil {
		t.Fatalf("blank actual should be nil, got %v", *orders[1].Actual)
	}
	if orders[0].Status != model.ChangeOrderApproved {
		t.Fatalf("status = %q", orders[0].Status)
	}
}

func TestClaimsMapping(t *testing.T) {
	reader := &fakeReader{rows: map[string][]sheets.Row{
		"claims!A1:I": {
			{"id": "CLM-C-003", "pkg": "C", "title": "Unforeseen Utilities", "status": "Approved", "claimed": "2100000", "certified": "1950000", "daysOpen": "39", "date": "2025-08-21"},
			{"id": "CLM-B-002", "pkg": "B", "title": "Ballast Rework", "status": "Submitted", "claimed": "850000", "certified": "", "daysOpen": "", "date": "2025-10-15"},
		},
	}}
	repo := NewDashboard(reader, testRanges())

	claims, err := repo.Claims(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims[0].Certified == nil || *claims[0].Certified != 1_950_000 {
		t.Fatalf("certified not mapped: %+v", claims[0])
	}
	if claims[0].DaysOpen != 39 {
		t.Fatalf("daysOpen = %d", claims[0].DaysOpen)
	}
	if claims[1].Certified != nil {
		t.Fatalf("blank certified should be nil")
	}
	if claims[1].DaysOpen != 0 {
		t.Fatalf("blank daysOpen should be 0, got %d", claims[1].DaysOpen)
	}
}

func TestEmptySheet(t *testing.T) {
	repo := NewDashboard(&fakeReader{rows: map[string][]sheets.Row{}}, testRanges())

	ipcs, err := repo.IPCs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ipcs) != 0 {
		t.Fatalf("expected empty slice, got %d", len(ipcs))
	}
}

func TestReadErrorPropagates(t *testing.T) {
	readErr := errors.New("permission denied")
	repo := NewDashboard(&fakeReader{err: readErr}, testRanges())

	if _, err := repo.Advances(context.Background()); !errors.Is(err, readErr) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
