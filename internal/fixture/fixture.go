// Package fixture supplies the built-in demo dataset. Everything is built
// by construction functions so tests can take a dataset without touching
// process-wide state.
package fixture

import (
	"context"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
)

// Source serves the demo dataset through the same interface as the
// spreadsheet-backed repository.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func (s *Source) Contracts(ctx context.Context) ([]model.Contract, error) {
	return Contracts(), nil
}

func (s *Source) Provisionals(ctx context.Context) ([]model.ProvisionalSum, error) {
	return Provisionals(), nil
}

func (s *Source) ChangeOrders(ctx context.Context) ([]model.ChangeOrder, error) {
	return ChangeOrders(), nil
}

func (s *Source) Claims(ctx context.Context) ([]model.Claim, error) {
	return Claims(), nil
}

func (s *Source) IPCs(ctx context.Context) ([]model.IPC, error) {
	return IPCs(), nil
}

func (s *Source) Advances(ctx context.Context) ([]model.AdvancePayment, error) {
	return Advances(), nil
}

func Contracts() []model.Contract {
	return []model.Contract{
		{Pkg: "A", Title: "Package A - Systems", ContractValue: 120_000_000, PaidToDate: 48_000_000},
		{Pkg: "B", Title: "Package B - Track", ContractValue: 95_000_000, PaidToDate: 41_000_000},
		{Pkg: "C", Title: "Package C - Civil", ContractValue: 180_000_000, PaidToDate: 72_000_000},
		{Pkg: "D", Title: "Package D - Stations", ContractValue: 85_000_000, PaidToDate: 19_000_000},
		{Pkg: "F", Title: "Package F - Rolling Stock", ContractValue: 210_000_000, PaidToDate: 109_000_000},
		{Pkg: "G", Title: "Package G - O&M", ContractValue: 60_000_000, PaidToDate: 9_500_000},
		{Pkg: "I2", Title: "Package I2 - Integration", ContractValue: 35_000_000, PaidToDate: 11_000_000},
		{Pkg: "PMEC", Title: "PMEC - Consulting", ContractValue: 18_000_000, PaidToDate: 7_000_000},
	}
}

func Provisionals() []model.ProvisionalSum {
	return []model.ProvisionalSum{
		{Pkg: "A", Used: 22, Approved: 35, Pending: 12},
		{Pkg: "B", Used: 31, Approved: 12, Pending: 25},
		{Pkg: "C", Used: 44, Approved: 30, Pending: 10},
		{Pkg: "D", Used: 10, Approved: 18, Pending: 22},
		{Pkg: "F", Used: 51, Approved: 21, Pending: 9},
		{Pkg: "G", Used: 6, Approved: 9, Pending: 19},
		{Pkg: "I2", Used: 28, Approved: 7, Pending: 12},
		{Pkg: "PMEC", Used: 12, Approved: 10, Pending: 5},
	}
}

func ChangeOrders() []model.ChangeOrder {
	return []model.ChangeOrder{
		{ID: "CO-A-001", Pkg: "A", Title: "Scope Interface Adjustment", Status: model.ChangeOrderInReview, Estimated: 3_200_000, Date: "2025-09-05", PrevCycle: "CC-2025-09"},
		{ID: "CO-A-002", Pkg: "A", Title: "Cybersecurity Upgrade", Status: model.ChangeOrderProposed, Estimated: 1_150_000, Date: "2025-10-10"},
		{ID: "CO-B-001", Pkg: "B", Title: "Ballast Spec Update", Status: model.ChangeOrderApproved, Estimated: 2_000_000, Actual: amount(1_850_000), Date: "2025-07-22"},
		{ID: "CO-C-004", Pkg: "C", Title: "Retaining Wall Change", Status: model.ChangeOrderApproved, Estimated: 4_900_000, Actual: amount(5_200_000), Date: "2025-03-30"},
		{ID: "CO-D-003", Pkg: "D", Title: "Station Canopy Redesign", Status: model.ChangeOrderInReview, Estimated: 2_700_000, Date: "2025-09-18", PrevCycle: "CC-2025-09"},
		{ID: "CO-F-002", Pkg: "F", Title: "Brake System Mod", Status: model.ChangeOrderProposed, Estimated: 6_000_000, Date: "2025-10-08"},
		{ID: "CO-G-005", Pkg: "G", Title: "Maintenance Tooling", Status: model.ChangeOrderApproved, Estimated: 800_000, Actual: amount(780_000), Date: "2025-05-11"},
		{ID: "CO-I2-002", Pkg: "I2", Title: "Interface Test Extension", Status: model.ChangeOrderProposed, Estimated: 450_000, Date: "2025-09-29"},
		{ID: "CO-PMEC-001", Pkg: "PMEC", Title: "Additional Studies", Status: model.ChangeOrderApproved, Estimated: 300_000, Actual: amount(290_000), Date: "2025-02-14"},
	}
}

func Claims() []model.Claim {
	return []model.Claim{
		{ID: "CLM-A-001", Pkg: "A", Title: "Interface Delay (Vendor A)", Status: model.ClaimInReview, Claimed: 1_200_000, DaysOpen: 24, Date: "2025-10-02"},
		{ID: "CLM-B-002", Pkg: "B", Title: "Ballast Rework", Status: model.ClaimSubmitted, Claimed: 850_000, DaysOpen: 11, Date: "2025-10-15"},
		{ID: "CLM-C-003", Pkg: "C", Title: "Unforeseen Utilities", Status: model.ClaimApproved, Claimed: 2_100_000, Certified: amount(1_950_000), DaysOpen: 39, Date: "2025-08-21"},
		{ID: "CLM-D-001", Pkg: "D", Title: "Design Change Impacts", Status: model.ClaimRejected, Claimed: 900_000, Certified: amount(0), DaysOpen: 51, Date: "2025-07-03"},
		{ID: "CLM-F-004", Pkg: "F", Title: "Supplier Late Deliveries", Status: model.ClaimInReview, Claimed: 1_750_000, DaysOpen: 17, Date: "2025-10-10"},
		{ID: "CLM-G-002", Pkg: "G", Title: "O&M Mobilization Overlaps", Status: model.ClaimSubmitted, Claimed: 300_000, DaysOpen: 9, Date: "2025-10-17"},
		{ID: "CLM-I2-001", Pkg: "I2", Title: "Integration Test Overruns", Status: model.ClaimApproved, Claimed: 600_000, Certified: amount(540_000), DaysOpen: 28, Date: "2025-09-05"},
		{ID: "CLM-PMEC-1", Pkg: "PMEC", Title: "Additional Study Hours", Status: model.ClaimApproved, Claimed: 200_000, Certified: amount(190_000), DaysOpen: 14, Date: "2025-10-08"},
	}
}

func IPCs() []model.IPC {
	return []model.IPC{
		{Pkg: "A", Number: "IPC 05", Date: "2025-09-20", Certified: 325_000, Status: model.IPCCertified},
		{Pkg: "A", Number: "IPC 06", Date: "2025-10-21", Certified: 510_207.176, Status: model.IPCCertified},
		{Pkg: "B", Number: "IPC 07", Date: "2025-10-15", Certified: 375_000, Status: model.IPCCertified},
		{Pkg: "C", Number: "IPC 03", Date: "2025-09-30", Certified: 250_000, Status: model.IPCInReview},
		{Pkg: "PMEC", Number: "IPC 09", Date: "2025-10-05", Certified: 180_000, Status: model.IPCCertified},
	}
}

func Advances() []model.AdvancePayment {
	return []model.AdvancePayment{
		{Pkg: "A", Amount: 750_000, Recovered: 480_000},
		{Pkg: "B", Amount: 900_000, Recovered: 660_000},
		{Pkg: "C", Amount: 600_000, Recovered: 120_000},
		{Pkg: "F", Amount: 1_500_000, Recovered: 930_000},
	}
}

func amount(v float64) *float64 {
	return &v
}
