package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/config"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/filter"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/metrics"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
)

// Source serves the raw governance records. The spreadsheet repository and
// the fixture dataset both implement it.
type Source interface {
	Contracts(ctx context.Context) ([]model.Contract, error)
	Provisionals(ctx context.Context) ([]model.ProvisionalSum, error)
	ChangeOrders(ctx context.Context) ([]model.ChangeOrder, error)
	Claims(ctx context.Context) ([]model.Claim, error)
	IPCs(ctx context.Context) ([]model.IPC, error)
	Advances(ctx context.Context) ([]model.AdvancePayment, error)
}

type ExcelGenerator interface {
	Generate(report model.Report) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.Report) ([]byte, error)
}

// Query is the composed filter selection parsed from request parameters.
// A nil Packages slice means "All".
type Query struct {
	Packages []string
	Status   string
	Search   string
	Range    filter.Range
}

func (q Query) spec() filter.Spec {
	return filter.Spec{
		Packages: q.Packages,
		Status:   q.Status,
		Search:   q.Search,
		Range:    q.Range,
	}
}

// Governance derives every list, summary and export artifact the dashboard
// consumes. It holds no state between calls; "now" is injected so window
// and aging math stays deterministic under test.
type Governance struct {
	source     Source
	excel      ExcelGenerator
	pdf        PDFGenerator
	thresholds metrics.AgingThresholds
	currency   string
	packages   []string
	now        func() time.Time
}

func NewGovernance(source Source, excel ExcelGenerator, pdf PDFGenerator, cfg *config.Config) *Governance {
	return &Governance{
		source: source,
		excel:  excel,
		pdf:    pdf,
		thresholds: metrics.AgingThresholds{
			Watch:    cfg.Dashboard.AgingWatchDays,
			Critical: cfg.Dashboard.AgingCriticalDays,
		},
		currency: cfg.Dashboard.Currency,
		packages: cfg.Dashboard.Packages,
		now:      time.Now,
	}
}

func (s *Governance) Contracts(ctx context.Context, q Query) ([]model.ContractView, error) {
	contracts, err := s.loadContracts(ctx, q)
	if err != nil {
		return nil, err
	}
	views := make([]model.ContractView, 0, len(contracts))
	for _, c := range contracts {
		views = append(views, model.ContractView{
			Contract:    c,
			PercentPaid: metrics.PercentPaid(c.PaidToDate, c.ContractValue),
		})
	}
	return views, nil
}

func (s *Governance) Provisionals(ctx context.Context, q Query) ([]model.ProvisionalSum, error) {
	sums, err := s.source.Provisionals(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	return filter.Apply(sums, q.spec(), s.now(), provisionalFields), nil
}

func (s *Governance) ChangeOrders(ctx context.Context, q Query) ([]model.ChangeOrderView, error) {
	if err := validStatus(q.Status, model.ChangeOrderStatuses()); err != nil {
		return nil, err
	}
	orders, err := s.loadChangeOrders(ctx, q)
	if err != nil {
		return nil, err
	}
	views := make([]model.ChangeOrderView, 0, len(orders))
	for _, co := range orders {
		views = append(views, model.ChangeOrderView{
			ChangeOrder: co,
			Variance:    metrics.Variance(co.Estimated, co.Actual),
		})
	}
	return views, nil
}

func (s *Governance) Claims(ctx context.Context, q Query) ([]model.ClaimView, error) {
	if err := validStatus(q.Status, model.ClaimStatuses()); err != nil {
		return nil, err
	}
	claims, err := s.loadClaims(ctx, q)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]model.ClaimView, 0, len(claims))
	for _, cl := range claims {
		cl.DaysOpen = metrics.EffectiveDaysOpen(cl.DaysOpen, cl.Date, now)
		views = append(views, model.ClaimView{
			Claim:    cl,
			Variance: metrics.Variance(cl.Claimed, cl.Certified),
			Aging:    string(metrics.AgingBucket(cl.DaysOpen, s.thresholds)),
		})
	}
	return views, nil
}

func (s *Governance) IPCs(ctx context.Context, q Query) ([]model.IPCView, error) {
	if err := validStatus(q.Status, model.IPCStatuses()); err != nil {
		return nil, err
	}
	ipcs, err := s.source.IPCs(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	filtered := filter.Apply(ipcs, q.spec(), s.now(), ipcFields)
	views := make([]model.IPCView, 0, len(filtered))
	for _, ipc := range filtered {
		var variance *float64
		if ipc.Claimed != nil {
			variance = metrics.Variance(*ipc.Claimed, &ipc.Certified)
		}
		views = append(views, model.IPCView{IPC: ipc, Variance: variance})
	}
	return views, nil
}

func (s *Governance) Advances(ctx context.Context, q Query) ([]model.AdvanceView, error) {
	advances, err := s.source.Advances(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	filtered := filter.Apply(advances, q.spec(), s.now(), advanceFields)
	views := make([]model.AdvanceView, 0, len(filtered))
	for _, ap := range filtered {
		views = append(views, model.AdvanceView{
			AdvancePayment:  ap,
			Outstanding:     ap.Outstanding(),
			RecoveryPercent: metrics.PercentPaid(ap.Recovered, ap.Amount),
		})
	}
	return views, nil
}

// Summary reduces the filtered dataset to the dashboard header scalars and
// breakdowns. The status component of the query is ignored here: each
// breakdown counts every status so the legend stays complete.
func (s *Governance) Summary(ctx context.Context, q Query) (*model.DashboardSummary, error) {
	q.Status = ""

	contracts, err := s.loadContracts(ctx, q)
	if err != nil {
		return nil, err
	}
	orders, err := s.loadChangeOrders(ctx, q)
	if err != nil {
		return nil, err
	}
	claims, err := s.loadClaims(ctx, q)
	if err != nil {
		return nil, err
	}

	carryOver, firstTime := metrics.Partition(orders, func(co model.ChangeOrder) bool {
		return co.PrevCycle != ""
	})

	summary := &model.DashboardSummary{
		TotalValue:         metrics.TotalValue(contracts),
		TotalPaid:          metrics.TotalPaid(contracts),
		OverallPercentPaid: metrics.OverallPercentPaid(contracts),
		ContractCount:      len(contracts),
		ChangeOrderCount:   len(orders),
		ClaimCount:         len(claims),
		ChangeOrdersByStatus: metrics.CountByStatus(orders, model.ChangeOrderStatuses(), func(co model.ChangeOrder) model.ChangeOrderStatus {
			return co.Status
		}),
		ClaimsByStatus: metrics.CountByStatus(claims, model.ClaimStatuses(), func(cl model.Claim) model.ClaimStatus {
			return cl.Status
		}),
		PaidByPackage: s.paidByPackage(contracts),
		Agenda: model.AgendaSplit{
			CarryOver: len(carryOver),
			FirstTime: len(firstTime),
		},
	}
	return summary, nil
}

// paidByPackage emits one entry per configured package in configured order,
// zero for packages without a matching contract, so the chart axis is stable
// regardless of the data.
func (s *Governance) paidByPackage(contracts []model.Contract) []model.PackagePaid {
	series := make([]model.PackagePaid, 0, len(s.packages))
	for _, pkg := range s.packages {
		percent := 0
		for _, c := range contracts {
			if c.Pkg == pkg {
				percent = metrics.PercentPaid(c.PaidToDate, c.ContractValue)
				break
			}
		}
		series = append(series, model.PackagePaid{Pkg: pkg, PercentPaid: percent})
	}
	return series
}

func (s *Governance) loadContracts(ctx context.Context, q Query) ([]model.Contract, error) {
	contracts, err := s.source.Contracts(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	spec := q.spec()
	spec.Status = ""
	spec.Range = filter.RangeAll // contracts carry no date
	return filter.Apply(contracts, spec, s.now(), contractFields), nil
}

func (s *Governance) loadChangeOrders(ctx context.Context, q Query) ([]model.ChangeOrder, error) {
	orders, err := s.source.ChangeOrders(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	return filter.Apply(orders, q.spec(), s.now(), changeOrderFields), nil
}

func (s *Governance) loadClaims(ctx context.Context, q Query) ([]model.Claim, error) {
	claims, err := s.source.Claims(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	return filter.Apply(claims, q.spec(), s.now(), claimFields), nil
}

func (s *Governance) report(ctx context.Context, q Query) (*model.Report, error) {
	summary, err := s.Summary(ctx, q)
	if err != nil {
		return nil, err
	}
	contracts, err := s.Contracts(ctx, q)
	if err != nil {
		return nil, err
	}
	provisionals, err := s.Provisionals(ctx, q)
	if err != nil {
		return nil, err
	}
	orders, err := s.ChangeOrders(ctx, q)
	if err != nil {
		return nil, err
	}
	claims, err := s.Claims(ctx, q)
	if err != nil {
		return nil, err
	}
	ipcs, err := s.IPCs(ctx, q)
	if err != nil {
		return nil, err
	}
	advances, err := s.Advances(ctx, q)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		GeneratedAt:  s.now(),
		Currency:     s.currency,
		Packages:     s.packages,
		Summary:      *summary,
		Contracts:    contracts,
		Provisionals: provisionals,
		ChangeOrders: orders,
		Claims:       claims,
		IPCs:         ipcs,
		Advances:     advances,
	}, nil
}

func validStatus[S ~string](raw string, statuses []S) error {
	if raw == "" || raw == "All" {
		return nil
	}
	for _, s := range statuses {
		if raw == string(s) {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, raw)
}

func upstream(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func contractFields(c model.Contract) filter.Fields {
	return filter.Fields{Pkg: c.Pkg, Title: c.Title}
}

func provisionalFields(p model.ProvisionalSum) filter.Fields {
	return filter.Fields{Pkg: p.Pkg}
}

func changeOrderFields(co model.ChangeOrder) filter.Fields {
	return filter.Fields{
		Pkg:         co.Pkg,
		Title:       co.Title,
		Description: co.Description,
		Status:      string(co.Status),
		Date:        co.Date,
	}
}

func claimFields(cl model.Claim) filter.Fields {
	return filter.Fields{
		Pkg:         cl.Pkg,
		Title:       cl.Title,
		Description: cl.Description,
		Status:      string(cl.Status),
		Date:        cl.Date,
	}
}

func ipcFields(ipc model.IPC) filter.Fields {
	return filter.Fields{
		Pkg:    ipc.Pkg,
		Title:  ipc.Number,
		Status: string(ipc.Status),
		Date:   ipc.Date,
	}
}

func advanceFields(ap model.AdvancePayment) filter.Fields {
	return filter.Fields{Pkg: ap.Pkg}
}
