package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/config"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/excel"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/fixture"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/pdf"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Dashboard: config.DashboardConfig{
			Packages:          []string{"A", "B", "C", "D", "F", "G", "I2", "PMEC"},
			Currency:          "AED",
			AgingWatchDays:    30,
			AgingCriticalDays: 60,
		},
	}
}

func newTestRouter(t *testing.T, source service.Source) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gov := service.NewGovernance(source, excel.NewGenerator(), pdf.NewGenerator(), testConfig())
	handler := NewHandler(gov, zerolog.Nop())
	return NewRouter(handler, zerolog.Nop(), "test")
}

func doRequest(router *gin.Engine, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestContractsEnvelope(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/contracts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []model.ContractView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 8 {
		t.Fatalf("expected 8 contracts, got %d", len(body.Data))
	}
	if body.Data[0].Pkg != "A" || body.Data[0].PercentPaid != 40 {
		t.Fatalf("first contract = %+v", body.Data[0])
	}
}

func TestPackageAndStatusFilters(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/change-orders?pkgs=A,B&status=Approved")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Data []model.ChangeOrderView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].ID != "CO-B-001" {
		t.Fatalf("filtered result = %+v", body.Data)
	}
}

func TestExplicitEmptySelection(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/claims?pkgs=none")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Data []model.ClaimView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 0 {
		t.Fatalf("pkgs=none should select nothing, got %d", len(body.Data))
	}
}

func TestInvalidRange(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/claims?range=6w")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid range") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestInvalidStatus(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/claims?status=Pending")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSummaryEnvelope(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Data model.DashboardSummary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.TotalValue != 803_000_000 || body.Data.OverallPercentPaid != 39 {
		t.Fatalf("summary = %+v", body.Data)
	}
	if len(body.Data.PaidByPackage) != 8 {
		t.Fatalf("paidByPackage entries = %d", len(body.Data.PaidByPackage))
	}
}

func TestExportCSVDownload(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/export/csv/claims")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="claims-`) {
		t.Fatalf("content disposition = %q", disposition)
	}
	if !strings.HasPrefix(rec.Body.String(), "id,pkg,title,status,claimed,certified,variance,daysOpen,aging,date") {
		t.Fatalf("csv header = %q", strings.SplitN(rec.Body.String(), "\n", 2)[0])
	}
}

func TestExportCSVUnknownEntity(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/export/csv/budgets")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestExportExcelDownload(t *testing.T) {
	router := newTestRouter(t, fixture.NewSource())

	rec := doRequest(router, "/api/export/xlsx")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("empty workbook body")
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "governance-report-") {
		t.Fatalf("content disposition = %q", rec.Header().Get("Content-Disposition"))
	}
}

// brokenSource simulates a spreadsheet outage.
type brokenSource struct{}

var errDown = errors.New("upstream down")

func (brokenSource) Contracts(ctx context.Context) ([]model.Contract, error) { return nil, errDown }
func (brokenSource) Provisionals(ctx context.Context) ([]model.ProvisionalSum, error) {
	return nil, errDown
}
func (brokenSource) ChangeOrders(ctx context.Context) ([]model.ChangeOrder, error) {
	return nil, errDown
}
func (brokenSource) Claims(ctx context.Context) ([]model.Claim, error) { return nil, errDown }
func (brokenSource) IPCs(ctx context.Context) ([]model.IPC, error)     { return nil, errDown }
func (brokenSource) Advances(ctx context.Context) ([]model.AdvancePayment, error) {
	return nil, errDown
}

func TestUpstreamFailureMapsToBadGateway(t *testing.T) {
	router := newTestRouter(t, brokenSource{})

	rec := doRequest(router, "/api/contracts")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "data source unavailable") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
