package reporting

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ehr/dentalsynth/internal/platform/sandbox"
)

type staticSource []sandbox.Record

func (s staticSource) Records() []sandbox.Record { return s }

func fixtureRecords() []sandbox.Record {
	return []sandbox.Record{
		{AgeGroup: sandbox.AgeGroupChild, SmokingStatus: sandbox.SmokingNever, GumDiseaseStatus: "none", DiabetesStatus: "none", BrushingFrequency: 0},
		{AgeGroup: sandbox.AgeGroupAdult, SmokingStatus: sandbox.SmokingCurrent, PackYears: 10, GumDiseaseStatus: "gingivitis", DiabetesStatus: "type 2", BrushingFrequency: 2, BrushingDuration: 120},
		{AgeGroup: sandbox.AgeGroupAdult, SmokingStatus: sandbox.SmokingCurrent, PackYears: 20, GumDiseaseStatus: "none", DiabetesStatus: "none", BrushingFrequency: 2, BrushingDuration: 60},
		{AgeGroup: sandbox.AgeGroupSenior, SmokingStatus: sandbox.SmokingFormer, PackYears: 5, GumDiseaseStatus: "periodontitis", DiabetesStatus: "prediabetes", BrushingFrequency: 1, BrushingDuration: 30},
	}
}

func resultFor(t *testing.T, report *MeasureReport, value interface{}) map[string]interface{} {
	t.Helper()
	for _, r := range report.Results {
		if r["value"] == value {
			return r
		}
	}
	t.Fatalf("no result row for %v in %s", value, report.MeasureID)
	return nil
}

func TestPredefinedMeasures(t *testing.T) {
	expectedIDs := []string{
		"age-group-distribution",
		"smoking-status-distribution",
		"gum-disease-distribution",
		"diabetes-distribution",
		"brushing-summary",
	}
	if len(PredefinedMeasures) != len(expectedIDs) {
		t.Fatalf("expected %d predefined measures, got %d", len(expectedIDs), len(PredefinedMeasures))
	}
	for i, id := range expectedIDs {
		m := PredefinedMeasures[i]
		if m.ID != id {
			t.Errorf("expected measure[%d].ID = %s, got %s", i, id, m.ID)
		}
		if m.Name == "" || m.Description == "" || m.Column == "" {
			t.Errorf("measure %s is missing metadata", m.ID)
		}
		if m.eval == nil {
			t.Errorf("measure %s has no evaluator", m.ID)
		}
	}
}

func TestFindMeasure(t *testing.T) {
	if m := FindMeasure("brushing-summary"); m == nil || m.Name != "Brushing Summary" {
		t.Fatalf("expected brushing-summary, got %+v", m)
	}
	if FindMeasure("nonexistent") != nil {
		t.Error("expected nil for nonexistent measure")
	}
}

func TestEvaluate_NotFound(t *testing.T) {
	if _, err := Evaluate("nonexistent", fixtureRecords()); !errors.Is(err, ErrMeasureNotFound) {
		t.Fatalf("expected ErrMeasureNotFound, got %v", err)
	}
}

func TestEvaluate_AgeGroupDistribution(t *testing.T) {
	report, err := Evaluate("age-group-distribution", fixtureRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RecordCount != 4 {
		t.Errorf("expected record count 4, got %d", report.RecordCount)
	}
	if len(report.Results) != len(sandbox.AgeGroups) {
		t.Fatalf("expected one row per age group, got %d", len(report.Results))
	}
	if got := resultFor(t, report, sandbox.AgeGroupAdult)["total"]; got != 2 {
		t.Errorf("expected 2 adults, got %v", got)
	}
	if got := resultFor(t, report, sandbox.AgeGroupTeen)["total"]; got != 0 {
		t.Errorf("expected 0 teens, got %v", got)
	}
	if got := resultFor(t, report, sandbox.AgeGroupAdult)["share"]; got != 0.5 {
		t.Errorf("expected adult share 0.5, got %v", got)
	}
}

func TestEvaluate_SmokingSummary(t *testing.T) {
	report, err := Evaluate("smoking-status-distribution", fixtureRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	current := resultFor(t, report, sandbox.SmokingCurrent)
	if current["total"] != 2 {
		t.Errorf("expected 2 current smokers, got %v", current["total"])
	}
	if current["mean_pack_years"] != 15.0 {
		t.Errorf("expected mean pack years 15, got %v", current["mean_pack_years"])
	}
	if never := resultFor(t, report, sandbox.SmokingNever); never["mean_pack_years"] != 0.0 {
		t.Errorf("expected never-smokers at 0 pack years, got %v", never["mean_pack_years"])
	}
}

func TestEvaluate_BrushingSummary(t *testing.T) {
	report, err := Evaluate("brushing-summary", fixtureRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Results) != 4 {
		t.Fatalf("expected frequencies 0..3, got %d rows", len(report.Results))
	}
	twice := resultFor(t, report, 2)
	if twice["total"] != 2 || twice["mean_duration_seconds"] != 90.0 {
		t.Errorf("unexpected twice-daily row %v", twice)
	}
	if none := resultFor(t, report, 0); none["mean_duration_seconds"] != 0.0 {
		t.Errorf("expected 0 duration for non-brushers, got %v", none["mean_duration_seconds"])
	}
}

func TestEvaluate_EmptyDataset(t *testing.T) {
	report, err := Evaluate("gum-disease-distribution", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range report.Results {
		if r["total"] != 0 || r["share"] != 0.0 {
			t.Errorf("expected zero row, got %v", r)
		}
	}
}

func TestEvaluate_GeneratedDataset(t *testing.T) {
	s := sandbox.NewSeeder(sandbox.SeedConfig{RecordCount: 1000, Seed: sandbox.Seed})
	if _, err := s.Generate(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, m := range PredefinedMeasures {
		report, err := Evaluate(m.ID, s.Records())
		if err != nil {
			t.Fatalf("%s: %v", m.ID, err)
		}
		var total int
		for _, r := range report.Results {
			total += r["total"].(int)
		}
		if total != 1000 {
			t.Errorf("%s: totals add up to %d, want 1000", m.ID, total)
		}
	}
}

// ---------------------------------------------------------------------------
// HTTP handlers
// ---------------------------------------------------------------------------

func newTestServer(src RecordSource) *echo.Echo {
	e := echo.New()
	NewHandler(src).RegisterRoutes(e.Group("/api/v1"))
	return e
}

func TestHandler_ListMeasures(t *testing.T) {
	e := newTestServer(staticSource(nil))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/measures", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != len(PredefinedMeasures) {
		t.Errorf("expected %d measures, got %d", len(PredefinedMeasures), len(body))
	}
}

func TestHandler_EvaluateMeasure(t *testing.T) {
	e := newTestServer(staticSource(fixtureRecords()))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/measures/diabetes-distribution/evaluate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var report MeasureReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.MeasureID != "diabetes-distribution" || report.RecordCount != 4 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestHandler_EvaluateMeasure_NotFound(t *testing.T) {
	e := newTestServer(staticSource(fixtureRecords()))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/measures/nope/evaluate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_EvaluateMeasure_NoDataset(t *testing.T) {
	e := newTestServer(staticSource(nil))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/measures/brushing-summary/evaluate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
