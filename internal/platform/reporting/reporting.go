package reporting

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ehr/dentalsynth/internal/platform/sandbox"
)

var ErrMeasureNotFound = errors.New("measure not found")

// RecordSource supplies the dataset a measure is evaluated against.
type RecordSource interface {
	Records() []sandbox.Record
}

// MeasureDefinition defines a descriptive measure over a generated dataset.
type MeasureDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Column      string `json:"column"`

	eval func(records []sandbox.Record) []map[string]interface{}
}

// MeasureReport holds the results of evaluating a measure.
type MeasureReport struct {
	MeasureID   string                   `json:"measure_id"`
	MeasureName string                   `json:"measure_name"`
	GeneratedAt time.Time                `json:"generated_at"`
	RecordCount int                      `json:"record_count"`
	Results     []map[string]interface{} `json:"results"`
}

// PredefinedMeasures is the list of available reporting measures.
var PredefinedMeasures = []MeasureDefinition{
	{
		ID:          "age-group-distribution",
		Name:        "Age Group Distribution",
		Description: "Number of patients per life stage",
		Column:      sandbox.ColAgeGroup,
		eval: distribution(sandbox.AgeGroups, func(r sandbox.Record) string {
			return r.AgeGroup
		}),
	},
	{
		ID:          "smoking-status-distribution",
		Name:        "Smoking Status Distribution",
		Description: "Number of patients per smoking status with mean pack-years",
		Column:      sandbox.ColSmokingStatus,
		eval:        smokingSummary,
	},
	{
		ID:          "gum-disease-distribution",
		Name:        "Gum Disease Distribution",
		Description: "Number of patients per periodontal status",
		Column:      sandbox.ColGumDiseaseStatus,
		eval: distribution(sandbox.GumDiseaseStatuses, func(r sandbox.Record) string {
			return r.GumDiseaseStatus
		}),
	},
	{
		ID:          "diabetes-distribution",
		Name:        "Diabetes Distribution",
		Description: "Number of patients per diabetes status",
		Column:      sandbox.ColDiabetesStatus,
		eval: distribution(sandbox.DiabetesStatuses, func(r sandbox.Record) string {
			return r.DiabetesStatus
		}),
	},
	{
		ID:          "brushing-summary",
		Name:        "Brushing Summary",
		Description: "Patients per daily brushing frequency with mean brushing duration",
		Column:      sandbox.ColBrushingFrequency,
		eval:        brushingSummary,
	},
}

// FindMeasure looks up a measure by ID.
func FindMeasure(id string) *MeasureDefinition {
	for i := range PredefinedMeasures {
		if PredefinedMeasures[i].ID == id {
			return &PredefinedMeasures[i]
		}
	}
	return nil
}

// Evaluate runs the measure with the given ID over records.
func Evaluate(id string, records []sandbox.Record) (*MeasureReport, error) {
	measure := FindMeasure(id)
	if measure == nil {
		return nil, ErrMeasureNotFound
	}
	return &MeasureReport{
		MeasureID:   measure.ID,
		MeasureName: measure.Name,
		GeneratedAt: time.Now(),
		RecordCount: len(records),
		Results:     measure.eval(records),
	}, nil
}

// distribution counts records per value of a categorical column, in the
// declared order of the value set.
func distribution(values []string, field func(sandbox.Record) string) func([]sandbox.Record) []map[string]interface{} {
	return func(records []sandbox.Record) []map[string]interface{} {
		counts := make(map[string]int, len(values))
		for _, r := range records {
			counts[field(r)]++
		}
		results := make([]map[string]interface{}, 0, len(values))
		for _, v := range values {
			results = append(results, map[string]interface{}{
				"value": v,
				"total": counts[v],
				"share": share(counts[v], len(records)),
			})
		}
		return results
	}
}

func smokingSummary(records []sandbox.Record) []map[string]interface{} {
	counts := map[string]int{}
	packYears := map[string]float64{}
	for _, r := range records {
		counts[r.SmokingStatus]++
		packYears[r.SmokingStatus] += r.PackYears
	}
	results := make([]map[string]interface{}, 0, len(sandbox.SmokingStatuses))
	for _, status := range sandbox.SmokingStatuses {
		results = append(results, map[string]interface{}{
			"value":           status,
			"total":           counts[status],
			"share":           share(counts[status], len(records)),
			"mean_pack_years": mean(packYears[status], counts[status]),
		})
	}
	return results
}

func brushingSummary(records []sandbox.Record) []map[string]interface{} {
	const maxFrequency = 3
	var counts [maxFrequency + 1]int
	var seconds [maxFrequency + 1]float64
	for _, r := range records {
		if r.BrushingFrequency < 0 || r.BrushingFrequency > maxFrequency {
			continue
		}
		counts[r.BrushingFrequency]++
		seconds[r.BrushingFrequency] += float64(r.BrushingDuration)
	}
	results := make([]map[string]interface{}, 0, maxFrequency+1)
	for freq := 0; freq <= maxFrequency; freq++ {
		results = append(results, map[string]interface{}{
			"value":                 freq,
			"total":                 counts[freq],
			"share":                 share(counts[freq], len(records)),
			"mean_duration_seconds": mean(seconds[freq], counts[freq]),
		})
	}
	return results
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1e4) / 1e4
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}

// ---------------------------------------------------------------------------
// HTTP handlers
// ---------------------------------------------------------------------------

// Handler provides HTTP handlers for the reporting API.
type Handler struct {
	source RecordSource
}

// NewHandler creates a new reporting handler.
func NewHandler(source RecordSource) *Handler {
	return &Handler{source: source}
}

// RegisterRoutes registers the reporting API routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	reportGroup := api.Group("/reports")
	reportGroup.GET("/measures", h.ListMeasures)
	reportGroup.GET("/measures/:id/evaluate", h.EvaluateMeasure)
}

// ListMeasures returns all available measure definitions.
func (h *Handler) ListMeasures(c echo.Context) error {
	return c.JSON(http.StatusOK, PredefinedMeasures)
}

// EvaluateMeasure evaluates a measure over the current dataset.
func (h *Handler) EvaluateMeasure(c echo.Context) error {
	records := h.source.Records()
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusConflict, "no dataset generated")
	}

	report, err := Evaluate(c.Param("id"), records)
	if errors.Is(err, ErrMeasureNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "measure not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, report)
}
