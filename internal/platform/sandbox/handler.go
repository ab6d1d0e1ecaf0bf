package sandbox

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/ehr/dentalsynth/internal/platform/workbook"
)

// ---------------------------------------------------------------------------
// SeedHandler — Echo HTTP handlers
// ---------------------------------------------------------------------------

// SeedHandler provides HTTP endpoints for the sandbox dataset.
type SeedHandler struct {
	seeder *Seeder
	mu     sync.Mutex
}

// NewSeedHandler creates a new handler with no pre-seeded data.
func NewSeedHandler() *SeedHandler {
	return &SeedHandler{}
}

// Records returns the current dataset, or nil when nothing has been generated.
func (h *SeedHandler) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.seeder == nil {
		return nil
	}
	return h.seeder.Records()
}

// RegisterRoutes registers sandbox routes on the given Echo group.
func (h *SeedHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/seed", h.handleSeed)
	g.GET("/summary", h.handleSummary)
	g.POST("/reset", h.handleReset)
	g.GET("/export/xlsx", h.handleExportXLSX)
}

// Seed replaces the current dataset with a freshly generated one.
func (h *SeedHandler) Seed() (*SeedResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seeder = NewSeeder(DefaultSeedConfig())
	return h.seeder.Generate()
}

func (h *SeedHandler) handleSeed(c echo.Context) error {
	result, err := h.Seed()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *SeedHandler) handleSummary(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seeder == nil {
		return c.JSON(http.StatusOK, workbook.Summary{Sheet: workbook.SheetName, Columns: len(Columns)})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"datasetId": h.seeder.DatasetID(),
		"sheet":     workbook.SheetName,
		"rows":      len(h.seeder.Records()),
		"columns":   len(Columns),
	})
}

func (h *SeedHandler) handleReset(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seeder != nil {
		h.seeder.Reset()
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}

func (h *SeedHandler) handleExportXLSX(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seeder == nil || len(h.seeder.Records()) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no dataset generated; POST /seed first")
	}

	// Render fully before writing headers so a failure still yields a 500.
	var buf bytes.Buffer
	summary, err := h.seeder.ExportXLSX(&buf)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("export failed: %v", err))
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", workbook.DefaultFileName))
	resp.Header().Set("X-Dataset-Id", h.seeder.DatasetID())
	resp.Header().Set("X-Dataset-Rows", strconv.Itoa(summary.Rows))
	resp.Header().Set("X-Dataset-Columns", strconv.Itoa(summary.Columns))
	return c.Blob(http.StatusOK, workbook.ContentType, buf.Bytes())
}
