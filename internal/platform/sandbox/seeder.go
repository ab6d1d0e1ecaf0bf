// Package sandbox provides synthetic dental-health data generation for
// demo and prototyping environments. Output is reproducible for a given seed
// and is exported as a single-sheet spreadsheet.
package sandbox

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ehr/dentalsynth/internal/platform/workbook"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

const (
	// RecordCount is the number of patients in every generated dataset.
	RecordCount = 10000

	// Seed drives every random choice in a generated dataset.
	Seed int64 = 42
)

// SeedConfig controls the volume and seed of generated synthetic data.
type SeedConfig struct {
	RecordCount int   `json:"recordCount"`
	Seed        int64 `json:"seed"`
}

// DefaultSeedConfig returns the fixed dataset configuration.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		RecordCount: RecordCount,
		Seed:        Seed,
	}
}

// ---------------------------------------------------------------------------
// SeedResult
// ---------------------------------------------------------------------------

// SeedResult summarizes the output of a seed operation.
type SeedResult struct {
	DatasetID string        `json:"datasetId"`
	Records   int           `json:"records"`
	Columns   int           `json:"columns"`
	Seed      int64         `json:"seed"`
	Duration  time.Duration `json:"duration"`
}

// ---------------------------------------------------------------------------
// Seeder
// ---------------------------------------------------------------------------

// Seeder generates a dataset and keeps it in memory for export.
type Seeder struct {
	config    SeedConfig
	generator *DataGenerator
	records   []Record
	datasetID string
	mu        sync.RWMutex
}

// NewSeeder creates a Seeder for cfg. Nothing is generated until Generate.
func NewSeeder(cfg SeedConfig) *Seeder {
	return &Seeder{
		config:    cfg,
		generator: NewDataGenerator(cfg.Seed),
	}
}

// Generate runs the generation loop. A Seeder generates at most once; later
// calls return the summary of the existing dataset.
func (s *Seeder) Generate() (*SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if s.records == nil {
		if s.config.RecordCount < 0 {
			return nil, fmt.Errorf("record count must not be negative, got %d", s.config.RecordCount)
		}
		records := make([]Record, 0, s.config.RecordCount)
		for i := 0; i < s.config.RecordCount; i++ {
			records = append(records, s.generator.GenerateRecord())
		}
		s.records = records
		s.datasetID = uuid.NewString()
	}

	return &SeedResult{
		DatasetID: s.datasetID,
		Records:   len(s.records),
		Columns:   len(Columns),
		Seed:      s.config.Seed,
		Duration:  time.Since(start),
	}, nil
}

// Records returns the generated records in generation order.
func (s *Seeder) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// DatasetID identifies the current dataset; empty before Generate.
func (s *Seeder) DatasetID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasetID
}

// Reset drops the generated dataset. The next Generate starts again from
// the configured seed.
func (s *Seeder) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.datasetID = ""
	s.generator = NewDataGenerator(s.config.Seed)
}

// ExportXLSX writes the dataset as a workbook to w.
func (s *Seeder) ExportXLSX(w io.Writer) (*workbook.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return workbook.Write(w, Columns, rows(s.records))
}

// ExportFile writes the dataset as a workbook to path.
func (s *Seeder) ExportFile(path string) (*workbook.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return workbook.WriteFile(path, Columns, rows(s.records))
}

func rows(records []Record) [][]interface{} {
	out := make([][]interface{}, len(records))
	for i, r := range records {
		out[i] = r.Row()
	}
	return out
}
