// Package service owns the in-memory application state: loaded months,
// investment datasets and parsed reference files. HTTP handlers stay thin
// and call into here.
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/aggregator"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/cache"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/loader"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/reference"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/store"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// Service is the application core. Safe for concurrent use.
type Service struct {
	log    zerolog.Logger
	loader *loader.Loader
	refs   *reference.Loader
	cache  *cache.Cache
	store  *store.Store
	agg    *aggregator.Aggregator

	mu          sync.RWMutex
	investments map[string]*loader.InvestmentData
	references  map[string]*reference.Set
	riskMonths  map[string][]model.RiskSectorRecord
}

// New builds a Service. The store may be nil, which disables the import
// history but nothing else. defaultYear applies to uploads whose filenames
// carry no year; zero means the current year.
func New(log zerolog.Logger, refCache *cache.Cache, st *store.Store, defaultYear int) *Service {
	return &Service{
		log:         log.With().Str("component", "service").Logger(),
		loader:      loader.New(log, defaultYear),
		refs:        reference.NewLoader(log),
		cache:       refCache,
		store:       st,
		agg:         aggregator.New(),
		investments: make(map[string]*loader.InvestmentData),
		references:  make(map[string]*reference.Set),
		riskMonths:  make(map[string][]model.RiskSectorRecord),
	}
}

// SetDefaultYear changes the fallback year applied to uploads without one in
// the filename.
func (s *Service) SetDefaultYear(year int) {
	s.loader.SetDefaultYear(year)
}

// ImportResult describes what one operational upload contributed.
type ImportResult struct {
	Filename     string   `json:"filename"`
	MonthsLoaded []string `json:"monthsLoaded"`
	Year         int      `json:"year"`
	RecordCount  int      `json:"recordCount"`
}

// ImportOperational parses a monthly or quarterly workbook and merges its
// months into the aggregation state.
func (s *Service) ImportOperational(content []byte, filename string) (*ImportResult, error) {
	logID := s.logStart(filename, content, "operational", 0)

	wb, err := workbook.Open(content, filename)
	if err != nil {
		s.logDone(logID, nil, 0, err)
		return nil, err
	}

	months, err := s.loader.Load(wb)
	if err != nil {
		s.logDone(logID, nil, 0, err)
		return nil, err
	}

	s.agg.AddMonths(months)

	result := &ImportResult{Filename: filename}
	for _, m := range months {
		result.MonthsLoaded = append(result.MonthsLoaded, m.Month)
		result.Year = m.Year
		result.RecordCount += len(m.NIB)
	}

	// Quarterly files also carry per-month risk/sector sheets; keep them so
	// period reports can include the risk distribution.
	if risk := s.loader.LoadRiskSector(wb); len(risk) > 0 {
		s.mu.Lock()
		for month, records := range risk {
			s.riskMonths[model.MonthKey(month, result.Year)] = records
		}
		s.mu.Unlock()
	}

	s.logDone(logID, result.MonthsLoaded, result.RecordCount, nil)

	s.log.Info().Str("file", filename).Strs("months", result.MonthsLoaded).
		Int("records", result.RecordCount).Msg("operational file imported")
	return result, nil
}

// ImportInvestment parses a REALISASI INVESTASI workbook and stores it under
// a fresh dataset id.
func (s *Service) ImportInvestment(content []byte, filename string) (string, *loader.InvestmentData, error) {
	logID := s.logStart(filename, content, "investment", 0)

	wb, err := workbook.Open(content, filename)
	if err != nil {
		s.logDone(logID, nil, 0, err)
		return "", nil, err
	}
	data, err := s.loader.LoadInvestment(wb)
	if err != nil {
		s.logDone(logID, nil, 0, err)
		return "", nil, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.investments[id] = data
	s.mu.Unlock()

	s.logDone(logID, nil, len(data.Quarters), nil)
	return id, data, nil
}

// Investment returns a stored investment dataset.
func (s *Service) Investment(id string) (*loader.InvestmentData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.investments[id]
	return data, ok
}

// ImportReference parses a raw reference export, via the memo cache when the
// same bytes were seen before, and stores it under a fresh dataset id.
func (s *Service) ImportReference(content []byte, filename string, year int) (string, *reference.Set, error) {
	logID := s.logStart(filename, content, "reference", year)

	key := cache.Key(content, filename, year)
	set, hit := s.cache.Get(key)
	if !hit {
		wb, err := workbook.Open(content, filename)
		if err != nil {
			s.logDone(logID, nil, 0, err)
			return "", nil, err
		}
		set, err = s.refs.Load(wb)
		if err != nil {
			s.logDone(logID, nil, 0, err)
			return "", nil, err
		}
		s.cache.Put(key, set)
	} else {
		s.log.Debug().Str("file", filename).Msg("reference parse served from cache")
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.references[id] = set
	s.mu.Unlock()

	s.logDone(logID, nil, 0, nil)
	return id, set, nil
}

// Reference returns a stored reference dataset.
func (s *Service) Reference(id string) (*reference.Set, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.references[id]
	return set, ok
}

// QuarterReport aggregates one Triwulan.
func (s *Service) QuarterReport(tw string, year int) (*model.PeriodReport, error) {
	return s.agg.AggregateQuarter(tw, year)
}

// SemesterReport aggregates one Semester.
func (s *Service) SemesterReport(semester string, year int) (*model.PeriodReport, error) {
	return s.agg.AggregateSemester(semester, year)
}

// YearReport aggregates a full year.
func (s *Service) YearReport(year int) (*model.PeriodReport, error) {
	return s.agg.AggregateYear(year)
}

// LoadedMonths lists the month keys currently held.
func (s *Service) LoadedMonths() []string {
	return s.agg.LoadedKeys()
}

// Table flattens a period report for tabular consumers.
func (s *Service) Table(report *model.PeriodReport) *aggregator.Table {
	return aggregator.ToTable(report)
}

// Stats computes headline statistics of a period report.
func (s *Service) Stats(report *model.PeriodReport) *aggregator.Stats {
	return aggregator.Summarize(report)
}

// RiskDistribution folds the stored risk/sector records over a period.
// Returns nil when no risk data was loaded for those months.
func (s *Service) RiskDistribution(months []string, year int) *aggregator.RiskDistribution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var batches [][]model.RiskSectorRecord
	for _, month := range months {
		if records := s.riskMonths[model.MonthKey(month, year)]; len(records) > 0 {
			batches = append(batches, records)
		}
	}
	if len(batches) == 0 {
		return nil
	}
	return aggregator.FoldRiskSector(batches...)
}

// RecentImports returns the upload history, newest first. Empty without a
// store.
func (s *Service) RecentImports(limit int) ([]store.ImportLog, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.RecentImports(limit)
}

func (s *Service) logStart(filename string, content []byte, kind string, year int) int64 {
	if s.store == nil {
		return 0
	}
	sum := sha256.Sum256(content)
	id, err := s.store.CreateImportLog(filename, hex.EncodeToString(sum[:]), int64(len(content)), kind, year)
	if err != nil {
		s.log.Warn().Err(err).Str("file", filename).Msg("import log write failed")
		return 0
	}
	return id
}

func (s *Service) logDone(id int64, months []string, records int, importErr error) {
	if s.store == nil || id == 0 {
		return
	}
	status, msg := "done", ""
	if importErr != nil {
		status, msg = "failed", importErr.Error()
	}
	if err := s.store.CompleteImportLog(id, months, records, status, msg); err != nil {
		s.log.Warn().Err(err).Int64("id", id).Msg("import log update failed")
	}
}

// PeriodMonths resolves the month list of a named period, shared by the
// reference query endpoints.
func PeriodMonths(periodType model.PeriodType, name string) ([]string, error) {
	switch periodType {
	case model.PeriodTriwulan:
		if months, ok := model.QuarterMonths[name]; ok {
			return months, nil
		}
		return nil, fmt.Errorf("unknown quarter %q", name)
	case model.PeriodSemester:
		if months, ok := model.SemesterMonths[name]; ok {
			return months, nil
		}
		return nil, fmt.Errorf("unknown semester %q", name)
	case model.PeriodTahunan:
		return model.MonthNames, nil
	}
	return nil, fmt.Errorf("unknown period type %q", periodType)
}
