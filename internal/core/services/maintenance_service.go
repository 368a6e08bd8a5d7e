package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
)

// utf8BOM lets spreadsheet tools detect the export's encoding.
const utf8BOM = "\ufeff"

var csvHeader = []string{"pair", "date", "rate"}

type maintenanceService struct {
	BaseService
	reporter portsrepo.RateReporter
}

// NewMaintenanceService creates the export and coverage service.
func NewMaintenanceService(reporter portsrepo.RateReporter) portssvc.MaintenanceSvcFacade {
	return &maintenanceService{reporter: reporter}
}

func (s *maintenanceService) ExportCSV(ctx context.Context, w io.Writer) (int64, error) {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}

	var rows int64
	err := s.reporter.StreamRates(ctx, func(f domain.RateFact) error {
		rows++
		return cw.Write([]string{f.Pair, domain.FormatDate(f.Date), strconv.FormatFloat(f.Rate, 'f', -1, 64)})
	})
	cw.Flush()
	if err == nil {
		err = cw.Error()
	}
	if err != nil {
		s.LogError(ctx, err, "CSV export failed")
		return rows, fmt.Errorf("failed to export rates: %w", err)
	}
	s.LogInfo(ctx, "CSV export finished", "rows", rows)
	return rows, nil
}

func (s *maintenanceService) Coverage(ctx context.Context) ([]domain.PairCoverage, error) {
	cov, err := s.reporter.Coverage(ctx)
	if err != nil {
		s.LogError(ctx, err, "Coverage report failed")
		return nil, err
	}
	return cov, nil
}
