package app

import (
	"context"
	"time"

	"misweep/domain/core"
	domainstats "misweep/domain/stats"
	"misweep/internal"
	"misweep/internal/analysis/sweep"

	"github.com/montanaflynn/stats"
)

// SweepService runs lag sweeps and wraps the raw MI series into an
// auditable report with a stable ID and summary statistics.
type SweepService struct {
	logger *internal.Logger
}

// SweepRequest defines the inputs for one sweep run
type SweepRequest struct {
	VarX  string
	VarY  string
	DataX []float64
	DataY []float64

	Config sweep.Config

	// Bootstrap switches the per-lag estimator to the two-level
	// bootstrap with Samples sub-histograms.
	Bootstrap bool
	Samples   int

	SweepID core.ID // optional, generated when empty
}

// NewSweepService creates a sweep service
func NewSweepService(logger *internal.Logger) *SweepService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SweepService{logger: logger}
}

// Run executes the sweep and assembles the report. When the request
// leaves both axis ranges zeroed they are derived from the data.
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*domainstats.SweepReport, error) {
	startTime := time.Now()

	sweepID := req.SweepID
	if sweepID == "" {
		sweepID = core.NewID()
	}

	cfg := req.Config
	if cfg.MinX == 0 && cfg.MaxX == 0 {
		min, max, err := DeriveRange(req.DataX)
		if err != nil {
			return nil, err
		}
		cfg.MinX, cfg.MaxX = min, max
	}
	if cfg.MinY == 0 && cfg.MaxY == 0 {
		min, max, err := DeriveRange(req.DataY)
		if err != nil {
			return nil, err
		}
		cfg.MinY, cfg.MaxY = min, max
	}

	engine := sweep.New(cfg)
	cfg = engine.Config()

	s.logger.Info("sweep %s: lags [%d,%d] step %d, %dx%d bins, bootstrap=%v",
		sweepID, cfg.ShiftFrom, cfg.ShiftTo, cfg.ShiftStep, cfg.BinsX, cfg.BinsY, req.Bootstrap)

	var values []float64
	var err error
	if req.Bootstrap {
		values, err = engine.SweepBootstrap(ctx, req.DataX, req.DataY, req.Samples)
	} else {
		values, err = engine.Sweep(ctx, req.DataX, req.DataY)
	}
	if err != nil {
		return nil, err
	}

	report := &domainstats.SweepReport{
		SweepID:   sweepID,
		VarX:      req.VarX,
		VarY:      req.VarY,
		ShiftFrom: cfg.ShiftFrom,
		ShiftTo:   cfg.ShiftTo,
		ShiftStep: cfg.ShiftStep,
		Values:    values,
		Bootstrap: req.Bootstrap,
		Samples:   req.Samples,
		Seed:      cfg.Seed,
		RuntimeMs: time.Since(startTime).Milliseconds(),

		Fingerprint: core.ComputeDataHash(req.DataX, req.DataY),
		CreatedAt:   core.Now(),
	}

	peakIdx := 0
	for i, v := range values {
		if v > values[peakIdx] {
			peakIdx = i
		}
	}
	report.PeakLag = report.LagAt(peakIdx)
	report.PeakMI = values[peakIdx]

	meanMI, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	report.MeanMI = meanMI

	// The overlap at the peak lag has n-|lag| candidate pairs; that is
	// the sample size behind the peak estimate (out-of-range values make
	// it an upper bound, which keeps the p-value conservative enough for
	// a screen).
	overlap := len(req.DataX) - absInt(report.PeakLag)
	report.PeakPValue = sweep.GTestPValue(report.PeakMI, overlap, cfg.BinsX, cfg.BinsY)

	s.logger.Info("sweep %s: peak MI %.4f at lag %d (p=%.4g) in %dms",
		sweepID, report.PeakMI, report.PeakLag, report.PeakPValue, report.RuntimeMs)

	return report, nil
}

// DeriveRange computes the [min,max] axis range of a sequence.
func DeriveRange(data []float64) (float64, float64, error) {
	min, err := stats.Min(data)
	if err != nil {
		return 0, 0, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return 0, 0, err
	}
	if min == max {
		// Degenerate constant series; widen so the single value bins.
		return min - 0.5, max + 0.5, nil
	}
	return min, max, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
