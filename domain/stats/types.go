package stats

import (
	"misweep/domain/core"
)

// SweepReport is the audited output of one lag sweep: the MI series plus
// the metadata needed to reproduce and interpret it.
type SweepReport struct {
	SweepID   core.ID `json:"sweep_id"`
	VarX      string  `json:"var_x,omitempty"`
	VarY      string  `json:"var_y,omitempty"`
	ShiftFrom int     `json:"shift_from"`
	ShiftTo   int     `json:"shift_to"`
	ShiftStep int     `json:"shift_step"`

	// Values holds one MI estimate per lag, indexed (lag-ShiftFrom)/ShiftStep.
	Values []float64 `json:"values"`

	PeakLag    int     `json:"peak_lag"`
	PeakMI     float64 `json:"peak_mi"`
	PeakPValue float64 `json:"peak_p_value"`
	MeanMI     float64 `json:"mean_mi"`

	Bootstrap bool  `json:"bootstrap"`
	Samples   int   `json:"samples,omitempty"`
	Seed      int64 `json:"seed,omitempty"`
	RuntimeMs int64 `json:"runtime_ms"`

	// Fingerprint ties the report to the exact input sequences.
	Fingerprint core.DataHash  `json:"fingerprint"`
	CreatedAt   core.Timestamp `json:"created_at"`
}

// LagAt returns the lag value stored at output slot i.
func (r *SweepReport) LagAt(i int) int {
	return r.ShiftFrom + i*r.ShiftStep
}

// IndexOf returns the output slot of a lag value, or -1 when the lag is
// not on the sweep grid.
func (r *SweepReport) IndexOf(lag int) int {
	offset := lag - r.ShiftFrom
	if offset < 0 || offset%r.ShiftStep != 0 {
		return -1
	}
	i := offset / r.ShiftStep
	if i >= len(r.Values) {
		return -1
	}
	return i
}
